package main

import (
	"fmt"
	"os"

	"github.com/tronicboy1/sql-paginatorr/cmd/paginator/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
