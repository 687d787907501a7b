package commands

import (
	"github.com/spf13/cobra"

	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

func NewPageCommand() *cobra.Command {
	var (
		index  uint
		size   uint
		format string
	)

	cmd := &cobra.Command{
		Use:     "page",
		Short:   "Print the window of a single 0-based page",
		Example: `  paginator page --index 1 --size 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := paginator.PairForPage(index, size)
			if err != nil {
				return err
			}
			return writePairs(cmd.OutOrStdout(), format, []paginator.LimitOffsetPair{pair})
		},
	}

	cmd.Flags().UintVarP(&index, "index", "i", 0, "0-based page index")
	cmd.Flags().UintVarP(&size, "size", "s", 50, "records per page")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, table or sql")
	return cmd
}
