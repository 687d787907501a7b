package commands

import (
	"github.com/spf13/cobra"

	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

func NewChunksCommand() *cobra.Command {
	var (
		size   uint
		total  uint
		format string
	)

	cmd := &cobra.Command{
		Use:   "chunks",
		Short: "Partition [0, total) into equal chunks",
		Example: `  paginator chunks --size 250 --total 1000
  paginator chunks --size 250 --total 1000 --format sql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := paginator.ChunkPairs(size, total)
			if err != nil {
				return err
			}
			return writePairs(cmd.OutOrStdout(), format, pairs)
		},
	}

	cmd.Flags().UintVarP(&size, "size", "s", 0, "records per chunk")
	cmd.Flags().UintVarP(&total, "total", "t", 0, "total record count")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: json, table or sql")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}
