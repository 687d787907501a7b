package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

// Output formats accepted by --format.
const (
	formatJSON  = "json"
	formatTable = "table"
	formatSQL   = "sql"
)

func writePairs(w io.Writer, format string, pairs []paginator.LimitOffsetPair) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	case formatTable:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "OFFSET", "LIMIT", "SIZE")
		for i, p := range pairs {
			t.Row(
				strconv.Itoa(i),
				strconv.FormatUint(uint64(p.Offset), 10),
				strconv.FormatUint(uint64(p.Limit), 10),
				strconv.FormatUint(uint64(p.Size()), 10),
			)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	case formatSQL:
		// SQL LIMIT takes a row count, so print Size rather than the end index.
		for _, p := range pairs {
			if _, err := fmt.Fprintf(w, "LIMIT %d OFFSET %d\n", p.Size(), p.Offset); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, table or sql)", format)
	}
}
