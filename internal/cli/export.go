package cli

import (
	"fmt"

	"github.com/ebrowne/thirtyq/internal/export"
	"github.com/ebrowne/thirtyq/internal/models"
)

type ExportCmd struct {
	Format string `help:"Export format." enum:"json,csv" default:"json"`
	Output string `help:"Output file path." short:"o" default:""`
	Month  string `help:"Export only entries in this month (YYYY-MM)."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var entries []models.JournalEntry
	var err error
	if c.Month != "" {
		first, perr := parseMonth(c.Month)
		if perr != nil {
			return perr
		}
		entries, err = ctx.Journal.EntriesForMonth(first)
	} else {
		entries, err = ctx.Store.GetAllEntries()
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries to export")
	}

	path := c.Output
	if path == "" {
		path = "thirtyq-export." + c.Format
	}

	switch c.Format {
	case "csv":
		err = export.ToCSV(entries, path)
	default:
		err = export.ToJSON(entries, path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	return nil
}
