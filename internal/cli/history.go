package cli

import (
	"fmt"

	"github.com/ebrowne/thirtyq/internal/models"
)

type HistoryCmd struct {
	Question int    `help:"Show only answers to this question ID (1-30)." short:"q"`
	Month    string `help:"Show only entries in this month (YYYY-MM)."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var entries []models.JournalEntry
	var err error
	switch {
	case c.Question != 0:
		entries, err = ctx.Store.GetEntriesByQuestion(c.Question)
	case c.Month != "":
		first, perr := parseMonth(c.Month)
		if perr != nil {
			return perr
		}
		entries, err = ctx.Journal.EntriesForMonth(first)
	default:
		entries, err = ctx.Store.GetAllEntries()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  c%d d%02d  Q%-2d  %s\n", e.Day, e.CycleNumber, e.DayNumber, e.QuestionID, truncate(e.Answer, 70))
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}
