package cli

import (
	"fmt"

	"github.com/ebrowne/thirtyq/internal/constants"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD, 'today', or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	dc, err := ctx.Journal.ResolveDay(day)
	if err != nil {
		return err
	}

	fmt.Printf("%s — day %d of %d, cycle %d\n", dc.Day, dc.DayNumber, constants.CycleLengthDays, dc.CycleNumber)
	fmt.Printf("Q%d: %s\n", dc.Question.ID, dc.Question.Text)

	if dc.Entry == nil {
		fmt.Println("\nNo entry for this day.")
		return nil
	}

	fmt.Printf("\n%s\n", dc.Entry.Answer)
	fmt.Printf("\nWritten %s", dc.Entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	if !dc.Entry.UpdatedAt.Equal(dc.Entry.CreatedAt) {
		fmt.Printf(", edited %s", dc.Entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}
