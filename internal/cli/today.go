package cli

import (
	"fmt"

	"github.com/ebrowne/thirtyq/internal/constants"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	dc, err := ctx.Journal.Today()
	if err != nil {
		return err
	}

	fmt.Printf("%s — day %d of %d, cycle %d\n\n", dc.Day, dc.DayNumber, constants.CycleLengthDays, dc.CycleNumber)
	fmt.Printf("Q%d: %s\n", dc.Question.ID, dc.Question.Text)

	if dc.Previous != nil {
		fmt.Printf("\nLast time (%s, cycle %d) you wrote:\n  %s\n", dc.Previous.Day, dc.Previous.CycleNumber, truncate(dc.Previous.Answer, 200))
	}

	if dc.Entry != nil {
		fmt.Printf("\nToday's answer:\n  %s\n", dc.Entry.Answer)
	} else {
		fmt.Println("\nNot answered yet. Use 'thirtyq answer' or 'thirtyq tui' to write.")
	}

	streak, err := ctx.Journal.Streak(now())
	if err == nil && streak > 0 {
		fmt.Printf("\nStreak: %d day(s)\n", streak)
	}

	return nil
}
