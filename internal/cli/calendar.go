package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/ebrowne/thirtyq/internal/constants"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month." default:"current"`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	first, err := parseMonth(c.Month)
	if err != nil {
		return err
	}

	entries, err := ctx.Journal.EntriesForMonth(first)
	if err != nil {
		return err
	}
	journaled := make(map[int]bool, len(entries))
	for _, e := range entries {
		if t, err := time.Parse(constants.DayFormat, e.Day); err == nil {
			journaled[t.Day()] = true
		}
	}

	fmt.Println(renderMonth(first, journaled, now()))
	fmt.Printf("\n%d of %d days journaled. ● journaled, · empty\n", len(journaled), daysInMonth(first))
	return nil
}

// renderMonth draws a text month grid, marking journaled days and today.
func renderMonth(first time.Time, journaled map[int]bool, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "     %s\n", first.Format("January 2006"))
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	// Leading blanks up to the month's first weekday.
	for i := 0; i < int(first.Weekday()); i++ {
		b.WriteString("    ")
	}

	todayDay := 0
	if today.Year() == first.Year() && today.Month() == first.Month() {
		todayDay = today.Day()
	}

	total := daysInMonth(first)
	for d := 1; d <= total; d++ {
		mark := "· "
		if journaled[d] {
			mark = "● "
		}
		if d == todayDay {
			mark = strings.TrimSuffix(mark, " ") + "<"
		}
		fmt.Fprintf(&b, "%2d%s", d, mark)

		weekday := (int(first.Weekday()) + d) % 7
		if weekday == 0 && d != total {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func daysInMonth(first time.Time) int {
	return first.AddDate(0, 1, -1).Day()
}
