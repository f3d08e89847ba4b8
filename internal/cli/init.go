package cli

import (
	"fmt"
	"time"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/questions"
)

type InitCmd struct {
	StartDate string `help:"Journal start date (YYYY-MM-DD). Defaults to today." default:"today"`
}

func (c *InitCmd) Run(ctx *Context) error {
	start, err := parseDay(c.StartDate)
	if err != nil {
		return err
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	// The start date anchors all day/cycle numbering; once set it never
	// changes.
	if settings.StartDate != "" {
		fmt.Printf("Journal already initialized (started %s) at: %s\n", settings.StartDate, ctx.Store.GetConfigPath())
		return nil
	}

	settings.StartDate = start.Format(constants.DayFormat)
	settings.QuestionOrder = questions.DefaultOrder()
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Initialized thirtyq journal at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Start date: %s\n", settings.StartDate)
	fmt.Printf("Day 1 of 30, cycle 1 begins %s.\n", relativeDay(start))
	return nil
}

func relativeDay(t time.Time) string {
	today := time.Now().Format(constants.DayFormat)
	switch t.Format(constants.DayFormat) {
	case today:
		return "today"
	default:
		return "on " + t.Format(constants.DayFormat)
	}
}
