package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ebrowne/thirtyq/internal/constants"
)

type DebugCmd struct {
	DBPath   DebugDBPathCmd   `cmd:"" name:"db-path" help:"Print the store path."`
	Entry    DebugEntryCmd    `cmd:"" help:"Dump the raw entry for a date as JSON."`
	Settings DebugSettingsCmd `cmd:"" help:"Dump raw settings as JSON."`
	Resolve  DebugResolveCmd  `cmd:"" help:"Show the day/cycle resolution for a date as JSON."`
}

type DebugDBPathCmd struct{}

func (c *DebugDBPathCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Store.GetConfigPath())
	return nil
}

func dumpJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type DebugEntryCmd struct {
	Date string `arg:"" optional:"" help:"Date to dump (YYYY-MM-DD)." default:"today"`
}

func (c *DebugEntryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	entry, ok, err := ctx.Store.GetEntryForDay(day.Format(constants.DayFormat))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry for %s", day.Format(constants.DayFormat))
	}
	return dumpJSON(entry)
}

type DebugSettingsCmd struct{}

func (c *DebugSettingsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	// Never print the passcode itself.
	settings.Passcode = ""
	return dumpJSON(settings)
}

type DebugResolveCmd struct {
	Date string `arg:"" optional:"" help:"Date to resolve (YYYY-MM-DD)." default:"today"`
}

func (c *DebugResolveCmd) Run(ctx *Context) error {
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

	out := map[string]any{
		"day":          dc.Day,
		"day_number":   dc.DayNumber,
		"cycle_number": dc.CycleNumber,
		"question_id":  dc.Question.ID,
		"question":     dc.Question.Text,
		"has_entry":    dc.Entry != nil,
	}
	if dc.Previous != nil {
		out["previous_answer_day"] = dc.Previous.Day
	}
	return dumpJSON(out)
}
