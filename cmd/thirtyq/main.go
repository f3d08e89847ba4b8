package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ebrowne/thirtyq/internal/cli"
	"github.com/ebrowne/thirtyq/internal/journal"
	"github.com/ebrowne/thirtyq/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the JSON store." type:"path" default:"~/.config/thirtyq/thirtyq.db"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize the journal and set the start date."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive journal." default:"1"`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's question and answer."`
	Answer   cli.AnswerCmd   `cmd:"" help:"Answer the day's question."`
	Day      cli.DayCmd      `cmd:"" help:"Show a day's question and entry."`
	History  cli.HistoryCmd  `cmd:"" help:"List past entries."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a month of journaled days."`
	Question cli.QuestionCmd `cmd:"" help:"Manage the 30-question cycle."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change settings."`
	Export   cli.ExportCmd   `cmd:"" help:"Export entries to JSON or CSV."`
	Sync     cli.SyncCmd     `cmd:"" help:"Write the widget summary snapshot."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage journal backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Debug    cli.DebugCmd    `cmd:"" help:"Inspect raw journal data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("thirtyq"),
		kong.Description("30-question cyclic journal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Store type follows the config file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Journal: journal.NewService(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
