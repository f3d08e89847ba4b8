package cli

import (
	"fmt"

	"github.com/ebrowne/thirtyq/internal/widget"
)

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Journal.SyncWidget(); err != nil {
		return err
	}

	snap, err := widget.Load(widget.DefaultPath(ctx.Store.GetConfigPath()))
	if err != nil {
		return err
	}

	fmt.Printf("Widget snapshot written to %s\n", widget.DefaultPath(ctx.Store.GetConfigPath()))
	fmt.Printf("  %d total entries, %d journaled day(s) this month, streak %d\n",
		snap.TotalEntries, len(snap.JournaledDays), snap.CurrentStreak)
	return nil
}
