package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebrowne/thirtyq/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	model, err := tui.NewModel(ctx.Store, ctx.Journal)
	if err != nil {
		return fmt.Errorf("failed to initialize TUI: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI crashed: %w", err)
	}
	return nil
}
