package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ebrowne/thirtyq/internal/constants"
)

type SettingsCmd struct {
	Show     SettingsShowCmd `cmd:"" default:"1" help:"Show current settings."`
	Passcode PasscodeCmd     `cmd:"" help:"Enable or disable the passcode lock."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Store:           %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Start date:      %s\n", settings.StartDate)
	fmt.Printf("Cycle length:    %d days\n", constants.CycleLengthDays)
	fmt.Printf("Passcode lock:   %v\n", settings.PasscodeEnabled)
	fmt.Printf("Custom order:    %v\n", len(settings.QuestionOrder) > 0 && !isDefaultOrder(settings.QuestionOrder))
	fmt.Printf("Text overrides:  %d\n", len(settings.QuestionOverrides))
	if settings.LastJournalDay != "" {
		fmt.Printf("Last journaled:  %s\n", settings.LastJournalDay)
	}
	return nil
}

func isDefaultOrder(order []int) bool {
	for i, id := range order {
		if id != i+1 {
			return false
		}
	}
	return true
}

type PasscodeCmd struct {
	Disable bool `help:"Turn the passcode lock off."`
}

func (c *PasscodeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Disable {
		settings.PasscodeEnabled = false
		settings.Passcode = ""
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Println("Passcode lock disabled.")
		return nil
	}

	var passcode, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Choose a passcode").
				EchoMode(huh.EchoModePassword).
				Value(&passcode).
				Validate(func(s string) error {
					if len(s) < 4 {
						return fmt.Errorf("passcode must be at least 4 characters")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm passcode").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if passcode != confirm {
		return fmt.Errorf("passcodes do not match")
	}

	settings.PasscodeEnabled = true
	settings.Passcode = passcode
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Passcode lock enabled. The TUI will ask for it on launch.")
	return nil
}
