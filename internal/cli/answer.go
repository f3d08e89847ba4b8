package cli

import (
	"fmt"
	"strings"
	"time"
)

// now is swappable in tests.
var now = time.Now

type AnswerCmd struct {
	Text string `arg:"" help:"Answer text for the day's question."`
	Date string `help:"Day to answer for (YYYY-MM-DD, 'today', or 'yesterday')." default:"today"`
}

func (c *AnswerCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(c.Text)
	if text == "" {
		return fmt.Errorf("answer text cannot be empty")
	}

	dc, err := ctx.Journal.ResolveDay(day)
	if err != nil {
		return err
	}
	updating := dc.Entry != nil

	entry, err := ctx.Journal.SaveAnswer(day, text)
	if err != nil {
		return err
	}

	if updating {
		fmt.Printf("Updated answer for %s (Q%d).\n", entry.Day, entry.QuestionID)
	} else {
		fmt.Printf("Saved answer for %s (Q%d).\n", entry.Day, entry.QuestionID)
	}
	return nil
}
