package cli

import (
	"fmt"
	"strings"

	"github.com/ebrowne/thirtyq/internal/questions"
)

type QuestionCmd struct {
	List  QuestionListCmd  `cmd:"" default:"1" help:"List all questions in their current order."`
	Edit  QuestionEditCmd  `cmd:"" help:"Override a question's text."`
	Move  QuestionMoveCmd  `cmd:"" help:"Move a question to a different day of the cycle."`
	Reset QuestionResetCmd `cmd:"" help:"Reset question order and text to the defaults."`
}

type QuestionListCmd struct{}

func (c *QuestionListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ordered, err := ctx.Journal.OrderedQuestions()
	if err != nil {
		return err
	}
	if len(ordered) == 0 {
		return fmt.Errorf("question catalog unavailable")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	for i, q := range ordered {
		marker := " "
		if _, ok := settings.QuestionOverrides[q.ID]; ok {
			marker = "*"
		}
		fmt.Printf("Day %2d  Q%-2d %s %s  [%s]\n", i+1, q.ID, marker, q.Text, q.Category)
	}
	if len(settings.QuestionOverrides) > 0 {
		fmt.Println("\n* = text customized. 'thirtyq question reset' restores the defaults.")
	}
	return nil
}

type QuestionEditCmd struct {
	ID   int    `arg:"" help:"Question ID (1-30)."`
	Text string `arg:"" help:"New question text."`
}

func (c *QuestionEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	catalog, err := questions.Catalog()
	if err != nil {
		return err
	}
	var found bool
	for _, q := range catalog {
		if q.ID == c.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no question with ID %d", c.ID)
	}

	text := strings.TrimSpace(c.Text)
	if text == "" {
		return fmt.Errorf("question text cannot be empty")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if settings.QuestionOverrides == nil {
		settings.QuestionOverrides = make(map[int]string)
	}
	settings.QuestionOverrides[c.ID] = text
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Updated Q%d: %s\n", c.ID, text)
	return nil
}

type QuestionMoveCmd struct {
	ID  int `arg:"" help:"Question ID to move (1-30)."`
	Day int `arg:"" help:"Target day of the cycle (1-30)."`
}

func (c *QuestionMoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if c.Day < 1 || c.Day > len(questions.DefaultOrder()) {
		return fmt.Errorf("target day must be between 1 and %d", len(questions.DefaultOrder()))
	}

	ordered, err := ctx.Journal.OrderedQuestions()
	if err != nil {
		return err
	}
	if len(ordered) == 0 {
		return fmt.Errorf("question catalog unavailable")
	}

	order := questions.OrderIDs(ordered)
	from := -1
	for i, id := range order {
		if id == c.ID {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("no question with ID %d", c.ID)
	}

	// Remove and reinsert at the target slot; everything in between shifts.
	order = append(order[:from], order[from+1:]...)
	to := c.Day - 1
	order = append(order[:to], append([]int{c.ID}, order[to:]...)...)

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.QuestionOrder = order
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Moved Q%d to day %d of the cycle.\n", c.ID, c.Day)
	return nil
}

type QuestionResetCmd struct{}

func (c *QuestionResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.QuestionOrder = questions.DefaultOrder()
	settings.QuestionOverrides = nil
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Question order and text reset to defaults.")
	return nil
}
