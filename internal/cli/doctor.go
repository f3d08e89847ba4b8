package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/questions"
	"github.com/ebrowne/thirtyq/internal/widget"
)

type DoctorCmd struct{}

// Run performs health checks on the journal installation.
func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running thirtyq health checks...")
	fmt.Println()

	hasError := false

	// Check 1: store exists and loads
	storePath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(storePath); os.IsNotExist(err) {
		fmt.Printf("❌ Store not found at %s\n", storePath)
		fmt.Println("   Run 'thirtyq init' to create it.")
		return fmt.Errorf("store not initialized")
	}
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store exists but failed to load: %v\n", err)
		return err
	}
	fmt.Printf("✓ Store loads: %s\n", storePath)

	// Check 2: start date set and sane
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		fmt.Printf("❌ Failed to read settings: %v\n", err)
		hasError = true
	} else if settings.StartDate == "" {
		fmt.Println("❌ Start date not set. Run 'thirtyq init'.")
		hasError = true
	} else if start, perr := time.Parse(constants.DayFormat, settings.StartDate); perr != nil {
		fmt.Printf("❌ Start date %q is not a valid date\n", settings.StartDate)
		hasError = true
	} else {
		fmt.Printf("✓ Start date: %s\n", settings.StartDate)
		if start.After(time.Now()) {
			fmt.Println("⚠ Start date is in the future; day numbering is clamped to day 1 until then")
		}
	}

	// Check 3: question catalog integrity
	catalog, err := questions.Catalog()
	if err != nil {
		fmt.Printf("❌ Question catalog is broken: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Question catalog: %d questions\n", len(catalog))
		ordered := questions.Ordered(catalog, settings.QuestionOrder, settings.QuestionOverrides)
		if len(ordered) != constants.CycleLengthDays {
			fmt.Printf("❌ Effective ordering has %d questions, want %d\n", len(ordered), constants.CycleLengthDays)
			hasError = true
		} else if len(settings.QuestionOrder) > 0 && !isDefaultOrder(settings.QuestionOrder) {
			fmt.Println("✓ Custom question order in effect")
		}
	}

	// Check 4: entry consistency
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		fmt.Printf("❌ Failed to read entries: %v\n", err)
		hasError = true
	} else {
		bad := 0
		for _, e := range entries {
			if !isValidDay(e.Day) || e.QuestionID < 1 {
				bad++
			}
		}
		if bad > 0 {
			fmt.Printf("⚠ %d of %d entries have malformed day or question fields\n", bad, len(entries))
		} else {
			fmt.Printf("✓ Entries: %d, all well-formed\n", len(entries))
		}
	}

	// Check 5: widget snapshot freshness
	snapPath := widget.DefaultPath(storePath)
	if info, err := os.Stat(snapPath); os.IsNotExist(err) {
		fmt.Println("⚠ Widget snapshot missing. Run 'thirtyq sync' to create it.")
	} else if err == nil {
		if settings.LastJournalDay != "" {
			lastWrite, perr := time.Parse(constants.DayFormat, settings.LastJournalDay)
			if perr == nil && info.ModTime().Before(lastWrite) {
				fmt.Println("⚠ Widget snapshot is older than the last journal entry. Run 'thirtyq sync'.")
			} else {
				fmt.Printf("✓ Widget snapshot: synced %s\n", info.ModTime().Format("2006-01-02 15:04"))
			}
		} else {
			fmt.Printf("✓ Widget snapshot: %s\n", snapPath)
		}
	}

	// Check 6: concurrent thirtyq processes writing the same store
	if n, err := countSiblingProcesses(); err == nil && n > 0 {
		fmt.Printf("⚠ %d other thirtyq process(es) running; concurrent writes may conflict\n", n)
	}

	fmt.Println()
	if hasError {
		fmt.Println("Some checks failed. See above for details.")
		return fmt.Errorf("health checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

// countSiblingProcesses counts other running processes with our executable
// name.
func countSiblingProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.EqualFold(p.Executable(), name) {
			count++
		}
	}
	return count, nil
}
