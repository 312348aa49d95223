package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toodle-app/toodle"
)

func main() {
	var seed bool

	cmd := &cobra.Command{
		Use:   "toodle",
		Short: "Interactive terminal demo for the toodle item library",
		Long: `toodle drives the item library the way a mobile UI would: items are
created through the ListManager (which assigns their uuids), mutated in
place, and tagged with labels from the catalog. State lives in memory for
the duration of the session; there is no persistence layer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("stdout is not a terminal; toodle is interactive")
			}
			mgr := toodle.NewListManager()
			if seed {
				seedList(mgr)
			}
			return runTUI(mgr)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "start with a few sample items")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// seedList fills a fresh list with enough material to show every feature:
// due dates (past and future), a completed item, and label chips.
func seedList(mgr *toodle.ListManager) {
	urgent := mgr.DefineLabel("urgent", "#FF5F5F")
	home := mgr.DefineLabel("home", "#42A5F5")
	errand := mgr.DefineLabel("errand", "#66BB6A")

	milk := mgr.CreateItem()
	milk.Name = "Buy milk"
	milk.SetDueDate(daysFromNow(1))
	mgr.AttachLabel(milk, errand)

	taxes := mgr.CreateItem()
	taxes.Name = "File taxes"
	taxes.SetDueDate(daysFromNow(-3))
	mgr.AttachLabel(taxes, urgent)
	mgr.AttachLabel(taxes, home)

	plants := mgr.CreateItem()
	plants.Name = "Water the plants"
	plants.SetCompletionDate(daysFromNow(0))
	mgr.AttachLabel(plants, home)
}
