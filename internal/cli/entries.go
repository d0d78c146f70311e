package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kintsugi-journal/kintsugi/internal/daemon"
)

func init() {
	entriesCmd.Flags().IntVarP(&entriesLimit, "limit", "n", 20, "Show at most this many recent entries")
	rootCmd.AddCommand(entriesCmd)
}

var entriesLimit int

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List recent journal entries",
	RunE:  runEntries,
}

func runEntries(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	state, err := d.Engagement.State()
	if err != nil {
		return err
	}
	if len(state.Entries) == 0 {
		fmt.Println("No entries yet. Record your first win with: kintsugi add")
		return nil
	}

	entries := state.Entries
	if entriesLimit > 0 && len(entries) > entriesLimit {
		entries = entries[len(entries)-entriesLimit:]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tMOOD\tCATEGORY\tACCOMPLISHMENT")
	// Newest first.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			string(e.Mood),
			e.Category,
			truncate(e.Accomplishment, 60),
		)
	}
	return w.Flush()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
