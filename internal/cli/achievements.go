package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kintsugi-journal/kintsugi/internal/daemon"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked achievements")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked badges and progress",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	rows, err := d.Engagement.AchievementProgress()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tCATEGORY\tPROGRESS\tUNLOCKED")
	for _, row := range rows {
		if !achievementsAll && !row.Unlocked {
			continue
		}
		unlocked := "-"
		if row.Unlocked {
			unlocked = row.UnlockedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s %s\t%s\t%d/%d\t%s\n",
			row.Icon, row.Title, row.Category, row.Progress, row.Target, unlocked)
	}
	return w.Flush()
}
