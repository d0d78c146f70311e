package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kintsugi-journal/kintsugi/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks and engagement counters",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	summary, err := d.Engagement.Summarize()
	if err != nil {
		return err
	}

	fmt.Printf("Current streak:   %d day(s)\n", summary.Streak.CurrentStreak)
	fmt.Printf("Longest streak:   %d day(s)\n", summary.Streak.LongestStreak)
	if summary.Streak.ActiveToday {
		fmt.Println("Today:            journaled ✓")
	} else {
		fmt.Println("Today:            not yet — a small win still counts")
	}
	fmt.Println()
	fmt.Printf("Entries:          %d (%d words, %d active days)\n",
		summary.EntryCount, summary.TotalWords, summary.ActiveDays)
	fmt.Printf("Visits:           %d\n", summary.VisitCount)
	fmt.Printf("Affirmations:     %d viewed\n", summary.AffirmationsViewed)
	fmt.Printf("Insights:         %d viewed\n", summary.InsightsViewed)
	fmt.Printf("Achievements:     %d / %d unlocked\n",
		summary.UnlockedAchievements, summary.TotalAchievements)
	return nil
}
