package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kintsugi-journal/kintsugi/internal/daemon"
	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

func init() {
	addCmd.Flags().StringVar(&addReflection, "reflection", "", "Optional reflection on the accomplishment")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Optional category label")
	addCmd.Flags().StringVar(&addMood, "mood", "", "Optional mood (great, good, okay, low, difficult)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Optional comma-separated tags")
	rootCmd.AddCommand(addCmd)
}

var (
	addReflection string
	addCategory   string
	addMood       string
	addTags       []string
)

var addCmd = &cobra.Command{
	Use:   "add <accomplishment>",
	Short: "Record an accomplishment",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	entry := domain.JournalEntry{
		ID:             uuid.NewString(),
		Accomplishment: strings.Join(args, " "),
		Reflection:     addReflection,
		Category:       addCategory,
		Mood:           domain.Mood(addMood),
		Tags:           addTags,
	}

	newly, err := d.Engagement.AddEntry(entry)
	if err != nil {
		return err
	}

	info, err := d.Engagement.Streak()
	if err != nil {
		return err
	}

	fmt.Println("Recorded. Keep going!")
	fmt.Printf("Streak: %d day(s) (longest %d)\n", info.CurrentStreak, info.LongestStreak)
	for _, a := range newly {
		fmt.Printf("\n%s  Achievement unlocked: %s — %s\n", a.Icon, a.Title, a.Description)
	}
	return nil
}
