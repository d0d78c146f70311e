package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kintsugi-journal/kintsugi/internal/daemon"
)

func init() {
	affirmCmd.Flags().StringVar(&affirmAdd, "add", "", "Add a custom affirmation instead of viewing today's")
	rootCmd.AddCommand(affirmCmd)
}

var affirmAdd string

var affirmCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Show today's affirmation",
	RunE:  runAffirm,
}

func runAffirm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if affirmAdd != "" {
		a, err := d.Affirmations.AddCustom(affirmAdd)
		if err != nil {
			return err
		}
		if _, err := d.Engagement.CheckAndUnlockAchievements(); err != nil {
			return err
		}
		fmt.Printf("Added: %q\n", a.Text)
		return nil
	}

	a, err := d.Affirmations.Daily(time.Now())
	if err != nil {
		return err
	}

	newly, err := d.Engagement.RecordAffirmationView()
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s\n\n", a.Text)
	for _, def := range newly {
		fmt.Printf("%s  Achievement unlocked: %s\n", def.Icon, def.Title)
	}
	return nil
}
