package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/journal"
)

func init() {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Record an activity",
		Long:  "Append an activity to the current hour. Multiple activities per hour coexist.",
		Run:   runActivity,
	}

	cmd.Flags().StringP("level", "l", "", "Activity level (1-5)")
	cmd.Flags().StringP("name", "n", "", "Activity name")
	addSlotFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runActivity(cmd *cobra.Command, args []string) {
	level, _ := cmd.Flags().GetString("level")
	name, _ := cmd.Flags().GetString("name")

	j := newJournal()
	out, err := j.RecordActivity(cmd.Context(), level, name, slotOverride(cmd))
	if err != nil {
		exitErr("activity", err)
	}
	if out == journal.Created {
		color.Green("saved activity %s (%s)", name, level)
	}
}
