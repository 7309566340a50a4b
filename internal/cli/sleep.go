package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/journal"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Record last night's sleep",
		Long:  "Append a sleep entry for a date. Repeated entries for the same date are fine; the latest wins on read.",
		Run:   runSleep,
	}

	cmd.Flags().String("hours", "", "Hours slept (0-24)")
	cmd.Flags().StringP("quality", "q", "", "Sleep quality (1-5)")
	cmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, default today)")

	RootCmd.AddCommand(cmd)
}

func runSleep(cmd *cobra.Command, args []string) {
	hours, _ := cmd.Flags().GetString("hours")
	quality, _ := cmd.Flags().GetString("quality")
	date, _ := cmd.Flags().GetString("date")

	j := newJournal()
	out, err := j.RecordSleep(cmd.Context(), hours, quality, date)

	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		color.Red("%s", verr.Msg)
		return
	}
	if err != nil {
		exitErr("sleep", err)
	}
	if out == journal.Created {
		color.Green("sleep saved")
	}
}
