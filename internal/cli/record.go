package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/journal"
	"github.com/rcliao/health-journal/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "record <region> <value>",
		Short: "Record a pain measurement",
		Long: "Record a pain measurement (0-10) for a body region. Regions: " +
			strings.Join(model.Regions, ", ") + ". Within an hour the highest value wins.",
		Args: cobra.RangeArgs(1, 2),
		Run:  runRecord,
	}

	addSlotFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runRecord(cmd *cobra.Command, args []string) {
	region := args[0]
	value := ""
	if len(args) > 1 {
		value = args[1]
	}

	j := newJournal()
	out, err := j.RecordMeasurement(cmd.Context(), region, value, slotOverride(cmd))

	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		color.Red("%s", verr.Msg)
		return
	}
	if err != nil {
		exitErr("record", err)
	}

	switch out {
	case journal.Created:
		color.Green("saved %s to %s", value, region)
	case journal.UpdatedHigher:
		color.Green("updated %s to %s", region, value)
	case journal.KeptExisting:
		color.Yellow("existing value is equal or higher — not saved")
	case journal.Skipped:
		// Blank input is a quiet no-op.
	default:
		fmt.Println(out)
	}
}
