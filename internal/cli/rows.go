package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/aggregate"
	"github.com/rcliao/health-journal/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "View the journal as per-hour rows",
		Long:  "Join all streams into one row per hour slot, sorted ascending.",
		Run:   runRows,
	}

	RootCmd.AddCommand(cmd)
}

func runRows(cmd *cobra.Command, args []string) {
	_, log, s := setup()

	doc, err := s.Load(cmd.Context())
	if err != nil {
		exitErr("load journal", err)
	}
	rows := aggregate.BuildRows(doc, log)

	if formatFlag == "text" {
		for _, r := range rows {
			var parts []string
			for _, region := range model.Regions {
				if v, ok := r.Pain[region]; ok {
					parts = append(parts, fmt.Sprintf("%s=%v", region, v))
				}
			}
			for i, name := range r.ActivityNames {
				parts = append(parts, fmt.Sprintf("%s(%s)", name, r.ActivityLevels[i]))
			}
			if r.Note != "" {
				parts = append(parts, fmt.Sprintf("note=%q", r.Note))
			}
			fmt.Printf("%s  %s\n", r.Slot, strings.Join(parts, " "))
		}
		return
	}

	b, _ := json.MarshalIndent(rows, "", "  ")
	fmt.Println(string(b))
}
