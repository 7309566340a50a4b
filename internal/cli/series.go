package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/aggregate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Per-region pain series",
		Long:  "Emit each region's measurements as a time-ordered series, the shape a chart consumes.",
		Run:   runSeries,
	}

	RootCmd.AddCommand(cmd)
}

func runSeries(cmd *cobra.Command, args []string) {
	_, log, s := setup()

	doc, err := s.Load(cmd.Context())
	if err != nil {
		exitErr("load journal", err)
	}

	b, _ := json.MarshalIndent(aggregate.Series(doc, log), "", "  ")
	fmt.Println(string(b))
}
