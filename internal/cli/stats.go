package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/model"
	"github.com/rcliao/health-journal/internal/stats"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journal statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	_, log, s := setup()

	doc, err := s.Load(cmd.Context())
	if err != nil {
		exitErr("load journal", err)
	}

	today := time.Now().Format("2006-01-02")
	sum := stats.Summarize(doc, today, log)

	if formatFlag == "text" {
		for _, region := range model.Regions {
			if avg, ok := sum.RegionAverages[region]; ok {
				fmt.Printf("%-18s avg %.2f\n", model.RegionNames[region], avg)
			}
		}
		if sum.Highest != nil {
			fmt.Printf("highest: %s %v at %s\n",
				sum.Highest.Region, sum.Highest.Value, sum.Highest.Timestamp)
		}
		if sum.LowestAverageRegion != "" {
			fmt.Printf("lowest average: %s\n", sum.LowestAverageRegion)
		}
		fmt.Printf("Pain (Arb.): %.2f\n", sum.PainIndex)
		if sum.TodaySleep != nil {
			fmt.Printf("sleep today: %vh quality %d\n",
				sum.TodaySleep.HoursSlept, sum.TodaySleep.SleepQuality)
		}
		return
	}

	b, _ := json.MarshalIndent(sum, "", "  ")
	fmt.Println(string(b))
}
