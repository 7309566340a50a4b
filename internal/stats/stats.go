// Package stats derives summary statistics from the journal.
package stats

import (
	"go.uber.org/zap"

	"github.com/rcliao/health-journal/internal/aggregate"
	"github.com/rcliao/health-journal/internal/model"
)

// Highest identifies the single highest recorded measurement. Ties are broken
// by the canonical region order, then by stream insertion order.
type Highest struct {
	Region    string  `json:"region"`
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp"`
}

// SlotIndex is the Pain (Arb.) index for one hour slot.
type SlotIndex struct {
	Slot  string  `json:"slot"`
	Index float64 `json:"index"`
}

// Summary is the stats screen payload.
type Summary struct {
	RegionAverages      map[string]float64 `json:"region_averages"`
	Highest             *Highest           `json:"highest,omitempty"`
	LowestAverageRegion string             `json:"lowest_average_region,omitempty"`
	PainIndex           float64            `json:"pain_index"`
	PainIndexBySlot     []SlotIndex        `json:"pain_index_by_slot,omitempty"`
	TodaySleep          *model.SleepEntry  `json:"today_sleep,omitempty"`
}

// PainIndex computes the Pain (Arb.) index for one row: the mean over all six
// regions (absent regions count as zero) scaled by the number of regions
// reporting pain, divided by three. Breadth inflates the index even at a
// constant average.
func PainIndex(r aggregate.Row) float64 {
	var total float64
	nonzero := 0
	for _, region := range model.Regions {
		v := r.Pain[region]
		total += v
		if v > 0 {
			nonzero++
		}
	}
	avg := total / float64(len(model.Regions))
	return avg * float64(nonzero) / 3
}

// Summarize computes the full summary for a document. today selects the sleep
// entry to surface, in "YYYY-MM-DD" form.
func Summarize(doc *model.Document, today string, log *zap.Logger) *Summary {
	sum := &Summary{RegionAverages: make(map[string]float64)}

	var highest *Highest
	lowest := ""
	lowestAvg := 0.0
	for _, region := range model.Regions {
		ms := doc.Pain[region]
		if len(ms) == 0 {
			continue
		}

		var total float64
		for _, m := range ms {
			total += m.Value
			if highest == nil || m.Value > highest.Value {
				highest = &Highest{Region: region, Value: m.Value, Timestamp: m.Timestamp}
			}
		}
		avg := total / float64(len(ms))
		sum.RegionAverages[region] = avg

		if lowest == "" || avg < lowestAvg {
			lowest = region
			lowestAvg = avg
		}
	}
	sum.Highest = highest
	sum.LowestAverageRegion = lowest

	rows := aggregate.BuildRows(doc, log)
	var indexTotal float64
	for _, r := range rows {
		idx := PainIndex(r)
		indexTotal += idx
		sum.PainIndexBySlot = append(sum.PainIndexBySlot, SlotIndex{Slot: r.Slot, Index: idx})
	}
	if len(rows) > 0 {
		sum.PainIndex = indexTotal / float64(len(rows))
	}

	if entry, ok := aggregate.LatestSleepForDate(doc, today); ok {
		sum.TodaySleep = &entry
	}
	return sum
}
