// Package aggregate joins the journal streams into per-slot rows and derived
// read views. Everything here is read-only over an in-memory document.
package aggregate

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/health-journal/internal/bucket"
	"github.com/rcliao/health-journal/internal/model"
)

// Row is the per-slot join of the pain, activity and notes streams. Rows are
// rebuilt on every read and never persisted. A region absent from Pain means
// no value was recorded that hour; zero is a recorded value.
type Row struct {
	Slot           string             `json:"slot"`
	Pain           map[string]float64 `json:"pain,omitempty"`
	ActivityLevels []string           `json:"activity_levels,omitempty"`
	ActivityNames  []string           `json:"activity_names,omitempty"`
	Note           string             `json:"note,omitempty"`
}

// BuildRows joins all streams by slot key and returns the rows sorted
// ascending by slot. Records whose timestamp does not parse as a slot key are
// skipped and logged, never fatal. A nil logger disables logging.
func BuildRows(doc *model.Document, log *zap.Logger) []Row {
	if log == nil {
		log = zap.NewNop()
	}

	rows := make(map[string]*Row)
	row := func(slot string) *Row {
		r, ok := rows[slot]
		if !ok {
			r = &Row{Slot: slot}
			rows[slot] = r
		}
		return r
	}
	validSlot := func(stream, slot string) bool {
		if _, err := bucket.Parse(slot); err != nil {
			log.Warn("skipping record with malformed timestamp",
				zap.String("stream", stream), zap.String("timestamp", slot))
			return false
		}
		return true
	}

	for _, region := range model.Regions {
		for _, m := range doc.Pain[region] {
			if !validSlot(region, m.Timestamp) {
				continue
			}
			r := row(m.Timestamp)
			if r.Pain == nil {
				r.Pain = make(map[string]float64, len(model.Regions))
			}
			r.Pain[region] = m.Value
		}
	}

	for slot, entries := range doc.Activity {
		if !validSlot(model.ActivityStream, slot) {
			continue
		}
		r := row(slot)
		for _, e := range entries {
			r.ActivityLevels = append(r.ActivityLevels, e.ActivityLevel)
			r.ActivityNames = append(r.ActivityNames, e.ActivityName)
		}
	}

	for slot, note := range doc.Notes {
		if !validSlot(model.NotesStream, slot) {
			continue
		}
		row(slot).Note = note
	}

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	// Slot keys are fixed-width, so lexical order is chronological order.
	sort.Strings(keys)

	out := make([]Row, 0, len(keys))
	for _, k := range keys {
		out = append(out, *rows[k])
	}
	return out
}

// LatestSleepForDate returns the last inserted sleep entry whose date matches,
// or ok=false if none. Repeated same-day entries are expected; the most recent
// insertion wins regardless of its values.
func LatestSleepForDate(doc *model.Document, date string) (model.SleepEntry, bool) {
	for i := len(doc.Sleep) - 1; i >= 0; i-- {
		if doc.Sleep[i].Date == date {
			return doc.Sleep[i], true
		}
	}
	return model.SleepEntry{}, false
}

// Point is one plottable observation.
type Point struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Series returns each region's measurements as a time-ordered series, the
// shape a chart renderer consumes. Regions with no valid measurements are
// omitted; malformed timestamps are skipped.
func Series(doc *model.Document, log *zap.Logger) map[string][]Point {
	if log == nil {
		log = zap.NewNop()
	}

	out := make(map[string][]Point)
	for _, region := range model.Regions {
		var pts []Point
		for _, m := range doc.Pain[region] {
			t, err := bucket.Parse(m.Timestamp)
			if err != nil {
				log.Warn("skipping record with malformed timestamp",
					zap.String("stream", region), zap.String("timestamp", m.Timestamp))
				continue
			}
			pts = append(pts, Point{Time: t, Value: m.Value})
		}
		if len(pts) == 0 {
			continue
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].Time.Before(pts[j].Time) })
		out[region] = pts
	}
	return out
}
