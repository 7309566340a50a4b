// Package export serializes the journal into a tabular CSV form.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/health-journal/internal/aggregate"
	"github.com/rcliao/health-journal/internal/bucket"
	"github.com/rcliao/health-journal/internal/model"
)

const exportLayout = "02/01/2006 15:04"

// formatValue renders a recorded number without trailing zeros, so 7 exports
// as "7" and 6.5 as "6.5".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// bracketed renders a list as "[a,b,c]", or "" when empty. Absence and the
// empty list are the same thing in the export.
func bracketed(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "[" + strings.Join(items, ",") + "]"
}

// Table renders the joined rows followed by the raw sleep stream. Missing
// pain values render as empty strings: zero is a recorded value and must stay
// distinguishable from absence.
func Table(doc *model.Document, log *zap.Logger) [][]string {
	header := []string{"Timestamp (dd/mm/yyyy hh:mm)", "Activity Value", "Activity"}
	header = append(header, model.Regions...)
	header = append(header, "Notes")

	out := [][]string{header}
	for _, r := range aggregate.BuildRows(doc, log) {
		ts := r.Slot
		if t, err := bucket.Parse(r.Slot); err == nil {
			ts = t.Format(exportLayout)
		}

		row := []string{ts, bracketed(r.ActivityLevels), bracketed(r.ActivityNames)}
		for _, region := range model.Regions {
			if v, ok := r.Pain[region]; ok {
				row = append(row, formatValue(v))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, r.Note)
		out = append(out, row)
	}

	// Sleep entries are dumped verbatim in insertion order, not joined by slot.
	out = append(out, []string{""})
	out = append(out, []string{"Sleep Data"})
	out = append(out, []string{"Date", "Hours Slept", "Sleep Quality"})
	for _, e := range doc.Sleep {
		out = append(out, []string{e.Date, formatValue(e.HoursSlept), strconv.Itoa(e.SleepQuality)})
	}
	return out
}

// WriteFile writes the table as a UTF-8 CSV into dir, one distinct file per
// call, and returns the file path.
func WriteFile(doc *model.Document, dir string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("health-journal-%s.csv", ulid.Make().String()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(Table(doc, log)); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}

	log.Info("journal exported", zap.String("path", path))
	return path, nil
}
