// Package journal implements the per-stream write policies: monotonic-max for
// pain measurements, append-only for activity and sleep, last-write-wins for
// notes.
package journal

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/health-journal/internal/bucket"
	"github.com/rcliao/health-journal/internal/model"
	"github.com/rcliao/health-journal/internal/store"
)

// Outcome tells the caller what a write did, so the presentation layer can
// pick the matching user-facing message.
type Outcome int

const (
	// Created means a new entry was written.
	Created Outcome = iota
	// UpdatedHigher means an existing measurement was replaced by a higher value.
	UpdatedHigher
	// KeptExisting means the existing measurement was equal or higher; the new
	// value was discarded.
	KeptExisting
	// Skipped means blank input was treated as a benign no-op.
	Skipped
	// Invalid means the input failed validation and nothing was written.
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case UpdatedHigher:
		return "updated_higher"
	case KeptExisting:
		return "kept_existing"
	case Skipped:
		return "skipped"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// ValidationError reports out-of-range or unparsable input. It is recoverable
// and never accompanies a state mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Journal binds the write operations to a store, a clock and a logger.
type Journal struct {
	store store.Store
	now   func() time.Time
	log   *zap.Logger
}

// New creates a Journal. A nil clock defaults to time.Now; a nil logger
// disables logging.
func New(s store.Store, now func() time.Time, log *zap.Logger) *Journal {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Journal{store: s, now: now, log: log}
}

// slot resolves the target slot key: an explicit historical override wins,
// otherwise the current instant is bucketed down to its hour.
func (j *Journal) slot(override string) string {
	if override != "" {
		return override
	}
	return bucket.Down(j.now())
}

// RecordMeasurement records one pain observation for a region. Blank input is
// a no-op. Within a (region, slot) pair the highest value observed wins;
// recording the same or a lower value leaves the document unchanged.
func (j *Journal) RecordMeasurement(ctx context.Context, region, raw string, slotOverride string) (Outcome, error) {
	if !model.IsRegion(region) {
		return Invalid, &ValidationError{Msg: fmt.Sprintf("unknown region %q", region)}
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Skipped, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > 10 {
		return Invalid, &ValidationError{Msg: "enter a number between 0 and 10"}
	}

	slot := j.slot(slotOverride)
	outcome := Created
	err = j.store.Update(ctx, func(doc *model.Document) error {
		entries := doc.Pain[region]
		for i, m := range entries {
			if m.Timestamp != slot {
				continue
			}
			if value > m.Value {
				entries[i].Value = value
				outcome = UpdatedHigher
			} else {
				outcome = KeptExisting
			}
			return nil
		}
		doc.Pain[region] = append(entries, model.Measurement{Value: value, Timestamp: slot})
		return nil
	})
	if err != nil {
		return Invalid, fmt.Errorf("record measurement: %w", err)
	}

	j.log.Info("measurement recorded",
		zap.String("region", region),
		zap.Float64("value", value),
		zap.String("slot", slot),
		zap.Stringer("outcome", outcome))
	return outcome, nil
}

// RecordActivity appends one activity to the slot's list. An empty level is
// the selection placeholder and means the user cancelled; nothing is written.
func (j *Journal) RecordActivity(ctx context.Context, level, name string, slotOverride string) (Outcome, error) {
	if level == "" {
		return Skipped, nil
	}

	slot := j.slot(slotOverride)
	err := j.store.Update(ctx, func(doc *model.Document) error {
		doc.Activity[slot] = append(doc.Activity[slot], model.ActivityEntry{
			ActivityLevel: level,
			ActivityName:  name,
		})
		return nil
	})
	if err != nil {
		return Invalid, fmt.Errorf("record activity: %w", err)
	}

	j.log.Info("activity recorded",
		zap.String("level", level),
		zap.String("name", name),
		zap.String("slot", slot))
	return Created, nil
}

// RecordNote sets the slot's note, overwriting any prior content. An empty
// string is an explicit clear, not a no-op.
func (j *Journal) RecordNote(ctx context.Context, text string, slotOverride string) (Outcome, error) {
	slot := j.slot(slotOverride)
	err := j.store.Update(ctx, func(doc *model.Document) error {
		doc.Notes[slot] = text
		return nil
	})
	if err != nil {
		return Invalid, fmt.Errorf("record note: %w", err)
	}

	j.log.Info("note recorded", zap.String("slot", slot), zap.Int("length", len(text)))
	return Created, nil
}

// RecordSleep appends a sleep entry for a date. Entries are never merged;
// repeated entries for the same date are resolved at read time. Leaving both
// fields empty is a silent cancel.
func (j *Journal) RecordSleep(ctx context.Context, hoursRaw, qualityRaw string, dateOverride string) (Outcome, error) {
	hoursRaw = strings.TrimSpace(hoursRaw)
	qualityRaw = strings.TrimSpace(qualityRaw)
	if hoursRaw == "" && qualityRaw == "" {
		return Skipped, nil
	}

	hours, err := strconv.ParseFloat(hoursRaw, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 || hours > 24 {
		return Invalid, &ValidationError{Msg: "enter hours slept between 0 and 24"}
	}

	if qualityRaw == "" {
		return Invalid, &ValidationError{Msg: "select a sleep quality"}
	}
	quality, err := strconv.Atoi(qualityRaw)
	if err != nil {
		return Invalid, &ValidationError{Msg: "select a sleep quality"}
	}

	date := dateOverride
	if date == "" {
		date = j.now().Format("2006-01-02")
	}

	err = j.store.Update(ctx, func(doc *model.Document) error {
		doc.Sleep = append(doc.Sleep, model.SleepEntry{
			Date:         date,
			HoursSlept:   hours,
			SleepQuality: quality,
		})
		return nil
	})
	if err != nil {
		return Invalid, fmt.Errorf("record sleep: %w", err)
	}

	j.log.Info("sleep recorded",
		zap.String("date", date),
		zap.Float64("hours", hours),
		zap.Int("quality", quality))
	return Created, nil
}
