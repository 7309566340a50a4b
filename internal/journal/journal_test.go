package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/health-journal/internal/model"
	"github.com/rcliao/health-journal/internal/store"
)

var testClock = func() time.Time {
	return time.Date(2024, 1, 1, 9, 42, 0, 0, time.Local)
}

func newTestJournal(t *testing.T) (*Journal, *store.FileStore) {
	t.Helper()
	s := store.NewFileStore(filepath.Join(t.TempDir(), "journal.json"), nil)
	return New(s, testClock, nil), s
}

func TestRecordMeasurement_Created(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	out, err := j.RecordMeasurement(ctx, "RU", "7", "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if out != Created {
		t.Errorf("expected Created, got %v", out)
	}

	doc, _ := s.Load(ctx)
	got := doc.Pain["RU"]
	if len(got) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(got))
	}
	if got[0].Value != 7 || got[0].Timestamp != "2024-01-01 09:00:00" {
		t.Errorf("unexpected measurement %+v", got[0])
	}
}

func TestRecordMeasurement_MonotonicMax(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	// Ascending: the higher value replaces.
	j.RecordMeasurement(ctx, "RU", "3", "")
	out, _ := j.RecordMeasurement(ctx, "RU", "8", "")
	if out != UpdatedHigher {
		t.Errorf("expected UpdatedHigher, got %v", out)
	}
	doc, _ := s.Load(ctx)
	if v := doc.Pain["RU"][0].Value; v != 8 {
		t.Errorf("expected 8, got %v", v)
	}

	// Descending: the lower value is discarded.
	out, _ = j.RecordMeasurement(ctx, "RU", "2", "")
	if out != KeptExisting {
		t.Errorf("expected KeptExisting, got %v", out)
	}
	doc, _ = s.Load(ctx)
	if v := doc.Pain["RU"][0].Value; v != 8 {
		t.Errorf("expected 8 to survive, got %v", v)
	}
	if len(doc.Pain["RU"]) != 1 {
		t.Errorf("expected a single measurement for the slot, got %d", len(doc.Pain["RU"]))
	}
}

func TestRecordMeasurement_Idempotent(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	j.RecordMeasurement(ctx, "LL", "5", "")
	before, _ := os.ReadFile(s.Path())

	out, _ := j.RecordMeasurement(ctx, "LL", "5", "")
	if out != KeptExisting {
		t.Errorf("expected KeptExisting, got %v", out)
	}
	after, _ := os.ReadFile(s.Path())
	if string(before) != string(after) {
		t.Error("expected document unchanged after repeated value")
	}
}

func TestRecordMeasurement_BlankIsSkipped(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	j.RecordMeasurement(ctx, "HD", "4", "")
	before, _ := os.ReadFile(s.Path())

	for _, raw := range []string{"", "   ", "\t"} {
		out, err := j.RecordMeasurement(ctx, "HD", raw, "")
		if err != nil {
			t.Fatalf("record %q: %v", raw, err)
		}
		if out != Skipped {
			t.Errorf("expected Skipped for %q, got %v", raw, out)
		}
	}

	after, _ := os.ReadFile(s.Path())
	if string(before) != string(after) {
		t.Error("expected document byte-for-byte unchanged after blank input")
	}
}

func TestRecordMeasurement_Invalid(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	for _, raw := range []string{"eleven", "-1", "10.5", "NaN", "Inf"} {
		out, err := j.RecordMeasurement(ctx, "BK", raw, "")
		if out != Invalid {
			t.Errorf("expected Invalid for %q, got %v", raw, out)
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("expected ValidationError for %q, got %v", raw, err)
		}
	}

	doc, _ := s.Load(ctx)
	if len(doc.Pain) != 0 {
		t.Error("invalid input must not mutate the document")
	}
}

func TestRecordMeasurement_UnknownRegion(t *testing.T) {
	ctx := context.Background()
	j, _ := newTestJournal(t)

	out, err := j.RecordMeasurement(ctx, "XX", "5", "")
	if out != Invalid || err == nil {
		t.Errorf("expected Invalid with error, got %v, %v", out, err)
	}
}

func TestRecordMeasurement_BoundaryValues(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	if out, err := j.RecordMeasurement(ctx, "RL", "0", ""); out != Created || err != nil {
		t.Errorf("expected 0 to be a valid value, got %v, %v", out, err)
	}
	if out, err := j.RecordMeasurement(ctx, "LU", "10", ""); out != Created || err != nil {
		t.Errorf("expected 10 to be a valid value, got %v, %v", out, err)
	}

	doc, _ := s.Load(ctx)
	if doc.Pain["RL"][0].Value != 0 {
		t.Error("zero is a recorded value, not absence")
	}
}

func TestRecordMeasurement_SlotOverride(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	out, err := j.RecordMeasurement(ctx, "RU", "6", "2023-12-24 18:00:00")
	if out != Created || err != nil {
		t.Fatalf("record with override: %v, %v", out, err)
	}

	doc, _ := s.Load(ctx)
	if doc.Pain["RU"][0].Timestamp != "2023-12-24 18:00:00" {
		t.Errorf("expected override slot, got %q", doc.Pain["RU"][0].Timestamp)
	}
}

func TestRecordActivity_AppendOnly(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	j.RecordActivity(ctx, "2", "walk", "")
	j.RecordActivity(ctx, "3", "swim", "")
	j.RecordActivity(ctx, "2", "walk", "")

	doc, _ := s.Load(ctx)
	got := doc.Activity["2024-01-01 09:00:00"]
	if len(got) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(got))
	}
	want := []model.ActivityEntry{
		{ActivityLevel: "2", ActivityName: "walk"},
		{ActivityLevel: "3", ActivityName: "swim"},
		{ActivityLevel: "2", ActivityName: "walk"},
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, got[i])
		}
	}
}

func TestRecordActivity_PlaceholderIsCancel(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	out, err := j.RecordActivity(ctx, "", "walk", "")
	if out != Skipped || err != nil {
		t.Errorf("expected Skipped, got %v, %v", out, err)
	}
	doc, _ := s.Load(ctx)
	if len(doc.Activity) != 0 {
		t.Error("placeholder level must not write")
	}
}

func TestRecordNote_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	j.RecordNote(ctx, "first", "")
	j.RecordNote(ctx, "second", "")

	doc, _ := s.Load(ctx)
	if doc.Notes["2024-01-01 09:00:00"] != "second" {
		t.Errorf("expected overwrite, got %q", doc.Notes["2024-01-01 09:00:00"])
	}

	// Empty string is an explicit clear, not a no-op.
	j.RecordNote(ctx, "", "")
	doc, _ = s.Load(ctx)
	if got, ok := doc.Notes["2024-01-01 09:00:00"]; !ok || got != "" {
		t.Errorf("expected cleared note, got %q (present=%v)", got, ok)
	}
}

func TestRecordSleep_AppendsAlways(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	j.RecordSleep(ctx, "6", "2", "")
	j.RecordSleep(ctx, "7", "3", "")
	j.RecordSleep(ctx, "5", "1", "")

	doc, _ := s.Load(ctx)
	if len(doc.Sleep) != 3 {
		t.Fatalf("expected 3 sleep entries, got %d", len(doc.Sleep))
	}
	if doc.Sleep[0].Date != "2024-01-01" {
		t.Errorf("expected today's date, got %q", doc.Sleep[0].Date)
	}
	if doc.Sleep[2].HoursSlept != 5 || doc.Sleep[2].SleepQuality != 1 {
		t.Errorf("unexpected last entry %+v", doc.Sleep[2])
	}
}

func TestRecordSleep_Validation(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	// Both empty: silent cancel.
	out, err := j.RecordSleep(ctx, "", "", "")
	if out != Skipped || err != nil {
		t.Errorf("expected Skipped, got %v, %v", out, err)
	}

	// Bad hours.
	out, err = j.RecordSleep(ctx, "25", "3", "")
	if out != Invalid {
		t.Errorf("expected Invalid for 25h, got %v", out)
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}

	// Missing quality.
	out, _ = j.RecordSleep(ctx, "7", "", "")
	if out != Invalid {
		t.Errorf("expected Invalid for missing quality, got %v", out)
	}

	doc, _ := s.Load(ctx)
	if len(doc.Sleep) != 0 {
		t.Error("rejected input must not append")
	}
}

func TestRecordSleep_DateOverride(t *testing.T) {
	ctx := context.Background()
	j, s := newTestJournal(t)

	j.RecordSleep(ctx, "8", "4", "2023-11-30")
	doc, _ := s.Load(ctx)
	if doc.Sleep[0].Date != "2023-11-30" {
		t.Errorf("expected override date, got %q", doc.Sleep[0].Date)
	}
}
