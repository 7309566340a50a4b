package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcliao/health-journal/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(filepath.Join(dir, "journal.json"), nil)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Pain) != 0 || len(doc.Activity) != 0 || len(doc.Notes) != 0 || len(doc.Sleep) != 0 {
		t.Error("expected empty document")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := model.NewDocument()
	doc.Pain["RU"] = []model.Measurement{{Value: 7, Timestamp: "2024-01-01 09:00:00"}}
	doc.Activity["2024-01-01 09:00:00"] = []model.ActivityEntry{{ActivityLevel: "2", ActivityName: "walk"}}
	doc.Notes["2024-01-01 09:00:00"] = "sore morning"
	doc.Sleep = []model.SleepEntry{{Date: "2024-01-01", HoursSlept: 6.5, SleepQuality: 3}}

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Pain["RU"][0].Value != 7 {
		t.Errorf("expected RU value 7, got %v", got.Pain["RU"][0].Value)
	}
	if got.Activity["2024-01-01 09:00:00"][0].ActivityName != "walk" {
		t.Error("activity stream did not round-trip")
	}
	if got.Notes["2024-01-01 09:00:00"] != "sore morning" {
		t.Error("notes stream did not round-trip")
	}
	if len(got.Sleep) != 1 || got.Sleep[0].HoursSlept != 6.5 {
		t.Error("sleep stream did not round-trip")
	}
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Pain) != 0 {
		t.Error("expected empty document for corrupt file")
	}
}

func TestLoad_UnknownKeysPreserved(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	raw := `{"RU":[{"value":3,"timestamp":"2024-01-01 09:00:00"}],"future_stream":{"a":1}}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := doc.Extra["future_stream"]; !ok {
		t.Fatal("expected unknown key to be preserved")
	}

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := s.Load(ctx)
	if _, ok := got.Extra["future_stream"]; !ok {
		t.Error("expected unknown key to survive a save cycle")
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Update(ctx, func(doc *model.Document) error {
		doc.Notes["2024-01-01 09:00:00"] = "first"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	doc, _ := s.Load(ctx)
	if doc.Notes["2024-01-01 09:00:00"] != "first" {
		t.Error("update was not persisted")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := model.NewDocument()
	doc.Notes["2024-01-01 09:00:00"] = "bye"
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("expected journal file to be gone")
	}

	// Resetting an already-missing journal is fine.
	if err := s.Reset(ctx); err != nil {
		t.Errorf("second reset: %v", err)
	}
}
