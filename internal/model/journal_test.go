package model

import (
	"encoding/json"
	"testing"
)

func TestIsRegion(t *testing.T) {
	for _, r := range Regions {
		if !IsRegion(r) {
			t.Errorf("expected %s to be a region", r)
		}
	}
	for _, bad := range []string{"", "ru", "XX", ActivityStream} {
		if IsRegion(bad) {
			t.Errorf("expected %q not to be a region", bad)
		}
	}
}

func TestDocument_EmptySerializesAsEmptyObject(t *testing.T) {
	b, err := json.Marshal(NewDocument())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Errorf("expected {}, got %s", b)
	}
}

func TestDocument_MissingStreamsDecodeEmpty(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"notes_data":{"2024-01-01 09:00:00":"hi"}}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Pain == nil || doc.Activity == nil {
		t.Error("expected missing streams to decode as empty collections")
	}
	if doc.Notes["2024-01-01 09:00:00"] != "hi" {
		t.Error("expected note to decode")
	}
}
