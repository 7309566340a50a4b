// Package model defines the journal document and its stream entry types.
package model

import "encoding/json"

// Region codes for the six fixed pain streams, in canonical iteration order.
// The order is load-bearing: statistics tie-breaking and export columns both
// follow it.
var Regions = []string{"HD", "BK", "LU", "RU", "LL", "RL"}

// RegionNames maps region codes to display names.
var RegionNames = map[string]string{
	"HD": "Head",
	"BK": "Back",
	"LU": "Left upper limb",
	"RU": "Right upper limb",
	"LL": "Left lower limb",
	"RL": "Right lower limb",
}

// IsRegion reports whether code is one of the six fixed region codes.
func IsRegion(code string) bool {
	for _, r := range Regions {
		if r == code {
			return true
		}
	}
	return false
}

// Stream names for the non-region streams.
const (
	ActivityStream = "activity_data"
	NotesStream    = "notes_data"
	SleepStream    = "sleep_data"
)

// Measurement is one pain observation. Timestamp is always a slot key; the
// writers guarantee at most one Measurement per (region, slot).
type Measurement struct {
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp"`
}

// ActivityEntry is one recorded activity within an hour slot.
type ActivityEntry struct {
	ActivityLevel string `json:"activity_level"`
	ActivityName  string `json:"activity_name"`
}

// SleepEntry is one night's sleep record. Entries are append-only; repeated
// entries for the same date are resolved at read time, last one wins.
type SleepEntry struct {
	Date         string  `json:"date"`
	HoursSlept   float64 `json:"hours_slept"`
	SleepQuality int     `json:"sleep_quality"`
}

// Document is the whole journal. On disk it is a single JSON object keyed by
// stream name: one array of measurements per region code, "activity_data",
// "notes_data" and "sleep_data". Missing keys mean empty streams. Keys that
// are not stream names round-trip untouched through Extra.
type Document struct {
	Pain     map[string][]Measurement
	Activity map[string][]ActivityEntry
	Notes    map[string]string
	Sleep    []SleepEntry
	Extra    map[string]json.RawMessage
}

// NewDocument returns an empty journal with all streams initialized.
func NewDocument() *Document {
	return &Document{
		Pain:     make(map[string][]Measurement),
		Activity: make(map[string][]ActivityEntry),
		Notes:    make(map[string]string),
	}
}

// MarshalJSON flattens the streams into a single top-level object. Empty
// streams are omitted so a fresh journal serializes as "{}".
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Pain)+len(d.Extra)+3)
	for k, v := range d.Extra {
		out[k] = v
	}
	for region, ms := range d.Pain {
		if len(ms) == 0 {
			continue
		}
		b, err := json.Marshal(ms)
		if err != nil {
			return nil, err
		}
		out[region] = b
	}
	if len(d.Activity) > 0 {
		b, err := json.Marshal(d.Activity)
		if err != nil {
			return nil, err
		}
		out[ActivityStream] = b
	}
	if len(d.Notes) > 0 {
		b, err := json.Marshal(d.Notes)
		if err != nil {
			return nil, err
		}
		out[NotesStream] = b
	}
	if len(d.Sleep) > 0 {
		b, err := json.Marshal(d.Sleep)
		if err != nil {
			return nil, err
		}
		out[SleepStream] = b
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the streams from a top-level object. Unrecognized
// keys are kept raw; a missing key leaves its stream empty.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Pain = make(map[string][]Measurement)
	d.Activity = make(map[string][]ActivityEntry)
	d.Notes = make(map[string]string)
	d.Sleep = nil
	d.Extra = nil

	for key, val := range raw {
		switch {
		case IsRegion(key):
			var ms []Measurement
			if err := json.Unmarshal(val, &ms); err != nil {
				return err
			}
			d.Pain[key] = ms
		case key == ActivityStream:
			if err := json.Unmarshal(val, &d.Activity); err != nil {
				return err
			}
		case key == NotesStream:
			if err := json.Unmarshal(val, &d.Notes); err != nil {
				return err
			}
		case key == SleepStream:
			if err := json.Unmarshal(val, &d.Sleep); err != nil {
				return err
			}
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]json.RawMessage)
			}
			d.Extra[key] = val
		}
	}
	return nil
}
