package analyzer

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeAliasPrecedence(t *testing.T) {
	testCases := []struct {
		name     string
		payload  map[string]interface{}
		field    string
		expected string
	}{
		{
			name:     "description from message alias",
			payload:  map[string]interface{}{"message": "stalled lorry"},
			field:    "description",
			expected: "stalled lorry",
		},
		{
			name:     "description wins over message",
			payload:  map[string]interface{}{"description": "primary", "message": "secondary"},
			field:    "description",
			expected: "primary",
		},
		{
			name:     "type lower-cased from incidentType",
			payload:  map[string]interface{}{"incidentType": "Accident"},
			field:    "type",
			expected: "accident",
		},
		{
			name:     "type defaults to unknown",
			payload:  map[string]interface{}{},
			field:    "type",
			expected: "unknown",
		},
		{
			name:     "severity from level alias",
			payload:  map[string]interface{}{"level": "HIGH"},
			field:    "severity",
			expected: "high",
		},
		{
			name:     "severity defaults to medium",
			payload:  map[string]interface{}{},
			field:    "severity",
			expected: "medium",
		},
		{
			name:     "location from road_name",
			payload:  map[string]interface{}{"road_name": "PIE"},
			field:    "location",
			expected: "PIE",
		},
		{
			name:     "full address falls back to location",
			payload:  map[string]interface{}{"location": "AYE"},
			field:    "full_address",
			expected: "AYE",
		},
		{
			name:     "full address from place alias",
			payload:  map[string]interface{}{"location": "AYE", "place": "near Jurong exit"},
			field:    "full_address",
			expected: "near Jurong exit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			incident, err := normalize(tc.payload)
			if err != nil {
				t.Fatalf("normalize() returned error: %v", err)
			}

			var got string
			switch tc.field {
			case "description":
				got = incident.Description
			case "type":
				got = incident.Type
			case "severity":
				got = incident.Severity
			case "location":
				got = incident.Location
			case "full_address":
				got = incident.FullAddress
			}

			if got != tc.expected {
				t.Errorf("%s = %q, want %q", tc.field, got, tc.expected)
			}
		})
	}
}

func TestNormalizeRejectsNonObjects(t *testing.T) {
	for _, payload := range []interface{}{nil, "not an object", 42, []interface{}{"a"}} {
		if _, err := normalize(payload); !errors.Is(err, ErrInvalidIncident) {
			t.Errorf("normalize(%v) error = %v, want ErrInvalidIncident", payload, err)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected []string
	}{
		{"comma string", "verified, urgent", []string{"verified", "urgent"}},
		{"comma string with empties", "verified,, ,urgent", []string{"verified", "urgent"}},
		{"list of strings", []interface{}{"verified", " urgent "}, []string{"verified", "urgent"}},
		{"absent", nil, []string{}},
		{"unsupported type", 7, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			incident, err := normalize(map[string]interface{}{"tags": tc.value})
			if err != nil {
				t.Fatalf("normalize() returned error: %v", err)
			}
			if len(incident.Tags) != len(tc.expected) {
				t.Fatalf("tags = %v, want %v", incident.Tags, tc.expected)
			}
			for i, tag := range tc.expected {
				if incident.Tags[i] != tag {
					t.Errorf("tags[%d] = %q, want %q", i, incident.Tags[i], tag)
				}
			}
		})
	}
}

func TestNormalizePhotoURL(t *testing.T) {
	incident, err := normalize(map[string]interface{}{"photoUrl": "  http://x/p.jpg  "})
	if err != nil {
		t.Fatalf("normalize() returned error: %v", err)
	}
	if incident.PhotoURL != "http://x/p.jpg" {
		t.Errorf("photo URL = %q, want trimmed value", incident.PhotoURL)
	}
	if !incident.HasPhoto() {
		t.Error("expected HasPhoto() to be true")
	}

	incident, err = normalize(map[string]interface{}{"description": "x"})
	if err != nil {
		t.Fatalf("normalize() returned error: %v", err)
	}
	if incident.HasPhoto() {
		t.Error("expected HasPhoto() to be false without a photo URL")
	}
}

func TestNormalizeTimestamps(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected *time.Time
	}{
		{
			name:     "RFC3339",
			value:    "2024-05-01T10:00:00Z",
			expected: timePtr(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:     "legacy layout",
			value:    "2024-05-01 10:00:00",
			expected: timePtr(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:     "date only",
			value:    "2024-05-01",
			expected: timePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "epoch seconds",
			value:    float64(1714557600),
			expected: timePtr(time.Unix(1714557600, 0).UTC()),
		},
		{
			name:     "epoch milliseconds",
			value:    float64(1714557600000),
			expected: timePtr(time.UnixMilli(1714557600000).UTC()),
		},
		{
			name:     "unparseable yields absent",
			value:    "not a date",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			incident, err := normalize(map[string]interface{}{"createdAt": tc.value})
			if err != nil {
				t.Fatalf("normalize() returned error: %v", err)
			}
			if tc.expected == nil {
				if incident.CreatedAt != nil {
					t.Errorf("created at = %v, want absent", incident.CreatedAt)
				}
				return
			}
			if incident.CreatedAt == nil || !incident.CreatedAt.Equal(*tc.expected) {
				t.Errorf("created at = %v, want %v", incident.CreatedAt, tc.expected)
			}
		})
	}
}

func TestNormalizeReputation(t *testing.T) {
	testCases := []struct {
		name     string
		payload  map[string]interface{}
		expected *float64
	}{
		{"float value", map[string]interface{}{"reporter_reputation": 0.8}, floatPtr(0.8)},
		{"camel case alias", map[string]interface{}{"reporterReputation": 0.4}, floatPtr(0.4)},
		{"numeric string", map[string]interface{}{"reporter_reputation": "0.4"}, floatPtr(0.4)},
		{"non-numeric yields absent", map[string]interface{}{"reporter_reputation": "strong"}, nil},
		{"missing yields absent", map[string]interface{}{}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			incident, err := normalize(tc.payload)
			if err != nil {
				t.Fatalf("normalize() returned error: %v", err)
			}
			if tc.expected == nil {
				if incident.ReporterReputation != nil {
					t.Errorf("reputation = %v, want absent", *incident.ReporterReputation)
				}
				return
			}
			if incident.ReporterReputation == nil || *incident.ReporterReputation != *tc.expected {
				t.Errorf("reputation = %v, want %v", incident.ReporterReputation, *tc.expected)
			}
		})
	}
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}

func floatPtr(f float64) *float64 {
	return &f
}
