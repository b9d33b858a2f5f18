package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"incident-analysis-service/models"
)

// ErrInvalidIncident is returned when the submitted payload is not a
// structured record at all. Anything else is coerced defensively.
var ErrInvalidIncident = errors.New("incident payload must be an object")

// Alias precedence for loosely-shaped incident payloads. Different client
// versions have shipped different field names; the first non-empty value
// wins, in the listed order.
var (
	descriptionAliases = []string{"description", "message"}
	typeAliases        = []string{"incidentType", "type", "category"}
	severityAliases    = []string{"severity", "incident_severity", "level"}
	locationAliases    = []string{"location", "road_name", "road"}
	addressAliases     = []string{"fullAddress", "address", "place"}
	photoAliases       = []string{"photo_url", "photoUrl"}
	timestampAliases   = []string{"createdAt", "created_at", "reported_at"}
	reputationAliases  = []string{"reporter_reputation", "reporterReputation"}
)

// timestampLayouts are tried in order when the submitted timestamp is a string.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalize turns an arbitrary incident payload into a typed incident.
// It only fails when the payload is not an object; every field-level
// problem degrades to a default or an absent value.
func normalize(raw interface{}) (*models.NormalizedIncident, error) {
	fields, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(firstTruthy(fields, descriptionAliases, ""))
	incidentType := strings.ToLower(strings.TrimSpace(firstTruthy(fields, typeAliases, "unknown")))
	if incidentType == "" {
		incidentType = "unknown"
	}
	severity := strings.ToLower(strings.TrimSpace(firstTruthy(fields, severityAliases, "medium")))
	if severity == "" {
		severity = "medium"
	}
	location := strings.TrimSpace(firstTruthy(fields, locationAliases, ""))
	fullAddress := strings.TrimSpace(firstTruthy(fields, addressAliases, location))

	photoURL := strings.TrimSpace(firstTruthy(fields, photoAliases, ""))

	var createdAt *time.Time
	for _, key := range timestampAliases {
		if value, ok := fields[key]; ok && truthy(value) {
			createdAt = parseTimestamp(value)
			break
		}
	}

	var reputation *float64
	for _, key := range reputationAliases {
		if value, ok := fields[key]; ok && truthy(value) {
			reputation = coerceFloat(value)
			break
		}
	}

	return &models.NormalizedIncident{
		Description:        description,
		Type:               incidentType,
		Severity:           severity,
		Location:           location,
		FullAddress:        fullAddress,
		Tags:               normalizeTags(fields["tags"]),
		PhotoURL:           photoURL,
		CreatedAt:          createdAt,
		ReporterReputation: reputation,
	}, nil
}

func asObject(raw interface{}) (map[string]interface{}, error) {
	switch v := raw.(type) {
	case models.RawIncident:
		return v, nil
	case map[string]interface{}:
		return v, nil
	case nil:
		return nil, ErrInvalidIncident
	default:
		return nil, ErrInvalidIncident
	}
}

// firstTruthy returns the stringified first non-empty alias value, or the
// fallback when every alias is missing or empty.
func firstTruthy(fields map[string]interface{}, aliases []string, fallback string) string {
	for _, key := range aliases {
		if value, ok := fields[key]; ok && truthy(value) {
			return stringify(value)
		}
	}
	return fallback
}

// truthy mirrors the loose emptiness rules the mobile clients rely on:
// nil, empty strings, zero numbers and false are all treated as unset.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// normalizeTags accepts either a comma-separated string or a list of
// values; entries are trimmed and empties dropped.
func normalizeTags(value interface{}) []string {
	tags := make([]string, 0)
	switch v := value.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if tag := strings.TrimSpace(part); tag != "" {
				tags = append(tags, tag)
			}
		}
	case []string:
		for _, part := range v {
			if tag := strings.TrimSpace(part); tag != "" {
				tags = append(tags, tag)
			}
		}
	case []interface{}:
		for _, part := range v {
			if tag := strings.TrimSpace(stringify(part)); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// parseTimestamp parses submitted timestamps permissively: RFC3339-style
// strings, a couple of legacy layouts, or numeric epochs (values above
// 1e12 are taken as milliseconds). Unparseable input yields nil, never
// an error.
func parseTimestamp(value interface{}) *time.Time {
	switch v := value.(type) {
	case time.Time:
		utc := v.UTC()
		return &utc
	case float64:
		return epochToTime(v)
	case int:
		return epochToTime(float64(v))
	case int64:
		return epochToTime(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return epochToTime(f)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				utc := parsed.UTC()
				return &utc
			}
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return epochToTime(f)
		}
	}
	return nil
}

func epochToTime(epoch float64) *time.Time {
	var parsed time.Time
	if epoch > 1e12 {
		parsed = time.UnixMilli(int64(epoch)).UTC()
	} else {
		parsed = time.Unix(int64(epoch), 0).UTC()
	}
	return &parsed
}

// coerceFloat converts numeric values and numeric strings; anything else
// yields nil so the feature is treated as absent.
func coerceFloat(value interface{}) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case bool:
		f := 0.0
		if v {
			f = 1.0
		}
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}
