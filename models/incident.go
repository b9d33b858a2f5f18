package models

import (
	"time"
)

// RawIncident is an incident payload as submitted by external callers.
// Field names vary between client versions, so no shape is assumed here;
// the analyzer normalizes known aliases at the boundary.
type RawIncident map[string]interface{}

// NormalizedIncident is the typed view of a raw incident after alias
// resolution and defensive coercion. Description, Type, Severity and
// Location are always set (possibly empty); enum-like fields are
// lower-cased.
type NormalizedIncident struct {
	Description        string     `json:"description"`
	Type               string     `json:"type"`
	Severity           string     `json:"severity"`
	Location           string     `json:"location"`
	FullAddress        string     `json:"full_address"`
	Tags               []string   `json:"tags"`
	PhotoURL           string     `json:"photo_url,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	ReporterReputation *float64   `json:"reporter_reputation,omitempty"`
}

// HasPhoto reports whether the incident carries a photo URL.
func (n *NormalizedIncident) HasPhoto() bool {
	return n.PhotoURL != ""
}

// FeatureSet is the read-only feature snapshot derived from one incident.
// It exists only for the duration of a single analysis call.
type FeatureSet struct {
	Description        string   `json:"description"`
	WordCount          int      `json:"word_count"`
	CharCount          int      `json:"char_count"`
	UncertaintyTerms   int      `json:"uncertainty_terms"`
	EvidenceTerms      int      `json:"evidence_terms"`
	ConcreteTerms      int      `json:"concrete_terms"`
	HasDigits          bool     `json:"has_digits"`
	HasPhoto           bool     `json:"has_photo"`
	Severity           string   `json:"severity"`
	SeverityRank       int      `json:"severity_rank"`
	Type               string   `json:"type"`
	Location           string   `json:"location"`
	HasTags            bool     `json:"has_tags"`
	HasVerifiedTag     bool     `json:"has_verified_tag"`
	ReporterReputation *float64 `json:"reporter_reputation"`
	RecencyHours       *float64 `json:"recency_hours"`
}
