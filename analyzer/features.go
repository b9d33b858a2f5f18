package analyzer

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"incident-analysis-service/models"
)

// Fixed scoring vocabularies. These are module-level configuration data,
// never mutated, so they are safe to share across concurrent calls.
var (
	// uncertaintyTerms mark hearsay and hedging in a description.
	uncertaintyTerms = []string{
		"maybe",
		"not sure",
		"unsure",
		"idk",
		"rumour",
		"unconfirmed",
		"apparently",
		"heard",
		"someone said",
		"looks like",
		"i think",
		"might",
	}

	// mediaHintTerms mark explicit references to attached evidence.
	mediaHintTerms = []string{
		"see photo",
		"attached",
		"image",
		"video",
		"screenshot",
	}

	// concreteDetailTerms mark specific road-location cues.
	concreteDetailTerms = []string{
		"lane",
		"km",
		"exit",
		"towards",
		"junction",
		"bridge",
		"singapore",
		"expressway",
		"avenue",
		"road",
		"street",
	}
)

// severityOrder ranks severities ordinally; unknown severities rank as medium.
var severityOrder = map[string]int{
	"low":      0,
	"medium":   1,
	"moderate": 1,
	"high":     2,
	"critical": 3,
}

const defaultSeverityRank = 1

// extractFeatures derives the scoring feature snapshot from a normalized
// incident. Recency is measured against the supplied reference time so
// results are reproducible.
func extractFeatures(incident *models.NormalizedIncident, now time.Time) models.FeatureSet {
	description := incident.Description

	severityRank, ok := severityOrder[incident.Severity]
	if !ok {
		severityRank = defaultSeverityRank
	}

	hasVerifiedTag := false
	for _, tag := range incident.Tags {
		if strings.EqualFold(tag, "verified") {
			hasVerifiedTag = true
			break
		}
	}

	var recencyHours *float64
	if incident.CreatedAt != nil {
		hours := now.Sub(*incident.CreatedAt).Hours()
		if hours < 0 {
			hours = 0
		}
		recencyHours = &hours
	}

	location := incident.Location
	if location == "" {
		location = incident.FullAddress
	}

	return models.FeatureSet{
		Description:        description,
		WordCount:          len(strings.Fields(description)),
		CharCount:          utf8.RuneCountInString(description),
		UncertaintyTerms:   countTerms(description, uncertaintyTerms),
		EvidenceTerms:      countTerms(description, mediaHintTerms),
		ConcreteTerms:      countTerms(description, concreteDetailTerms),
		HasDigits:          containsDigit(description),
		HasPhoto:           incident.HasPhoto(),
		Severity:           incident.Severity,
		SeverityRank:       severityRank,
		Type:               incident.Type,
		Location:           location,
		HasTags:            len(incident.Tags) > 0,
		HasVerifiedTag:     hasVerifiedTag,
		ReporterReputation: incident.ReporterReputation,
		RecencyHours:       recencyHours,
	}
}

// countTerms sums case-insensitive occurrences of every term in the text.
// Occurrences may overlap; each match position counts once.
func countTerms(text string, terms []string) int {
	lowered := strings.ToLower(text)
	total := 0
	for _, term := range terms {
		for start := 0; ; {
			idx := strings.Index(lowered[start:], term)
			if idx < 0 {
				break
			}
			total++
			start += idx + 1
		}
	}
	return total
}

func containsDigit(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
