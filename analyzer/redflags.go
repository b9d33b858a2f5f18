package analyzer

import (
	"incident-analysis-service/models"
)

// detectRedFlags evaluates the moderator warning predicates. Any subset
// may fire; the order of the returned messages is fixed.
func detectRedFlags(features models.FeatureSet) []string {
	flags := make([]string, 0, 4)

	if features.UncertaintyTerms >= 2 {
		flags = append(flags, "Multiple uncertainty phrases detected in the report")
	}

	if features.SeverityRank >= 2 && features.WordCount <= 6 {
		flags = append(flags, "High severity incident described with five words or fewer")
	}

	if !features.HasPhoto && features.SeverityRank >= 2 {
		flags = append(flags, "Severe incident reported without supporting media")
	}

	if features.ReporterReputation != nil && *features.ReporterReputation <= 0.2 {
		flags = append(flags, "Reporter reputation is flagged as very low")
	}

	return flags
}
