package analyzer

import (
	"fmt"
	"strings"

	"incident-analysis-service/models"
)

// Moderator recommendations, ordered by decreasing priority.
const (
	recommendApprove  = "Approve and publish the incident to drivers."
	recommendEscalate = "Escalate for manual verification before any action."
	recommendHold     = "Hold for moderator review and request additional evidence if possible."
	recommendMonitor  = "Proceed with caution and monitor for corroborating reports."
)

// generateRecommendation maps the authenticity outcome and red flags to a
// single moderator action.
func generateRecommendation(authenticity models.AuthenticityResult, redFlags []string) string {
	if authenticity.Score >= 80 && len(redFlags) == 0 {
		return recommendApprove
	}
	if authenticity.Score <= 40 {
		return recommendEscalate
	}
	if authenticity.Label == models.LabelNeedsReview || len(redFlags) > 0 {
		return recommendHold
	}
	return recommendMonitor
}

// buildReasoning joins the human-readable fragments from each stage into
// one explanation for the moderator dialog.
func buildReasoning(features models.FeatureSet, authenticity models.AuthenticityResult, quality models.QualityResult, redFlags []string) string {
	fragments := make([]string, 0, 5)

	if features.HasPhoto {
		fragments = append(fragments, "Photo evidence increases confidence.")
	} else {
		fragments = append(fragments, "No media was attached.")
	}

	if features.WordCount > 0 {
		fragments = append(fragments, fmt.Sprintf(
			"Description length: %d words with %d location cues.",
			features.WordCount, features.ConcreteTerms))
	}

	if len(authenticity.Signals) > 0 {
		fragments = append(fragments, "Authenticity signals: "+strings.Join(authenticity.Signals, ", "))
	}

	if len(quality.Signals) > 0 {
		fragments = append(fragments, "Quality observations: "+strings.Join(quality.Signals, ", "))
	}

	if len(redFlags) > 0 {
		fragments = append(fragments, "Red flags: "+strings.Join(redFlags, "; "))
	}

	return strings.Join(fragments, " ")
}
