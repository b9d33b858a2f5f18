package analyzer

import (
	"math"

	"incident-analysis-service/models"
)

const authenticityBaseline = 58.0

// Label thresholds for the rounded authenticity score.
const (
	likelyAuthenticThreshold = 75
	suspiciousThreshold      = 45
)

// scoreAuthenticity applies the additive authenticity rules. Every rule is
// independently triggerable; each one appends a human-readable signal and
// nudges the three-way confidence weighting before it is renormalized.
func scoreAuthenticity(features models.FeatureSet) models.AuthenticityResult {
	score := authenticityBaseline
	weights := map[string]float64{
		models.LabelLikelyAuthentic: 0.33,
		models.LabelNeedsReview:     0.34,
		models.LabelSuspicious:      0.33,
	}
	signals := make([]string, 0, 7)

	if features.HasPhoto {
		score += 12
		signals = append(signals, "Photo evidence provided")
		weights[models.LabelLikelyAuthentic] += 0.10
		weights[models.LabelSuspicious] -= 0.05
	}

	if features.HasDigits || features.ConcreteTerms >= 2 {
		score += 10
		signals = append(signals, "Specific details detected in description")
		weights[models.LabelLikelyAuthentic] += 0.06
		weights[models.LabelNeedsReview] -= 0.03
	}

	if features.UncertaintyTerms > 0 {
		score -= math.Min(18, float64(features.UncertaintyTerms)*6)
		signals = append(signals, "Uncertainty language used")
		weights[models.LabelSuspicious] += 0.08
		weights[models.LabelLikelyAuthentic] -= 0.04
	}

	if features.SeverityRank >= 2 && features.WordCount < 12 {
		score -= 10
		signals = append(signals, "Severe incident reported with little context")
		weights[models.LabelSuspicious] += 0.05
	}

	if features.HasVerifiedTag {
		score += 6
		signals = append(signals, "Previously verified by moderators")
		weights[models.LabelLikelyAuthentic] += 0.05
	}

	if features.ReporterReputation != nil {
		reputation := *features.ReporterReputation
		if reputation >= 0.7 {
			score += 5
			signals = append(signals, "Reporter has strong reputation")
		} else if reputation <= 0.3 {
			score -= 7
			signals = append(signals, "Reporter flagged with low reputation")
		}
	}

	rounded := clampScore(score)

	label := models.LabelNeedsReview
	if rounded >= likelyAuthenticThreshold {
		label = models.LabelLikelyAuthentic
	} else if rounded <= suspiciousThreshold {
		label = models.LabelSuspicious
	}

	return models.AuthenticityResult{
		Score:      rounded,
		Label:      label,
		Signals:    signals,
		Confidence: normalizeConfidence(weights),
	}
}

// normalizeConfidence rescales the weights to sum to 1 and rounds each to
// 3 decimals with a non-negative floor. The rounded values may drift from
// an exact sum of 1 by up to ±0.002.
func normalizeConfidence(weights map[string]float64) map[string]float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		total = 1.0
	}

	confidence := make(map[string]float64, len(weights))
	for label, w := range weights {
		value := math.Round(w/total*1000) / 1000
		if value < 0 {
			value = 0
		}
		confidence[label] = value
	}
	return confidence
}

// clampScore rounds to the nearest integer and clamps to [0, 100].
func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
