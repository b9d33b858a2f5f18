package analyzer

import (
	"math"

	"incident-analysis-service/models"
)

const qualityBaseline = 55.0

// scoreQuality applies the additive content-quality rules. The word-count
// bonus and penalty are mutually exclusive by construction; everything
// else may stack freely.
func scoreQuality(features models.FeatureSet) models.QualityResult {
	score := qualityBaseline
	signals := make([]string, 0, 6)

	if features.WordCount >= 20 {
		score += 8
		signals = append(signals, "Detailed description (>20 words)")
	} else if features.WordCount < 8 {
		score -= 8
		signals = append(signals, "Very short description (<8 words)")
	}

	if features.ConcreteTerms >= 2 {
		score += 6
		signals = append(signals, "Contains concrete location cues")
	}

	if features.HasPhoto {
		score += 10
		signals = append(signals, "Includes supporting photo evidence")
	}

	if features.EvidenceTerms > 0 {
		score += 4
		signals = append(signals, "Mentions attached media")
	}

	if features.UncertaintyTerms > 0 {
		score -= math.Min(12, float64(features.UncertaintyTerms)*4)
		signals = append(signals, "Uses uncertainty language")
	}

	if features.RecencyHours != nil {
		recency := *features.RecencyHours
		if recency <= 3 {
			score += 5
			signals = append(signals, "Reported within the last 3 hours")
		} else if recency > 24 {
			score -= 4
			signals = append(signals, "Report is older than 24 hours")
		}
	}

	return models.QualityResult{
		Score:   clampScore(score),
		Signals: signals,
	}
}
