// Package analyzer implements the deterministic incident scoring engine:
// alias normalization, feature extraction, authenticity and quality
// scoring, red flag detection and the moderator recommendation. The whole
// pipeline is side-effect-free; repeated calls with identical input and
// reference time yield identical output.
package analyzer

import (
	"time"

	"incident-analysis-service/models"
)

// Analyzer is the single public entry point into the scoring engine.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	status models.EngineStatus
}

// New creates a ready scoring engine.
func New() *Analyzer {
	return &Analyzer{
		status: models.EngineStatus{
			Ready:   true,
			Message: "Heuristic scoring engine initialised.",
		},
	}
}

// Status reports engine readiness for health checks.
func (a *Analyzer) Status() models.EngineStatus {
	return a.status
}

// Analyze scores a raw incident against the current wall clock.
func (a *Analyzer) Analyze(raw interface{}) (*models.AnalysisResult, error) {
	return a.AnalyzeAt(raw, time.Now().UTC())
}

// AnalyzeAt scores a raw incident against an injected reference time, so
// recency-dependent rules stay deterministic under test. It fails only
// when the payload is not a structured record.
func (a *Analyzer) AnalyzeAt(raw interface{}, now time.Time) (*models.AnalysisResult, error) {
	incident, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	features := extractFeatures(incident, now)
	authenticity := scoreAuthenticity(features)
	quality := scoreQuality(features)
	redFlags := detectRedFlags(features)

	return &models.AnalysisResult{
		ModelStatus:    a.status,
		Authenticity:   authenticity,
		Quality:        quality,
		RedFlags:       redFlags,
		Recommendation: generateRecommendation(authenticity, redFlags),
		Reasoning:      buildReasoning(features, authenticity, quality, redFlags),
		FeatureSummary: features,
	}, nil
}
