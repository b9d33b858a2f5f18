package models

// Authenticity labels, ordered from least to most trustworthy.
const (
	LabelSuspicious      = "Suspicious"
	LabelNeedsReview     = "Needs Review"
	LabelLikelyAuthentic = "Likely Authentic"
)

// EngineStatus describes the readiness of the scoring engine.
type EngineStatus struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

// AuthenticityResult holds the authenticity score together with the
// signals that moved it and a normalized confidence breakdown over the
// three labels.
type AuthenticityResult struct {
	Score      int                `json:"score"`
	Label      string             `json:"label"`
	Signals    []string           `json:"signals"`
	Confidence map[string]float64 `json:"confidence"`
}

// QualityResult holds the content quality score and its signals.
type QualityResult struct {
	Score   int      `json:"score"`
	Signals []string `json:"signals"`
}

// AnalysisResult is the aggregate outcome of a single analysis call.
type AnalysisResult struct {
	ModelStatus    EngineStatus       `json:"model_status"`
	Authenticity   AuthenticityResult `json:"authenticity"`
	Quality        QualityResult      `json:"quality"`
	RedFlags       []string           `json:"red_flags"`
	Recommendation string             `json:"recommendation"`
	Reasoning      string             `json:"reasoning"`
	FeatureSummary FeatureSet         `json:"feature_summary"`
}
