package handlers

import (
	"errors"
	"net/http"
	"time"

	"incident-analysis-service/analyzer"
	"incident-analysis-service/metrics"
	"incident-analysis-service/version"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// AnalysisRequest is the body of POST /ai-analysis. The incident itself
// is left untyped; the engine validates and normalizes it.
type AnalysisRequest struct {
	Incident interface{} `json:"incident"`
}

// Handlers represents the HTTP handlers
type Handlers struct {
	engine *analyzer.Analyzer
}

// NewHandlers creates new HTTP handlers around the scoring engine
func NewHandlers(engine *analyzer.Analyzer) *Handlers {
	return &Handlers{engine: engine}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"engine":  h.engine.Status(),
		"version": version.Get("incident-analysis-service"),
	})
}

// AnalyzeIncident runs the scoring engine on a submitted incident payload
func (h *Handlers) AnalyzeIncident(c *gin.Context) {
	start := time.Now()

	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.AnalyzedTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "invalid json payload",
		})
		return
	}

	if req.Incident == nil {
		metrics.AnalyzedTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Request body must include an 'incident' object.",
		})
		return
	}

	result, err := h.engine.Analyze(req.Incident)
	if err != nil {
		if errors.Is(err, analyzer.ErrInvalidIncident) {
			metrics.AnalyzedTotal.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "error",
				"error":  err.Error(),
			})
			return
		}
		log.WithError(err).Error("incident analysis failed")
		metrics.AnalyzedTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to analyse incident.",
		})
		return
	}

	metrics.AnalyzedTotal.WithLabelValues("success").Inc()
	metrics.LabelTotal.WithLabelValues(result.Authenticity.Label).Inc()
	metrics.RedFlagTotal.Add(float64(len(result.RedFlags)))
	metrics.AnalysisDurationSeconds.WithLabelValues("success").Observe(time.Since(start).Seconds())

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analysis": result,
	})
}
