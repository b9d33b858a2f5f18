// Package client is the moderator-console access path to the analysis
// engine. It probes an ordered list of candidate endpoints and falls back
// to running the same deterministic engine in-process when every remote
// attempt fails, so callers always get an answer for valid input.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"incident-analysis-service/analyzer"
	"incident-analysis-service/config"
	"incident-analysis-service/models"

	"github.com/apex/log"
)

const analysisPath = "/ai-analysis"

const defaultAttemptTimeout = 5 * time.Second

// DefaultEndpoints are the candidate base URLs probed when no override
// is configured.
var DefaultEndpoints = []string{"http://localhost:8080"}

// Client calls the analysis service with endpoint fallback.
type Client struct {
	endpoints []string
	httpc     *http.Client
	timeout   time.Duration
	engine    *analyzer.Analyzer
}

// New creates a client. A configured ANALYSIS_URL override is probed
// before the default candidates.
func New(cfg *config.Config) *Client {
	endpoints := make([]string, 0, len(DefaultEndpoints)+1)
	if cfg.AnalysisURL != "" {
		endpoints = append(endpoints, strings.TrimRight(cfg.AnalysisURL, "/"))
	}
	endpoints = append(endpoints, DefaultEndpoints...)

	timeout := cfg.ClientTimeout
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}

	return &Client{
		endpoints: endpoints,
		httpc:     &http.Client{},
		timeout:   timeout,
		engine:    analyzer.New(),
	}
}

type analysisResponse struct {
	Status   string                 `json:"status"`
	Analysis *models.AnalysisResult `json:"analysis"`
	Error    string                 `json:"error"`
}

// Analyze scores an incident. Candidates are tried in order; transport
// failures, bad statuses and malformed payloads all mean "try the next
// one". When every remote attempt fails the engine runs locally, so the
// only error a caller can see is invalid input or cancellation.
func (c *Client) Analyze(ctx context.Context, incident interface{}) (*models.AnalysisResult, error) {
	for _, base := range c.endpoints {
		result, err := c.analyzeRemote(ctx, base, incident)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.WithError(err).Warnf("Remote analysis via %s failed, trying next candidate", base)
	}

	// Remote results are never cached; the local engine recomputes the
	// full analysis from scratch.
	return c.engine.Analyze(incident)
}

func (c *Client) analyzeRemote(ctx context.Context, base string, incident interface{}) (*models.AnalysisResult, error) {
	body, err := json.Marshal(map[string]interface{}{"incident": incident})
	if err != nil {
		return nil, fmt.Errorf("failed to encode incident: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, base+analysisPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var decoded analysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("malformed response payload: %w", err)
	}
	if decoded.Status != "success" || decoded.Analysis == nil {
		return nil, fmt.Errorf("analysis rejected: %s", decoded.Error)
	}

	return decoded.Analysis, nil
}
