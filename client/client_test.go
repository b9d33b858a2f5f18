package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"incident-analysis-service/analyzer"
	"incident-analysis-service/config"

	"github.com/stretchr/testify/assert"
)

func newTestClient(endpoints ...string) *Client {
	return &Client{
		endpoints: endpoints,
		httpc:     &http.Client{},
		timeout:   2 * time.Second,
		engine:    analyzer.New(),
	}
}

func validIncident() map[string]interface{} {
	return map[string]interface{}{
		"description": "Accident at km 12 on the expressway near exit 5, see photo attached blocking left lane",
		"severity":    "high",
		"photo_url":   "http://x/p.jpg",
	}
}

func TestNewBuildsCandidateList(t *testing.T) {
	c := New(&config.Config{AnalysisURL: "https://analysis.example.com/"})
	assert.Equal(t, "https://analysis.example.com", c.endpoints[0])
	assert.Equal(t, DefaultEndpoints[0], c.endpoints[1])

	c = New(&config.Config{})
	assert.Equal(t, DefaultEndpoints, c.endpoints)
}

func TestAnalyzeUsesFirstWorkingEndpoint(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, analysisPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","analysis":{"authenticity":{"score":80,"label":"Likely Authentic"},"quality":{"score":75}}}`))
	}))
	defer working.Close()

	c := newTestClient(broken.URL, working.URL)

	result, err := c.Analyze(context.Background(), validIncident())
	assert.NoError(t, err)
	assert.Equal(t, 80, result.Authenticity.Score)
	assert.Equal(t, 75, result.Quality.Score)
}

func TestAnalyzeFallsBackLocallyWhenAllRemotesFail(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1") // nothing listening

	result, err := c.Analyze(context.Background(), validIncident())
	assert.NoError(t, err)

	// The fallback runs the same engine, so the result matches a direct
	// local analysis.
	local, err := analyzer.New().Analyze(validIncident())
	assert.NoError(t, err)
	assert.Equal(t, local.Authenticity.Score, result.Authenticity.Score)
	assert.Equal(t, local.Recommendation, result.Recommendation)
}

func TestAnalyzeTreatsMalformedPayloadAsFailure(t *testing.T) {
	garbled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer garbled.Close()

	c := newTestClient(garbled.URL)

	result, err := c.Analyze(context.Background(), validIncident())
	assert.NoError(t, err)
	assert.Equal(t, 80, result.Authenticity.Score)
}

func TestAnalyzeSurfacesInvalidInput(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")

	_, err := c.Analyze(context.Background(), "not an object")
	assert.ErrorIs(t, err, analyzer.ErrInvalidIncident)
}

func TestAnalyzeRespectsCancellation(t *testing.T) {
	blocked := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer blocked.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(blocked.URL)

	_, err := c.Analyze(ctx, validIncident())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
