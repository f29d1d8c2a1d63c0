// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/logs"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/kvstore"
	"github.com/taibuivan/folio/internal/platform/metrics"
	"github.com/taibuivan/folio/internal/portfolio/gallery"
	"github.com/taibuivan/folio/internal/portfolio/project"
	"github.com/taibuivan/folio/internal/search"
)

type acceptingRelay struct{}

func (acceptingRelay) Send(context.Context, contact.Form) (int, error) { return http.StatusOK, nil }

func newTestServer(t *testing.T, health api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "development", AssetsDir: "../logs/testdata"}
	registry := metrics.New()
	store := kvstore.NewMemoryStore()

	catalog, err := project.NewEmbeddedRepository()
	require.NoError(t, err)
	projects := project.NewService(catalog)

	logSource := logs.NewFileSource("../logs/testdata/logsGrouped.json")

	liveness, readiness := api.NewHealthHandlers(health, logger)
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Project:   project.NewHandler(projects),
		Gallery:   gallery.NewHandler(gallery.NewService(projects, gallery.NewKVSessionRepository(store, time.Minute), registry)),
		Logs:      logs.NewHandler(logs.NewService(logSource, logs.NewKVVisitorStateRepository(store, time.Minute))),
		Search:    search.NewHandler(search.NewMerger(catalog, logSource, search.EmptyQueryAll, registry)),
		Contact:   contact.NewHandler(contact.NewService(acceptingRelay{}, nil, "me@example.com", registry)),
		Metrics:   registry,
	}

	context, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewServer(context, cfg, logger, handlers).Handler()
}

func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	tests := []struct {
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/health", "", http.StatusOK, `"ok"`},
		{http.MethodGet, "/ready", "", http.StatusOK, `"ready"`},
		{http.MethodGet, "/api/v1/projects", "", http.StatusOK, `"id":16`},
		{http.MethodGet, "/api/v1/projects/5", "", http.StatusOK, "Tuskys"},
		{http.MethodGet, "/api/v1/projects/999", "", http.StatusNotFound, "NOT_FOUND"},
		{http.MethodGet, "/api/v1/projects/4/neighbors", "", http.StatusOK, `/portfolio/code/12`},
		{http.MethodPost, "/api/v1/projects/5/gallery", "", http.StatusCreated, `"sessionId"`},
		{http.MethodGet, "/api/v1/logs/countries/kenya", "", http.StatusOK, `"Kenya"`},
		{http.MethodGet, "/api/v1/search?query=tuskys", "", http.StatusOK, "/portfolio/5"},
		{http.MethodPost, "/api/v1/contact", `{"name":"Ann","email":"ann@example.com","message":"Hi"}`, http.StatusAccepted, contact.SentMessage},
		{http.MethodGet, "/assets/logsGrouped.json", "", http.StatusOK, `"Kenya"`},
		{http.MethodGet, "/api/v1/nothing-here", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

func TestServer_MetricsEndpoint(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "folio_http_requests_total")
}

func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCache:    func() error { return errors.New("connection refused") },
	})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
	assert.Contains(t, recorder.Body.String(), `"name":"redis","ok":false`)
	assert.Contains(t, recorder.Body.String(), `"name":"postgres","ok":true`)
}
