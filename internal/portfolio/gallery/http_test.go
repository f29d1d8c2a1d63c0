// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/kvstore"
	"github.com/taibuivan/folio/internal/portfolio/gallery"
	"github.com/taibuivan/folio/internal/portfolio/project"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	repository, err := project.NewEmbeddedRepository()
	require.NoError(t, err)
	projects := project.NewService(repository)

	service := gallery.NewService(projects, gallery.NewKVSessionRepository(kvstore.NewMemoryStore(), time.Minute), nil)
	handler := gallery.NewHandler(service)

	router := chi.NewRouter()
	router.Mount("/projects", project.NewHandler(projects).Routes(handler.RegisterProjectRoutes))
	router.Mount("/gallery", handler.Routes())
	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) (int, gallery.InputResult) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	var envelope struct {
		Data gallery.InputResult `json:"data"`
	}
	if recorder.Code < 300 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}
	return recorder.Code, envelope.Data
}

func TestHandler_SessionLifecycle(t *testing.T) {
	router := newRouter(t)

	status, created := do(t, router, http.MethodPost, "/projects/1/gallery", "")
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, "/images/arch-pro/01_SS_EO_Retail_Guide_Pilot_Store/03.png", created.Images[0])

	base := "/gallery/" + created.SessionID

	status, opened := do(t, router, http.MethodPost, base+"/open", `{"index":1}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, opened.IsOpen)
	assert.Equal(t, "/images/arch-pro/01_SS_EO_Retail_Guide_Pilot_Store/04.png", opened.CurrentImage)

	status, keyed := do(t, router, http.MethodPost, base+"/key", `{"key":"ArrowRight"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, keyed.Handled)
	assert.Equal(t, 2, keyed.CurrentIndex)

	status, swiped := do(t, router, http.MethodPost, base+"/swipe", `{"start":{"x":100,"y":0},"end":{"x":300,"y":10}}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, swiped.CurrentIndex)

	status, _ = do(t, router, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, router, http.MethodPost, base+"/previous", "")
	require.Equal(t, http.StatusOK, status)

	status, closed := do(t, router, http.MethodPost, base+"/close", "")
	require.Equal(t, http.StatusOK, status)
	assert.False(t, closed.IsOpen)
	assert.Equal(t, 1, closed.CurrentIndex)

	status, fetched := do(t, router, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, fetched.CurrentIndex)
}

func TestHandler_Errors(t *testing.T) {
	router := newRouter(t)

	status, _ := do(t, router, http.MethodPost, "/projects/77/gallery", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, router, http.MethodGet, "/gallery/0190d7a4-5b2c-7d1e-8f00-1234567890ab", "")
	assert.Equal(t, http.StatusNotFound, status)

	_, created := do(t, router, http.MethodPost, "/projects/12/gallery", "")
	status, _ = do(t, router, http.MethodPost, "/gallery/"+created.SessionID+"/open", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_OpenWithoutIndexResumes(t *testing.T) {
	router := newRouter(t)

	_, created := do(t, router, http.MethodPost, "/projects/1/gallery", "")
	base := "/gallery/" + created.SessionID

	status, _ := do(t, router, http.MethodPost, base+"/open", `{"index":2}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, router, http.MethodPost, base+"/close", "")
	require.Equal(t, http.StatusOK, status)

	for _, body := range []string{`{}`, ""} {
		status, reopened := do(t, router, http.MethodPost, base+"/open", body)
		require.Equal(t, http.StatusOK, status, "body %q", body)
		assert.True(t, reopened.IsOpen)
		assert.Equal(t, 2, reopened.CurrentIndex, "body %q", body)
	}
}
