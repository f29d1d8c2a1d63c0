// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/contact"
)

func TestHTTPRelay_Send(t *testing.T) {
	var received contact.Form
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(request.Body).Decode(&received))
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	relay := contact.NewHTTPRelay(server.URL, server.Client())
	status, err := relay.Send(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, validForm(), received)
}

func TestHTTPRelay_RejectedStatus(t *testing.T) {
	for _, code := range []int{http.StatusMovedPermanently, http.StatusUnprocessableEntity, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(code)
		}))

		status, err := contact.NewHTTPRelay(server.URL, &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		}).Send(context.Background(), validForm())
		server.Close()

		assert.Error(t, err, "status %d", code)
		assert.Equal(t, code, status)
	}
}

func TestHTTPRelay_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	status, err := contact.NewHTTPRelay(url, &http.Client{Timeout: time.Second}).Send(context.Background(), validForm())

	assert.Error(t, err)
	assert.Zero(t, status)
}
