// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/config"
)

/*
TestLoad_Defaults verifies that the server starts with no environment at all.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "all", cfg.SearchEmptyQuery)
	assert.Equal(t, "./public/assets/logsGrouped.json", cfg.LogsSource)
	assert.Equal(t, "./public/assets/logsData.json", cfg.SearchLogsSource)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasRedis())
}

/*
TestLoad_RejectsUnknownSearchPolicy checks early validation of SEARCH_EMPTY_QUERY.
*/
func TestLoad_RejectsUnknownSearchPolicy(t *testing.T) {
	t.Setenv("SEARCH_EMPTY_QUERY", "some")

	_, err := config.Load()
	require.Error(t, err)
}

/*
TestConfig_OriginAllowed covers the suffix rule and the explicit extra list.
*/
func TestConfig_OriginAllowed(t *testing.T) {
	cfg := &config.Config{
		AllowedOriginSuffix: "sjlee.co.kr",
		ExtraOrigins:        "http://localhost:5173, https://preview.example.com",
	}

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://sjlee.co.kr", true},
		{"https://www.sjlee.co.kr", true},
		{"http://localhost:5173", true},
		{"https://preview.example.com", true},
		{"https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.allowed, cfg.OriginAllowed(tt.origin))
		})
	}
}
