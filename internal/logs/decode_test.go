// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/logs"
)

func loadFixture(t *testing.T) []logs.Entry {
	t.Helper()
	file, err := os.Open("testdata/logsGrouped.json")
	require.NoError(t, err)
	defer file.Close()

	entries, err := logs.Decode(file)
	require.NoError(t, err)
	return entries
}

func srcs(entries []logs.Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Src
	}
	return out
}

func TestDecode_GroupedKeepsFileOrder(t *testing.T) {
	entries := loadFixture(t)

	assert.Equal(t, []string{
		"2018/nairobi-01.jpg",
		"2018/nairobi-02.mp4",
		"2018/mombasa-01.jpg",
		"2018/durban-01.jpg",
		"2018/durban-02.jpg",
		"2022/jhb-01.jpg",
	}, srcs(entries))

	first := entries[0]
	assert.Equal(t, "2018", first.Year)
	assert.Equal(t, "Kenya", first.GroupCountry)
	assert.Equal(t, "Nairobi", first.GroupCity)
	assert.Equal(t, "2018-05-01", first.DateOnly())
	assert.Equal(t, "iPhone X", first.CameraName())
	assert.True(t, first.HasCoordinates())

	durban := entries[3]
	assert.Equal(t, "South Africa", durban.GroupCountry)
	assert.Empty(t, durban.GroupCity, "array leaves have no city key")
	assert.False(t, durban.HasCoordinates())

	video := entries[1]
	assert.Equal(t, logs.MediaVideo, video.Type)
	assert.Equal(t, "", video.DateOnly())
	assert.Equal(t, "/assets/logs/videos/2018/nairobi-02.mp4", video.MediaURL())
}

func TestDecode_FlatArray(t *testing.T) {
	entries, err := logs.Decode(strings.NewReader(`[
		{"src":"a.jpg","type":"image","date":"2019-01-02T03:04:05","country":"Japan","city":"Tokyo"},
		{"src":"b.jpg","type":"image","date":null,"country":null,"city":null}
	]`))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "2019", entries[0].Year)
	assert.Equal(t, "Japan", entries[0].GroupCountry)
	assert.Equal(t, "", entries[1].Year)
	assert.Equal(t, "", entries[1].Country)
}

func TestDecode_GroupKeysFillMissingRecordFields(t *testing.T) {
	entries, err := logs.Decode(strings.NewReader(`{"2020":{"Kenya":{"Nairobi":[{"src":"x.jpg","type":"image","date":"2020-01-01"}]}}}`))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Kenya", entries[0].Country)
	assert.Equal(t, "Nairobi", entries[0].City)
}

func TestDecode_Empty(t *testing.T) {
	for _, input := range []string{`[]`, `{}`, `{"2020":{}}`} {
		entries, err := logs.Decode(strings.NewReader(input))
		require.NoError(t, err, input)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := []string{
		``,
		`"logs"`,
		`{"2020":[]}`,
		`{"2020":{"Kenya":"Nairobi"}}`,
		`{"2020":{"Kenya":{"Nairobi":{}}}}`,
		`[{"src":1}]`,
		`{"2020":{"Kenya":[`,
	}

	for _, input := range inputs {
		_, err := logs.Decode(strings.NewReader(input))
		assert.ErrorIs(t, err, logs.ErrMalformed, input)
	}
}
