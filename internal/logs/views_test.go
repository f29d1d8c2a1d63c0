// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/logs"
)

func TestBuildCountryView(t *testing.T) {
	entries := loadFixture(t)

	t.Run("years newest first", func(t *testing.T) {
		view := logs.BuildCountryView(entries, "south-africa")

		assert.Equal(t, "south africa", view.Name)
		require.Len(t, view.Years, 2)
		assert.Equal(t, "2022", view.Years[0].Year)
		assert.Equal(t, "2018", view.Years[1].Year)
		assert.Len(t, view.Years[1].Items, 2)
		assert.Empty(t, view.Message)

		// File order: Durban (2018) precedes Johannesburg (2022)
		require.Len(t, view.MapPoints, 2)
		assert.Equal(t, logs.MapPoint{Lat: -29.8587, Lng: 31.0218}, view.Center)
	})

	t.Run("city map flattened in order", func(t *testing.T) {
		view := logs.BuildCountryView(entries, "kenya")

		require.Len(t, view.Years, 1)
		items := view.Years[0].Items
		require.Len(t, items, 3)
		assert.Equal(t, "Nairobi", items[0].City)
		assert.Equal(t, "/assets/logs/images/2018/nairobi-01.jpg", items[0].URL)
		assert.Equal(t, "2018-05-01", items[0].Date)
		assert.Equal(t, "Mombasa", items[2].City)
		assert.Len(t, view.MapPoints, 2)
	})

	t.Run("unknown country", func(t *testing.T) {
		view := logs.BuildCountryView(entries, "atlantis")

		assert.Empty(t, view.Years)
		assert.Empty(t, view.MapPoints)
		assert.Equal(t, logs.MapPoint{}, view.Center)
		assert.Equal(t, logs.NoLogsMessage, view.Message)
	})
}

func TestBuildMarkers(t *testing.T) {
	markers := logs.BuildMarkers(loadFixture(t))

	require.Len(t, markers, 3)
	assert.Equal(t, logs.Marker{
		Country: "Kenya",
		Year:    "2018",
		Lat:     -1.2921,
		Lng:     36.8219,
		Label:   "Kenya (2018)",
		Link:    "/logs/kenya",
	}, markers[0])

	// First Durban record has no coordinates, so the second one is used
	assert.Equal(t, -29.8587, markers[1].Lat)
	assert.Equal(t, "/logs/south-africa", markers[1].Link)
	assert.Equal(t, "2022", markers[2].Year)
}

func TestGroup(t *testing.T) {
	date := func(s string) *string { return &s }

	records := []logs.Record{
		{Src: "1.jpg", Date: date("2019-03-01T00:00:00"), Country: "Japan", City: "Tokyo"},
		{Src: "2.jpg", Date: date("2018-01-01T00:00:00"), Country: "Kenya"},
		{Src: "3.jpg", Date: nil, Country: "Japan", City: "Tokyo"},
		{Src: "4.jpg", Date: date("2019-04-01T00:00:00"), Country: "", City: "Osaka"},
		{Src: "5.jpg", Date: date("2019-05-01T00:00:00"), Country: "Japan", City: "Tokyo"},
	}

	grouped := logs.Group(records)
	assert.Equal(t, 3, grouped.Len())

	raw, err := grouped.MarshalJSON()
	require.NoError(t, err)

	want := `{"2019":{"Japan":{"Tokyo":[` +
		`{"src":"1.jpg","type":"","date":"2019-03-01T00:00:00","country":"Japan","city":"Tokyo"},` +
		`{"src":"5.jpg","type":"","date":"2019-05-01T00:00:00","country":"Japan","city":"Tokyo"}]}},` +
		`"2018":{"Kenya":{"Unknown":[{"src":"2.jpg","type":"","date":"2018-01-01T00:00:00","country":"Kenya","city":""}]}}}`
	assert.JSONEq(t, want, string(raw))
	assert.Less(t, indexOf(string(raw), `"2019"`), indexOf(string(raw), `"2018"`), "first-seen year order")
}

func TestGroup_DecodesBack(t *testing.T) {
	grouped := logs.Group(recordsOf(loadFixture(t)))

	raw, err := grouped.MarshalJSON()
	require.NoError(t, err)

	entries, err := logs.Decode(bytesReader(raw))
	require.NoError(t, err)
	assert.Equal(t, grouped.Len(), len(entries))
}
