// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"sort"
	"strconv"

	"github.com/taibuivan/folio/pkg/slug"
)

// NoLogsMessage is shown when a country has no entries.
const NoLogsMessage = "No logs found for this country."

// Item is one tile of the country page.
type Item struct {
	Src      string    `json:"src"`
	Type     MediaType `json:"type"`
	URL      string    `json:"url"`
	Date     string    `json:"date"`
	City     string    `json:"city"`
	Camera   string    `json:"camera,omitempty"`
	Location *MapPoint `json:"location,omitempty"`
}

// YearLogs groups the tiles of one year.
type YearLogs struct {
	Year  string `json:"year"`
	Items []Item `json:"items"`
}

// MapPoint is a coordinate on the country map.
type MapPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CountryView is the country page: tiles by year and the map pins.
type CountryView struct {
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	Years     []YearLogs `json:"years"`
	MapPoints []MapPoint `json:"mapPoints"`
	Center    MapPoint   `json:"center"`
	Message   string     `json:"message,omitempty"`
}

// BuildCountryView collects the entries filed under the country matching
// countrySlug. Years are newest first; items keep file order within a year.
// The map is centred on the first pinned entry, or on 0,0 without pins.
func BuildCountryView(entries []Entry, countrySlug string) *CountryView {
	view := &CountryView{
		Slug:      countrySlug,
		Name:      slug.Title(countrySlug),
		Years:     []YearLogs{},
		MapPoints: []MapPoint{},
	}

	yearIndex := make(map[string]int)
	for _, entry := range entries {
		if !slug.Equal(entry.GroupCountry, countrySlug) {
			continue
		}

		index, seen := yearIndex[entry.Year]
		if !seen {
			index = len(view.Years)
			yearIndex[entry.Year] = index
			view.Years = append(view.Years, YearLogs{Year: entry.Year})
		}

		item := Item{
			Src:    entry.Src,
			Type:   entry.Type,
			URL:    entry.MediaURL(),
			Date:   entry.DateOnly(),
			City:   entry.City,
			Camera: entry.CameraName(),
		}
		if entry.HasCoordinates() {
			point := MapPoint{Lat: *entry.Latitude, Lng: *entry.Longitude}
			item.Location = &point
			view.MapPoints = append(view.MapPoints, point)
		}
		view.Years[index].Items = append(view.Years[index].Items, item)
	}

	sort.SliceStable(view.Years, func(i, j int) bool {
		return yearNumber(view.Years[i].Year) > yearNumber(view.Years[j].Year)
	})

	if len(view.MapPoints) > 0 {
		view.Center = view.MapPoints[0]
	}
	if len(view.Years) == 0 {
		view.Message = NoLogsMessage
	}

	return view
}

// yearNumber orders non-numeric years after every real one.
func yearNumber(year string) int {
	number, err := strconv.Atoi(year)
	if err != nil {
		return -1
	}
	return number
}
