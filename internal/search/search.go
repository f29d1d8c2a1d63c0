// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search merges the project catalog and the travel logs into one
result list for a free-text query.

Matching is a case-insensitive substring test; there is no ranking. Project
matches come first in catalog order, then log matches in file order. The two
sources are independent: when one fails the other's matches are still
returned and the result is marked degraded.
*/
package search

import (
	"strconv"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// Kind tells the client how to render a result.
type Kind string

const (
	KindProject Kind = "project"
	KindLog     Kind = "log"
)

// Source names reported in failures and metrics.
const (
	SourceProjects = "projects"
	SourceLogs     = "logs"
)

// EmptyQueryPolicy decides what an empty query returns.
type EmptyQueryPolicy string

const (
	// EmptyQueryAll matches every record, as a substring test against "" does.
	EmptyQueryAll EmptyQueryPolicy = "all"
	// EmptyQueryNone returns nothing without reading any source.
	EmptyQueryNone EmptyQueryPolicy = "none"
)

// Result is one search hit.
type Result struct {
	Kind        Kind   `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	Date        string `json:"date,omitempty"`
	Link        string `json:"link"`
}

// Failure records a source that could not be searched.
type Failure struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// Outcome is the merged result of one query.
type Outcome struct {
	Query    string    `json:"query"`
	Results  []Result  `json:"results"`
	Degraded bool      `json:"degraded"`
	Failures []Failure `json:"failures,omitempty"`
}

func projectLink(id int) string {
	return constants.PortfolioPathPrefix + strconv.Itoa(id)
}

// Field names used in validation errors.
const FieldQuery = "query"
