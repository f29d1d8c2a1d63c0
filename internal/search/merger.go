// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/folio/internal/logs"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/metrics"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/internal/portfolio/project"
)

// maxQueryLength is the longest accepted query, in bytes.
const maxQueryLength = 200

// ProjectLister lists the catalog in source order.
type ProjectLister interface {
	All(context context.Context) ([]*project.Project, error)
}

// Merger runs queries against both sources.
type Merger struct {
	projects ProjectLister
	logs     logs.Source
	policy   EmptyQueryPolicy
	metrics  *metrics.Registry
}

// NewMerger creates a merger. A nil registry disables metrics.
func NewMerger(projects ProjectLister, logSource logs.Source, policy EmptyQueryPolicy, registry *metrics.Registry) *Merger {
	if policy != EmptyQueryNone {
		policy = EmptyQueryAll
	}
	return &Merger{projects: projects, logs: logSource, policy: policy, metrics: registry}
}

// Search returns project matches followed by log matches. Source failures
// never fail the search; they are reported in the outcome instead.
func (merger *Merger) Search(context context.Context, query string) (*Outcome, error) {
	validator := &validate.Validator{}
	validator.MaxLen(FieldQuery, query, maxQueryLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	outcome := &Outcome{Query: query, Results: []Result{}}

	if needle == "" && merger.policy == EmptyQueryNone {
		return outcome, nil
	}

	var (
		projectResults, logResults []Result
		projectErr, logErr         error
		group                      errgroup.Group
	)

	// Each goroutine owns its own result and error; nothing is shared.
	group.Go(func() error {
		projectResults, projectErr = merger.searchProjects(context, needle)
		return nil
	})
	group.Go(func() error {
		logResults, logErr = merger.searchLogs(context, needle)
		return nil
	})
	_ = group.Wait()

	outcome.Results = append(outcome.Results, projectResults...)
	outcome.Results = append(outcome.Results, logResults...)

	merger.recordFailure(context, outcome, SourceProjects, projectErr)
	merger.recordFailure(context, outcome, SourceLogs, logErr)

	return outcome, nil
}

func (merger *Merger) searchProjects(context context.Context, needle string) ([]Result, error) {
	projects, err := merger.projects.All(context)
	if err != nil {
		return nil, err
	}

	results := []Result{}
	for _, p := range projects {
		if !MatchProject(p, needle) {
			continue
		}
		results = append(results, Result{
			Kind:        KindProject,
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
			Date:        p.Date,
			Link:        projectLink(p.ID),
		})
	}
	return results, nil
}

func (merger *Merger) searchLogs(context context.Context, needle string) ([]Result, error) {
	entries, err := merger.logs.Load(context)
	if err != nil {
		return nil, err
	}

	results := []Result{}
	for _, entry := range entries {
		if !MatchLog(&entry.Record, needle) {
			continue
		}
		results = append(results, Result{
			Kind:  KindLog,
			Title: entry.City + ", " + entry.Country,
			Image: constants.LogImagesBasePath + entry.Src,
			Date:  entry.DateOnly(),
			Link:  logs.CountryPath(entry.Country),
		})
	}
	return results, nil
}

func (merger *Merger) recordFailure(context context.Context, outcome *Outcome, source string, err error) {
	if err == nil {
		return
	}

	outcome.Degraded = true
	outcome.Failures = append(outcome.Failures, Failure{Source: source, Error: err.Error()})
	merger.metrics.SearchSourceFailed(source)

	ctxutil.GetLogger(context).Warn("search_source_failed",
		slog.String("source", source),
		slog.Any("error", err),
	)
}

// MatchProject tests the lowercased needle against title, description and
// long description.
func MatchProject(p *project.Project, needle string) bool {
	haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.DescriptionText)
	return strings.Contains(haystack, needle)
}

// MatchLog tests the lowercased needle against country, city and camera.
func MatchLog(record *logs.Record, needle string) bool {
	haystack := strings.ToLower(record.Country + " " + record.City + " " + record.CameraName())
	return strings.Contains(haystack, needle)
}
