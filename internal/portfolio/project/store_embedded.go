// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

//go:embed projects.json
var bundledCatalog []byte

// EmbeddedRepository serves the catalog bundled with the binary.
type EmbeddedRepository struct {
	projects []*Project
	byID     map[int]*Project
}

// NewEmbeddedRepository loads the bundled catalog.
func NewEmbeddedRepository() (*EmbeddedRepository, error) {
	return NewRepositoryFromJSON(bundledCatalog)
}

// NewRepositoryFromJSON loads a catalog from raw JSON.
// Duplicate or non-positive ids are rejected.
func NewRepositoryFromJSON(raw []byte) (*EmbeddedRepository, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var projects []*Project
	if err := decoder.Decode(&projects); err != nil {
		return nil, fmt.Errorf("project: decode catalog: %w", err)
	}

	byID := make(map[int]*Project, len(projects))
	for _, p := range projects {
		if p.ID <= 0 {
			return nil, fmt.Errorf("project: invalid id %d in catalog", p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("project: duplicate id %d in catalog", p.ID)
		}
		byID[p.ID] = p
	}

	return &EmbeddedRepository{projects: projects, byID: byID}, nil
}

func (repository *EmbeddedRepository) All(_ context.Context) ([]*Project, error) {
	out := make([]*Project, len(repository.projects))
	copy(out, repository.projects)
	return out, nil
}

func (repository *EmbeddedRepository) Get(_ context.Context, id int) (*Project, error) {
	p, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("Project")
	}
	return p, nil
}
