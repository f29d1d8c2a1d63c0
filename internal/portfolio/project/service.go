// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"context"
	"path"
	"sort"

	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/slice"
)

// Service exposes catalog queries.
type Service struct {
	repository Repository
}

// NewService creates a catalog service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// List returns the projects matching the filter, newest year first.
// Projects from the same year keep their catalog order.
func (service *Service) List(context context.Context, filter Filter) ([]*Project, error) {
	if filter.Kind == "" {
		filter.Kind = KindAll
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldKind, string(filter.Kind), string(KindAll), string(KindDesign), string(KindCode))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	projects, err := service.repository.All(context)
	if err != nil {
		return nil, err
	}

	matched := slice.Filter(projects, filter.Matches)

	sortByYearDesc(matched)
	return matched, nil
}

// Get returns one project.
func (service *Service) Get(context context.Context, id int) (*Project, error) {
	return service.repository.Get(context, id)
}

// Neighbors returns the previous and next professional projects around id,
// ordered like the unfiltered public listing. There is no wrap-around.
func (service *Service) Neighbors(context context.Context, id int) (*Neighbors, error) {
	current, err := service.repository.Get(context, id)
	if err != nil {
		return nil, err
	}

	neighbors := &Neighbors{}
	if current.IsStudent {
		return neighbors, nil
	}

	listing, err := service.List(context, Filter{Kind: KindAll})
	if err != nil {
		return nil, err
	}

	for index, p := range listing {
		if p.ID != id {
			continue
		}
		if index > 0 {
			neighbors.Previous = linkTo(listing[index-1])
		}
		if index < len(listing)-1 {
			neighbors.Next = linkTo(listing[index+1])
		}
		break
	}

	return neighbors, nil
}

// Images resolves every image file of the project against its folder.
func (service *Service) Images(p *Project) []string {
	folder := p.Folder()
	images := make([]string, len(p.ImageFiles))
	for index, file := range p.ImageFiles {
		images[index] = path.Join(folder, file)
	}
	return images
}

func sortByYearDesc(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Year() > projects[j].Year()
	})
}
