// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package project serves the static portfolio catalog.

The catalog is bundled into the binary and never changes at runtime. Every
lookup returns copies of the same immutable records, so handlers may share
them freely across requests.
*/
package project

import (
	"path"
	"slices"
	"strconv"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// # Domain Entities

// Project is one portfolio item (design or code work).
type Project struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	DescriptionText string   `json:"descriptionText,omitempty"`
	Image           string   `json:"image"`
	ImageFiles      []string `json:"imageFiles"`
	Tags            []string `json:"tags"`
	IsStudent       bool     `json:"isStudent"`
	IsComputer      bool     `json:"isComputer"`

	// SingleImage marks the one project whose gallery is only its primary image.
	SingleImage bool `json:"singleImage,omitempty"`
}

// Year returns the numeric project year, or 0 when the date is not a year.
func (p *Project) Year() int {
	year, err := strconv.Atoi(p.Date)
	if err != nil {
		return 0
	}
	return year
}

// IsDesign reports whether the project is professional design work.
func (p *Project) IsDesign() bool {
	return !p.IsComputer && !p.IsStudent
}

// Folder is the directory holding the primary image and its siblings.
func (p *Project) Folder() string {
	return path.Dir(p.Image)
}

// AdditionalImages resolves every image file other than the primary one,
// in catalog order.
func (p *Project) AdditionalImages() []string {
	primary := path.Base(p.Image)
	folder := p.Folder()

	images := make([]string, 0, len(p.ImageFiles))
	for _, file := range p.ImageFiles {
		if file == primary {
			continue
		}
		images = append(images, path.Join(folder, file))
	}
	return images
}

// DetailPath is the frontend route of the project page.
func (p *Project) DetailPath() string {
	if p.IsComputer {
		return constants.CodeDetailPathPrefix + strconv.Itoa(p.ID)
	}
	return constants.DesignDetailPathPrefix + strconv.Itoa(p.ID)
}

// # Queries

// Kind filters the public portfolio listing.
type Kind string

const (
	KindAll    Kind = "all"
	KindDesign Kind = "design"
	KindCode   Kind = "code"
)

// Filter narrows the catalog listing. Tags keeps projects carrying any of
// the listed tags; no tags keeps all.
type Filter struct {
	Kind    Kind
	Tags    []string
	Student bool
}

// Matches reports whether the project belongs in a listing with this filter.
func (f Filter) Matches(p *Project) bool {
	if p.IsStudent != f.Student {
		return false
	}

	switch f.Kind {
	case KindDesign:
		if p.IsComputer {
			return false
		}
	case KindCode:
		if !p.IsComputer {
			return false
		}
	}

	if len(f.Tags) == 0 {
		return true
	}
	for _, tag := range p.Tags {
		if slices.Contains(f.Tags, tag) {
			return true
		}
	}
	return false
}

// Link is a reference to another project page.
type Link struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Neighbors are the previous and next projects in listing order.
type Neighbors struct {
	Previous *Link `json:"previous"`
	Next     *Link `json:"next"`
}

func linkTo(p *Project) *Link {
	return &Link{ID: p.ID, Title: p.Title, Path: p.DetailPath()}
}

// Field names used in validation errors.
const (
	FieldID   = "id"
	FieldKind = "filter"
	FieldTag  = "tag"
)
