// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/portfolio/project"
)

func bundledService(t *testing.T) *project.Service {
	t.Helper()
	repository, err := project.NewEmbeddedRepository()
	require.NoError(t, err)
	return project.NewService(repository)
}

func ids(projects []*project.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestEmbeddedCatalog(t *testing.T) {
	repository, err := project.NewEmbeddedRepository()
	require.NoError(t, err)

	all, err := repository.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 16)

	tuskys, err := repository.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "LG Shop-in-Shop Tuskys T-Mall", tuskys.Title)
	assert.True(t, tuskys.IsDesign())

	dashboard, err := repository.Get(context.Background(), 16)
	require.NoError(t, err)
	assert.True(t, dashboard.SingleImage)
}

func TestRepository_GetNotFound(t *testing.T) {
	repository, err := project.NewEmbeddedRepository()
	require.NoError(t, err)

	_, err = repository.Get(context.Background(), 999)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestNewRepositoryFromJSON_RejectsBadCatalogs(t *testing.T) {
	_, err := project.NewRepositoryFromJSON([]byte(`[{"id":1},{"id":1}]`))
	assert.ErrorContains(t, err, "duplicate id")

	_, err = project.NewRepositoryFromJSON([]byte(`[{"id":0}]`))
	assert.ErrorContains(t, err, "invalid id")

	_, err = project.NewRepositoryFromJSON([]byte(`{"id":1}`))
	assert.Error(t, err)
}

func TestService_List(t *testing.T) {
	service := bundledService(t)
	ctx := context.Background()

	t.Run("all is sorted by year descending and stable", func(t *testing.T) {
		projects, err := service.List(ctx, project.Filter{})
		require.NoError(t, err)
		require.Len(t, projects, 16)

		assert.Equal(t, 16, projects[0].ID, "2024 first")
		assert.Equal(t, 1, projects[1].ID, "2023 second")
		for i := 1; i < len(projects); i++ {
			assert.GreaterOrEqual(t, projects[i-1].Year(), projects[i].Year())
		}
		// 2020 projects keep catalog order
		assert.Equal(t, []int{12, 13, 14, 15}, ids(projects[5:9]))
	})

	t.Run("design", func(t *testing.T) {
		projects, err := service.List(ctx, project.Filter{Kind: project.KindDesign})
		require.NoError(t, err)
		assert.Len(t, projects, 11)
		for _, p := range projects {
			assert.False(t, p.IsComputer)
		}
	})

	t.Run("code", func(t *testing.T) {
		projects, err := service.List(ctx, project.Filter{Kind: project.KindCode})
		require.NoError(t, err)
		assert.Equal(t, []int{16, 12, 13, 14, 15}, ids(projects))
	})

	t.Run("tag", func(t *testing.T) {
		projects, err := service.List(ctx, project.Filter{Tags: []string{"KakaoTalk"}})
		require.NoError(t, err)
		assert.Equal(t, []int{13, 15}, ids(projects))
	})

	t.Run("any of several tags", func(t *testing.T) {
		projects, err := service.List(ctx, project.Filter{Tags: []string{"Django", "KakaoTalk"}})
		require.NoError(t, err)
		assert.Equal(t, []int{12, 13, 15}, ids(projects))
	})

	t.Run("student listing is empty in the bundled catalog", func(t *testing.T) {
		projects, err := service.List(ctx, project.Filter{Student: true})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := service.List(ctx, project.Filter{Kind: "photos"})
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestService_Neighbors(t *testing.T) {
	service := bundledService(t)
	ctx := context.Background()

	first, err := service.Neighbors(ctx, 16)
	require.NoError(t, err)
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Equal(t, project.Link{ID: 1, Title: "Samsung EO Retail Guide Pilot Store", Path: "/portfolio/arch-pro/1"}, *first.Next)

	middle, err := service.Neighbors(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, middle.Previous.ID)
	assert.Equal(t, 12, middle.Next.ID)
	assert.Equal(t, "/portfolio/code/12", middle.Next.Path)

	last, err := service.Neighbors(ctx, 11)
	require.NoError(t, err)
	assert.Nil(t, last.Next)

	_, err = service.Neighbors(ctx, 404)
	assert.Error(t, err)
}

func TestService_Images(t *testing.T) {
	service := bundledService(t)
	p, err := service.Get(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/images/arch-pro/02_LG_Event_East_Coast_Radio_Show/07.png",
		"/images/arch-pro/02_LG_Event_East_Coast_Radio_Show/08.png",
		"/images/arch-pro/02_LG_Event_East_Coast_Radio_Show/09.png",
	}, service.Images(p))

	assert.Equal(t, []string{
		"/images/arch-pro/02_LG_Event_East_Coast_Radio_Show/07.png",
		"/images/arch-pro/02_LG_Event_East_Coast_Radio_Show/09.png",
	}, p.AdditionalImages())
}
