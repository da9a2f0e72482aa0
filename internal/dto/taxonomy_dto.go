package dto

import (
	"github.com/yamdb-team/yamdb-api/internal/model"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required,slug"`
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required,slug"`
}

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{Name: c.Name, Slug: c.Slug}
}

func NewGenreResponse(g *model.Genre) GenreResponse {
	return GenreResponse{Name: g.Name, Slug: g.Slug}
}

func NewCategoryListResponse(categories []*model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

func NewGenreListResponse(genres []*model.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, NewGenreResponse(g))
	}
	return out
}
