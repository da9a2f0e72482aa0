package dto

import (
	"math"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

// TitleFilterQuery binds the listing query string; every field is
// optional and they all combine.
type TitleFilterQuery struct {
	Category string `form:"category"`
	Genre    string `form:"genre"`
	Name     string `form:"name"`
	Year     int    `form:"year"`
}

type CreateTitleRequest struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        int      `json:"year" binding:"required,year_not_future"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required,slug"`
	Genre       []string `json:"genre" binding:"omitempty,dive,slug"`
}

// UpdateTitleRequest is a partial update. A nil Genre slice keeps the
// current genre links; an empty one clears them.
type UpdateTitleRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=256"`
	Year        *int     `json:"year" binding:"omitempty,year_not_future"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,slug"`
	Genre       []string `json:"genre" binding:"omitempty,dive,slug"`
}

type TitleResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Rating      *int              `json:"rating"`
	Description string            `json:"description"`
	Genre       []GenreResponse   `json:"genre"`
	Category    *CategoryResponse `json:"category"`
}

// NewTitleResponse renders a title with its freshly computed rating.
// rating is nil when the title has no reviews; the JSON then carries
// an explicit null.
func NewTitleResponse(t *model.Title, rating *float64) TitleResponse {
	resp := TitleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Description: t.Description,
		Genre:       make([]GenreResponse, 0, len(t.Genres)),
	}
	for _, g := range t.Genres {
		resp.Genre = append(resp.Genre, NewGenreResponse(&g))
	}
	if t.Category != nil {
		c := NewCategoryResponse(t.Category)
		resp.Category = &c
	}
	if rating != nil {
		rounded := int(math.Round(*rating))
		resp.Rating = &rounded
	}
	return resp
}
