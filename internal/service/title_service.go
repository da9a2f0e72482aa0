package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/internal/search"
)

type TitleService interface {
	Create(ctx context.Context, req dto.CreateTitleRequest) (*dto.TitleResponse, error)
	List(ctx context.Context, filter repository.TitleFilter) ([]dto.TitleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TitleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTitleRequest) (*dto.TitleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleService struct {
	titles     repository.TitleRepository
	categories repository.CategoryRepository
	genres     repository.GenreRepository
	index      search.TitleIndex
}

// NewTitleService wires the title workflows. index may be nil, which
// turns search indexing off.
func NewTitleService(
	titles repository.TitleRepository,
	categories repository.CategoryRepository,
	genres repository.GenreRepository,
	index search.TitleIndex,
) TitleService {
	return &titleService{
		titles:     titles,
		categories: categories,
		genres:     genres,
		index:      index,
	}
}

func (s *titleService) Create(ctx context.Context, req dto.CreateTitleRequest) (*dto.TitleResponse, error) {
	category, err := s.categories.FindBySlug(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	title := &model.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
		Genres:      genres,
	}

	if err := s.titles.Create(ctx, title); err != nil {
		return nil, err
	}

	created, err := s.titles.FindByID(ctx, title.ID)
	if err != nil {
		return nil, err
	}

	s.reindex(created)

	resp := dto.NewTitleResponse(created, nil)
	return &resp, nil
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter) ([]dto.TitleResponse, error) {
	titles, err := s.titles.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(titles))
	for _, t := range titles {
		ids = append(ids, t.ID)
	}

	ratings, err := s.titles.Ratings(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TitleResponse, 0, len(titles))
	for _, t := range titles {
		var rating *float64
		if avg, ok := ratings[t.ID]; ok {
			rating = &avg
		}
		out = append(out, dto.NewTitleResponse(t, rating))
	}
	return out, nil
}

func (s *titleService) Get(ctx context.Context, id uuid.UUID) (*dto.TitleResponse, error) {
	title, err := s.titles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rating, err := s.titles.Rating(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTitleResponse(title, rating)
	return &resp, nil
}

func (s *titleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTitleRequest) (*dto.TitleResponse, error) {
	title, err := s.titles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		category, err := s.categories.FindBySlug(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
		title.Category = category
	}

	// nil keeps the current genre links, an empty list clears them
	var genres []model.Genre
	if req.Genre != nil {
		if genres, err = s.resolveGenres(ctx, req.Genre); err != nil {
			return nil, err
		}
	}

	if err := s.titles.Update(ctx, title, genres); err != nil {
		return nil, err
	}

	updated, err := s.titles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.reindex(updated)

	rating, err := s.titles.Rating(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTitleResponse(updated, rating)
	return &resp, nil
}

func (s *titleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.titles.Delete(ctx, id); err != nil {
		return err
	}

	if s.index != nil {
		if err := s.index.DeleteTitle(id.String()); err != nil {
			log.Printf("Failed to remove title %s from search index: %v", id, err)
		}
	}
	return nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]model.Genre, error) {
	genres := make([]model.Genre, 0, len(slugs))
	for _, slug := range slugs {
		genre, err := s.genres.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}

func (s *titleService) reindex(title *model.Title) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexTitle(title); err != nil {
		log.Printf("Failed to index title %s: %v", title.ID, err)
	}
}
