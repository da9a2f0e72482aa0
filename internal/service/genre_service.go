package service

import (
	"context"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
)

type GenreService interface {
	Create(ctx context.Context, req dto.CreateGenreRequest) (*dto.GenreResponse, error)
	List(ctx context.Context, search string) ([]dto.GenreResponse, error)
	Delete(ctx context.Context, slug string) error
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, req dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	genre := &model.Genre{
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}

	resp := dto.NewGenreResponse(genre)
	return &resp, nil
}

func (s *genreService) List(ctx context.Context, search string) ([]dto.GenreResponse, error) {
	genres, err := s.repo.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}
	return dto.NewGenreListResponse(genres), nil
}

func (s *genreService) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
