package service

import (
	"context"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, search string) ([]dto.CategoryResponse, error)
	Delete(ctx context.Context, slug string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// Create inserts the category and lets the unique index on slug decide
// collisions; there is no pre-check to race against.
func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &model.Category{
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, search string) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryListResponse(categories), nil
}

func (s *categoryService) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
