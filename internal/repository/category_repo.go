package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindAll(ctx context.Context, search string) ([]*model.Category, error)
	Delete(ctx context.Context, slug string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, search string) ([]*model.Category, error) {
	var categories []*model.Category
	query := r.db.WithContext(ctx).Order("slug")

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (r *categoryRepository) Delete(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "slug = ?", slug)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
