package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) error
	FindBySlug(ctx context.Context, slug string) (*model.Genre, error)
	FindAll(ctx context.Context, search string) ([]*model.Genre, error)
	Delete(ctx context.Context, slug string) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, genre *model.Genre) error {
	return translate(r.db.WithContext(ctx).Create(genre).Error)
}

func (r *genreRepository) FindBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&genre).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context, search string) ([]*model.Genre, error) {
	var genres []*model.Genre
	query := r.db.WithContext(ctx).Order("slug")

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Find(&genres).Error; err != nil {
		return nil, translate(err)
	}
	return genres, nil
}

// Delete removes the genre row; the join table cascades behind it, so a
// deleted genre silently drops off every title that carried it.
func (r *genreRepository) Delete(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Delete(&model.Genre{}, "slug = ?", slug)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
