package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindForTitle(ctx context.Context, titleID, reviewID uuid.UUID) (*model.Review, error)
	ListByTitle(ctx context.Context, titleID uuid.UUID) ([]*model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, titleID, reviewID uuid.UUID) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

func (r *reviewRepository) FindForTitle(ctx context.Context, titleID, reviewID uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND title_id = ?", reviewID, titleID).
		First(&review).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListByTitle(ctx context.Context, titleID uuid.UUID) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("title_id = ?", titleID).
		Order("pub_date").
		Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

// Update touches text and score only. pub_date stays whatever the row
// was created with.
func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return translate(r.db.WithContext(ctx).
		Model(review).
		Select("text", "score").
		Updates(review).Error)
}

func (r *reviewRepository) Delete(ctx context.Context, titleID, reviewID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Review{}, "id = ? AND title_id = ?", reviewID, titleID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
