package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindForReview(ctx context.Context, reviewID, commentID uuid.UUID) (*model.Comment, error)
	ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, reviewID, commentID uuid.UUID) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *commentRepository) FindForReview(ctx context.Context, reviewID, commentID uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND review_id = ?", commentID, reviewID).
		First(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("review_id = ?", reviewID).
		Order("pub_date").
		Find(&comments).Error; err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return translate(r.db.WithContext(ctx).
		Model(comment).
		Select("text").
		Updates(comment).Error)
}

func (r *commentRepository) Delete(ctx context.Context, reviewID, commentID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, "id = ? AND review_id = ?", commentID, reviewID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
