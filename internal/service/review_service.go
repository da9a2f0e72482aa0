package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

type ReviewService interface {
	Create(ctx context.Context, titleID, authorID uuid.UUID, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	List(ctx context.Context, titleID uuid.UUID) ([]dto.ReviewResponse, error)
	Get(ctx context.Context, titleID, reviewID uuid.UUID) (*dto.ReviewResponse, error)
	Update(ctx context.Context, titleID, reviewID, actorID uuid.UUID, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID, actorID uuid.UUID) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	titles  repository.TitleRepository
	users   repository.UserRepository
}

func NewReviewService(
	reviews repository.ReviewRepository,
	titles repository.TitleRepository,
	users repository.UserRepository,
) ReviewService {
	return &reviewService{reviews: reviews, titles: titles, users: users}
}

// Create adds the author's review of a title. The second review by the
// same author lands on the unique index and comes back as a conflict.
func (s *reviewService) Create(ctx context.Context, titleID, authorID uuid.UUID, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.titles.FindByID(ctx, titleID); err != nil {
		return nil, err
	}

	review := &model.Review{
		TitleID:  titleID,
		AuthorID: authorID,
		Text:     req.Text,
		Score:    req.Score,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	created, err := s.reviews.FindForTitle(ctx, titleID, review.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewReviewResponse(created)
	return &resp, nil
}

func (s *reviewService) List(ctx context.Context, titleID uuid.UUID) ([]dto.ReviewResponse, error) {
	if _, err := s.titles.FindByID(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewListResponse(reviews), nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID uuid.UUID) (*dto.ReviewResponse, error) {
	review, err := s.reviews.FindForTitle(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID, actorID uuid.UUID, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviews.FindForTitle(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.canModify(ctx, actorID, review.AuthorID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID, actorID uuid.UUID) error {
	review, err := s.reviews.FindForTitle(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if err := s.canModify(ctx, actorID, review.AuthorID); err != nil {
		return err
	}

	return s.reviews.Delete(ctx, titleID, reviewID)
}

// canModify allows the author, moderators and admins through.
func (s *reviewService) canModify(ctx context.Context, actorID, authorID uuid.UUID) error {
	if actorID == authorID {
		return nil
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.IsAdmin() || actor.IsModerator() {
		return nil
	}
	return apperror.ErrForbidden
}
