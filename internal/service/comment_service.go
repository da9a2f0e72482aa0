package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

type CommentService interface {
	Create(ctx context.Context, titleID, reviewID, authorID uuid.UUID, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	List(ctx context.Context, titleID, reviewID uuid.UUID) ([]dto.CommentResponse, error)
	Get(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*dto.CommentResponse, error)
	Update(ctx context.Context, titleID, reviewID, commentID, actorID uuid.UUID, req dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, titleID, reviewID, commentID, actorID uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	reviews  repository.ReviewRepository
	users    repository.UserRepository
}

func NewCommentService(
	comments repository.CommentRepository,
	reviews repository.ReviewRepository,
	users repository.UserRepository,
) CommentService {
	return &commentService{comments: comments, reviews: reviews, users: users}
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID, authorID uuid.UUID, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.reviews.FindForTitle(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ReviewID: reviewID,
		AuthorID: authorID,
		Text:     req.Text,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.comments.FindForReview(ctx, reviewID, comment.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCommentResponse(created)
	return &resp, nil
}

func (s *commentService) List(ctx context.Context, titleID, reviewID uuid.UUID) ([]dto.CommentResponse, error) {
	if _, err := s.reviews.FindForTitle(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return dto.NewCommentListResponse(comments), nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*dto.CommentResponse, error) {
	if _, err := s.reviews.FindForTitle(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.comments.FindForReview(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID, actorID uuid.UUID, req dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.reviews.FindForTitle(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.comments.FindForReview(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.canModify(ctx, actorID, comment.AuthorID); err != nil {
		return nil, err
	}

	comment.Text = req.Text

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID, actorID uuid.UUID) error {
	if _, err := s.reviews.FindForTitle(ctx, titleID, reviewID); err != nil {
		return err
	}

	comment, err := s.comments.FindForReview(ctx, reviewID, commentID)
	if err != nil {
		return err
	}

	if err := s.canModify(ctx, actorID, comment.AuthorID); err != nil {
		return err
	}

	return s.comments.Delete(ctx, reviewID, commentID)
}

func (s *commentService) canModify(ctx context.Context, actorID, authorID uuid.UUID) error {
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
