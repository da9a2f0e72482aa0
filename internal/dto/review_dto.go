package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

type CreateReviewRequest struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score" binding:"required,score"`
}

type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score" binding:"omitempty,score"`
}

type ReviewResponse struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func NewReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Text:    r.Text,
		Author:  r.Author.Username,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

func NewReviewListResponse(reviews []*model.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewResponse(r))
	}
	return out
}
