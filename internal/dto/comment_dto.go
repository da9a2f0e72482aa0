package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func NewCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Author:  c.Author.Username,
		PubDate: c.PubDate,
	}
}

func NewCommentListResponse(comments []*model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}
