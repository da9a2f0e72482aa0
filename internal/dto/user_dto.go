package dto

import (
	"github.com/yamdb-team/yamdb-api/internal/model"
)

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,username"`
	Email     string `json:"email" binding:"required,email,max=254"`
	FirstName string `json:"first_name" binding:"omitempty,max=150"`
	LastName  string `json:"last_name" binding:"omitempty,max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role" binding:"omitempty,oneof=user moderator admin"`
}

// UpdateUserRequest carries a partial update; nil means "leave as is".
type UpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,username"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role" binding:"omitempty,oneof=user moderator admin"`
}

// UpdateSelfRequest is UpdateUserRequest without the role field: a user
// cannot promote themselves through /users/me.
type UpdateSelfRequest struct {
	Username  *string `json:"username" binding:"omitempty,username"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio"`
}

type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      string(u.Role),
	}
}

func NewUserListResponse(users []*model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
