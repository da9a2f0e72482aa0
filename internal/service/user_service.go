package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
)

type UserService interface {
	List(ctx context.Context, search string) ([]dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, username string) (*dto.UserResponse, error)
	Update(ctx context.Context, username string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, username string) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UpdateSelfRequest) (*dto.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context, search string) ([]dto.UserResponse, error) {
	users, err := s.users.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}
	return dto.NewUserListResponse(users), nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      model.Role(req.Role),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, username string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applyProfileFields(user, req.Username, req.Email, req.FirstName, req.LastName, req.Bio)
	if req.Role != nil {
		user.Role = model.Role(*req.Role)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	return s.users.Delete(ctx, username)
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateMe applies a self-service profile edit. The role field is not
// reachable from here.
func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UpdateSelfRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileFields(user, req.Username, req.Email, req.FirstName, req.LastName, req.Bio)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func applyProfileFields(user *model.User, username, email, firstName, lastName, bio *string) {
	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if bio != nil {
		user.Bio = *bio
	}
}
