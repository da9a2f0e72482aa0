package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

func TestCreateUserWithRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "critic",
		Email:    "critic@example.com",
		Role:     "moderator",
	})
	require.NoError(t, err)

	assert.Equal(t, "critic", resp.Username)
	assert.Equal(t, "moderator", resp.Role)

	require.Len(t, users.created, 1)
	assert.Equal(t, model.RoleModerator, users.created[0].Role)
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdatePromotesRole(t *testing.T) {
	user := &model.User{Username: "critic", Email: "critic@example.com", Role: model.RoleUser}
	users := newFakeUserRepo(user)
	svc := NewUserService(users)

	resp, err := svc.Update(context.Background(), "critic", dto.UpdateUserRequest{
		Role: ptr("moderator"),
	})
	require.NoError(t, err)

	assert.Equal(t, "moderator", resp.Role)
	assert.Equal(t, model.RoleModerator, user.Role)
}

func TestUpdateMeKeepsRole(t *testing.T) {
	user := &model.User{Username: "critic", Email: "critic@example.com", Role: model.RoleModerator}
	users := newFakeUserRepo(user)
	svc := NewUserService(users)

	resp, err := svc.UpdateMe(context.Background(), user.ID, dto.UpdateSelfRequest{
		FirstName: ptr("Ada"),
		Bio:       ptr("reads everything"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", resp.FirstName)
	assert.Equal(t, "reads everything", resp.Bio)
	assert.Equal(t, model.RoleModerator, user.Role, "self-service edits never touch the role")
}

func TestListUsersFiltersBySearch(t *testing.T) {
	users := newFakeUserRepo(
		&model.User{Username: "anna", Email: "anna@example.com", Role: model.RoleUser},
		&model.User{Username: "boris", Email: "boris@example.com", Role: model.RoleUser},
		&model.User{Username: "annabel", Email: "annabel@example.com", Role: model.RoleUser},
	)
	svc := NewUserService(users)

	out, err := svc.List(context.Background(), "anna")
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "anna", out[0].Username)
	assert.Equal(t, "annabel", out[1].Username)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.Delete(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
