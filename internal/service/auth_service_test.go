package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

const testSecret = "test-secret"

func newAuthFixture(users *fakeUserRepo) (AuthService, *fakeCodeStore, *fakeMailer) {
	codes := newFakeCodeStore()
	mail := &fakeMailer{}
	svc := NewAuthService(users, codes, mail, nil, testSecret, time.Hour)
	return svc, codes, mail
}

func TestSignupCreatesUserAndSendsCode(t *testing.T) {
	users := newFakeUserRepo()
	svc, codes, mail := newAuthFixture(users)

	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "reader@example.com",
		Username: "bookworm",
	})
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", resp.Email)
	assert.Equal(t, "bookworm", resp.Username)

	require.Len(t, users.created, 1)
	assert.Equal(t, model.RoleUser, users.created[0].Role)
	assert.False(t, users.created[0].IsSuperuser)

	code, ok := codes.saved["bookworm"]
	require.True(t, ok, "confirmation code should be stored")
	assert.Len(t, code, 8)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "reader@example.com", mail.sent[0].to)
	assert.Equal(t, code, mail.sent[0].code)
}

func TestSignupResendsCodeToExistingUser(t *testing.T) {
	users := newFakeUserRepo(&model.User{
		Username: "bookworm",
		Email:    "reader@example.com",
		Role:     model.RoleUser,
	})
	svc, codes, mail := newAuthFixture(users)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "reader@example.com",
		Username: "bookworm",
	})
	require.NoError(t, err)

	assert.Empty(t, users.created, "no second account for the same pair")
	assert.Contains(t, codes.saved, "bookworm")
	assert.Len(t, mail.sent, 1)
}

func TestSignupRejectsTakenUsername(t *testing.T) {
	users := newFakeUserRepo(&model.User{
		Username: "bookworm",
		Email:    "reader@example.com",
	})
	svc, _, mail := newAuthFixture(users)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "someone-else@example.com",
		Username: "bookworm",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Empty(t, mail.sent)
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	users := newFakeUserRepo(&model.User{
		Username: "bookworm",
		Email:    "reader@example.com",
	})
	svc, _, mail := newAuthFixture(users)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "reader@example.com",
		Username: "impostor",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Empty(t, mail.sent)
}

func TestTokenReturnsSignedJWT(t *testing.T) {
	user := &model.User{Username: "bookworm", Email: "reader@example.com"}
	users := newFakeUserRepo(user)
	svc, codes, _ := newAuthFixture(users)
	codes.saved["bookworm"] = "ABCD1234"

	resp, err := svc.Token(context.Background(), dto.TokenRequest{
		Username:         "bookworm",
		ConfirmationCode: "ABCD1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenUnknownUsername(t *testing.T) {
	svc, codes, _ := newAuthFixture(newFakeUserRepo())
	codes.saved["ghost"] = "ABCD1234"

	_, err := svc.Token(context.Background(), dto.TokenRequest{
		Username:         "ghost",
		ConfirmationCode: "ABCD1234",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTokenRejectsWrongCode(t *testing.T) {
	users := newFakeUserRepo(&model.User{Username: "bookworm", Email: "reader@example.com"})
	svc, codes, _ := newAuthFixture(users)
	codes.saved["bookworm"] = "ABCD1234"

	_, err := svc.Token(context.Background(), dto.TokenRequest{
		Username:         "bookworm",
		ConfirmationCode: "WRONG999",
	})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)

	var fieldErr *apperror.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "confirmation_code", fieldErr.Field)
}

func TestTokenDoesNotConsumeCode(t *testing.T) {
	users := newFakeUserRepo(&model.User{Username: "bookworm", Email: "reader@example.com"})
	svc, codes, _ := newAuthFixture(users)
	codes.saved["bookworm"] = "ABCD1234"

	req := dto.TokenRequest{Username: "bookworm", ConfirmationCode: "ABCD1234"}

	_, err := svc.Token(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Token(context.Background(), req)
	assert.NoError(t, err, "the same code works until it expires")
}
