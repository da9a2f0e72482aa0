package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/mailer"
	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

const (
	// No lookalike characters; the code travels by email and gets typed back.
	confirmationCodeAlphabet = "0123456789ABCDEFGHJKMNPQRSTUVWXYZ"
	confirmationCodeLength   = 8

	signupCodeAction = "signup_code"
	signupCooldown   = time.Minute
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error)
	Token(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error)
}

type authService struct {
	users    repository.UserRepository
	codes    ConfirmationCodeStore
	mail     mailer.Mailer
	rdb      *redis.Client
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(
	users repository.UserRepository,
	codes ConfirmationCodeStore,
	mail mailer.Mailer,
	rdb *redis.Client,
	secret string,
	tokenTTL time.Duration,
) AuthService {
	return &authService{
		users:    users,
		codes:    codes,
		mail:     mail,
		rdb:      rdb,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Signup registers a user (or recognizes an existing one asking again)
// and emails a fresh confirmation code. Repeating the same
// username/email pair is how a user re-requests a code.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		if user.Email != req.Email {
			return nil, apperror.ErrConflict
		}
	case errors.Is(err, apperror.ErrNotFound):
		if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
			return nil, apperror.ErrConflict
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}

		user = &model.User{Username: req.Username, Email: req.Email, Role: model.RoleUser}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	ok, err := CheckAndSetRateLimit(ctx, s.rdb, user.Username, signupCodeAction, signupCooldown)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrRateLimitExceeded
	}

	code, err := gonanoid.Generate(confirmationCodeAlphabet, confirmationCodeLength)
	if err != nil {
		return nil, err
	}

	if err := s.codes.Save(ctx, user.Username, code); err != nil {
		return nil, err
	}

	if err := s.mail.SendConfirmationCode(user.Email, user.Username, code); err != nil {
		return nil, err
	}

	return &dto.SignupResponse{Email: user.Email, Username: user.Username}, nil
}

// Token exchanges a valid confirmation code for a signed JWT. The code
// is not consumed; it simply ages out of the store.
func (s *authService) Token(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	ok, err := s.codes.Verify(ctx, user.Username, req.ConfirmationCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewFieldError("confirmation_code", "confirmation code is invalid or expired")
	}

	if err := ClearRateLimit(ctx, s.rdb, user.Username, signupCodeAction); err != nil {
		log.Printf("Failed to clear signup cooldown for %s: %v", user.Username, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{Token: token}, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
