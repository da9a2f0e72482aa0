package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// ConfirmationCodeStore keeps one hashed confirmation code per user with
// a TTL. A code stays valid until it expires or a new signup request
// overwrites it; verifying does not consume it.
type ConfirmationCodeStore interface {
	Save(ctx context.Context, username, code string) error
	Verify(ctx context.Context, username, code string) (bool, error)
}

type redisCodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewConfirmationCodeStore(rdb *redis.Client, ttl time.Duration) ConfirmationCodeStore {
	return &redisCodeStore{rdb: rdb, ttl: ttl}
}

func codeKey(username string) string {
	return fmt.Sprintf("confirmation_code:%s", username)
}

func (s *redisCodeStore) Save(ctx context.Context, username, code string) error {
	if s.rdb == nil {
		return errors.New("confirmation code store is not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, codeKey(username), string(hash), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store confirmation code in redis: %w", err)
	}
	return nil
}

func (s *redisCodeStore) Verify(ctx context.Context, username, code string) (bool, error) {
	if s.rdb == nil {
		return false, errors.New("confirmation code store is not configured")
	}

	hash, err := s.rdb.Get(ctx, codeKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation code from redis: %w", err)
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil, nil
}
