package service

import (
	"context"
	"fmt"
	"time"

	"wellness-clinic-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefixes for issued tokens
const (
	accessTokenKeyPrefix  = "access_token:"
	refreshTokenKeyPrefix = "refresh_token:"
)

// TokenStore tracks issued token IDs so tokens can be revoked before
// their JWT expiry. Keys expire with the token, so the store never
// needs sweeping.
type TokenStore interface {
	Store(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	Exists(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Revoke(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) error
	RevokeAll(ctx context.Context, subjectID uuid.UUID) error
}

type redisTokenStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisTokenStore(redisClient *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{
		redisClient: redisClient,
		log:         log,
	}
}

func tokenKey(subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	prefix := accessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = refreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s%s:%s", prefix, subjectID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, tokenKey(subjectID, tokenID, tokenType), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store token in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, tokenKey(subjectID, tokenID, tokenType)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	if err := s.redisClient.Del(ctx, tokenKey(subjectID, tokenID, tokenType)).Err(); err != nil {
		s.log.Warnf("Failed to delete token from Redis: %+v", err)
		return err
	}
	return nil
}

// RevokeAll drops every token for a subject, e.g. after a password change.
// SCAN, not KEYS; revocation must not block the server on a large keyspace.
func (s *redisTokenStore) RevokeAll(ctx context.Context, subjectID uuid.UUID) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s%s:*", prefix, subjectID.String())
		iter := s.redisClient.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete token keys: %+v", err)
				return err
			}
		}
	}
	return nil
}
