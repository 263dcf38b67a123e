package middleware

import (
	"context"
	"net/http"
	"strings"

	"wellness-clinic-service/internal/service"
	"wellness-clinic-service/pkg/jwt"
	"wellness-clinic-service/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	SubjectIDKey   contextKey = "subject_id"
	SubjectTypeKey contextKey = "subject_type"
	EmailKey       contextKey = "email"
	TokenIDKey     contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore service.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Reject tokens revoked via logout
		valid, err := m.tokenStore.Exists(r.Context(), claims.SubjectID, claims.TokenID, jwt.AccessToken)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), SubjectIDKey, claims.SubjectID)
		ctx = context.WithValue(ctx, SubjectTypeKey, claims.SubjectType)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectIDFromContext extracts the authenticated subject id
func GetSubjectIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	subjectID, ok := ctx.Value(SubjectIDKey).(uuid.UUID)
	return subjectID, ok
}

// GetSubjectTypeFromContext extracts the authenticated subject type
func GetSubjectTypeFromContext(ctx context.Context) (jwt.SubjectType, bool) {
	subjectType, ok := ctx.Value(SubjectTypeKey).(jwt.SubjectType)
	return subjectType, ok
}

// GetEmailFromContext extracts the authenticated email
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts the token id
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
