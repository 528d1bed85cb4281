package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextSubjectKey   = "auth_subject"
	ContextClaimsKey    = "auth_claims"
	ContextTokenTypeKey = "auth_token_type"
)

// AuthMiddleware validates bearer tokens on protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the Authorization header and stores the claims on the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Authorization header missing", dto.ErrorTypeAuth))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Invalid authorization header", dto.ErrorTypeAuth))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			detail := "Invalid token"
			if err == auth.ErrExpiredToken {
				detail = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(detail, dto.ErrorTypeAuth))
			return
		}

		c.Set(ContextSubjectKey, claims.Subject)
		c.Set(ContextClaimsKey, claims)
		c.Set(ContextTokenTypeKey, claims.TokenType)
		c.Next()
	}
}
