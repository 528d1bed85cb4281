package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Token types carried in the token_type claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey       string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	OrgTokenExp     time.Duration
	TokenIssuer     string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// Claims defines JWT token content. Data carries the caller-supplied claim
// fields verbatim; Name is set for organization tokens only.
type Claims struct {
	Name      string            `json:"name,omitempty"`
	TokenType string            `json:"token_type,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a short-lived access token for a user.
func (s *JWTService) GenerateAccessToken(subject string, data map[string]string) (string, error) {
	return s.sign(&Claims{
		TokenType:        TokenTypeAccess,
		Data:             data,
		RegisteredClaims: s.registered(subject, s.config.AccessTokenExp),
	})
}

// GenerateRefreshToken creates a refresh token for a verified user.
func (s *JWTService) GenerateRefreshToken(subject string) (string, error) {
	return s.sign(&Claims{
		TokenType:        TokenTypeRefresh,
		RegisteredClaims: s.registered(subject, s.config.RefreshTokenExp),
	})
}

// GenerateOrgToken creates a long-lived token for an organization caller.
func (s *JWTService) GenerateOrgToken(subject, name string) (string, error) {
	return s.sign(&Claims{
		Name:             name,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: s.registered(subject, s.config.OrgTokenExp),
	})
}

func (s *JWTService) registered(subject string, exp time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.config.TokenIssuer,
		Subject:   subject,
		ID:        uuid.New().String(),
	}
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// AccessTokenExpirySeconds returns the access token lifetime in seconds.
func (s *JWTService) AccessTokenExpirySeconds() int {
	return int(s.config.AccessTokenExp.Seconds())
}

// ValidateToken validates a token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}
