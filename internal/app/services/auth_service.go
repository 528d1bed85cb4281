package services

import (
	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/auth"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// Caller types accepted by CreateAccessToken.
const (
	CallerTypeUser         = "user"
	CallerTypeOrganization = "organization"
)

// AuthService issues and validates JWT tokens for users and organizations.
type AuthService struct {
	jwt *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtService *auth.JWTService) *AuthService {
	return &AuthService{jwt: jwtService}
}

// CreateAccessToken issues tokens for a caller. Users get an access token
// and, when the caller is marked valid, a refresh token. Organizations get
// one long-lived access token carrying their name.
func (s *AuthService) CreateAccessToken(req *dto.AuthUserRequest) (*dto.TokenResponse, error) {
	switch req.Type {
	case CallerTypeUser:
		accessToken, err := s.jwt.GenerateAccessToken(req.ID, req.Data)
		if err != nil {
			return nil, err
		}

		response := &dto.TokenResponse{
			AccessToken: accessToken,
			ExpiresIn:   s.jwt.AccessTokenExpirySeconds(),
		}
		if req.IsUserValid != nil && *req.IsUserValid {
			refreshToken, err := s.jwt.GenerateRefreshToken(req.ID)
			if err != nil {
				return nil, err
			}
			response.RefreshToken = refreshToken
		}
		return response, nil

	case CallerTypeOrganization:
		accessToken, err := s.jwt.GenerateOrgToken(req.ID, req.Name)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("organization", req.Name).Msg("organization token issued")
		return &dto.TokenResponse{AccessToken: accessToken}, nil

	default:
		return nil, apperrors.NewBadRequestError("type must be user or organization")
	}
}

// RefreshToken exchanges a valid refresh token for a new access token.
func (s *AuthService) RefreshToken(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "invalid refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "token is not a refresh token")
	}

	accessToken, err := s.jwt.GenerateAccessToken(claims.Subject, claims.Data)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwt.GenerateRefreshToken(claims.Subject)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    s.jwt.AccessTokenExpirySeconds(),
	}, nil
}

// VerifyToken validates an access token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "invalid token")
	}
	return claims, nil
}
