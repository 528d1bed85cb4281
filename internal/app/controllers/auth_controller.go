package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/middleware"
	"github.com/gurukulhq/portal-backend/internal/pkg/auth"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// AuthController handles token issuance and verification
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// CreateAccessToken issues tokens for a user or organization
// @Summary Create an access token
// @Description Issues a JWT access token. Verified users also receive a refresh token; organizations receive one long-lived token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AuthUserRequest true "Caller identity"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or caller type"
// @Router /auth/create-access-token [post]
func (c *AuthController) CreateAccessToken(ctx *gin.Context) {
	var req dto.AuthUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("invalid token request payload")
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("id and type are required", dto.ErrorTypeValidation))
		return
	}

	if err := middleware.ValidateStruct(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	tokens, err := c.authService.CreateAccessToken(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tokens)
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("refresh_token is required", dto.ErrorTypeValidation))
		return
	}

	tokens, err := c.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tokens)
}

// Verify validates the caller's bearer token
// @Summary Verify a token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	tokenString, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse("Authorization header missing", dto.ErrorTypeAuth))
		return
	}

	claims, err := c.authService.VerifyToken(tokenString)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"is_valid": true,
		"sub":      claims.Subject,
		"name":     claims.Name,
		"data":     claims.Data,
	})
}
