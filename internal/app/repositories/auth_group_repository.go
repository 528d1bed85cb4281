package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// AuthGroupRepository handles auth group records on the DB service
type AuthGroupRepository struct {
	client *dbservice.Client
}

// NewAuthGroupRepository creates a new AuthGroupRepository
func NewAuthGroupRepository(client *dbservice.Client) *AuthGroupRepository {
	return &AuthGroupRepository{client: client}
}

// GetAuthGroupByName resolves an auth group name to its record.
func (r *AuthGroupRepository) GetAuthGroupByName(ctx context.Context, name string) (*models.AuthGroup, error) {
	var authGroups []models.AuthGroup
	params := map[string]string{"name": name}
	if err := r.client.Get(ctx, "/auth-group", toValues(params), &authGroups); err != nil {
		return nil, fmt.Errorf("auth group lookup failed: %w", err)
	}
	if len(authGroups) == 0 {
		return nil, apperrors.ErrAuthGroupNotFound
	}
	return &authGroups[0], nil
}
