package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// GroupUserRepository handles group membership records on the DB service
type GroupUserRepository struct {
	client *dbservice.Client
}

// NewGroupUserRepository creates a new GroupUserRepository
func NewGroupUserRepository(client *dbservice.Client) *GroupUserRepository {
	return &GroupUserRepository{client: client}
}

// FindGroupUsers returns every membership matching the given filters.
func (r *GroupUserRepository) FindGroupUsers(ctx context.Context, params map[string]string) ([]models.GroupUser, error) {
	var memberships []models.GroupUser
	if err := r.client.Get(ctx, "/group-user", toValues(params), &memberships); err != nil {
		return nil, fmt.Errorf("group user lookup failed: %w", err)
	}
	return memberships, nil
}

// CreateGroupUser links a user to a group.
func (r *GroupUserRepository) CreateGroupUser(ctx context.Context, membership models.GroupUser) (*models.GroupUser, error) {
	var created models.GroupUser
	if err := r.client.Post(ctx, "/group-user", membership, &created); err != nil {
		return nil, fmt.Errorf("group user create failed: %w", err)
	}
	return &created, nil
}
