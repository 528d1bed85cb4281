package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// GroupRepository handles the polymorphic group records on the DB service
type GroupRepository struct {
	client *dbservice.Client
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(client *dbservice.Client) *GroupRepository {
	return &GroupRepository{client: client}
}

// FindGroups returns every group matching the given filters.
func (r *GroupRepository) FindGroups(ctx context.Context, params map[string]string) ([]models.Group, error) {
	var groups []models.Group
	if err := r.client.Get(ctx, "/group", toValues(params), &groups); err != nil {
		return nil, fmt.Errorf("group lookup failed: %w", err)
	}
	return groups, nil
}

// GetGroupByKindAndChild resolves the group wrapping a concrete entity.
// This is the single entry point for turning (kind, child) into a group id.
func (r *GroupRepository) GetGroupByKindAndChild(ctx context.Context, kind models.GroupKind, childID int64) (*models.Group, error) {
	if !kind.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown group type %q", kind))
	}
	groups, err := r.FindGroups(ctx, map[string]string{
		"type":     string(kind),
		"child_id": strconv.FormatInt(childID, 10),
	})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperrors.ErrGroupNotFound
	}
	return &groups[0], nil
}
