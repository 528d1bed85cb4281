package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// UserRepository handles user records on the DB service
type UserRepository struct {
	client *dbservice.Client
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(client *dbservice.Client) *UserRepository {
	return &UserRepository{client: client}
}

// FindUsers returns every user matching the given filters.
func (r *UserRepository) FindUsers(ctx context.Context, params map[string]string) ([]models.User, error) {
	var users []models.User
	if err := r.client.Get(ctx, "/user", toValues(params), &users); err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	return users, nil
}

// FindUserByEmailOrPhone returns users matching either contact field.
func (r *UserRepository) FindUserByEmailOrPhone(ctx context.Context, email, phone string) ([]models.User, error) {
	params := map[string]string{}
	if email != "" {
		params["email"] = email
	}
	if phone != "" {
		params["phone"] = phone
	}
	return r.FindUsers(ctx, params)
}
