package users

import (
	"context"

	"github.com/dmitrijs2005/samba/internal/models"
)

// Repository is the persistence contract for user records.
//
// Lookups return common.ErrorNotFound when no row matches; absence is a
// valid result, not a generic failure. Save inserts when the user carries
// the unsaved sentinel identity and updates otherwise.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
}
