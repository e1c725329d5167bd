package messages

import (
	"context"

	"github.com/dmitrijs2005/samba/internal/models"
)

// Repository is the persistence contract for messages. The store is
// append-mostly: Save inserts unsaved messages (the store assigns identity
// and creation date) and rewrites only the text of saved ones. There is no
// delete and no per-participant lookup; callers filter GetAll themselves.
type Repository interface {
	GetAll(ctx context.Context) ([]*models.Message, error)
	Save(ctx context.Context, msg *models.Message) error
}
