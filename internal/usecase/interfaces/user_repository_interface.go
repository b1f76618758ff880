package interfaces

import (
	"context"

	"ssx_solar/internal/domain/entities"
)

// IUserRepository abstracts the users collection. The lifecycle use case
// only needs lookups (installer name on assignment, ownership on confirm);
// Insert and ListByRole serve the admin portal.

type IUserRepository interface {
	Insert(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
}
