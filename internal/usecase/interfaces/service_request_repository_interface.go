package interfaces

import (
	"context"

	"ssx_solar/internal/domain/entities"
)

// IServiceRequestRepository abstracts persistence for ServiceRequest.
//
// Both backends (DynamoDB and the in-memory session store) implement the
// same contract:
//   - Insert assigns id/createdAt/updatedAt when the caller left them empty
//   - GetByID returns a zero-value entity (empty ID) when the id is unknown
//   - Patch merges the given fields, refreshes updatedAt, never touches
//     createdAt, and returns a zero-value entity for unknown ids
//   - List returns every record in store order; callers impose ordering
type IServiceRequestRepository interface {
	Insert(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context) ([]entities.ServiceRequest, error)
	Patch(ctx context.Context, id string, fields entities.RequestPatch) (entities.ServiceRequest, error)
}
