package repository

import (
	"context"
	"sync"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const serviceRequestsSlot = "ssx_solar.serviceRequests"

// ServiceRequestMemoryRepository is the mock backend for the serviceRequests
// collection: every record lives in one JSON blob under one session slot,
// every mutation rewrites the whole blob, and lookups are linear scans.
// It mirrors the offline-development store, not a real database.

type ServiceRequestMemoryRepository struct {
	store SessionStore

	// mu serializes load-mutate-save cycles; the SessionStore itself only
	// guarantees single-call safety.
	mu sync.Mutex
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestMemoryRepository)(nil)

func NewServiceRequestMemoryRepository(store SessionStore) *ServiceRequestMemoryRepository {
	return &ServiceRequestMemoryRepository{store: store}
}

func (r *ServiceRequestMemoryRepository) Insert(_ context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.ServiceRequest](r.store, serviceRequestsSlot)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	now := time.Now().UTC()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = req.CreatedAt

	records = append(records, req)
	if err := saveRecords(r.store, serviceRequestsSlot, records); err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestMemoryRepository) GetByID(_ context.Context, id string) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.ServiceRequest](r.store, serviceRequestsSlot)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return entities.ServiceRequest{}, nil
}

func (r *ServiceRequestMemoryRepository) List(_ context.Context) ([]entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadRecords[entities.ServiceRequest](r.store, serviceRequestsSlot)
}

func (r *ServiceRequestMemoryRepository) Patch(_ context.Context, id string, fields entities.RequestPatch) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.ServiceRequest](r.store, serviceRequestsSlot)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	for i := range records {
		if records[i].ID != id {
			continue
		}
		fields.Apply(&records[i])
		records[i].UpdatedAt = time.Now().UTC()
		if err := saveRecords(r.store, serviceRequestsSlot, records); err != nil {
			return entities.ServiceRequest{}, err
		}
		return records[i], nil
	}
	return entities.ServiceRequest{}, nil
}

// Replace upserts a record without touching its timestamps. The fallback
// decorator uses it to mirror remote reads into the mock store.
func (r *ServiceRequestMemoryRepository) Replace(_ context.Context, req entities.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.ServiceRequest](r.store, serviceRequestsSlot)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == req.ID {
			records[i] = req
			return saveRecords(r.store, serviceRequestsSlot, records)
		}
	}
	records = append(records, req)
	return saveRecords(r.store, serviceRequestsSlot, records)
}
