package repository

import (
	"context"
	"sync"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const usersSlot = "ssx_solar.users"

// UserMemoryRepository is the mock backend for the users collection.

type UserMemoryRepository struct {
	store SessionStore
	mu    sync.Mutex
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository(store SessionStore) *UserMemoryRepository {
	return &UserMemoryRepository{store: store}
}

func (r *UserMemoryRepository) Insert(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.User](r.store, usersSlot)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = u.CreatedAt

	records = append(records, u)
	if err := saveRecords(r.store, usersSlot, records); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.User](r.store, usersSlot)
	if err != nil {
		return entities.User{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserMemoryRepository) ListByRole(_ context.Context, role entities.UserRole) ([]entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.User](r.store, usersSlot)
	if err != nil {
		return nil, err
	}
	var out []entities.User
	for _, rec := range records {
		if rec.Role == role {
			out = append(out, rec)
		}
	}
	return out, nil
}
