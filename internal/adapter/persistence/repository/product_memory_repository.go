package repository

import (
	"context"
	"sync"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const productsSlot = "ssx_solar.products"

// ProductMemoryRepository is the mock backend for the products catalog.

type ProductMemoryRepository struct {
	store SessionStore
	mu    sync.Mutex
}

var _ interfaces.IProductRepository = (*ProductMemoryRepository)(nil)

func NewProductMemoryRepository(store SessionStore) *ProductMemoryRepository {
	return &ProductMemoryRepository{store: store}
}

func (r *ProductMemoryRepository) Insert(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.Product](r.store, productsSlot)
	if err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt

	records = append(records, p)
	if err := saveRecords(r.store, productsSlot, records); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductMemoryRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := loadRecords[entities.Product](r.store, productsSlot)
	if err != nil {
		return entities.Product{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return entities.Product{}, nil
}

func (r *ProductMemoryRepository) List(_ context.Context) ([]entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadRecords[entities.Product](r.store, productsSlot)
}
