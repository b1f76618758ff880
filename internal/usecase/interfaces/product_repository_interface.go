package interfaces

import (
	"context"

	"ssx_solar/internal/domain/entities"
)

// IProductRepository abstracts the products catalog collection.

type IProductRepository interface {
	Insert(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
