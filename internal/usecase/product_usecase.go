package usecase

import (
	"context"
	"errors"
	"strings"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListActive(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	if !p.EquipmentType.Valid() {
		return entities.Product{}, ErrInvalidEquipmentType
	}
	return u.repo.Insert(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) ListActive(ctx context.Context) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.Product
	for _, p := range all {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}
