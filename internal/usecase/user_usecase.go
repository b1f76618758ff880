package usecase

import (
	"context"
	"errors"
	"strings"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUser     = errors.New("invalid user")
	ErrInvalidUserRole = errors.New("invalid user role")
)

type IUserUseCase interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, user entities.User) (entities.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" || user.Email == "" {
		return entities.User{}, ErrInvalidUser
	}
	if !user.Role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}
	return u.repo.Insert(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidUserRole
	}
	return u.repo.ListByRole(ctx, role)
}
