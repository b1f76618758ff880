package usecase

import (
	"context"
	"errors"
	"testing"

	"ssx_solar/internal/domain/entities"
	mock_interfaces "ssx_solar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), entities.User{Email: "a@b.com", Role: entities.RoleClient})
		if !errors.Is(err, ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})

	t.Run("bad role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), entities.User{Name: "Ana", Email: "a@b.com", Role: "supervisor"})
		if !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("success trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().Insert(gomock.Any(), entities.User{Name: "Ana", Email: "a@b.com", Role: entities.RoleInstaller}).
			Return(entities.User{ID: "u-1", Name: "Ana", Email: "a@b.com", Role: entities.RoleInstaller}, nil)

		created, err := uc.Create(context.Background(), entities.User{Name: "  Ana ", Email: " a@b.com ", Role: entities.RoleInstaller})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "u-1" {
			t.Fatalf("expected backend-assigned id, got %q", created.ID)
		}
	})
}

func TestUserUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.GetByID(context.Background(), "ghost")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_ListByRole(t *testing.T) {
	t.Run("bad role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.ListByRole(context.Background(), "supervisor")
		if !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("installer listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().ListByRole(gomock.Any(), entities.RoleInstaller).
			Return([]entities.User{{ID: "u-1", Role: entities.RoleInstaller}}, nil)

		users, err := uc.ListByRole(context.Background(), entities.RoleInstaller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 || users[0].ID != "u-1" {
			t.Fatalf("unexpected listing: %+v", users)
		}
	})
}
