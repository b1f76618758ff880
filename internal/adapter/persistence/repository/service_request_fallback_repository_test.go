package repository

import (
	"context"
	"errors"
	"testing"

	"ssx_solar/internal/domain/entities"
	mock_interfaces "ssx_solar/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServiceRequestFallbackRepository_ReadDegradesToMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	mirror := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	repo := NewServiceRequestFallbackRepository(remote, mirror, zap.NewNop())
	ctx := context.Background()

	rec := newTestRequest()
	rec.ID = "req-1"
	require.NoError(t, mirror.Replace(ctx, rec))

	remote.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, errors.New("network down"))

	got, err := repo.GetByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "req-1", got.ID)
}

func TestServiceRequestFallbackRepository_ListDegradesToMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	mirror := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	repo := NewServiceRequestFallbackRepository(remote, mirror, zap.NewNop())
	ctx := context.Background()

	rec := newTestRequest()
	rec.ID = "req-2"
	require.NoError(t, mirror.Replace(ctx, rec))

	remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "req-2", got[0].ID)
}

func TestServiceRequestFallbackRepository_SuccessfulReadIsMirrored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	mirror := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	repo := NewServiceRequestFallbackRepository(remote, mirror, zap.NewNop())
	ctx := context.Background()

	rec := newTestRequest()
	rec.ID = "req-3"
	remote.EXPECT().GetByID(gomock.Any(), "req-3").Return(rec, nil)

	_, err := repo.GetByID(ctx, "req-3")
	require.NoError(t, err)

	mirrored, err := mirror.GetByID(ctx, "req-3")
	require.NoError(t, err)
	assert.Equal(t, "req-3", mirrored.ID)
}

func TestServiceRequestFallbackRepository_WriteErrorsSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	mirror := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	repo := NewServiceRequestFallbackRepository(remote, mirror, zap.NewNop())
	ctx := context.Background()

	wantErr := errors.New("conditional check failed")
	remote.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, wantErr)
	_, err := repo.Insert(ctx, newTestRequest())
	assert.ErrorIs(t, err, wantErr, "writes must not fall back")

	remote.EXPECT().Patch(gomock.Any(), "req-4", gomock.Any()).Return(entities.ServiceRequest{}, wantErr)
	_, err = repo.Patch(ctx, "req-4", entities.RequestPatch{})
	assert.ErrorIs(t, err, wantErr)

	list, listErr := mirror.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, list, "failed writes must not touch the mirror")
}
