package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"ssx_solar/internal/domain/entities"
	mock_interfaces "ssx_solar/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestReportUseCase_ExportServiceRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	uc := NewReportUseCase(repo)

	created := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	completed := created.Add(6 * time.Hour)
	repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceRequest{
		{
			ID:            "req-old",
			ClientID:      "client-2",
			EquipmentType: entities.EquipmentGasHeater,
			Priority:      entities.PriorityHigh,
			Status:        entities.RequestStatusCompleted,
			InstallerName: "Jo Silva",
			Address:       entities.Address{City: "Campinas", State: "SP"},
			CreatedAt:     created.Add(-24 * time.Hour),
			CompletedAt:   &completed,
		},
		{
			ID:            "req-new",
			ClientID:      "client-1",
			EquipmentType: entities.EquipmentSolarHeater,
			Priority:      entities.PriorityNormal,
			Status:        entities.RequestStatusPending,
			Address:       entities.Address{City: "Sao Paulo", State: "SP"},
			CreatedAt:     created,
		},
	}, nil)

	data, err := uc.ExportServiceRequests(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Service Requests")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, serviceRequestReportHeader, rows[0])

	// req-new was created later and must come first.
	assert.Equal(t, "req-new", rows[1][0])
	assert.Equal(t, "solar_heater", rows[1][2])
	assert.Equal(t, "pending", rows[1][4])
	assert.Equal(t, "Sao Paulo", rows[1][6])

	assert.Equal(t, "req-old", rows[2][0])
	assert.Equal(t, "Jo Silva", rows[2][5])
	assert.Equal(t, completed.Format(time.RFC3339), rows[2][9])
}

func TestReportUseCase_ExportEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	uc := NewReportUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	data, err := uc.ExportServiceRequests(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Service Requests")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, serviceRequestReportHeader, rows[0])
}
