package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ssx_solar/internal/domain/entities"
	mock_interfaces "ssx_solar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type lifecycleMocks struct {
	repo   *mock_interfaces.MockIServiceRequestRepository
	users  *mock_interfaces.MockIUserRepository
	images *mock_interfaces.MockIImageStore
}

func newLifecycleUseCase(t *testing.T) (*LifecycleUseCase, lifecycleMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := lifecycleMocks{
		repo:   mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		users:  mock_interfaces.NewMockIUserRepository(ctrl),
		images: mock_interfaces.NewMockIImageStore(ctrl),
	}
	return NewLifecycleUseCase(m.repo, m.users, m.images, zap.NewNop()), m
}

func storedRequest(status entities.RequestStatus) entities.ServiceRequest {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.ServiceRequest{
		ID:            "req-1",
		ClientID:      "client-1",
		EquipmentType: entities.EquipmentGasHeater,
		Status:        status,
		Priority:      entities.PriorityNormal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// expectPatch wires Patch to apply the fields the same way both backends do.
func expectPatch(m lifecycleMocks, current entities.ServiceRequest) {
	m.repo.EXPECT().Patch(gomock.Any(), current.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fields entities.RequestPatch) (entities.ServiceRequest, error) {
			updated := current
			fields.Apply(&updated)
			updated.UpdatedAt = time.Now().UTC()
			return updated, nil
		},
	)
}

func TestLifecycleUseCase_Approve(t *testing.T) {
	t.Run("pending approves", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusPending)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		expectPatch(m, req)

		res, err := uc.Approve(context.Background(), req.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
		if !res.UpdatedAt.After(req.UpdatedAt) {
			t.Fatalf("expected updatedAt refresh")
		}
	})

	t.Run("already assigned", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusAssigned)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)

		_, err := uc.Approve(context.Background(), req.ID)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceRequest{}, nil)

		_, err := uc.Approve(context.Background(), "missing")
		if !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})
}

func TestLifecycleUseCase_AssignInstaller(t *testing.T) {
	installer := entities.User{ID: "inst-1", Name: "Jo Silva", Role: entities.RoleInstaller}

	t.Run("assign straight from pending", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusPending)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		m.users.EXPECT().GetByID(gomock.Any(), installer.ID).Return(installer, nil)
		expectPatch(m, req)

		res, err := uc.AssignInstaller(context.Background(), req.ID, installer.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusAssigned {
			t.Fatalf("expected assigned, got %s", res.Status)
		}
		if res.InstallerID != installer.ID || res.InstallerName != installer.Name {
			t.Fatalf("expected installer snapshot, got %+v", res)
		}
	})

	t.Run("assign from approved", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusApproved)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		m.users.EXPECT().GetByID(gomock.Any(), installer.ID).Return(installer, nil)
		expectPatch(m, req)

		res, err := uc.AssignInstaller(context.Background(), req.ID, installer.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusAssigned {
			t.Fatalf("expected assigned, got %s", res.Status)
		}
	})

	t.Run("installer missing", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusApproved)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.AssignInstaller(context.Background(), req.ID, "ghost")
		if !errors.Is(err, ErrInstallerNotFound) {
			t.Fatalf("expected ErrInstallerNotFound, got %v", err)
		}
	})

	t.Run("user is a client", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusApproved)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "client-2").Return(entities.User{ID: "client-2", Role: entities.RoleClient}, nil)

		_, err := uc.AssignInstaller(context.Background(), req.ID, "client-2")
		if !errors.Is(err, ErrNotAnInstaller) {
			t.Fatalf("expected ErrNotAnInstaller, got %v", err)
		}
	})

	t.Run("blank installer id", func(t *testing.T) {
		uc, _ := newLifecycleUseCase(t)
		_, err := uc.AssignInstaller(context.Background(), "req-1", "  ")
		if !errors.Is(err, ErrInvalidInstallerID) {
			t.Fatalf("expected ErrInvalidInstallerID, got %v", err)
		}
	})
}

func TestLifecycleUseCase_StartPauseResume(t *testing.T) {
	t.Run("start stamps startedAt", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusAssigned)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		expectPatch(m, req)

		res, err := uc.Start(context.Background(), req.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusInProgress || res.StartedAt == nil {
			t.Fatalf("expected in_progress with startedAt, got %+v", res)
		}
	})

	t.Run("start rejected before assignment", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusApproved)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)

		_, err := uc.Start(context.Background(), req.ID)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("pause keeps status", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusInProgress)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		expectPatch(m, req)

		res, err := uc.Pause(context.Background(), req.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusInProgress {
			t.Fatalf("pause must not change status, got %s", res.Status)
		}
		if res.PausedAt == nil {
			t.Fatalf("expected pausedAt stamp")
		}
	})

	t.Run("resume clears pausedAt", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusInProgress)
		paused := time.Now().UTC().Add(-10 * time.Minute)
		req.PausedAt = &paused
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		expectPatch(m, req)

		res, err := uc.Resume(context.Background(), req.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PausedAt != nil {
			t.Fatalf("expected pausedAt cleared, got %v", res.PausedAt)
		}
	})

	t.Run("pause outside in_progress", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusCompleted)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)

		_, err := uc.Pause(context.Background(), req.ID)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestLifecycleUseCase_CompleteAndConfirm(t *testing.T) {
	t.Run("complete then confirm", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusInProgress)
		paused := time.Now().UTC().Add(-5 * time.Minute)
		req.PausedAt = &paused
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		expectPatch(m, req)

		completed, err := uc.Complete(context.Background(), req.ID, "replaced solar collector")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed.Status != entities.RequestStatusCompleted || completed.CompletedAt == nil {
			t.Fatalf("expected completed with timestamp, got %+v", completed)
		}
		if completed.TechnicalNotes != "replaced solar collector" {
			t.Fatalf("expected technical notes, got %q", completed.TechnicalNotes)
		}
		if completed.PausedAt != nil {
			t.Fatalf("completion must clear pausedAt")
		}

		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(completed, nil)
		expectPatch(m, completed)

		confirmed, err := uc.Confirm(context.Background(), req.ID, req.ClientID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if confirmed.Status != entities.RequestStatusConfirmed || confirmed.ConfirmedAt == nil {
			t.Fatalf("expected confirmed with timestamp, got %+v", confirmed)
		}
		if confirmed.ConfirmedAt.Before(*confirmed.CompletedAt) {
			t.Fatalf("confirmedAt %v precedes completedAt %v", confirmed.ConfirmedAt, confirmed.CompletedAt)
		}
	})

	t.Run("confirm by another client", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusCompleted)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)

		_, err := uc.Confirm(context.Background(), req.ID, "client-2")
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("confirm on pending", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusPending)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)

		_, err := uc.Confirm(context.Background(), req.ID, req.ClientID)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestLifecycleUseCase_Cancel(t *testing.T) {
	cancellable := []entities.RequestStatus{
		entities.RequestStatusPending,
		entities.RequestStatusApproved,
		entities.RequestStatusAssigned,
		entities.RequestStatusInProgress,
		entities.RequestStatusCompleted,
	}
	for _, status := range cancellable {
		t.Run("cancel from "+string(status), func(t *testing.T) {
			uc, m := newLifecycleUseCase(t)
			req := storedRequest(status)
			m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
			expectPatch(m, req)

			res, err := uc.Cancel(context.Background(), req.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != entities.RequestStatusCancelled || res.CancelledAt == nil {
				t.Fatalf("expected cancelled with timestamp, got %+v", res)
			}
		})
	}

	for _, status := range []entities.RequestStatus{entities.RequestStatusConfirmed, entities.RequestStatusCancelled} {
		t.Run("cancel rejected on "+string(status), func(t *testing.T) {
			uc, m := newLifecycleUseCase(t)
			req := storedRequest(status)
			m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)

			_, err := uc.Cancel(context.Background(), req.ID)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestLifecycleUseCase_UploadImage(t *testing.T) {
	t.Run("appends stored url", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusInProgress)
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		m.images.EXPECT().Upload(gomock.Any(), req.ID, "before.jpg", []byte("jpeg-bytes")).
			Return("https://storage.example/req-1/before.jpg", nil)
		expectPatch(m, req)

		res, err := uc.UploadImage(context.Background(), req.ID, "before.jpg", []byte("jpeg-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Images) != 1 || res.Images[0].URL != "https://storage.example/req-1/before.jpg" {
			t.Fatalf("expected appended image, got %+v", res.Images)
		}
		if res.Status != entities.RequestStatusInProgress {
			t.Fatalf("upload must not change status, got %s", res.Status)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc, _ := newLifecycleUseCase(t)
		_, err := uc.UploadImage(context.Background(), "req-1", "x.jpg", nil)
		if !errors.Is(err, ErrEmptyImage) {
			t.Fatalf("expected ErrEmptyImage, got %v", err)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		uc, m := newLifecycleUseCase(t)
		req := storedRequest(entities.RequestStatusInProgress)
		wantErr := errors.New("bucket unavailable")
		m.repo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
		m.images.EXPECT().Upload(gomock.Any(), req.ID, "x.jpg", gomock.Any()).Return("", wantErr)

		_, err := uc.UploadImage(context.Background(), req.ID, "x.jpg", []byte{1})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
