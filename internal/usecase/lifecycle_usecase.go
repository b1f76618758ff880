package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const imageUploadTimeout = 10 * time.Second

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInstallerNotFound = errors.New("installer not found")
	ErrNotAnInstaller    = errors.New("user is not an installer")
	ErrNotRequestOwner   = errors.New("request belongs to another client")
	ErrEmptyImage        = errors.New("empty image upload")
)

// ILifecycleUseCase drives a service request through its status graph:
//
//	pending → approved → assigned → in_progress → completed → confirmed
//
// with cancelled reachable from any non-terminal state. Every operation
// validates the current status before writing; an out-of-graph call fails
// with ErrInvalidTransition instead of trusting the caller's UI gating.
// Pause and resume are time-tracking only and never change status.

type ILifecycleUseCase interface {
	Approve(ctx context.Context, id string) (entities.ServiceRequest, error)
	AssignInstaller(ctx context.Context, id, installerID string) (entities.ServiceRequest, error)
	Start(ctx context.Context, id string) (entities.ServiceRequest, error)
	Pause(ctx context.Context, id string) (entities.ServiceRequest, error)
	Resume(ctx context.Context, id string) (entities.ServiceRequest, error)
	Complete(ctx context.Context, id, technicalNotes string) (entities.ServiceRequest, error)
	Confirm(ctx context.Context, id, clientID string) (entities.ServiceRequest, error)
	Cancel(ctx context.Context, id string) (entities.ServiceRequest, error)
	UploadImage(ctx context.Context, id, filename string, data []byte) (entities.ServiceRequest, error)
}

type LifecycleUseCase struct {
	repo   interfaces.IServiceRequestRepository
	users  interfaces.IUserRepository
	images interfaces.IImageStore
	logger *zap.Logger
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(repo interfaces.IServiceRequestRepository, users interfaces.IUserRepository, images interfaces.IImageStore, logger *zap.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{repo: repo, users: users, images: images, logger: logger}
}

func (u *LifecycleUseCase) Approve(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusPending {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusApproved)
	}

	status := entities.RequestStatusApproved
	return u.patch(ctx, req.ID, entities.RequestPatch{Status: &status})
}

func (u *LifecycleUseCase) AssignInstaller(ctx context.Context, id, installerID string) (entities.ServiceRequest, error) {
	installerID = strings.TrimSpace(installerID)
	if installerID == "" {
		return entities.ServiceRequest{}, ErrInvalidInstallerID
	}

	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusPending && req.Status != entities.RequestStatusApproved {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusAssigned)
	}

	installer, err := u.users.GetByID(ctx, installerID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if installer.ID == "" {
		return entities.ServiceRequest{}, ErrInstallerNotFound
	}
	if installer.Role != entities.RoleInstaller {
		return entities.ServiceRequest{}, ErrNotAnInstaller
	}

	status := entities.RequestStatusAssigned
	return u.patch(ctx, req.ID, entities.RequestPatch{
		Status:        &status,
		InstallerID:   &installer.ID,
		InstallerName: &installer.Name,
	})
}

func (u *LifecycleUseCase) Start(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusAssigned {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusInProgress)
	}

	status := entities.RequestStatusInProgress
	now := time.Now().UTC()
	return u.patch(ctx, req.ID, entities.RequestPatch{Status: &status, StartedAt: &now})
}

func (u *LifecycleUseCase) Pause(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusInProgress {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusInProgress)
	}

	now := time.Now().UTC()
	return u.patch(ctx, req.ID, entities.RequestPatch{PausedAt: &now})
}

func (u *LifecycleUseCase) Resume(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusInProgress {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusInProgress)
	}

	return u.patch(ctx, req.ID, entities.RequestPatch{ClearPausedAt: true})
}

func (u *LifecycleUseCase) Complete(ctx context.Context, id, technicalNotes string) (entities.ServiceRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusInProgress {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusCompleted)
	}

	status := entities.RequestStatusCompleted
	now := time.Now().UTC()
	return u.patch(ctx, req.ID, entities.RequestPatch{
		Status:         &status,
		CompletedAt:    &now,
		TechnicalNotes: &technicalNotes,
		ClearPausedAt:  true,
	})
}

func (u *LifecycleUseCase) Confirm(ctx context.Context, id, clientID string) (entities.ServiceRequest, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ServiceRequest{}, ErrInvalidClientID
	}

	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status != entities.RequestStatusCompleted {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusConfirmed)
	}
	if req.ClientID != clientID {
		return entities.ServiceRequest{}, ErrNotRequestOwner
	}

	status := entities.RequestStatusConfirmed
	now := time.Now().UTC()
	return u.patch(ctx, req.ID, entities.RequestPatch{Status: &status, ConfirmedAt: &now})
}

func (u *LifecycleUseCase) Cancel(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.Status.IsTerminal() {
		return entities.ServiceRequest{}, transitionError(req.Status, entities.RequestStatusCancelled)
	}

	status := entities.RequestStatusCancelled
	now := time.Now().UTC()
	return u.patch(ctx, req.ID, entities.RequestPatch{Status: &status, CancelledAt: &now})
}

// UploadImage is legal in any status and never touches it.
func (u *LifecycleUseCase) UploadImage(ctx context.Context, id, filename string, data []byte) (entities.ServiceRequest, error) {
	if len(data) == 0 {
		return entities.ServiceRequest{}, ErrEmptyImage
	}

	req, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	uploadCtx, cancel := context.WithTimeout(ctx, imageUploadTimeout)
	defer cancel()

	url, err := u.images.Upload(uploadCtx, req.ID, filename, data)
	if err != nil {
		u.logger.Error("image upload failed", zap.String("id", req.ID), zap.String("filename", filename), zap.Error(err))
		return entities.ServiceRequest{}, err
	}

	return u.patch(ctx, req.ID, entities.RequestPatch{
		AppendImages: []entities.RequestImage{{URL: url, UploadedAt: time.Now().UTC()}},
	})
}

func (u *LifecycleUseCase) load(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return req, nil
}

func (u *LifecycleUseCase) patch(ctx context.Context, id string, fields entities.RequestPatch) (entities.ServiceRequest, error) {
	updated, err := u.repo.Patch(ctx, id, fields)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return updated, nil
}

func transitionError(from, to entities.RequestStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
