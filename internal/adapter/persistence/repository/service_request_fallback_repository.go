package repository

import (
	"context"
	"time"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const remoteCallTimeout = 5 * time.Second

// ServiceRequestFallbackRepository wraps the remote backend with the
// degraded-read policy: every remote call runs under a fixed timeout, read
// failures are logged and answered from the in-memory mirror, write failures
// surface to the caller unmodified. Reads degrade gracefully, writes do not.
//
// Successful remote reads and writes are mirrored into the memory store so a
// later degraded read has data to serve. No retries anywhere.

type ServiceRequestFallbackRepository struct {
	remote interfaces.IServiceRequestRepository
	mirror *ServiceRequestMemoryRepository
	logger *zap.Logger
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestFallbackRepository)(nil)

func NewServiceRequestFallbackRepository(remote interfaces.IServiceRequestRepository, mirror *ServiceRequestMemoryRepository, logger *zap.Logger) *ServiceRequestFallbackRepository {
	return &ServiceRequestFallbackRepository{remote: remote, mirror: mirror, logger: logger}
}

func (r *ServiceRequestFallbackRepository) Insert(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	created, err := r.remote.Insert(ctx, req)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if mirrorErr := r.mirror.Replace(context.WithoutCancel(ctx), created); mirrorErr != nil {
		r.logger.Warn("failed to mirror inserted service request", zap.String("id", created.ID), zap.Error(mirrorErr))
	}
	return created, nil
}

func (r *ServiceRequestFallbackRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	req, err := r.remote.GetByID(callCtx, id)
	if err != nil {
		r.logger.Warn("remote get failed, serving mock backend", zap.String("id", id), zap.Error(err))
		return r.mirror.GetByID(ctx, id)
	}
	if req.ID != "" {
		if mirrorErr := r.mirror.Replace(ctx, req); mirrorErr != nil {
			r.logger.Warn("failed to mirror service request", zap.String("id", id), zap.Error(mirrorErr))
		}
	}
	return req, nil
}

func (r *ServiceRequestFallbackRepository) List(ctx context.Context) ([]entities.ServiceRequest, error) {
	callCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	records, err := r.remote.List(callCtx)
	if err != nil {
		r.logger.Warn("remote list failed, serving mock backend", zap.Error(err))
		return r.mirror.List(ctx)
	}
	for _, rec := range records {
		if mirrorErr := r.mirror.Replace(ctx, rec); mirrorErr != nil {
			r.logger.Warn("failed to mirror service request", zap.String("id", rec.ID), zap.Error(mirrorErr))
			break
		}
	}
	return records, nil
}

func (r *ServiceRequestFallbackRepository) Patch(ctx context.Context, id string, fields entities.RequestPatch) (entities.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	updated, err := r.remote.Patch(ctx, id, fields)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID != "" {
		if mirrorErr := r.mirror.Replace(context.WithoutCancel(ctx), updated); mirrorErr != nil {
			r.logger.Warn("failed to mirror patched service request", zap.String("id", id), zap.Error(mirrorErr))
		}
	}
	return updated, nil
}
