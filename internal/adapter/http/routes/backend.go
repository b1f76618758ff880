package routes

import (
	"context"
	"sync"

	"ssx_solar/internal/adapter/persistence/repository"
	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/infrastructure/database"
	"ssx_solar/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// backendSet bundles one backend's repositories and image store.
type backendSet struct {
	requests interfaces.IServiceRequestRepository
	users    interfaces.IUserRepository
	products interfaces.IProductRepository
	images   interfaces.IImageStore
}

// backendSwitch holds the active backend set. The mode is fixed at startup;
// Toggle is the developer-only escape hatch that flips between the remote
// and mock sets and clears all session-scoped state.
type backendSwitch struct {
	mu      sync.RWMutex
	mode    database.Mode
	current *backendSet
	remote  *backendSet // nil when no remote credentials at startup
	mock    *backendSet
	session *repository.MemorySessionStore
	logger  *zap.Logger
}

func newBackendSwitch(mode database.Mode, remote, mock *backendSet, session *repository.MemorySessionStore, logger *zap.Logger) *backendSwitch {
	s := &backendSwitch{mode: mode, remote: remote, mock: mock, session: session, logger: logger}
	if mode == database.ModeRemote && remote != nil {
		s.current = remote
	} else {
		s.mode = database.ModeMock
		s.current = mock
	}
	return s
}

// Toggle clears the session store and swaps the active set. Without remote
// credentials it stays on the mock set (the clear still happens).
func (s *backendSwitch) Toggle() database.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Clear()
	if s.mode == database.ModeRemote {
		s.mode = database.ModeMock
		s.current = s.mock
	} else if s.remote != nil {
		s.mode = database.ModeRemote
		s.current = s.remote
	}
	s.logger.Info("backend toggled", zap.String("mode", string(s.mode)))
	return s.mode
}

func (s *backendSwitch) Mode() database.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *backendSwitch) set() *backendSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// The switched* adapters let use cases hold stable references while the
// underlying set swaps.

type switchedRequests struct{ s *backendSwitch }

var _ interfaces.IServiceRequestRepository = switchedRequests{}

func (a switchedRequests) Insert(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	return a.s.set().requests.Insert(ctx, req)
}

func (a switchedRequests) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	return a.s.set().requests.GetByID(ctx, id)
}

func (a switchedRequests) List(ctx context.Context) ([]entities.ServiceRequest, error) {
	return a.s.set().requests.List(ctx)
}

func (a switchedRequests) Patch(ctx context.Context, id string, fields entities.RequestPatch) (entities.ServiceRequest, error) {
	return a.s.set().requests.Patch(ctx, id, fields)
}

type switchedUsers struct{ s *backendSwitch }

var _ interfaces.IUserRepository = switchedUsers{}

func (a switchedUsers) Insert(ctx context.Context, u entities.User) (entities.User, error) {
	return a.s.set().users.Insert(ctx, u)
}

func (a switchedUsers) GetByID(ctx context.Context, id string) (entities.User, error) {
	return a.s.set().users.GetByID(ctx, id)
}

func (a switchedUsers) ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	return a.s.set().users.ListByRole(ctx, role)
}

type switchedProducts struct{ s *backendSwitch }

var _ interfaces.IProductRepository = switchedProducts{}

func (a switchedProducts) Insert(ctx context.Context, p entities.Product) (entities.Product, error) {
	return a.s.set().products.Insert(ctx, p)
}

func (a switchedProducts) GetByID(ctx context.Context, id string) (entities.Product, error) {
	return a.s.set().products.GetByID(ctx, id)
}

func (a switchedProducts) List(ctx context.Context) ([]entities.Product, error) {
	return a.s.set().products.List(ctx)
}

type switchedImages struct{ s *backendSwitch }

var _ interfaces.IImageStore = switchedImages{}

func (a switchedImages) Upload(ctx context.Context, requestID, filename string, data []byte) (string, error) {
	return a.s.set().images.Upload(ctx, requestID, filename, data)
}
