package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"ssx_solar/internal/domain/entities"
	"ssx_solar/internal/usecase/interfaces"
)

var (
	ErrServiceRequestNotFound = errors.New("service request not found")
	ErrInvalidRequestID       = errors.New("invalid service request id")
	ErrInvalidClientID        = errors.New("invalid client_id")
	ErrInvalidInstallerID     = errors.New("invalid installer_id")
	ErrInvalidEquipmentType   = errors.New("invalid equipment_type")
	ErrInvalidPriority        = errors.New("invalid priority")
	ErrIncompleteAddress      = errors.New("incomplete address")
)

// CreateServiceRequestCommand carries the caller-supplied fields of a new
// request. Everything else (id, status, timestamps) is stamped here or by
// the backend.
type CreateServiceRequestCommand struct {
	ClientID      string
	EquipmentType entities.EquipmentType
	ProductID     string
	Address       entities.Address
	Notes         string
	Priority      entities.RequestPriority
}

// IServiceRequestUseCase exposes the service-request repository operations:
// creation by a client and the role-scoped listings the three portals
// render.

type IServiceRequestUseCase interface {
	Create(ctx context.Context, cmd CreateServiceRequestCommand) (entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.ServiceRequest, error)
	ListByInstaller(ctx context.Context, installerID string) ([]entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	repo interfaces.IServiceRequestRepository
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, cmd CreateServiceRequestCommand) (entities.ServiceRequest, error) {
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	if cmd.ClientID == "" {
		return entities.ServiceRequest{}, ErrInvalidClientID
	}
	if !cmd.EquipmentType.Valid() {
		return entities.ServiceRequest{}, ErrInvalidEquipmentType
	}
	if cmd.Priority == "" {
		cmd.Priority = entities.PriorityNormal
	}
	if !cmd.Priority.Valid() {
		return entities.ServiceRequest{}, ErrInvalidPriority
	}
	if err := validateAddress(cmd.Address); err != nil {
		return entities.ServiceRequest{}, err
	}

	req := entities.ServiceRequest{
		ClientID:      cmd.ClientID,
		EquipmentType: cmd.EquipmentType,
		ProductID:     strings.TrimSpace(cmd.ProductID),
		Address:       cmd.Address,
		Notes:         cmd.Notes,
		Priority:      cmd.Priority,
		Status:        entities.RequestStatusPending,
	}
	return u.repo.Insert(ctx, req)
}

func (u *ServiceRequestUseCase) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(records)
	return records, nil
}

func (u *ServiceRequestUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.ServiceRequest, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.ServiceRequest
	for _, rec := range records {
		if rec.ClientID == clientID {
			out = append(out, rec)
		}
	}
	sortByCreatedAtDesc(out)
	return out, nil
}

func (u *ServiceRequestUseCase) ListByInstaller(ctx context.Context, installerID string) ([]entities.ServiceRequest, error) {
	installerID = strings.TrimSpace(installerID)
	if installerID == "" {
		return nil, ErrInvalidInstallerID
	}
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.ServiceRequest
	for _, rec := range records {
		if rec.InstallerID == installerID {
			out = append(out, rec)
		}
	}
	sortByCreatedAtDesc(out)
	return out, nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
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

// validateAddress requires every structured part except complement.
func validateAddress(a entities.Address) error {
	required := []string{a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode}
	for _, part := range required {
		if strings.TrimSpace(part) == "" {
			return ErrIncompleteAddress
		}
	}
	return nil
}

func sortByCreatedAtDesc(records []entities.ServiceRequest) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}
