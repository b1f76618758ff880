package request

import (
	"strings"

	"ssx_solar/internal/domain/entities"
)

type AddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
}

func (r AddressRequest) ToAddress() entities.Address {
	return entities.Address{
		Street:       strings.TrimSpace(r.Street),
		Number:       strings.TrimSpace(r.Number),
		Complement:   strings.TrimSpace(r.Complement),
		Neighborhood: strings.TrimSpace(r.Neighborhood),
		City:         strings.TrimSpace(r.City),
		State:        strings.TrimSpace(r.State),
		ZipCode:      strings.TrimSpace(r.ZipCode),
	}
}

// CreateServiceRequestRequest is the client portal's creation payload.
type CreateServiceRequestRequest struct {
	ClientID      string         `json:"client_id" binding:"required"`
	EquipmentType string         `json:"equipment_type" binding:"required"`
	ProductID     string         `json:"product_id"`
	Address       AddressRequest `json:"address" binding:"required"`
	Notes         string         `json:"notes"`
	Priority      string         `json:"priority"`
}

type AssignInstallerRequest struct {
	InstallerID string `json:"installer_id" binding:"required"`
}

type CompleteRequest struct {
	TechnicalNotes string `json:"technical_notes"`
}

type ConfirmRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}
