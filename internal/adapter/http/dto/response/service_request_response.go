package response

import (
	"time"

	"ssx_solar/internal/domain/entities"
)

type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type RequestImageResponse struct {
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ServiceRequestResponse struct {
	ID             string                 `json:"id"`
	ClientID       string                 `json:"client_id"`
	EquipmentType  string                 `json:"equipment_type"`
	ProductID      string                 `json:"product_id,omitempty"`
	Address        AddressResponse        `json:"address"`
	Notes          string                 `json:"notes,omitempty"`
	Priority       string                 `json:"priority"`
	Status         string                 `json:"status"`
	InstallerID    string                 `json:"installer_id,omitempty"`
	InstallerName  string                 `json:"installer_name,omitempty"`
	TechnicalNotes string                 `json:"technical_notes,omitempty"`
	Images         []RequestImageResponse `json:"images,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	StartedAt      *time.Time             `json:"started_at,omitempty"`
	PausedAt       *time.Time             `json:"paused_at,omitempty"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	ConfirmedAt    *time.Time             `json:"confirmed_at,omitempty"`
	CancelledAt    *time.Time             `json:"cancelled_at,omitempty"`
}

func FromServiceRequest(req entities.ServiceRequest) ServiceRequestResponse {
	out := ServiceRequestResponse{
		ID:            req.ID,
		ClientID:      req.ClientID,
		EquipmentType: string(req.EquipmentType),
		ProductID:     req.ProductID,
		Address: AddressResponse{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Complement:   req.Address.Complement,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			ZipCode:      req.Address.ZipCode,
		},
		Notes:          req.Notes,
		Priority:       string(req.Priority),
		Status:         string(req.Status),
		InstallerID:    req.InstallerID,
		InstallerName:  req.InstallerName,
		TechnicalNotes: req.TechnicalNotes,
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
		StartedAt:      req.StartedAt,
		PausedAt:       req.PausedAt,
		CompletedAt:    req.CompletedAt,
		ConfirmedAt:    req.ConfirmedAt,
		CancelledAt:    req.CancelledAt,
	}
	for _, img := range req.Images {
		out.Images = append(out.Images, RequestImageResponse{URL: img.URL, UploadedAt: img.UploadedAt})
	}
	return out
}

func FromServiceRequests(records []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromServiceRequest(rec))
	}
	return out
}
