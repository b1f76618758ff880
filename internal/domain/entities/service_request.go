package entities

import "time"

// RequestStatus represents the lifecycle of a service request.
//
// Domain notes:
//   - The service-request API is the source of truth for request state.
//   - Transitions are driven by the client/installer/admin portal actions
//     and validated in the lifecycle use case; terminal states are
//     confirmed and cancelled.

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusConfirmed  RequestStatus = "confirmed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusConfirmed || s == RequestStatusCancelled
}

type EquipmentType string

const (
	EquipmentSolarHeater EquipmentType = "solar_heater"
	EquipmentGasHeater   EquipmentType = "gas_heater"
)

func (e EquipmentType) Valid() bool {
	return e == EquipmentSolarHeater || e == EquipmentGasHeater
}

// RequestPriority is informational only; it never gates a transition.

type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityNormal RequestPriority = "normal"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Address is the installation site. Complement is the only optional part.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// RequestImage is one uploaded photo attached to a request. Order of the
// Images slice is upload order.
type RequestImage struct {
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ServiceRequest is the central entity persisted in the serviceRequests
// collection.
//
// Storage model (DynamoDB):
//   - PK: id
//
// clientId, equipmentType, productId, address, notes and priority are fixed
// at creation; everything else mutates through the lifecycle operations.
// Stage timestamps stay nil until their transition happens. There is no
// delete path for this entity.
type ServiceRequest struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	EquipmentType EquipmentType   `json:"equipment_type"`
	ProductID     string          `json:"product_id,omitempty"`
	Address       Address         `json:"address"`
	Notes         string          `json:"notes,omitempty"`
	Priority      RequestPriority `json:"priority"`

	Status         RequestStatus  `json:"status"`
	InstallerID    string         `json:"installer_id,omitempty"`
	InstallerName  string         `json:"installer_name,omitempty"`
	TechnicalNotes string         `json:"technical_notes,omitempty"`
	Images         []RequestImage `json:"images,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	PausedAt    *time.Time `json:"paused_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
