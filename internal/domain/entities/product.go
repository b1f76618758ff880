package entities

import "time"

// Product is a catalog entry (a heater model a client can request).
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	EquipmentType EquipmentType `json:"equipment_type"`
	Price         float64       `json:"price"`
	Active        bool          `json:"active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
