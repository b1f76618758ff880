package request

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role" binding:"required"`
}

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	EquipmentType string  `json:"equipment_type" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	Active        bool    `json:"active"`
}
