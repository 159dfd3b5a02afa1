package dto

import "time"

// CreateProviderRequest alta de proveedor. RUT acepta cualquier formato (12.345.678-5, 123456785...).
type CreateProviderRequest struct {
	RUT         string `json:"rut" validate:"required,rut"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactName string `json:"contact_name" validate:"max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Address     string `json:"address" validate:"max=300"`
}

// UpdateProviderRequest campos opcionales del proveedor.
type UpdateProviderRequest struct {
	RUT         *string `json:"rut" validate:"omitempty,rut"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
}

// ProviderResponse salida de un proveedor. rut va sin dígito verificador, como lo guarda el backend.
type ProviderResponse struct {
	ID          string    `json:"id"`
	RUT         int64     `json:"rut"`
	RUTDisplay  string    `json:"rut_formateado"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
