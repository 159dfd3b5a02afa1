package entity

import (
	"time"

	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
	RoleCliente  = "cliente"
)

// Estados de User.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User usuario del storefront o de la consola de administración.
type User struct {
	ID           string
	RUT          int64 // cuerpo sin dígito verificador; 0 si no informó
	Email        string
	PasswordHash string // bcrypt, nunca plano
	Name         string
	Phone        string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayRUT RUT con puntos y dígito verificador, "" si no tiene.
func (u *User) DisplayRUT() string {
	r, err := rut.FromNumber(u.RUT)
	if err != nil {
		return ""
	}
	return r.String()
}
