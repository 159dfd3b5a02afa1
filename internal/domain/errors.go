package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrRUTAlreadyExists   = errors.New("el RUT ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRUT         = errors.New("El RUT ingresado no es válido")
	ErrInvalidPhone       = errors.New("el teléfono ingresado no es válido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
