package entity

import "time"

// Category categoría del catálogo (herramientas, fijaciones, pinturas...).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
