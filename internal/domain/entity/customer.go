package entity

import "time"

// Customer representa un contacto de negocio con dueño único.
// OwnerID es inmutable después de la creación.
type Customer struct {
	ID        string
	OwnerID   string // User que creó el registro
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
