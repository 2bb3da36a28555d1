package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole indica si el rol pertenece al conjunto permitido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa una identidad del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
