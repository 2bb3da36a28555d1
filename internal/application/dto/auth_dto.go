package dto

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // opcional: user (default) | admin
}

// Validate acumula todos los errores de campo del registro.
func (r RegisterRequest) Validate() []FieldError {
	var fe fieldErrors
	if fe.required("name", r.Name) {
		fe.maxLen("name", r.Name, 100)
	}
	if fe.required("email", r.Email) {
		fe.email("email", r.Email)
	}
	if fe.required("password", r.Password) && len(r.Password) < 8 {
		fe.add("password", "password debe tener al menos 8 caracteres")
	}
	if r.Role != "" && !entity.ValidRole(r.Role) {
		fe.add("role", "role debe ser user o admin")
	}
	return fe
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate acumula todos los errores de campo del login.
func (r LoginRequest) Validate() []FieldError {
	var fe fieldErrors
	if fe.required("email", r.Email) {
		fe.email("email", r.Email)
	}
	fe.required("password", r.Password)
	return fe
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse salida de register/login: usuario + token Bearer.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse mapea la entidad a su representación pública.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
