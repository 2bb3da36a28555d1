package dto

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// Validate acumula todos los errores de campo.
func (r CreateCustomerRequest) Validate() []FieldError {
	var fe fieldErrors
	if fe.required("name", r.Name) {
		fe.maxLen("name", r.Name, 200)
	}
	if fe.required("email", r.Email) {
		fe.email("email", r.Email)
	}
	fe.maxLen("phone", r.Phone, 50)
	fe.maxLen("company", r.Company, 200)
	return fe
}

// UpdateCustomerRequest entrada para actualizar un cliente.
// Campos nil se conservan; el dueño nunca es actualizable.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// Validate valida solo los campos presentes.
func (r UpdateCustomerRequest) Validate() []FieldError {
	var fe fieldErrors
	if r.Name != nil {
		if fe.required("name", *r.Name) {
			fe.maxLen("name", *r.Name, 200)
		}
	}
	if r.Email != nil {
		if fe.required("email", *r.Email) {
			fe.email("email", *r.Email)
		}
	}
	if r.Phone != nil {
		fe.maxLen("phone", *r.Phone, 50)
	}
	if r.Company != nil {
		fe.maxLen("company", *r.Company, 200)
	}
	return fe
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination Pagination         `json:"pagination"`
}

// CustomerDetailResponse cliente con sus leads (GET /customers/:id).
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	Leads    []LeadResponse   `json:"leads"`
}

// ToCustomerResponse mapea la entidad a su representación pública.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
