package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CreateLeadRequest entrada para crear un lead de un cliente.
type CreateLeadRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"` // opcional, default New
	Value       decimal.Decimal `json:"value"`
}

// Validate acumula todos los errores de campo.
func (r CreateLeadRequest) Validate() []FieldError {
	var fe fieldErrors
	if fe.required("title", r.Title) {
		fe.maxLen("title", r.Title, 200)
	}
	fe.maxLen("description", r.Description, 2000)
	if r.Status != "" && !entity.ValidLeadStatus(r.Status) {
		fe.add("status", "status debe ser New, Contacted, Converted o Lost")
	}
	if r.Value.IsNegative() {
		fe.add("value", "value no puede ser negativo")
	}
	return fe
}

// UpdateLeadRequest entrada para actualizar un lead. Campos nil se conservan.
type UpdateLeadRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Value       *decimal.Decimal `json:"value"`
}

// Validate valida solo los campos presentes.
func (r UpdateLeadRequest) Validate() []FieldError {
	var fe fieldErrors
	if r.Title != nil {
		if fe.required("title", *r.Title) {
			fe.maxLen("title", *r.Title, 200)
		}
	}
	if r.Description != nil {
		fe.maxLen("description", *r.Description, 2000)
	}
	if r.Status != nil && !entity.ValidLeadStatus(*r.Status) {
		fe.add("status", "status debe ser New, Contacted, Converted o Lost")
	}
	if r.Value != nil && r.Value.IsNegative() {
		fe.add("value", "value no puede ser negativo")
	}
	return fe
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// LeadListResponse lista paginada de leads de un cliente.
type LeadListResponse struct {
	Leads      []LeadResponse `json:"leads"`
	Pagination Pagination     `json:"pagination"`
}

// ToLeadResponse mapea la entidad a su representación pública.
func ToLeadResponse(l *entity.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		CustomerID:  l.CustomerID,
		Title:       l.Title,
		Description: l.Description,
		Status:      l.Status,
		Value:       l.Value,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
