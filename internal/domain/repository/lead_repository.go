package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// LeadFilter criterios de listado de leads de un cliente.
// Status vacío = todos los estados.
type LeadFilter struct {
	CustomerID string
	Status     string
	Limit      int
	Offset     int
}

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List(filter LeadFilter) ([]*entity.Lead, error)
	Count(filter LeadFilter) (int, error)
	ListByCustomer(customerID string) ([]*entity.Lead, error)
	Update(lead *entity.Lead) error
	Delete(id string) error
	// DeleteByCustomer borra todos los leads del cliente (cascade).
	DeleteByCustomer(customerID string) error
}
