package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CustomerFilter criterios de listado de clientes.
// OwnerID vacío = sin restricción de dueño (admin). Query es búsqueda libre
// (substring, case-insensitive) sobre name/email/company.
type CustomerFilter struct {
	OwnerID string
	Query   string
	Limit   int
	Offset  int
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	// List y Count deben aplicar el mismo filtro: los metadatos de página
	// se derivan del Count sobre idéntico criterio.
	List(filter CustomerFilter) ([]*entity.Customer, error)
	Count(filter CustomerFilter) (int, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
