package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/policy"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; el borrado en cascada depende de él.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		leadRepo repository.LeadRepository,
	) error) error
}

// CustomerUseCase casos de uso de clientes con alcance por dueño.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	leads     repository.LeadRepository
	tx        TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, leads repository.LeadRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, leads: leads, tx: tx}
}

// Create crea un cliente; la identidad autenticada queda como dueño.
func (uc *CustomerUseCase) Create(ident policy.Identity, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.customers.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		OwnerID:   ident.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// List lista clientes paginados. Para no admin el filtro se acota al
// owner_id de la identidad (mismo aislamiento que el gate, otro mecanismo).
// q busca substring case-insensitive en name/email/company.
func (uc *CustomerUseCase) List(ident policy.Identity, q string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.Normalize()
	filter := repository.CustomerFilter{
		Query:  q,
		Limit:  page.Limit,
		Offset: page.Offset(),
	}
	if owner, restricted := policy.For(ident).OwnerFilter(); restricted {
		filter.OwnerID = owner
	}
	total, err := uc.customers.Count(filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.customers.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers:  out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Get devuelve un cliente con sus leads. ErrForbidden si la identidad
// no es dueña ni admin; ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(ident policy.Identity, id string) (*dto.CustomerDetailResponse, error) {
	customer, err := uc.authorized(ident, id)
	if err != nil {
		return nil, err
	}
	leads, err := uc.leads.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	leadOut := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		leadOut = append(leadOut, dto.ToLeadResponse(l))
	}
	return &dto.CustomerDetailResponse{
		Customer: dto.ToCustomerResponse(customer),
		Leads:    leadOut,
	}, nil
}

// Update actualiza los campos presentes. El dueño es inmutable.
func (uc *CustomerUseCase) Update(ident policy.Identity, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.authorized(ident, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != customer.Email {
		existing, err := uc.customers.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		customer.Email = *in.Email
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Company != nil {
		customer.Company = *in.Company
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// Delete borra el cliente y todos sus leads en una sola transacción:
// un fallo parcial no deja leads huérfanos.
func (uc *CustomerUseCase) Delete(ctx context.Context, ident policy.Identity, id string) error {
	if _, err := uc.authorized(ident, id); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, leadRepo repository.LeadRepository) error {
		if err := leadRepo.DeleteByCustomer(id); err != nil {
			return err
		}
		return customerRepo.Delete(id)
	})
}

// authorized carga el cliente y aplica la política de acceso.
func (uc *CustomerUseCase) authorized(ident policy.Identity, id string) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(ident, customer.OwnerID); err != nil {
		return nil, err
	}
	return customer, nil
}
