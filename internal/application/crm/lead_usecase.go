package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/policy"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// LeadUseCase casos de uso de leads. El acceso siempre se decide sobre el
// dueño del Customer padre: un lead hereda el alcance de su cliente.
type LeadUseCase struct {
	customers repository.CustomerRepository
	leads     repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(customers repository.CustomerRepository, leads repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{customers: customers, leads: leads}
}

// Create crea un lead del cliente. Status vacío toma el default New.
func (uc *LeadUseCase) Create(ident policy.Identity, customerID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if _, err := uc.authorizedCustomer(ident, customerID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Value:       in.Value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.leads.Create(lead); err != nil {
		return nil, err
	}
	out := dto.ToLeadResponse(lead)
	return &out, nil
}

// List lista leads del cliente, paginados y opcionalmente filtrados por
// status (ya validado contra el enum en el borde HTTP).
func (uc *LeadUseCase) List(ident policy.Identity, customerID, status string, page dto.PageRequest) (*dto.LeadListResponse, error) {
	if _, err := uc.authorizedCustomer(ident, customerID); err != nil {
		return nil, err
	}
	page.Normalize()
	filter := repository.LeadFilter{
		CustomerID: customerID,
		Status:     status,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	}
	total, err := uc.leads.Count(filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.leads.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.ToLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Leads:      out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update actualiza los campos presentes de un lead del cliente.
func (uc *LeadUseCase) Update(ident policy.Identity, customerID, leadID string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.authorizedLead(ident, customerID, leadID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		lead.Title = *in.Title
	}
	if in.Description != nil {
		lead.Description = *in.Description
	}
	if in.Status != nil {
		lead.Status = *in.Status
	}
	if in.Value != nil {
		lead.Value = *in.Value
	}
	lead.UpdatedAt = time.Now()
	if err := uc.leads.Update(lead); err != nil {
		return nil, err
	}
	out := dto.ToLeadResponse(lead)
	return &out, nil
}

// Delete borra un lead del cliente.
func (uc *LeadUseCase) Delete(ident policy.Identity, customerID, leadID string) error {
	if _, err := uc.authorizedLead(ident, customerID, leadID); err != nil {
		return err
	}
	return uc.leads.Delete(leadID)
}

// authorizedCustomer carga el cliente padre y aplica la política de acceso.
func (uc *LeadUseCase) authorizedCustomer(ident policy.Identity, customerID string) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(customerID)
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

// authorizedLead autoriza vía el cliente padre y verifica que el lead
// pertenezca a ese cliente (si no, ErrNotFound).
func (uc *LeadUseCase) authorizedLead(ident policy.Identity, customerID, leadID string) (*entity.Lead, error) {
	if _, err := uc.authorizedCustomer(ident, customerID); err != nil {
		return nil, err
	}
	lead, err := uc.leads.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	return lead, nil
}
