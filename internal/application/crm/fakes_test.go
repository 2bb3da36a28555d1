package crm_test

import (
	"context"
	"strings"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Mantienen orden de
// inserción para que la paginación sea determinista.

type fakeCustomerRepo struct {
	items []*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range r.items {
		if existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) matches(c *entity.Customer, f repository.CustomerFilter) bool {
	if f.OwnerID != "" && c.OwnerID != f.OwnerID {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) &&
			!strings.Contains(strings.ToLower(c.Company), q) {
			return false
		}
	}
	return true
}

func (r *fakeCustomerRepo) List(f repository.CustomerFilter) ([]*entity.Customer, error) {
	var filtered []*entity.Customer
	for _, c := range r.items {
		if r.matches(c, f) {
			filtered = append(filtered, c)
		}
	}
	if f.Offset >= len(filtered) {
		return nil, nil
	}
	end := f.Offset + f.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[f.Offset:end], nil
}

func (r *fakeCustomerRepo) Count(f repository.CustomerFilter) (int, error) {
	total := 0
	for _, c := range r.items {
		if r.matches(c, f) {
			total++
		}
	}
	return total, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	for i, existing := range r.items {
		if existing.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLeadRepo struct {
	items []*entity.Lead
}

func (r *fakeLeadRepo) Create(l *entity.Lead) error {
	cp := *l
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeLeadRepo) GetByID(id string) (*entity.Lead, error) {
	for _, l := range r.items {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLeadRepo) matches(l *entity.Lead, f repository.LeadFilter) bool {
	if l.CustomerID != f.CustomerID {
		return false
	}
	return f.Status == "" || l.Status == f.Status
}

func (r *fakeLeadRepo) List(f repository.LeadFilter) ([]*entity.Lead, error) {
	var filtered []*entity.Lead
	for _, l := range r.items {
		if r.matches(l, f) {
			filtered = append(filtered, l)
		}
	}
	if f.Offset >= len(filtered) {
		return nil, nil
	}
	end := f.Offset + f.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[f.Offset:end], nil
}

func (r *fakeLeadRepo) Count(f repository.LeadFilter) (int, error) {
	total := 0
	for _, l := range r.items {
		if r.matches(l, f) {
			total++
		}
	}
	return total, nil
}

func (r *fakeLeadRepo) ListByCustomer(customerID string) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.items {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Update(l *entity.Lead) error {
	for i, existing := range r.items {
		if existing.ID == l.ID {
			cp := *l
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeLeadRepo) Delete(id string) error {
	for i, l := range r.items {
		if l.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeLeadRepo) DeleteByCustomer(customerID string) error {
	var kept []*entity.Lead
	for _, l := range r.items {
		if l.CustomerID != customerID {
			kept = append(kept, l)
		}
	}
	r.items = kept
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	leads     *fakeLeadRepo
	runs      int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	leadRepo repository.LeadRepository,
) error) error {
	r.runs++
	return fn(r.customers, r.leads)
}
