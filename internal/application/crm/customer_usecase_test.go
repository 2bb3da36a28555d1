package crm_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/policy"
)

var (
	identA     = policy.Identity{ID: "user-a", Role: "user"}
	identB     = policy.Identity{ID: "user-b", Role: "user"}
	identAdmin = policy.Identity{ID: "admin-1", Role: "admin"}
)

func newCustomerUC() (*crm.CustomerUseCase, *fakeCustomerRepo, *fakeLeadRepo, *fakeTxRunner) {
	customers := &fakeCustomerRepo{}
	leads := &fakeLeadRepo{}
	tx := &fakeTxRunner{customers: customers, leads: leads}
	return crm.NewCustomerUseCase(customers, leads, tx), customers, leads, tx
}

func seedCustomer(t *testing.T, repo *fakeCustomerRepo, owner, name, email, company string) *entity.Customer {
	t.Helper()
	now := time.Now()
	c := &entity.Customer{
		ID: fmt.Sprintf("cust-%s", email), OwnerID: owner,
		Name: name, Email: email, Company: company,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(c))
	return c
}

func TestCustomerCreate_AsignaDueno(t *testing.T) {
	uc, _, _, _ := newCustomerUC()

	out, err := uc.Create(identA, dto.CreateCustomerRequest{Name: "Acme", Email: "contacto@acme.com"})
	require.NoError(t, err)

	assert.Equal(t, identA.ID, out.OwnerID)
	assert.NotEmpty(t, out.ID)
}

func TestCustomerCreate_EmailDuplicado(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	seedCustomer(t, customers, identA.ID, "Acme", "contacto@acme.com", "Acme Corp")

	_, err := uc.Create(identB, dto.CreateCustomerRequest{Name: "Otro", Email: "contacto@acme.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// A no puede leer el cliente de B; admin sí.
func TestCustomerGet_AislamientoPorDueno(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	c := seedCustomer(t, customers, identB.ID, "Acme", "contacto@acme.com", "Acme Corp")

	_, err := uc.Get(identA, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Get(identAdmin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, out.Customer.ID)

	out, err = uc.Get(identB, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, out.Customer.ID)
}

func TestCustomerGet_NoExiste(t *testing.T) {
	uc, _, _, _ := newCustomerUC()

	_, err := uc.Get(identA, "cust-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El listado de no admin solo devuelve clientes propios; el de admin, todos.
func TestCustomerList_AcotaPorDueno(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	seedCustomer(t, customers, identA.ID, "Uno", "uno@a.com", "")
	seedCustomer(t, customers, identA.ID, "Dos", "dos@a.com", "")
	seedCustomer(t, customers, identB.ID, "Tres", "tres@b.com", "")

	out, err := uc.List(identA, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Customers, 2)
	for _, c := range out.Customers {
		assert.Equal(t, identA.ID, c.OwnerID)
	}

	out, err = uc.List(identAdmin, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Customers, 3)
}

// q="acme" encuentra company="Acme Corp" sin importar mayúsculas.
func TestCustomerList_BusquedaCaseInsensitive(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	seedCustomer(t, customers, identA.ID, "Juan Pérez", "juan@example.com", "Acme Corp")
	seedCustomer(t, customers, identA.ID, "María López", "maria@example.com", "Globex")

	out, err := uc.List(identA, "acme", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Customers, 1)
	assert.Equal(t, "Acme Corp", out.Customers[0].Company)
	assert.Equal(t, 1, out.Pagination.TotalRecords)
}

func TestCustomerList_Paginacion(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	for i := 0; i < 25; i++ {
		seedCustomer(t, customers, identA.ID,
			fmt.Sprintf("Cliente %02d", i), fmt.Sprintf("c%02d@example.com", i), "")
	}

	out, err := uc.List(identA, "", dto.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Customers, 10)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.Equal(t, 25, out.Pagination.TotalRecords)
	assert.True(t, out.Pagination.HasNextPage)
	assert.False(t, out.Pagination.HasPrevPage)

	out, err = uc.List(identA, "", dto.PageRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Customers, 5)
	assert.False(t, out.Pagination.HasNextPage)
	assert.True(t, out.Pagination.HasPrevPage)

	// Página fuera de rango: lista vacía, no error.
	out, err = uc.List(identA, "", dto.PageRequest{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Customers)
}

func TestCustomerUpdate_BloqueaNoDueno(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	c := seedCustomer(t, customers, identB.ID, "Acme", "contacto@acme.com", "")

	nuevo := "Acme SA"
	_, err := uc.Update(identA, c.ID, dto.UpdateCustomerRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCustomerUpdate_CamposPresentes(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	c := seedCustomer(t, customers, identA.ID, "Acme", "contacto@acme.com", "Acme Corp")

	nuevo := "Acme SA"
	out, err := uc.Update(identA, c.ID, dto.UpdateCustomerRequest{Name: &nuevo})
	require.NoError(t, err)

	assert.Equal(t, "Acme SA", out.Name)
	assert.Equal(t, "contacto@acme.com", out.Email) // no tocado
	assert.Equal(t, identA.ID, out.OwnerID)         // dueño inmutable
}

func TestCustomerUpdate_EmailDuplicado(t *testing.T) {
	uc, customers, _, _ := newCustomerUC()
	seedCustomer(t, customers, identA.ID, "Uno", "uno@example.com", "")
	c := seedCustomer(t, customers, identA.ID, "Dos", "dos@example.com", "")

	otro := "uno@example.com"
	_, err := uc.Update(identA, c.ID, dto.UpdateCustomerRequest{Email: &otro})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Borrar un cliente arrastra todos sus leads, dentro del runner transaccional.
func TestCustomerDelete_CascadaBorraLeads(t *testing.T) {
	uc, customers, leads, tx := newCustomerUC()
	c := seedCustomer(t, customers, identA.ID, "Acme", "contacto@acme.com", "")
	otro := seedCustomer(t, customers, identA.ID, "Globex", "info@globex.com", "")

	require.NoError(t, leads.Create(&entity.Lead{ID: "lead-1", CustomerID: c.ID, Title: "Uno", Status: entity.LeadStatusNew}))
	require.NoError(t, leads.Create(&entity.Lead{ID: "lead-2", CustomerID: c.ID, Title: "Dos", Status: entity.LeadStatusNew}))
	require.NoError(t, leads.Create(&entity.Lead{ID: "lead-3", CustomerID: otro.ID, Title: "Ajeno", Status: entity.LeadStatusNew}))

	require.NoError(t, uc.Delete(context.Background(), identA, c.ID))

	assert.Equal(t, 1, tx.runs, "el borrado debe pasar por el runner transaccional")

	gone, err := customers.GetByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	for _, id := range []string{"lead-1", "lead-2"} {
		l, err := leads.GetByID(id)
		require.NoError(t, err)
		assert.Nil(t, l, "lead del cliente borrado debe desaparecer")
	}
	// Los leads de otros clientes no se tocan.
	l, err := leads.GetByID("lead-3")
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestCustomerDelete_BloqueaNoDueno(t *testing.T) {
	uc, customers, _, tx := newCustomerUC()
	c := seedCustomer(t, customers, identB.ID, "Acme", "contacto@acme.com", "")

	err := uc.Delete(context.Background(), identA, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, tx.runs)
}
