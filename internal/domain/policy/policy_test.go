package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/policy"
)

// El dueño puede acceder a sus propios registros.
func TestOwner_AccedeRegistroPropio(t *testing.T) {
	id := policy.Identity{ID: "user-a", Role: "user"}
	assert.True(t, policy.For(id).CanAccess("user-a"))
	assert.NoError(t, policy.Authorize(id, "user-a"))
}

// Un usuario no admin no puede acceder a registros de otro dueño.
func TestOwner_BloqueadoEnRegistroAjeno(t *testing.T) {
	id := policy.Identity{ID: "user-a", Role: "user"}
	assert.False(t, policy.For(id).CanAccess("user-b"))
	assert.ErrorIs(t, policy.Authorize(id, "user-b"), domain.ErrForbidden)
}

// Admin ignora la regla de dueño por completo.
func TestAdmin_AccedeCualquierRegistro(t *testing.T) {
	id := policy.Identity{ID: "admin-1", Role: "admin"}
	assert.True(t, policy.For(id).CanAccess("user-b"))
	assert.NoError(t, policy.Authorize(id, "user-b"))
}

// Los listados de no admin se acotan al owner_id de la identidad;
// los de admin no llevan restricción.
func TestOwnerFilter(t *testing.T) {
	owner, restricted := policy.For(policy.Identity{ID: "user-a", Role: "user"}).OwnerFilter()
	assert.True(t, restricted)
	assert.Equal(t, "user-a", owner)

	_, restricted = policy.For(policy.Identity{ID: "admin-1", Role: "admin"}).OwnerFilter()
	assert.False(t, restricted)
}
