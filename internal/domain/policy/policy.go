package policy

import "github.com/tu-usuario/crm-pro/internal/domain"

// Identity identidad autenticada mínima para decisiones de acceso.
type Identity struct {
	ID   string
	Role string
}

// AccessPolicy decide, de forma pura, qué registros puede tocar una identidad.
// Hay dos variantes: dueño (alcance propio) y admin (sin restricción).
// Centraliza la regla que antes se repetía inline en cada handler.
type AccessPolicy interface {
	// CanAccess decide ALLOW/DENY sobre un registro con dueño.
	CanAccess(ownerID string) bool
	// OwnerFilter devuelve el owner_id al que debe acotarse un listado
	// y si la restricción aplica (false para admin).
	OwnerFilter() (ownerID string, restricted bool)
}

// For construye la política según el rol de la identidad.
func For(id Identity) AccessPolicy {
	if id.Role == "admin" {
		return adminPolicy{}
	}
	return ownerPolicy{userID: id.ID}
}

// Authorize aplica la política y traduce DENY a ErrForbidden.
func Authorize(id Identity, ownerID string) error {
	if !For(id).CanAccess(ownerID) {
		return domain.ErrForbidden
	}
	return nil
}

// adminPolicy: acceso total, los listados no se acotan.
type adminPolicy struct{}

func (adminPolicy) CanAccess(string) bool       { return true }
func (adminPolicy) OwnerFilter() (string, bool) { return "", false }

// ownerPolicy: solo registros cuyo owner_id coincide con la identidad.
type ownerPolicy struct {
	userID string
}

func (p ownerPolicy) CanAccess(ownerID string) bool { return ownerID == p.userID }
func (p ownerPolicy) OwnerFilter() (string, bool)   { return p.userID, true }
