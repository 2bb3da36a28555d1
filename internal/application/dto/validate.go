package dto

import (
	"fmt"
	"regexp"
	"strings"
)

// La validación es total: cada Validate() recorre todos los campos y
// acumula los errores en vez de cortar en el primero. Sin efectos
// secundarios: si hay errores, nada llega a persistencia.

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return len(s) <= 254 && emailRx.MatchString(s)
}

// fieldErrors acumulador con helpers para las reglas repetidas.
type fieldErrors []FieldError

func (fe *fieldErrors) add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

func (fe *fieldErrors) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		fe.add(field, field+" es requerido")
		return false
	}
	return true
}

func (fe *fieldErrors) maxLen(field, value string, max int) {
	if len(value) > max {
		fe.add(field, fmt.Sprintf("%s no puede superar %d caracteres", field, max))
	}
}

func (fe *fieldErrors) email(field, value string) {
	if !validEmail(value) {
		fe.add(field, field+" no es un email válido")
	}
}
