package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// 25 registros con limit 10: tres páginas, la primera con siguiente y sin previa.
func TestNewPagination_PrimeraPagina(t *testing.T) {
	p := dto.NewPagination(1, 10, 25)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.TotalRecords)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestNewPagination_UltimaPagina(t *testing.T) {
	p := dto.NewPagination(3, 10, 25)

	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

// Página más allá del final: no es error, solo lista vacía sin siguiente.
func TestNewPagination_PaginaFueraDeRango(t *testing.T) {
	p := dto.NewPagination(7, 10, 25)

	assert.Equal(t, 7, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestNewPagination_SinRegistros(t *testing.T) {
	p := dto.NewPagination(1, 10, 0)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestPageRequest_Normalize(t *testing.T) {
	cases := []struct {
		name              string
		in                dto.PageRequest
		wantPage, wantLim int
	}{
		{"defaults", dto.PageRequest{}, 1, 10},
		{"page negativa", dto.PageRequest{Page: -3, Limit: 20}, 1, 20},
		{"limit sobre el tope", dto.PageRequest{Page: 2, Limit: 500}, 2, 100},
		{"limit cero", dto.PageRequest{Page: 2, Limit: 0}, 2, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			assert.Equal(t, tc.wantPage, tc.in.Page)
			assert.Equal(t, tc.wantLim, tc.in.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}
