package dto

// Response envolvente uniforme de la API:
// {success, data? | error, message?, details?}.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// OK construye una respuesta exitosa con payload.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail construye una respuesta de error con código y mensaje.
func Fail(code, message string) Response {
	return Response{Success: false, Error: code, Message: message}
}

// FailValidation construye una respuesta 400 con el detalle por campo.
func FailValidation(details []FieldError) Response {
	return Response{
		Success: false,
		Error:   "VALIDATION",
		Message: "la petición contiene campos inválidos",
		Details: details,
	}
}

// FieldError error de validación a nivel de campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageRequest paginación para listados: page >= 1, limit 1..100.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica defaults (page=1, limit=10) y acota limit a [1,100].
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset devuelve el desplazamiento SQL: (page-1) * limit.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas de listado.
// Se derivan de un COUNT separado con el mismo filtro del listado.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalRecords int  `json:"totalRecords"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// NewPagination calcula los metadatos: totalPages = ceil(total/limit).
// Una página más allá del final no es error: lista vacía y hasNextPage=false.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}
