package dto

import (
	"time"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/listquery"
)

// ResponseModel sobre uniforme de toda operación del panel. Es el único canal
// de propagación de errores: ninguna operación devuelve un error fuera de él.
type ResponseModel[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Success bool   `json:"success"`
}

// OK construye un sobre exitoso.
func OK[T any](data T, message string, status int) *ResponseModel[T] {
	return &ResponseModel[T]{Data: data, Message: message, Status: status, Success: true}
}

// Fail construye un sobre de falla con data en su valor cero (null para
// punteros y slices).
func Fail[T any](message string, status int) *ResponseModel[T] {
	var zero T
	return &ResponseModel[T]{Data: zero, Message: message, Status: status, Success: false}
}

// PaginatedResponse página de resultados con metadatos de paginación.
type PaginatedResponse[T any] struct {
	Items       []T `json:"items"`
	TotalCount  int `json:"totalCount"`
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// PaginationParams parámetros comunes de paginación y orden de los listados.
type PaginationParams struct {
	Page          int    `query:"page" json:"page"`
	PageSize      int    `query:"pageSize" json:"pageSize"`
	SortBy        string `query:"sortBy" json:"sortBy"`
	SortDirection string `query:"sortDirection" json:"sortDirection"`
}

// Normalize aplica los valores por defecto: página 1, tamaño 10, orden
// ascendente y el campo de orden propio de cada entidad.
func (p *PaginationParams) Normalize(defaultSortBy string) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = listquery.DefaultPageSize
	}
	if p.SortBy == "" {
		p.SortBy = defaultSortBy
	}
	if p.SortDirection != string(listquery.Desc) {
		p.SortDirection = string(listquery.Asc)
	}
}

// NormalizeDesc igual que Normalize, pero las páginas cuyo orden natural es
// el más reciente primero (pedidos, compras, campañas) arrancan descendente
// cuando el cliente no pide dirección.
func (p *PaginationParams) NormalizeDesc(defaultSortBy string) {
	if p.SortDirection == "" {
		p.SortDirection = string(listquery.Desc)
	}
	p.Normalize(defaultSortBy)
}

// ListParams traduce los parámetros al pipeline de listados.
func (p PaginationParams) ListParams() listquery.Params {
	return listquery.Params{
		Page:          p.Page,
		PageSize:      p.PageSize,
		SortBy:        p.SortBy,
		SortDirection: listquery.Direction(p.SortDirection),
	}
}

// AuditFields campos de auditoría en las respuestas.
type AuditFields struct {
	ID         string    `json:"id"`
	Active     bool      `json:"active"`
	CreatedBy  string    `json:"createdBy"`
	CreatedOn  time.Time `json:"createdOn"`
	ModifiedBy string    `json:"modifiedBy"`
	ModifiedOn time.Time `json:"modifiedOn"`
}

func auditOf(a entity.Audit) AuditFields {
	return AuditFields{
		ID:         a.ID,
		Active:     a.Active,
		CreatedBy:  a.CreatedBy,
		CreatedOn:  a.CreatedOn,
		ModifiedBy: a.ModifiedBy,
		ModifiedOn: a.ModifiedOn,
	}
}

// ErrorResponse cuerpo de error HTTP fuera del sobre (middlewares).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
