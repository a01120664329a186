// Package listquery implementa el pipeline genérico de consulta de listados:
// filtrar → ordenar → paginar sobre una colección en memoria. Las funciones
// son puras: nunca mutan la colección de origen.
package listquery

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction sentido del ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize tamaño de página cuando el llamador no pide uno.
const DefaultPageSize = 10

// Params especificación de filtrado/orden/página de un listado.
// Page es 1-based. Valores fuera de rango se normalizan en Apply: página 1 y
// DefaultPageSize, de modo que un Params en su valor cero es seguro.
type Params struct {
	Page          int
	PageSize      int
	SortBy        string
	SortDirection Direction
}

// Page página de resultados con los metadatos para los controles de paginación.
type Page[T any] struct {
	Items       []T
	TotalCount  int
	PageSize    int
	CurrentPage int
	TotalPages  int
}

// Predicate filtro sobre un registro. Todos los predicados se combinan con AND.
type Predicate[T any] func(T) bool

// Comparator orden total sobre dos registros: negativo, cero o positivo.
type Comparator[T any] func(a, b T) int

// Comparators mapa tipado de campo de orden → comparador, resuelto en
// compilación por entidad. Un SortBy ausente del mapa no reordena.
type Comparators[T any] map[string]Comparator[T]

// Apply ejecuta el pipeline en orden fijo: (1) AND de todos los predicados,
// (2) orden estable según SortBy/SortDirection, (3) conteos, (4) corte de la
// página. Una página más allá del final produce un corte vacío, sin error.
func Apply[T any](src []T, p Params, preds []Predicate[T], cmps Comparators[T]) Page[T] {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}

	filtered := make([]T, 0, len(src))
	for _, item := range src {
		if matchesAll(item, preds) {
			filtered = append(filtered, item)
		}
	}

	if cmp, ok := cmps[p.SortBy]; ok {
		desc := p.SortDirection == Desc
		sort.SliceStable(filtered, func(i, j int) bool {
			c := cmp(filtered[i], filtered[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	totalCount := len(filtered)
	totalPages := (totalCount + p.PageSize - 1) / p.PageSize

	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return Page[T]{
		Items:       filtered[start:end],
		TotalCount:  totalCount,
		PageSize:    p.PageSize,
		CurrentPage: p.Page,
		TotalPages:  totalPages,
	}
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if !pred(item) {
			return false
		}
	}
	return true
}

// ContainsFold coincidencia de subcadena sin distinguir mayúsculas,
// para los filtros de texto libre.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// CompareStrings comparador lexicográfico para campos de texto.
func CompareStrings(a, b string) int { return strings.Compare(a, b) }

// CompareInts comparador numérico para campos enteros.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareDecimals comparador para montos decimal.Decimal.
func CompareDecimals(a, b decimal.Decimal) int { return a.Cmp(b) }
