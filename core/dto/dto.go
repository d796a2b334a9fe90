package dto

import "meca-api/core/entity"

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// MapPagination converts a paginated entity result, applying fn to every item.
func MapPagination[E any, T any](p *entity.Pagination[E], fn func(*E) T) *Pagination[T] {
	if p == nil {
		return nil
	}
	items := make([]T, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, fn(&p.Items[i]))
	}
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (p.TotalItems + p.PageSize - 1) / p.PageSize
	}
	return &Pagination[T]{
		Items:      items,
		TotalItems: p.TotalItems,
		TotalPages: totalPages,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
