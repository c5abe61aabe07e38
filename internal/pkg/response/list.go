package response

// ListResponse is the standard wrapper for list endpoints. The catalog is
// small enough that nothing here paginates, but lists still ship with their
// count and never as a bare JSON array.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse wraps items, normalizing nil to an empty slice so the JSON
// is [] rather than null.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return ListResponse[T]{
		Items: items,
		Total: len(items),
	}
}
