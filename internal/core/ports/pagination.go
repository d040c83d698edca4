package ports

// ListResult is one page of a listing plus the totals needed to render
// pagination controls.
type ListResult[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
