package domain

// Pagination defaults shared by every paginated list endpoint.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is the envelope returned by paginated list operations.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// ClampPage normalizes raw pagination input: page starts at 1, pageSize
// falls back to the default and is capped at MaxPageSize.
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// TotalPages computes ceil(total / pageSize).
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
