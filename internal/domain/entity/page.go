package entity

// Page is the contract returned by every paginated listing. Page is 0-based
// and echoed back as requested, even past the last page (empty Items).
type Page[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage builds a Page from one page of items plus the overall count.
func NewPage[T any](items []T, page, size int, totalElements int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
