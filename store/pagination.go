package store

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// NewPagination computes the page metadata for a total match count.
func NewPagination(page, limit int, total int64) Pagination {
	page, limit = normalizePage(page, limit)
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}
}

// normalizePage falls back to the defaults for absent or nonsense values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}
