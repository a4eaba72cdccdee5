package store

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int64
		want        Pagination
	}{
		{"exact pages", 1, 10, 30, Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 30}},
		{"partial last page", 3, 10, 25, Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25}},
		{"no matches", 1, 10, 0, Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0}},
		{"single record", 1, 10, 1, Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1}},
		{"defaults applied", 0, 0, 25, Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 25}},
		{"negative page", -2, 5, 12, Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.limit, tt.total)
			if got != tt.want {
				t.Errorf("NewPagination(%d, %d, %d) = %+v, want %+v", tt.page, tt.limit, tt.total, got, tt.want)
			}
		})
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, -1)
	if page != DefaultPage || limit != DefaultLimit {
		t.Errorf("normalizePage(0, -1) = (%d, %d), want defaults", page, limit)
	}

	page, limit = normalizePage(4, 25)
	if page != 4 || limit != 25 {
		t.Errorf("normalizePage(4, 25) = (%d, %d), want unchanged", page, limit)
	}
}
