package domain

import "slices"

// --- Shared Types ---

// Pagination describes one page of a list. Page is always clamped into [1, TotalPages].
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int   `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Start      int   `json:"start"`
	From       int   `json:"from"` // 1-based, 0 when the list is empty
	To         int   `json:"to"`
	Window     []int `json:"window"` // page numbers worth rendering as buttons
}

// Page is a visible slice of items plus its pagination metadata.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Paginate slices items into the requested 1-based page. Out-of-range pages are
// clamped silently and pageSize below 1 is treated as 1.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	totalPages := max(1, (total+pageSize-1)/pageSize)
	page = min(max(1, page), totalPages)
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	visible := make([]T, 0, end-start)
	visible = append(visible, items[start:end]...)

	from := 0
	if total > 0 {
		from = start + 1
	}

	return Page[T]{
		Items: visible,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
			Start:      start,
			From:       from,
			To:         start + len(visible),
			Window:     pageWindow(page, totalPages),
		},
	}
}

// pageWindow returns the first, last, current and adjacent pages in order.
func pageWindow(page, totalPages int) []int {
	window := make([]int, 0, 5)
	for _, n := range []int{1, page - 1, page, page + 1, totalPages} {
		if n >= 1 && n <= totalPages && !slices.Contains(window, n) {
			window = append(window, n)
		}
	}
	slices.Sort(window)
	return window
}

// Response standardizes API responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}
