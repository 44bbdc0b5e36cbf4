package view

import "fmt"

// ItemsPerPage is fixed for every paginated list.
const ItemsPerPage = 10

// Pagination describes one page of a record list. Current is not clamped:
// out-of-range values are representable and simply select no rows.
type Pagination struct {
	Current int
	PerPage int
	Count   int
}

// NewPagination returns the pagination for a list of count records.
func NewPagination(current, count int) Pagination {
	return Pagination{Current: current, PerPage: ItemsPerPage, Count: count}
}

// TotalPages is ceil(Count / PerPage); zero for an empty list.
func (p Pagination) TotalPages() int {
	if p.PerPage <= 0 || p.Count <= 0 {
		return 0
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// HasPrev reports whether the Previous affordance is enabled.
func (p Pagination) HasPrev() bool {
	return p.Current != 1
}

// HasNext reports whether the Next affordance is enabled. An empty list has
// no pages to move to.
func (p Pagination) HasNext() bool {
	total := p.TotalPages()
	return total > 0 && p.Current != total
}

// Bounds returns the half-open index range [(Current-1)*PerPage,
// Current*PerPage) intersected with [0, Count).
func (p Pagination) Bounds() (lo, hi int) {
	if p.Current < 1 || p.PerPage <= 0 {
		return 0, 0
	}
	// Past the last page: bail out before multiplying so huge pages
	// cannot overflow.
	if p.Current > p.TotalPages() {
		end := max(p.Count, 0)
		return end, end
	}
	lo = (p.Current - 1) * p.PerPage
	hi = min(p.Current*p.PerPage, p.Count)
	return lo, hi
}

// Label renders the "Page x of y" caption.
func (p Pagination) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Current, p.TotalPages())
}

// Slice returns the records on the current page.
func Slice[T any](items []T, p Pagination) []T {
	lo, hi := p.Bounds()
	hi = min(hi, len(items))
	if lo < 0 || lo >= hi {
		return nil
	}
	return items[lo:hi]
}
