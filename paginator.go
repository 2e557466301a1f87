package pagesql

// Paginator summarizes a page once the total row count is known.
type Paginator struct {
	Page       int
	Limit      int
	TotalCount int
}

// NewPaginator creates a Paginator. A page below 1 is treated as 1.
func NewPaginator(page, limit, totalCount int) Paginator {
	if page < 1 {
		page = 1
	}
	return Paginator{Page: page, Limit: limit, TotalCount: totalCount}
}

// TotalPages returns the number of pages; 0 when there are no rows.
func (p Paginator) TotalPages() int {
	if p.TotalCount <= 0 || p.Limit <= 0 {
		return 0
	}
	return (p.TotalCount + p.Limit - 1) / p.Limit
}

// FirstPage reports whether this is the first page.
func (p Paginator) FirstPage() bool {
	return p.Page <= 1
}

// LastPage reports whether no page follows this one.
func (p Paginator) LastPage() bool {
	return p.Page >= p.TotalPages()
}

// HasPrev reports whether a previous page exists.
func (p Paginator) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists.
func (p Paginator) HasNext() bool {
	return p.Page < p.TotalPages()
}

// PrevPage returns the previous page number, or the current one on page 1.
func (p Paginator) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return p.Page
}

// NextPage returns the next page number, or the current one on the last page.
func (p Paginator) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}

// StartRow returns the 1-based index of the page's first row, 0 if the page is empty.
func (p Paginator) StartRow() int {
	if p.Page > p.TotalPages() {
		return 0
	}
	return (p.Page-1)*p.Limit + 1
}

// EndRow returns the 1-based index of the page's last row, 0 if the page is empty.
func (p Paginator) EndRow() int {
	if p.StartRow() == 0 {
		return 0
	}
	end := p.Page * p.Limit
	if end > p.TotalCount {
		return p.TotalCount
	}
	return end
}
