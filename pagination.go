package datatable

// Pagination is the page state of a paginated table.
// Pages are counted from 1.
type Pagination struct {
	CurrentPage   int `json:"currentPage"`
	NumberOfPages int `json:"numberOfPages"`
}

// NewPagination returns a Pagination where
// 1 <= CurrentPage <= max(NumberOfPages, 1) holds.
// A negative numberOfPages is treated as zero.
func NewPagination(currentPage, numberOfPages int) Pagination {
	if numberOfPages < 0 {
		numberOfPages = 0
	}
	p := Pagination{CurrentPage: currentPage, NumberOfPages: numberOfPages}
	p.CurrentPage = p.clamp(currentPage)
	return p
}

// LastPage returns max(NumberOfPages, 1).
func (p Pagination) LastPage() int {
	return max(p.NumberOfPages, 1)
}

// HasPrevious returns if there is a page before the current one.
func (p Pagination) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext returns if there is a page after the current one.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.NumberOfPages
}

// PageNumbers returns up to window page numbers
// centered around the current page.
// A window less than 1 returns all pages.
func (p Pagination) PageNumbers(window int) []int {
	last := p.LastPage()
	first, end := 1, last
	if window > 0 && window < last {
		first = p.CurrentPage - window/2
		first = max(first, 1)
		end = first + window - 1
		if end > last {
			end = last
			first = end - window + 1
		}
	}
	pages := make([]int, 0, end-first+1)
	for page := first; page <= end; page++ {
		pages = append(pages, page)
	}
	return pages
}

func (p Pagination) clamp(page int) int {
	return min(max(page, 1), p.LastPage())
}

// PaginationControl is the renderable pagination of a table.
type PaginationControl struct {
	Pagination

	// OnPageChange is called with the new page number.
	OnPageChange func(page int)
}

// ChangePageTo clamps page to the valid range and calls
// OnPageChange if it differs from the current page.
// Returns if OnPageChange was called.
func (c PaginationControl) ChangePageTo(page int) bool {
	page = c.clamp(page)
	if page == c.CurrentPage || c.OnPageChange == nil {
		return false
	}
	c.OnPageChange(page)
	return true
}

// PageCount returns the number of pages needed
// for total records with pageSize records per page.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the records of page with pageSize records per page.
// The returned slice shares the backing array of records.
// A page outside of the available pages returns nil.
func Paginate(records []Record, page, pageSize int) []Record {
	if pageSize <= 0 {
		return records
	}
	start := (page - 1) * pageSize
	if page < 1 || start >= len(records) {
		return nil
	}
	end := min(start+pageSize, len(records))
	return records[start:end:end]
}
