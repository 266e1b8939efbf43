package client

// PerPage is the system-wide listing page size.
const PerPage = 28

// TotalPages returns ceil(total / PerPage).
func TotalPages(total int) int {
	return (total + PerPage - 1) / PerPage
}

// Paginate returns the 1-indexed page slice of listings. Pages are not
// clamped: a page beyond the last yields an empty slice, and page values
// below 1 are treated the same way.
func Paginate(listings []Listing, page int) []Listing {
	if page < 1 {
		return []Listing{}
	}
	start := (page - 1) * PerPage
	if start >= len(listings) {
		return []Listing{}
	}
	end := start + PerPage
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}

// PageControl describes one page-selector button.
type PageControl struct {
	Number int
	Active bool
}

// PageControls builds one control per page, 1..TotalPages, with the
// current page marked. A single page renders no controls, matching the
// frontend behavior of hiding the selector.
func PageControls(total, current int) []PageControl {
	pages := TotalPages(total)
	if pages <= 1 {
		return nil
	}
	controls := make([]PageControl, 0, pages)
	for i := 1; i <= pages; i++ {
		controls = append(controls, PageControl{Number: i, Active: i == current})
	}
	return controls
}
