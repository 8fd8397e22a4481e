package utils

import "strconv"

// PerPage is the fixed page size for every paginated feed.
const PerPage = 10

type Page struct {
	Number     int
	PerPage    int
	TotalPages int
	TotalCount int64
	HasNext    bool
	HasPrev    bool
}

// NewPage resolves a 1-based page number from a query parameter against a
// total item count. A missing or unparsable parameter means page 1; a number
// past the end clamps to the last page. An empty collection still has one
// (empty) page.
func NewPage(pageParam string, totalCount int64, perPage int) Page {
	totalPages := int((totalCount + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	number, err := strconv.Atoi(pageParam)
	if err != nil || number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return Page{
		Number:     number,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalCount: totalCount,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) NextNumber() int {
	return p.Number + 1
}

func (p Page) PrevNumber() int {
	return p.Number - 1
}
