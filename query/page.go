package query

import "github.com/kxxnxr13/web-inmobiliaria/models"

// DefaultPageSize matches the listings grid.
const DefaultPageSize = 6

type Page struct {
	Properties []models.Property `json:"properties"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// Paginate slices the 1-based page out of an already filtered and sorted
// sequence. Out-of-range pages yield an empty slice, never a bad index. An
// empty input yields zero pages; callers render that as an explicit
// "no results" state with no pager.
func Paginate(properties []models.Property, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(properties)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start >= total {
		return Page{Properties: []models.Property{}, Total: total, Page: page, TotalPages: totalPages}
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page{
		Properties: append([]models.Property(nil), properties[start:end]...),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}
