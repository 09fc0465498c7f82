package response

import (
	"fmt"
	"net/url"
)

type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Meta struct {
	CurrentPage uint   `json:"current_page"`
	From        *uint  `json:"from"`
	LastPage    uint   `json:"last_page"`
	Path        string `json:"path"`
	PerPage     uint   `json:"per_page"`
	To          *uint  `json:"to"`
	Total       uint   `json:"total"`
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// NewPage builds the page number page of a collection located at path, data
// holds the items of that page only.
func NewPage[T any](data []T, path string, page uint, perPage uint, total uint) Page[T] {
	lastPage := uint(1)
	if total > 0 {
		lastPage = (total + perPage - 1) / perPage
	}

	meta := Meta{CurrentPage: page, LastPage: lastPage, Path: path, PerPage: perPage, Total: total}
	if len(data) > 0 {
		from := (page-1)*perPage + 1
		to := from + uint(len(data)) - 1
		meta.From = &from
		meta.To = &to
	}

	links := Links{First: pageURL(path, 1), Last: pageURL(path, lastPage)}
	if page > 1 {
		prev := pageURL(path, page-1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(path, page+1)
		links.Next = &next
	}

	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Links: links, Meta: meta}
}

func pageURL(path string, page uint) string {
	return fmt.Sprintf("%s?%s", path, url.Values{"page": {fmt.Sprint(page)}}.Encode())
}
