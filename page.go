package remotemodel

import (
	"github.com/spf13/cast"

	"github.com/torann/remote-model/pkg/client"
)

// Page is one hydrated slice of a paginated listing.
type Page struct {
	Items       []*Model
	Total       int
	PerPage     int
	CurrentPage int

	// Meta preserves envelope keys outside the reserved pagination/items
	// pair.
	Meta map[string]any
}

// hydratePage builds a Page from a {pagination, items} envelope. Items go
// through the standard fill path with no further fetching. Total is
// perPage * last; currentPage is next - 1, with an absent or empty next
// defaulting to 2 so the first page reads as page 1.
func (t *Type) hydratePage(envelope map[string]any, payload *client.ErrorPayload) (*Page, error) {
	page := &Page{Meta: map[string]any{}}

	if p, ok := envelope["pagination"].(map[string]any); ok {
		perPage := cast.ToInt(p["perPage"])
		if perPage == 0 {
			perPage = cast.ToInt(p["per_page"])
		}
		next := cast.ToInt(p["next"])
		if next == 0 {
			next = 2
		}
		page.PerPage = perPage
		page.Total = perPage * cast.ToInt(p["last"])
		page.CurrentPage = next - 1
	}

	if items, ok := envelope["items"].([]any); ok {
		for _, item := range items {
			attrs, ok := item.(map[string]any)
			if !ok {
				continue
			}
			m, err := t.hydrate(attrs, payload)
			if err != nil {
				return nil, err
			}
			page.Items = append(page.Items, m)
		}
	}

	for k, v := range envelope {
		if k == "pagination" || k == "items" {
			continue
		}
		page.Meta[k] = v
	}

	return page, nil
}
