package pagination

import (
	"net/url"
	"strconv"
)

// Result is one page of a collection plus everything a handler needs to
// expose the paging state: the ready-made Link header and the raw cursors.
type Result[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate slices one page out of items. The cursor names the last item the
// client has seen; the page starts right after it. A cursor pointing at an
// item that no longer exists restarts from the top, which keeps paging safe
// across concurrent deletes.
//
// getID extracts the stable id used for cursor positions, and baseURL plus
// query feed the Link header so filters survive page navigation.
func Paginate[T any](
	items []T,
	cursor Cursor,
	limit int,
	cursorType string,
	getID func(T) string,
	baseURL string,
	query url.Values,
) Result[T] {
	total := len(items)

	start := 0
	if cursor.Value != "" {
		for i, item := range items {
			if getID(item) == cursor.Value {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, total)
	page := items[start:end]

	var next string
	if end < total && len(page) > 0 {
		next = Cursor{Type: cursorType, Value: getID(page[len(page)-1])}.Encode()
	}

	// The prev cursor points at the item preceding the previous page. For
	// the second page that is "before everything", an empty value.
	var prev string
	if start > 0 {
		value := ""
		if start > limit {
			value = getID(items[start-1-limit])
		}
		prev = Cursor{Type: cursorType, Value: value}.Encode()
	}

	q := cloneValues(query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return Result[T]{
		Items:      page,
		Total:      total,
		LinkHeader: BuildLinkHeader(baseURL, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}
}
