package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader renders next and prev relations as an RFC 8288 Link header.
// The caller's query parameters (filters, limit) are kept on each link so the
// client can follow them blindly. Empty cursors produce no relation; with
// neither cursor the header is empty and should be omitted.
func BuildLinkHeader(baseURL string, query url.Values, nextCursor, prevCursor string) string {
	var links []string
	appendRel := func(cursor, rel string) {
		if cursor == "" {
			return
		}
		q := cloneValues(query)
		q.Set("cursor", cursor)
		links = append(links, fmt.Sprintf("<%s?%s>; rel=%q", baseURL, q.Encode(), rel))
	}
	appendRel(nextCursor, "next")
	appendRel(prevCursor, "prev")
	return strings.Join(links, ", ")
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
