package pagination

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
)

type pageEntry struct {
	ID string
}

func makeEntries(count int) []pageEntry {
	entries := make([]pageEntry, count)
	for i := range count {
		entries[i] = pageEntry{ID: fmt.Sprintf("entry-%03d", i+1)}
	}
	return entries
}

func entryID(e pageEntry) string { return e.ID }

func paginateEntries(entries []pageEntry, cursor Cursor, limit int, query url.Values) Result[pageEntry] {
	return Paginate(entries, cursor, limit, "entry", entryID, "/entries", query)
}

func TestPaginateFirstPage(t *testing.T) {
	result := paginateEntries(makeEntries(30), Cursor{}, 10, nil)

	if len(result.Items) != 10 || result.Total != 30 {
		t.Fatalf("expected 10 of 30, got %d of %d", len(result.Items), result.Total)
	}
	if result.Items[0].ID != "entry-001" {
		t.Errorf("expected entry-001 first, got %s", result.Items[0].ID)
	}
	if result.NextCursor == "" {
		t.Error("expected next cursor")
	}
	if result.PrevCursor != "" {
		t.Errorf("expected no prev cursor, got %s", result.PrevCursor)
	}
}

func TestPaginateMiddlePage(t *testing.T) {
	result := paginateEntries(makeEntries(30), Cursor{Type: "entry", Value: "entry-010"}, 10, nil)

	if result.Items[0].ID != "entry-011" {
		t.Errorf("expected entry-011 first, got %s", result.Items[0].ID)
	}
	if result.NextCursor == "" || result.PrevCursor == "" {
		t.Error("middle page needs both cursors")
	}

	prev, err := DecodeCursor(result.PrevCursor)
	if err != nil {
		t.Fatalf("decode prev: %v", err)
	}
	if prev.Value != "" {
		t.Errorf("prev from page 2 must rewind to the start, got %q", prev.Value)
	}
}

func TestPaginateLastPage(t *testing.T) {
	result := paginateEntries(makeEntries(30), Cursor{Type: "entry", Value: "entry-020"}, 10, nil)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.NextCursor != "" {
		t.Errorf("expected no next cursor, got %s", result.NextCursor)
	}

	prev, err := DecodeCursor(result.PrevCursor)
	if err != nil {
		t.Fatalf("decode prev: %v", err)
	}
	if prev.Value != "entry-010" {
		t.Errorf("expected prev at entry-010, got %q", prev.Value)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	result := paginateEntries(nil, Cursor{}, 10, nil)

	if len(result.Items) != 0 || result.Total != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if result.NextCursor != "" || result.PrevCursor != "" {
		t.Error("empty input must not produce cursors")
	}
}

func TestPaginateUnknownCursorStartsOver(t *testing.T) {
	result := paginateEntries(makeEntries(10), Cursor{Type: "entry", Value: "deleted-entry"}, 10, nil)

	if len(result.Items) != 10 {
		t.Fatalf("expected full first page, got %d", len(result.Items))
	}
	if result.Items[0].ID != "entry-001" {
		t.Errorf("expected restart from entry-001, got %s", result.Items[0].ID)
	}
}

func TestPaginateLimitExceedsTotal(t *testing.T) {
	result := paginateEntries(makeEntries(5), Cursor{}, 20, nil)

	if len(result.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(result.Items))
	}
	if result.NextCursor != "" || result.PrevCursor != "" {
		t.Error("single page must not produce cursors")
	}
}

func TestPaginateLinkHeaderKeepsQuery(t *testing.T) {
	query := url.Values{}
	query.Set("category", "Automotriz")

	result := paginateEntries(makeEntries(30), Cursor{}, 10, query)

	if !strings.Contains(result.LinkHeader, `rel="next"`) {
		t.Fatalf("expected next link, got %q", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "category=Automotriz") {
		t.Errorf("expected category preserved, got %q", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "limit=10") {
		t.Errorf("expected limit in links, got %q", result.LinkHeader)
	}
}

func TestBuildLinkHeaderBothRelations(t *testing.T) {
	header := BuildLinkHeader("/entries", nil, "NEXT", "PREV")
	if !strings.Contains(header, `rel="next"`) || !strings.Contains(header, `rel="prev"`) {
		t.Fatalf("expected both relations, got %q", header)
	}
	if !strings.Contains(header, "cursor=NEXT") || !strings.Contains(header, "cursor=PREV") {
		t.Errorf("expected cursors in links, got %q", header)
	}
}

func TestBuildLinkHeaderEmpty(t *testing.T) {
	if header := BuildLinkHeader("/entries", nil, "", ""); header != "" {
		t.Fatalf("expected empty header, got %q", header)
	}
}
