package pkg

import "testing"

func TestParsePagination(t *testing.T) {
	if p := ParsePagination("", ""); p != nil {
		t.Fatalf("expected nil pagination, got %+v", p)
	}

	tests := []struct {
		page, limit        string
		wantPage, wantSize int
		wantOffset         int
	}{
		{page: "2", limit: "20", wantPage: 2, wantSize: 20, wantOffset: 20},
		{page: "0", limit: "", wantPage: 1, wantSize: 10, wantOffset: 0},
		{page: "abc", limit: "500", wantPage: 1, wantSize: 100, wantOffset: 0},
	}

	for _, tt := range tests {
		p := ParsePagination(tt.page, tt.limit)
		if p.Page != tt.wantPage || p.Limit != tt.wantSize {
			t.Fatalf("ParsePagination(%q, %q) = %+v", tt.page, tt.limit, p)
		}
		if p.Offset() != tt.wantOffset {
			t.Fatalf("expected offset %d, got %d", tt.wantOffset, p.Offset())
		}
	}
}

func TestParseULID(t *testing.T) {
	id := GenerateULID()
	parsed, err := ParseULID(id)
	if err != nil {
		t.Fatalf("generated id %s is not a valid ULID: %v", id, err)
	}
	if parsed.String() != id {
		t.Fatalf("expected %s, got %s", id, parsed)
	}
	if _, err := ParseULID(""); err == nil {
		t.Fatalf("expected error for empty string")
	}
	if _, err := ParseULID("not-a-ulid"); err == nil {
		t.Fatalf("expected error for malformed id")
	}
}
