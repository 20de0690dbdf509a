package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func listContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseListParams_Defaults(t *testing.T) {
	p := parseListParams(listContext(t, "/api/posts"))
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected page=1 limit=10, got page=%d limit=%d", p.Page, p.Limit)
	}
	if p.Skip() != 0 {
		t.Fatalf("expected skip 0, got %d", p.Skip())
	}
	if p.Search != "" || p.Category != "" || p.Tag != "" {
		t.Fatalf("expected empty filters, got %+v", p)
	}
}

func TestParseListParams_Explicit(t *testing.T) {
	p := parseListParams(listContext(t, "/api/posts?page=2&limit=5"))
	if p.Page != 2 || p.Limit != 5 {
		t.Fatalf("expected page=2 limit=5, got page=%d limit=%d", p.Page, p.Limit)
	}
	if p.Skip() != 5 {
		t.Fatalf("expected skip 5, got %d", p.Skip())
	}
}

func TestParseListParams_NonNumericDoesNotFail(t *testing.T) {
	p := parseListParams(listContext(t, "/api/posts?page=abc&limit=xyz"))
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected defaults for non-numeric input, got page=%d limit=%d", p.Page, p.Limit)
	}
}

func TestParseListParams_ZeroLimitCoerced(t *testing.T) {
	p := parseListParams(listContext(t, "/api/posts?limit=0"))
	if p.Limit != 10 {
		t.Fatalf("expected limit coerced to 10, got %d", p.Limit)
	}
}

func TestParseListParams_Filters(t *testing.T) {
	p := parseListParams(listContext(t, "/api/posts?search=go&category=tech&tag=tutorial"))
	if p.Search != "go" {
		t.Fatalf("expected search 'go', got %q", p.Search)
	}
	if p.Category != "tech" {
		t.Fatalf("expected category 'tech', got %q", p.Category)
	}
	if p.Tag != "tutorial" {
		t.Fatalf("expected tag 'tutorial', got %q", p.Tag)
	}
}
