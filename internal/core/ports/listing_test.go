package ports

import "testing"

func TestNewListParams_Defaults(t *testing.T) {
	p := NewListParams(0, 0)
	if p.Page != 1 {
		t.Fatalf("expected page 1, got %d", p.Page)
	}
	if p.Limit != 10 {
		t.Fatalf("expected limit 10, got %d", p.Limit)
	}
	if p.Skip() != 0 {
		t.Fatalf("expected skip 0, got %d", p.Skip())
	}
}

func TestNewListParams_NegativeValues(t *testing.T) {
	p := NewListParams(-3, -1)
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected defaults, got page=%d limit=%d", p.Page, p.Limit)
	}
}

func TestListParams_Skip(t *testing.T) {
	p := NewListParams(2, 5)
	if p.Skip() != 5 {
		t.Fatalf("expected skip 5, got %d", p.Skip())
	}
	if p.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", p.Limit)
	}

	p = NewListParams(4, 10)
	if p.Skip() != 30 {
		t.Fatalf("expected skip 30, got %d", p.Skip())
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
		{26, 5, 6},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}

func TestTotalPages_ZeroLimit(t *testing.T) {
	if got := TotalPages(42, 0); got != 0 {
		t.Fatalf("expected 0 for zero limit, got %d", got)
	}
	if got := TotalPages(42, -1); got != 0 {
		t.Fatalf("expected 0 for negative limit, got %d", got)
	}
}
