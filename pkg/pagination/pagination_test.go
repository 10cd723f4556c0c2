package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, 0},
		{"explicit", "limit=5&offset=10", 5, 10},
		{"capped at max", "limit=500", MaxLimit, 0},
		{"negative ignored", "limit=-3&offset=-7", DefaultLimit, 0},
		{"garbage ignored", "limit=abc", DefaultLimit, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := paramsFor(t, tc.query)
			if p.Limit != tc.wantLimit || p.Offset != tc.wantOffset {
				t.Errorf("got %+v, want limit=%d offset=%d", p, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}

func TestResponseHasMore(t *testing.T) {
	r := NewResponse([]int{1, 2}, 5, 2, 0)
	if !r.HasMore {
		t.Error("expected HasMore with total 5, limit 2, offset 0")
	}
	r = NewResponse([]int{1}, 5, 2, 4)
	if r.HasMore {
		t.Error("expected no more results at offset 4 of 5")
	}
}

func TestNextOffset(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}
	if p.NextOffset() != 60 {
		t.Errorf("NextOffset = %d, want 60", p.NextOffset())
	}
	if p.HasNext(50) {
		t.Error("expected no next page past total")
	}
}
