package domain

import (
	"strings"
	"testing"
)

func TestGenerateLayoutRowMajor(t *testing.T) {
	layout, err := GenerateLayout(2, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"A1", "A2", "A3", "B1", "B2", "B3"}
	got := layout.Codes()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("wrong seat order: got %v want %v", got, want)
	}
	for _, s := range layout.Seats {
		if s.Booked {
			t.Fatalf("seat %s should start unbooked", s.Code)
		}
	}
}

func TestGenerateLayoutCountAndUniqueness(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1}, {5, 6}, {3, 7}, {2, 8}, {26, 12},
	} {
		layout, err := GenerateLayout(tc.rows, tc.cols)
		if err != nil {
			t.Fatalf("rows=%d cols=%d: unexpected error %v", tc.rows, tc.cols, err)
		}
		if len(layout.Seats) != tc.rows*tc.cols {
			t.Fatalf("rows=%d cols=%d: got %d seats want %d", tc.rows, tc.cols, len(layout.Seats), tc.rows*tc.cols)
		}
		seen := make(map[string]struct{}, len(layout.Seats))
		for _, s := range layout.Seats {
			if _, dup := seen[s.Code]; dup {
				t.Fatalf("duplicate seat code %s", s.Code)
			}
			seen[s.Code] = struct{}{}
			if !layout.Has(s.Code) {
				t.Fatalf("layout index missing %s", s.Code)
			}
		}
	}
}

func TestGenerateLayoutInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0},
	} {
		if _, err := GenerateLayout(tc.rows, tc.cols); err != ErrInvalidDimension {
			t.Fatalf("rows=%d cols=%d: got %v want ErrInvalidDimension", tc.rows, tc.cols, err)
		}
	}
}

func TestNormalizeSeatCode(t *testing.T) {
	if got := NormalizeSeatCode("  a3 "); got != "A3" {
		t.Fatalf("got %q want A3", got)
	}
}
