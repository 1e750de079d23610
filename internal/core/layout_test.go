package core

import "testing"

func TestDeriveLayoutDesktop(t *testing.T) {
	p := DefaultLayoutParams()

	tests := []struct {
		name   string
		w, h   int
		expect Layout
	}{
		{"square window", 600, 600, Layout{CellSize: 15, GridW: 39, GridH: 39}},
		{"small square", 300, 300, Layout{CellSize: 15, GridW: 19, GridH: 19}},
		{"below minimum grid", 200, 200, Layout{CellSize: 15, GridW: 15, GridH: 15}},
		{"wide window", 800, 400, Layout{CellSize: 15, GridW: 53, GridH: 26}},
		{"zero surface", 0, 0, Layout{CellSize: 15, GridW: 15, GridH: 15}},
		{"smaller than border", 3, 2, Layout{CellSize: 15, GridW: 15, GridH: 15}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveLayout(tc.w, tc.h, p)
			if got != tc.expect {
				t.Errorf("DeriveLayout(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expect)
			}
		})
	}
}

func TestDeriveLayoutTerminal(t *testing.T) {
	p := TerminalLayoutParams()

	got := DeriveLayout(40, 20, p)
	if got != (Layout{CellSize: 1, GridW: 38, GridH: 18}) {
		t.Errorf("DeriveLayout(40, 20) = %+v", got)
	}

	got = DeriveLayout(8, 8, p)
	if got != (Layout{CellSize: 1, GridW: 10, GridH: 10}) {
		t.Errorf("DeriveLayout(8, 8) = %+v, expected floor at min grid", got)
	}
}

func TestDeriveLayoutInvariants(t *testing.T) {
	params := []LayoutParams{DefaultLayoutParams(), TerminalLayoutParams()}

	for _, p := range params {
		for w := 0; w <= 1200; w += 37 {
			for h := 0; h <= 900; h += 41 {
				l := DeriveLayout(w, h, p)
				if l.CellSize < p.MinCell || l.CellSize > p.MaxCell {
					t.Fatalf("%dx%d: cell %d outside [%d,%d]", w, h, l.CellSize, p.MinCell, p.MaxCell)
				}
				if l.GridW < p.MinGrid || l.GridH < p.MinGrid {
					t.Fatalf("%dx%d: grid %dx%d below min %d", w, h, l.GridW, l.GridH, p.MinGrid)
				}
				if again := DeriveLayout(w, h, p); again != l {
					t.Fatalf("%dx%d: derivation is not deterministic", w, h)
				}
			}
		}
	}
}

func TestDeriveLayoutPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative surface")
		}
	}()
	DeriveLayout(-1, 100, DefaultLayoutParams())
}

func TestLayoutParamsValidate(t *testing.T) {
	tests := []struct {
		name  string
		p     LayoutParams
		valid bool
	}{
		{"desktop", DefaultLayoutParams(), true},
		{"terminal", TerminalLayoutParams(), true},
		{"negative border", LayoutParams{Border: -1, MinCell: 1, MaxCell: 1, MinGrid: 1}, false},
		{"zero min cell", LayoutParams{MinCell: 0, MaxCell: 1, MinGrid: 1}, false},
		{"inverted cell range", LayoutParams{MinCell: 4, MaxCell: 2, MinGrid: 1}, false},
		{"zero min grid", LayoutParams{MinCell: 1, MaxCell: 1, MinGrid: 0}, false},
		{"min grid below floor", LayoutParams{MinCell: 1, MaxCell: 1, MinGrid: MinGridFloor - 1}, false},
		{"min grid at floor", LayoutParams{MinCell: 1, MaxCell: 1, MinGrid: MinGridFloor}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, valid expected %v", err, tc.valid)
			}
		})
	}
}

func TestDeriveLayoutPanicsOnGridBelowFloor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for min grid below floor")
		}
	}()
	DeriveLayout(4, 4, LayoutParams{MinCell: 1, MaxCell: 1, MinGrid: 1})
}

func TestLayoutHelpers(t *testing.T) {
	l := Layout{CellSize: 2, GridW: 10, GridH: 5}
	if l.PixelW() != 20 || l.PixelH() != 10 {
		t.Errorf("Pixel size = %dx%d, expected 20x10", l.PixelW(), l.PixelH())
	}
	if !l.SameGrid(Layout{CellSize: 3, GridW: 10, GridH: 5}) {
		t.Error("SameGrid should ignore cell size")
	}
	if l.SameGrid(Layout{CellSize: 2, GridW: 11, GridH: 5}) {
		t.Error("SameGrid should compare dimensions")
	}
}
