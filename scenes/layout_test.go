package scenes

import "testing"

func TestGridCells(t *testing.T) {
	cells := GridCells(5, 3, 100, 50, 20, 10, 400)
	if len(cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(cells))
	}

	// Row width 3*100 + 2*20 = 340, so the first column starts at 30.
	tests := []struct {
		i    int
		x, y float64
	}{
		{0, 80, 35},
		{1, 200, 35},
		{2, 320, 35},
		{3, 80, 105},
		{4, 200, 105},
	}
	for _, tt := range tests {
		if cells[tt.i].X != tt.x || cells[tt.i].Y != tt.y {
			t.Errorf("cell %d = (%v, %v), want (%v, %v)", tt.i, cells[tt.i].X, cells[tt.i].Y, tt.x, tt.y)
		}
	}
}

func TestGridCellsFewerThanColumns(t *testing.T) {
	cells := GridCells(1, 3, 100, 50, 20, 0, 400)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if cells[0].X != 200 {
		t.Errorf("single cell should be centered, got x=%v", cells[0].X)
	}
}

func TestGridCellsEmpty(t *testing.T) {
	if cells := GridCells(0, 3, 100, 50, 20, 0, 400); cells != nil {
		t.Errorf("expected nil, got %v", cells)
	}
	if cells := GridCells(2, 0, 100, 50, 20, 0, 400); len(cells) != 2 || cells[1].Y <= cells[0].Y {
		t.Errorf("zero columns should stack vertically, got %v", cells)
	}
}
