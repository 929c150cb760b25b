package scenes

import "github.com/automoto/magnetcursor/motion"

// GridCells returns the center of each of n cells laid out in rows of
// columns, horizontally centered on a screen of the given width.
func GridCells(n, columns int, cellW, cellH, gap, topY, screenW float64) []motion.Point {
	if n <= 0 {
		return nil
	}
	if columns <= 0 {
		columns = 1
	}
	cols := min(columns, n)
	rowW := float64(cols)*cellW + float64(cols-1)*gap
	startX := (screenW - rowW) / 2

	cells := make([]motion.Point, n)
	for i := range cells {
		col, row := i%columns, i/columns
		cells[i] = motion.Pt(
			startX+float64(col)*(cellW+gap)+cellW/2,
			topY+float64(row)*(cellH+gap)+cellH/2,
		)
	}
	return cells
}
