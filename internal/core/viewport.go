package core

import "math"

// Viewport projects pixel-space rectangles onto a grid of terminal cells.
type Viewport struct {
	PxPerCellX int
	PxPerCellY int
	Cells      Rect // visible cell area, usually (0, 0, cols, rows)
}

// FitViewport picks the smallest integer scale that shows a pixelW x pixelH
// world inside cellsW x cellsH terminal cells.
func FitViewport(pixelW, pixelH, cellsW, cellsH int) Viewport {
	sx := int(math.Ceil(float64(pixelW) / float64(max(cellsW, 1))))
	sy := int(math.Ceil(float64(pixelH) / float64(max(cellsH, 1))))
	return Viewport{
		PxPerCellX: max(sx, 1),
		PxPerCellY: max(sy, 1),
		Cells:      NewRect(0, 0, cellsW, cellsH),
	}
}

// World returns the visible area in pixels.
func (v Viewport) World() Rect {
	return NewRect(v.Cells.X*v.PxPerCellX, v.Cells.Y*v.PxPerCellY, v.Cells.W*v.PxPerCellX, v.Cells.H*v.PxPerCellY)
}

// Project converts a pixel rectangle to the cells it covers, clipped to the
// visible area. The result is empty when nothing is visible.
func (v Viewport) Project(r Rect) Rect {
	if r.Empty() || !r.Intersects(v.World()) {
		return Rect{}
	}
	x0 := FloorDiv(r.X, v.PxPerCellX)
	y0 := FloorDiv(r.Y, v.PxPerCellY)
	x1 := FloorDiv(r.Right()+v.PxPerCellX-1, v.PxPerCellX)
	y1 := FloorDiv(r.Bottom()+v.PxPerCellY-1, v.PxPerCellY)
	return NewRect(x0, y0, x1-x0, y1-y0).Clip(v.Cells)
}
