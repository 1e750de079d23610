package core

import "fmt"

// MinGridFloor is the smallest grid dimension a layout may produce. A
// freshly spawned three-cell body plus a free target cell needs at least
// this much room on each axis.
const MinGridFloor = 3

// LayoutParams bounds the grid derivation for one kind of drawing surface.
type LayoutParams struct {
	Border  int // Fixed allowance subtracted from each pixel dimension
	MinCell int // Smallest allowed cell edge, in pixels
	MaxCell int // Largest allowed cell edge, in pixels
	MinGrid int // Smallest allowed grid dimension, in cells
}

// DefaultLayoutParams returns the parameters for a pixel surface such as a
// desktop window.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Border:  4,
		MinCell: 15,
		MaxCell: 35,
		MinGrid: 15,
	}
}

// TerminalLayoutParams returns parameters for a character surface, where a
// "pixel" is one terminal cell.
func TerminalLayoutParams() LayoutParams {
	return LayoutParams{
		Border:  2,
		MinCell: 1,
		MaxCell: 3,
		MinGrid: 10,
	}
}

// Validate reports whether the parameters can produce a layout.
func (p LayoutParams) Validate() error {
	switch {
	case p.Border < 0:
		return fmt.Errorf("layout: border must be >= 0, got %d", p.Border)
	case p.MinCell <= 0:
		return fmt.Errorf("layout: min cell must be > 0, got %d", p.MinCell)
	case p.MaxCell < p.MinCell:
		return fmt.Errorf("layout: max cell %d is below min cell %d", p.MaxCell, p.MinCell)
	case p.MinGrid < MinGridFloor:
		return fmt.Errorf("layout: min grid must be >= %d, got %d", MinGridFloor, p.MinGrid)
	}
	return nil
}

// Layout is the result of fitting a square-celled grid into a surface.
type Layout struct {
	CellSize int
	GridW    int
	GridH    int
}

// PixelW returns the drawn width of the grid.
func (l Layout) PixelW() int {
	return l.GridW * l.CellSize
}

// PixelH returns the drawn height of the grid.
func (l Layout) PixelH() int {
	return l.GridH * l.CellSize
}

// SameGrid reports whether two layouts have the same discrete dimensions.
func (l Layout) SameGrid(other Layout) bool {
	return l.GridW == other.GridW && l.GridH == other.GridH
}

// DeriveLayout picks a cell size and grid dimensions for a surface of
// pixelW×pixelH. Cells stay square: the smaller per-axis candidate wins.
// Negative dimensions or unusable params are caller bugs and panic.
func DeriveLayout(pixelW, pixelH int, p LayoutParams) Layout {
	if pixelW < 0 || pixelH < 0 {
		panic(fmt.Sprintf("layout: negative surface %dx%d", pixelW, pixelH))
	}
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}

	availW := pixelW - p.Border
	availH := pixelH - p.Border

	// Largest grid that keeps cells at or above the minimum size.
	gridW := max(availW/p.MinCell, p.MinGrid)
	gridH := max(availH/p.MinCell, p.MinGrid)

	cell := min(availW/gridW, availH/gridH)
	cell = Clamp(cell, p.MinCell, p.MaxCell)

	return Layout{
		CellSize: cell,
		GridW:    max(availW/cell, p.MinGrid),
		GridH:    max(availH/cell, p.MinGrid),
	}
}
