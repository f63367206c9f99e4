// Package core provides the fundamental types shared by the renderer and its
// front ends: rectangles, styles, the cell screen buffer and the input record.
// It contains no terminal library dependencies (especially no Bubble Tea) so the
// rendering core stays pure and testable.
package core

// Rect is an axis-aligned region of the character grid.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Intersect returns the overlapping part of two rectangles (empty if none).
func (r Rect) Intersect(other Rect) Rect {
	x0 := Max(r.X, other.X)
	y0 := Max(r.Y, other.Y)
	x1 := Min(r.Right(), other.Right())
	y1 := Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// SplitRows cuts the rectangle into a fixed-height head, a flexible middle and a
// fixed-height tail. When the rectangle is too short the head is served first,
// then the tail, and the middle gets whatever remains (possibly nothing).
func (r Rect) SplitRows(head, tail int) (top, middle, bottom Rect) {
	head = Clamp(head, 0, Max(r.H, 0))
	tail = Clamp(tail, 0, Max(r.H-head, 0))
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: head}
	bottom = Rect{X: r.X, Y: r.Bottom() - tail, W: r.W, H: tail}
	middle = Rect{X: r.X, Y: r.Y + head, W: r.W, H: r.H - head - tail}
	return top, middle, bottom
}

// SplitCols cuts the rectangle into n columns of near-equal width.
// Leftover cells go to the last column.
func (r Rect) SplitCols(n int) []Rect {
	if n <= 0 {
		return nil
	}
	cols := make([]Rect, n)
	w := r.W / n
	x := r.X
	for i := range cols {
		cw := w
		if i == n-1 {
			cw = r.Right() - x
		}
		cols[i] = Rect{X: x, Y: r.Y, W: cw, H: r.H}
		x += cw
	}
	return cols
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Mod returns x modulo m in the range [0, m). m must be positive.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
