// Package entity defines domain entities for the desk.
package entity

import "math"

// Point is a position in viewport pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair in viewport pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is a panel's screen position and size.
type Rect struct {
	Point
	Size
}

// Right returns the x coordinate just past the rect's right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the rect's bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Viewport is the visible area the desk is laid out in.
type Viewport struct {
	Width  int
	Height int
}

// Bands describes the space reserved around the usable desk area.
// HeaderHeight is kept free at the top for persistent chrome, FooterHeight at
// the bottom for the minimized tray, SideMargin on both horizontal edges.
type Bands struct {
	HeaderHeight int
	FooterHeight int
	SideMargin   int
}

// Bounds is the usable area of a viewport once the bands are removed.
// A viewport too small to hold the bands yields an empty rect at the band origin.
func (b Bands) Bounds(vp Viewport) Rect {
	w := vp.Width - 2*b.SideMargin
	h := vp.Height - b.HeaderHeight - b.FooterHeight
	return Rect{
		Point: Point{X: b.SideMargin, Y: b.HeaderHeight},
		Size:  Size{Width: max(w, 0), Height: max(h, 0)},
	}
}

// ClampSize bounds a size between the floor and the usable area.
// When the usable area is smaller than the floor, the usable area wins so the
// panel stays on screen.
func ClampSize(s, floor Size, area Rect) Size {
	return Size{
		Width:  clampFloorCeil(s.Width, floor.Width, area.Width),
		Height: clampFloorCeil(s.Height, floor.Height, area.Height),
	}
}

// ClampPosition moves a top-left point so a rect of the given size fits inside
// the area.
func ClampPosition(p Point, s Size, area Rect) Point {
	return Point{
		X: clampInt(p.X, area.X, area.Right()-s.Width),
		Y: clampInt(p.Y, area.Y, area.Bottom()-s.Height),
	}
}

// ClampRect returns the legal rect closest to r for the viewport and bands.
func ClampRect(r Rect, floor Size, vp Viewport, bands Bands) Rect {
	area := bands.Bounds(vp)
	size := ClampSize(r.Size, floor, area)
	return Rect{Point: ClampPosition(r.Point, size, area), Size: size}
}

// ResizeLimit returns the largest size a panel anchored at p may take.
func ResizeLimit(p Point, vp Viewport, bands Bands) Size {
	area := bands.Bounds(vp)
	return Size{
		Width:  max(area.Right()-p.X, 0),
		Height: max(area.Bottom()-p.Y, 0),
	}
}

// MaximizedRect is the full usable area between the header and footer bands.
// Side margins are ignored so a maximized panel spans the viewport width.
func MaximizedRect(vp Viewport, bands Bands) Rect {
	return Rect{
		Point: Point{X: 0, Y: bands.HeaderHeight},
		Size: Size{
			Width:  max(vp.Width, 0),
			Height: max(vp.Height-bands.HeaderHeight-bands.FooterHeight, 0),
		},
	}
}

// CascadeOrigin returns the default top-left for the n-th panel so new panels
// don't stack exactly on top of each other. The offset wraps once it would
// push a panel of the given size out of the usable area.
func CascadeOrigin(n, step int, s Size, vp Viewport, bands Bands) Point {
	area := bands.Bounds(vp)
	if step <= 0 {
		return Point{X: area.X, Y: area.Y}
	}
	slack := min(area.Width-s.Width, area.Height-s.Height)
	slots := 1
	if slack > 0 {
		slots = slack/step + 1
	}
	offset := (n % slots) * step
	return ClampPosition(Point{X: area.X + offset, Y: area.Y + offset}, s, area)
}

// Grid describes a cols×rows arrangement over the usable area.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Rect
}

// GridLayout splits the usable area into n cells, cols = ceil(sqrt(n)) and
// rows = ceil(n/cols). Cells are filled row by row.
func GridLayout(n int, vp Viewport, bands Bands) Grid {
	if n <= 0 {
		return Grid{}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	area := bands.Bounds(vp)
	cellW := area.Width / cols
	cellH := area.Height / rows

	cells := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		col, row := i%cols, i/cols
		cells = append(cells, Rect{
			Point: Point{X: area.X + col*cellW, Y: area.Y + row*cellH},
			Size:  Size{Width: cellW, Height: cellH},
		})
	}
	return Grid{Cols: cols, Rows: rows, Cells: cells}
}

// Inset shrinks a rect by pad on each side without going negative.
func (r Rect) Inset(pad int) Rect {
	w := r.Width - 2*pad
	h := r.Height - 2*pad
	if w < 0 || h < 0 {
		return r
	}
	return Rect{Point: Point{X: r.X + pad, Y: r.Y + pad}, Size: Size{Width: w, Height: h}}
}

// Within reports whether r lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y && r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloorCeil(v, floor, ceil int) int {
	if ceil < floor {
		return max(ceil, 0)
	}
	return clampInt(v, floor, ceil)
}
