package ui

// Rect is an axis-aligned rectangle in screen-space points.
// Min is the top-left corner, Max the bottom-right.
type Rect struct {
	Min, Max Point
}

// RectFromMinMax creates a rectangle from two corners.
func RectFromMinMax(min, max Point) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize creates a rectangle from its top-left corner and size.
func RectFromMinSize(min Point, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize creates a rectangle centered on a point.
func RectFromCenterSize(center Point, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Add(half.Mul(-1)), Max: center.Add(half)}
}

// RectEverything returns a rectangle covering all of screen space.
// Used as the clip rectangle for unclipped paint commands.
func RectEverything() Rect {
	const huge = 1e30
	return Rect{
		Min: Point{X: -huge, Y: -huge},
		Max: Point{X: huge, Y: huge},
	}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether the point lies inside the rectangle.
// Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersect returns the overlapping region of two rectangles.
// The result may be negative (Min beyond Max) when they do not overlap;
// such a rectangle contains no points.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: r.Min.Max(o.Min),
		Max: r.Max.Min(o.Max),
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: r.Min.Min(o.Min),
		Max: r.Max.Max(o.Max),
	}
}

// Expand grows the rectangle by d on every side.
// A negative d shrinks it.
func (r Rect) Expand(d float64) Rect {
	return r.Expand2(Vec2{X: d, Y: d})
}

// Expand2 grows the rectangle by v.X on the left and right sides and
// v.Y on the top and bottom sides.
func (r Rect) Expand2(v Vec2) Rect {
	return Rect{
		Min: r.Min.Add(v.Mul(-1)),
		Max: r.Max.Add(v),
	}
}

// Translate returns the rectangle displaced by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// IsNegative reports whether the rectangle has a negative extent on
// either axis, i.e. contains no points.
func (r Rect) IsNegative() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}
