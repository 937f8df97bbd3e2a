package flexlay

import "math"

// Infinity is the sentinel for an unbounded constraint maximum.
var Infinity = float32(math.Inf(1))

// Constraints bound a node's size on both axes. A max of Infinity means the
// axis is unbounded. Resolved constraints always satisfy min <= max.
type Constraints struct {
	MinWidth  float32
	MaxWidth  float32
	MinHeight float32
	MaxHeight float32
}

// Unconstrained returns constraints that permit any non-negative size.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: Infinity, MinHeight: 0, MaxHeight: Infinity}
}

// NewConstraints builds constraints from the given bounds. Negative values are
// raised to zero and a min exceeding its max is lowered to the max, so the
// result is always well-formed rather than surfacing bad ranges downstream.
func NewConstraints(minW, maxW, minH, maxH float32) Constraints {
	c := Constraints{
		MinWidth:  maxf(minW, 0),
		MaxWidth:  maxf(maxW, 0),
		MinHeight: maxf(minH, 0),
		MaxHeight: maxf(maxH, 0),
	}
	if c.MinWidth > c.MaxWidth {
		c.MinWidth = c.MaxWidth
	}
	if c.MinHeight > c.MaxHeight {
		c.MinHeight = c.MaxHeight
	}
	return c
}

// Tight returns constraints that admit exactly the given size.
func Tight(s Size) Constraints {
	return NewConstraints(s.Width, s.Width, s.Height, s.Height)
}

// FixedWidth reports whether the width is fully determined.
func (c Constraints) FixedWidth() bool { return c.MinWidth == c.MaxWidth }

// FixedHeight reports whether the height is fully determined.
func (c Constraints) FixedHeight() bool { return c.MinHeight == c.MaxHeight }

// BoundedWidth reports whether the max width is finite.
func (c Constraints) BoundedWidth() bool { return c.MaxWidth != Infinity }

// BoundedHeight reports whether the max height is finite.
func (c Constraints) BoundedHeight() bool { return c.MaxHeight != Infinity }

// ClampWidth returns v clamped into [MinWidth, MaxWidth].
func (c Constraints) ClampWidth(v float32) float32 {
	return minf(maxf(v, c.MinWidth), c.MaxWidth)
}

// ClampHeight returns v clamped into [MinHeight, MaxHeight].
func (c Constraints) ClampHeight(v float32) float32 {
	return minf(maxf(v, c.MinHeight), c.MaxHeight)
}

// Clamp returns s with both axes clamped into the constraints.
func (c Constraints) Clamp(s Size) Size {
	return Size{Width: c.ClampWidth(s.Width), Height: c.ClampHeight(s.Height)}
}

// WithMaxWidth returns a copy with the max width replaced.
func (c Constraints) WithMaxWidth(v float32) Constraints {
	return NewConstraints(c.MinWidth, v, c.MinHeight, c.MaxHeight)
}

// WithMaxHeight returns a copy with the max height replaced.
func (c Constraints) WithMaxHeight(v float32) Constraints {
	return NewConstraints(c.MinWidth, c.MaxWidth, c.MinHeight, v)
}

// Loosen returns a copy with both minimums dropped to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: c.MaxWidth, MinHeight: 0, MaxHeight: c.MaxHeight}
}

// Size is a non-negative width/height pair.
type Size struct {
	Width  float32
	Height float32
}

// Offset is a position relative to the parent node's top-left corner.
type Offset struct {
	X float32
	Y float32
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Padding is space inside a container's edges, reserved before children are
// placed. All components are non-negative.
type Padding struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// UniformPadding returns padding with the same value on all four edges.
func UniformPadding(v float32) Padding {
	v = maxf(v, 0)
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// SymmetricPadding returns padding with x on left/right and y on top/bottom.
func SymmetricPadding(x, y float32) Padding {
	x, y = maxf(x, 0), maxf(y, 0)
	return Padding{Left: x, Top: y, Right: x, Bottom: y}
}

// EdgePadding returns padding with independent values per edge.
func EdgePadding(left, top, right, bottom float32) Padding {
	return Padding{
		Left:   maxf(left, 0),
		Top:    maxf(top, 0),
		Right:  maxf(right, 0),
		Bottom: maxf(bottom, 0),
	}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float32 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float32 { return p.Top + p.Bottom }

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
