package flexlay

// Option configures a node at declaration time. Options that do not apply to
// the node kind they are used on are ignored, the same way unknown utility
// classes are ignored by the style parser.
type Option func(*Node)

// Width sets an explicit width. Negative values clamp to zero.
func Width(v float32) Option {
	return func(n *Node) {
		n.width = maxf(v, 0)
		n.hasWidth = true
	}
}

// Height sets an explicit height. Negative values clamp to zero.
func Height(v float32) Option {
	return func(n *Node) {
		n.height = maxf(v, 0)
		n.hasHeight = true
	}
}

// Grow sets the node's flex weight: its share of the parent's leftover
// main-axis space, proportional to its weight among siblings. Negative
// weights clamp to zero.
func Grow(w float32) Option {
	return func(n *Node) {
		n.flexGrow = maxf(w, 0)
	}
}

// WithPadding sets the container's padding.
func WithPadding(p Padding) Option {
	return func(n *Node) {
		n.padding = EdgePadding(p.Left, p.Top, p.Right, p.Bottom)
	}
}

// Pad sets uniform padding on all four edges.
func Pad(v float32) Option {
	return WithPadding(UniformPadding(v))
}

// Gap sets the spacing between consecutive children. Applied between children
// only, never before the first or after the last.
func Gap(g float32) Option {
	return func(n *Node) {
		n.gap = maxf(g, 0)
	}
}

// JustifyContent sets how unused main-axis space is distributed.
func JustifyContent(a MainAlign) Option {
	return func(n *Node) {
		n.mainAlign = a
	}
}

// AlignItems sets how children are positioned on the cross axis.
func AlignItems(a CrossAlign) Option {
	return func(n *Node) {
		n.crossAlign = a
	}
}

// WithDirection overrides the container's main-axis direction, typically to
// select a reversed variant: Row(...) with WithDirection(RowReverse).
func WithDirection(d Direction) Option {
	return func(n *Node) {
		n.dir = d
	}
}
