package flexlay

import "go.uber.org/zap"

// Layout owns one declared node tree and one result store, rebuilt and
// recomputed together. Declaration happens through Build, geometry through
// Compute, and read-back through Result, Node, AbsolutePosition and
// DebugString. A Layout is not safe for concurrent use, but independent
// Layout instances share no state and may be computed in parallel.
type Layout struct {
	width  float32
	height float32

	tree     *tree
	results  []Result
	computed bool

	// open tracks builder scope depth so Compute can reject being called from
	// inside a children callback.
	open int

	log *zap.Logger
}

// EngineOption configures a Layout at construction time.
type EngineOption func(*Layout)

// WithLogger routes measure/arrange tracing to the given logger at Debug
// level. The default logger discards everything.
func WithLogger(log *zap.Logger) EngineOption {
	return func(l *Layout) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a layout bounded by the given root width and height, the outer
// canvas the tree is arranged into. Negative bounds clamp to zero.
func New(width, height float32, opts ...EngineOption) *Layout {
	l := &Layout{
		width:  maxf(width, 0),
		height: maxf(height, 0),
		tree:   newTree(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Width returns the root bounding width.
func (l *Layout) Width() float32 { return l.width }

// Height returns the root bounding height.
func (l *Layout) Height() float32 { return l.height }

// Compute runs the two-pass layout over the whole tree and overwrites the
// result store. It is deterministic and idempotent: repeated calls on an
// unmodified tree produce identical results. Degenerate geometry (padding or
// gaps exceeding the available space) clamps to zero and never aborts the
// pass. Calling Compute while a declaration scope is still open is a
// contract violation.
func (l *Layout) Compute() {
	if l.open != 0 {
		contractViolation("compute", "", "declaration scope still open")
	}
	t := l.tree
	l.results = make([]Result, len(t.nodes))
	if t.root < 0 {
		l.computed = true
		return
	}

	measured := make([]Size, len(t.nodes))
	l.measure(t.root, NewConstraints(0, l.width, 0, l.height), measured)
	l.arrange(t.root, Offset{}, Size{Width: l.width, Height: l.height}, measured)
	l.computed = true
}

// measure is the bottom-up pass: it resolves each node's intrinsic size given
// the space available to it. Children with a flex weight contribute zero to
// their container's main-axis intrinsic size; their final main size is
// resolved during arrange.
func (l *Layout) measure(idx int32, avail Constraints, measured []Size) Size {
	t := l.tree
	n := t.node(idx)

	if n.kind == KindLeaf || n.kind == KindSpacer {
		var s Size
		if n.hasWidth {
			s.Width = n.width
		}
		if n.hasHeight {
			s.Height = n.height
		}
		measured[idx] = s
		return s
	}

	horizontal := n.dir.horizontal()
	gaps := float32(0)
	if len(n.children) > 1 {
		gaps = n.gap * float32(len(n.children)-1)
	}
	contentW := maxf(avail.MaxWidth-n.padding.Horizontal(), 0)
	contentH := maxf(avail.MaxHeight-n.padding.Vertical(), 0)
	if horizontal {
		contentW = maxf(contentW-gaps, 0)
	} else {
		contentH = maxf(contentH-gaps, 0)
	}
	inner := avail.Loosen().WithMaxWidth(contentW).WithMaxHeight(contentH)

	var mainSum, crossMax float32
	for _, ci := range n.children {
		cs := l.measure(ci, inner, measured)
		main, cross := mainCross(horizontal, cs)
		if t.node(ci).flexGrow > 0 {
			main = 0
		}
		mainSum += main
		crossMax = maxf(crossMax, cross)
	}

	var s Size
	if horizontal {
		s.Width = mainSum + gaps + n.padding.Horizontal()
		s.Height = crossMax + n.padding.Vertical()
	} else {
		s.Width = crossMax + n.padding.Horizontal()
		s.Height = mainSum + gaps + n.padding.Vertical()
	}
	if n.hasWidth {
		s.Width = n.width
	}
	if n.hasHeight {
		s.Height = n.height
	}
	measured[idx] = s

	l.log.Debug("measure",
		zap.String("node", n.name),
		zap.Float32("width", s.Width),
		zap.Float32("height", s.Height))
	return s
}

// arrange is the top-down pass: given a node's final size and its offset
// within the parent, it records the result and places the node's children.
// Stored offsets are relative to the parent's top-left corner and include the
// parent's padding, so absolute positions are plain sums up the ancestor
// chain.
func (l *Layout) arrange(idx int32, off Offset, size Size, measured []Size) {
	t := l.tree
	n := t.node(idx)
	l.results[idx] = Result{Offset: off, Size: size}

	l.log.Debug("arrange",
		zap.String("node", n.name),
		zap.Float32("x", off.X),
		zap.Float32("y", off.Y),
		zap.Float32("width", size.Width),
		zap.Float32("height", size.Height))

	if len(n.children) == 0 {
		return
	}

	horizontal := n.dir.horizontal()
	contentW := maxf(size.Width-n.padding.Horizontal(), 0)
	contentH := maxf(size.Height-n.padding.Vertical(), 0)
	contentMain, contentCross := mainCrossF(horizontal, contentW, contentH)

	gaps := float32(0)
	if len(n.children) > 1 {
		gaps = n.gap * float32(len(n.children)-1)
	}

	// Partition into fixed and flexible children.
	var fixedTotal, growSum float32
	for _, ci := range n.children {
		c := t.node(ci)
		if c.flexGrow > 0 {
			growSum += c.flexGrow
			continue
		}
		main, _ := mainCross(horizontal, measured[ci])
		fixedTotal += main
	}
	free := maxf(contentMain-fixedTotal-gaps, 0)

	lead, between := mainSpacing(n.mainAlign, free, growSum, len(n.children), n.gap)

	order := n.children
	if n.dir.reversed() {
		order = make([]int32, len(n.children))
		for i, ci := range n.children {
			order[len(n.children)-1-i] = ci
		}
	}

	cursor := lead
	for i, ci := range order {
		c := t.node(ci)

		main, cross := mainCross(horizontal, measured[ci])
		if c.flexGrow > 0 {
			main = free * c.flexGrow / growSum
		}
		hasCross := c.hasWidth
		if horizontal {
			hasCross = c.hasHeight
		}
		if !hasCross && n.crossAlign == CrossStretch {
			cross = contentCross
		}

		crossOff := crossOffset(n.crossAlign, contentCross, cross)

		var childOff Offset
		var childSize Size
		if horizontal {
			childOff = Offset{X: n.padding.Left + cursor, Y: n.padding.Top + crossOff}
			childSize = Size{Width: main, Height: cross}
		} else {
			childOff = Offset{X: n.padding.Left + crossOff, Y: n.padding.Top + cursor}
			childSize = Size{Width: cross, Height: main}
		}
		l.arrange(ci, childOff, childSize, measured)

		cursor += main
		if i < len(order)-1 {
			cursor += between
		}
	}
}

// mainSpacing resolves the leading offset and the spacing between adjacent
// children from the main-axis alignment. When any child is flexible the free
// space has already been absorbed, so alignment distributes nothing.
func mainSpacing(align MainAlign, free, growSum float32, count int, gap float32) (lead, between float32) {
	between = gap
	unused := free
	if growSum > 0 {
		unused = 0
	}
	switch align {
	case MainEnd:
		lead = unused
	case MainCenter:
		lead = unused / 2
	case MainSpaceBetween:
		if count >= 2 {
			between += unused / float32(count-1)
		}
	case MainSpaceAround:
		if count > 0 {
			share := unused / float32(count)
			lead = share / 2
			between += share
		}
	case MainSpaceEvenly:
		share := unused / float32(count+1)
		lead = share
		between += share
	}
	return lead, between
}

// crossOffset positions a child of the given cross size inside the
// container's content cross size.
func crossOffset(align CrossAlign, content, child float32) float32 {
	switch align {
	case CrossEnd:
		return content - child
	case CrossCenter:
		return (content - child) / 2
	default:
		// CrossStart, and CrossStretch where the child already fills the space.
		return 0
	}
}

// mainCross splits a size into main and cross components for the given axis.
func mainCross(horizontal bool, s Size) (main, cross float32) {
	if horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// mainCrossF is mainCross over separate width/height values.
func mainCrossF(horizontal bool, w, h float32) (main, cross float32) {
	if horizontal {
		return w, h
	}
	return h, w
}
