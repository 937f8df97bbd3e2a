package flexlay

// Result is the computed geometry of one node: its offset relative to the
// parent's top-left corner (the parent's padding already applied) and its
// final size. Results are overwritten by each Compute and are undefined for a
// layout that has never been computed.
type Result struct {
	Offset Offset
	Size   Size
}

// X returns the offset's horizontal component.
func (r Result) X() float32 { return r.Offset.X }

// Y returns the offset's vertical component.
func (r Result) Y() float32 { return r.Offset.Y }

// Width returns the computed width.
func (r Result) Width() float32 { return r.Size.Width }

// Height returns the computed height.
func (r Result) Height() float32 { return r.Size.Height }

// Right returns X + Width.
func (r Result) Right() float32 { return r.Offset.X + r.Size.Width }

// Bottom returns Y + Height.
func (r Result) Bottom() float32 { return r.Offset.Y + r.Size.Height }

// Result returns the computed geometry for the named node. The second return
// is false when the name was never declared or Compute has not run yet;
// callers may query names speculatively.
func (l *Layout) Result(name string) (Result, bool) {
	if !l.computed {
		return Result{}, false
	}
	idx, ok := l.tree.lookup(name)
	if !ok {
		return Result{}, false
	}
	return l.results[idx], true
}

// Node returns the declared node for inspecting its static configuration, or
// false when the name was never declared.
func (l *Layout) Node(name string) (*Node, bool) {
	idx, ok := l.tree.lookup(name)
	if !ok {
		return nil, false
	}
	return l.tree.node(idx), true
}

// AbsolutePosition resolves the named node's position relative to the root's
// origin by walking its parent links and summing each ancestor's own
// parent-relative offset.
func (l *Layout) AbsolutePosition(name string) (Offset, bool) {
	if !l.computed {
		return Offset{}, false
	}
	idx, ok := l.tree.lookup(name)
	if !ok {
		return Offset{}, false
	}
	var abs Offset
	for i := idx; i >= 0; i = l.tree.node(i).parent {
		abs = abs.Add(l.results[i].Offset)
	}
	return abs, true
}
