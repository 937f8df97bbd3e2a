package flexlay

import "fmt"

// ContractError reports misuse of the declaration API: a leaf declared with no
// open container, a duplicate node name, a second child added to a Box, or
// computing while a declaration scope is still open. These are programmer
// errors, so the builder panics with a *ContractError rather than returning it.
type ContractError struct {
	Op     string
	Name   string
	Reason string
}

func (e *ContractError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("flexlay: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("flexlay: %s %q: %s", e.Op, e.Name, e.Reason)
}

func contractViolation(op, name, reason string) {
	panic(&ContractError{Op: op, Name: name, Reason: reason})
}

// Builder declares a layout tree. It keeps a stack of currently open container
// contexts: declaring a container pushes a context, runs the caller-supplied
// children function against it, pops it, and attaches the finished container
// to whatever context is then on top (or installs it as the tree root when the
// stack is empty). Builders are not safe for concurrent use.
type Builder struct {
	layout *Layout
	stack  []int32
}

// Build runs fn against a fresh builder for this layout. The outermost
// declaration inside fn must be a Row, Column or Box naming the tree root.
func (l *Layout) Build(fn func(b *Builder)) {
	fn(&Builder{layout: l})
}

// Row declares a horizontal flex container and runs children inside its scope.
func (b *Builder) Row(name string, children func(), opts ...Option) {
	b.container(name, KindFlex, Row, children, opts)
}

// Column declares a vertical flex container and runs children inside its scope.
func (b *Builder) Column(name string, children func(), opts ...Option) {
	b.container(name, KindFlex, Column, children, opts)
}

// Box declares a container holding exactly one child. A box stretches its
// child across both axes when the child has a flex weight and no explicit
// size, which makes it the usual wrapper for padded content.
func (b *Builder) Box(name string, children func(), opts ...Option) {
	b.container(name, KindBox, Row, children, opts)
}

// Leaf declares an atomic node in the currently open container.
func (b *Builder) Leaf(name string, opts ...Option) {
	if len(b.stack) == 0 {
		contractViolation("leaf", name, "no open container to attach to")
	}
	n := Node{
		name:   name,
		kind:   KindLeaf,
		parent: -1,
	}
	for _, opt := range opts {
		opt(&n)
	}
	b.attach(b.layout.tree.insert(n))
}

// Spacer declares an auto-named leaf with no intrinsic size and flex weight 1,
// in the currently open container.
func (b *Builder) Spacer() {
	if len(b.stack) == 0 {
		contractViolation("spacer", "", "no open container to attach to")
	}
	t := b.layout.tree
	n := Node{
		name:     t.nextSpacerName(),
		kind:     KindSpacer,
		flexGrow: 1,
		parent:   -1,
	}
	b.attach(t.insert(n))
}

func (b *Builder) container(name string, kind Kind, dir Direction, children func(), opts []Option) {
	n := Node{
		name:       name,
		kind:       kind,
		dir:        dir,
		mainAlign:  MainStart,
		crossAlign: CrossStart,
		parent:     -1,
	}
	if kind == KindBox {
		n.crossAlign = CrossStretch
	}
	for _, opt := range opts {
		opt(&n)
	}
	idx := b.layout.tree.insert(n)
	b.attach(idx)

	b.stack = append(b.stack, idx)
	b.layout.open++
	if children != nil {
		children()
	}
	b.layout.open--
	b.stack = b.stack[:len(b.stack)-1]
}

// attach links the node at idx to the currently open container, or installs it
// as the tree root when no container is open.
func (b *Builder) attach(idx int32) {
	t := b.layout.tree
	n := t.node(idx)

	if len(b.stack) == 0 {
		if t.root >= 0 {
			contractViolation("declare", n.name, "tree already has a root")
		}
		t.root = idx
		return
	}

	parentIdx := b.stack[len(b.stack)-1]
	parent := t.node(parentIdx)
	if parent.kind == KindBox && len(parent.children) == 1 {
		contractViolation("declare", n.name, fmt.Sprintf("box %q holds exactly one child", parent.name))
	}
	n.parent = parentIdx
	parent.children = append(parent.children, idx)
}
