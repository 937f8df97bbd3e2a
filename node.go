package flexlay

import "fmt"

// Kind identifies the variant of a node in the layout tree.
type Kind uint8

const (
	// KindFlex is a row or column container with any number of children.
	KindFlex Kind = iota

	// KindBox is a container restricted to exactly one child.
	KindBox

	// KindLeaf is an atomic node with an optional explicit size.
	KindLeaf

	// KindSpacer is an unnamed-by-caller leaf with an implicit flex weight,
	// used to push siblings apart.
	KindSpacer
)

func (k Kind) String() string {
	switch k {
	case KindFlex:
		return "flex"
	case KindBox:
		return "box"
	case KindLeaf:
		return "leaf"
	case KindSpacer:
		return "spacer"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Direction is the main axis of a flex container.
type Direction uint8

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// horizontal reports whether the main axis runs left-to-right.
func (d Direction) horizontal() bool { return d == Row || d == RowReverse }

// reversed reports whether children are placed opposite declaration order.
func (d Direction) reversed() bool { return d == RowReverse || d == ColumnReverse }

// MainAlign distributes unused main-axis space among children.
type MainAlign uint8

const (
	MainStart MainAlign = iota
	MainEnd
	MainCenter

	// MainSpaceBetween splits unused space equally between adjacent children,
	// none before the first or after the last. With fewer than two children it
	// behaves as MainStart.
	MainSpaceBetween

	// MainSpaceAround splits unused space into childCount equal shares, half a
	// share before the first child and after the last.
	MainSpaceAround

	// MainSpaceEvenly splits unused space into childCount+1 equal gaps.
	MainSpaceEvenly
)

func (a MainAlign) String() string {
	switch a {
	case MainStart:
		return "start"
	case MainEnd:
		return "end"
	case MainCenter:
		return "center"
	case MainSpaceBetween:
		return "space-between"
	case MainSpaceAround:
		return "space-around"
	case MainSpaceEvenly:
		return "space-evenly"
	default:
		return fmt.Sprintf("main-align(%d)", uint8(a))
	}
}

// CrossAlign positions each child across the main axis.
type CrossAlign uint8

const (
	CrossStart CrossAlign = iota
	CrossEnd
	CrossCenter

	// CrossStretch expands children without an explicit cross size to the
	// container's full content cross size.
	CrossStretch
)

func (a CrossAlign) String() string {
	switch a {
	case CrossStart:
		return "start"
	case CrossEnd:
		return "end"
	case CrossCenter:
		return "center"
	case CrossStretch:
		return "stretch"
	default:
		return fmt.Sprintf("cross-align(%d)", uint8(a))
	}
}

// Node is one element of a layout tree. Nodes are created only during tree
// declaration and are immutable once their declaring scope closes.
type Node struct {
	name string
	kind Kind
	dir  Direction

	width     float32
	height    float32
	hasWidth  bool
	hasHeight bool

	flexGrow   float32
	padding    Padding
	gap        float32
	mainAlign  MainAlign
	crossAlign CrossAlign

	parent   int32
	children []int32
}

// Name returns the node's unique name within its tree.
func (n *Node) Name() string { return n.name }

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Direction returns the main-axis direction. Only meaningful for containers.
func (n *Node) Direction() Direction { return n.dir }

// Width returns the explicit width and whether one was declared.
func (n *Node) Width() (float32, bool) { return n.width, n.hasWidth }

// Height returns the explicit height and whether one was declared.
func (n *Node) Height() (float32, bool) { return n.height, n.hasHeight }

// FlexGrow returns the node's flex weight. Zero means "do not grow".
func (n *Node) FlexGrow() float32 { return n.flexGrow }

// Padding returns the node's padding.
func (n *Node) Padding() Padding { return n.padding }

// Gap returns the spacing between consecutive children.
func (n *Node) Gap() float32 { return n.gap }

// MainAlign returns the main-axis alignment.
func (n *Node) MainAlign() MainAlign { return n.mainAlign }

// CrossAlign returns the cross-axis alignment.
func (n *Node) CrossAlign() CrossAlign { return n.crossAlign }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// tree is an arena of nodes addressed by stable indices, with a non-owning
// name index built incrementally as nodes are inserted.
type tree struct {
	nodes   []Node
	byName  map[string]int32
	root    int32
	spacers int
}

func newTree() *tree {
	return &tree{
		byName: make(map[string]int32),
		root:   -1,
	}
}

// insert appends a node to the arena and registers its name. Duplicate or
// empty names are declaration contract violations.
func (t *tree) insert(n Node) int32 {
	if n.name == "" {
		contractViolation("declare", "", "node name must be non-empty")
	}
	if _, exists := t.byName[n.name]; exists {
		contractViolation("declare", n.name, "name already declared in this tree")
	}
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.byName[n.name] = idx
	return idx
}

func (t *tree) node(i int32) *Node { return &t.nodes[i] }

func (t *tree) lookup(name string) (int32, bool) {
	idx, ok := t.byName[name]
	return idx, ok
}

// nextSpacerName generates a unique auto-name for a spacer node.
func (t *tree) nextSpacerName() string {
	t.spacers++
	return fmt.Sprintf("spacer#%d", t.spacers)
}
