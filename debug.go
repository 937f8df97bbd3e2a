package flexlay

import (
	"fmt"
	"strings"
)

// DebugString renders the tree depth-first with indentation: each node's
// name, kind, computed size and parent-relative offset. Every declared node
// appears, including ones that computed to a zero size. The dump is empty
// until a root has been declared.
func (l *Layout) DebugString() string {
	if l.tree.root < 0 {
		return ""
	}
	var sb strings.Builder
	l.dumpNode(&sb, l.tree.root, 0)
	return sb.String()
}

func (l *Layout) dumpNode(sb *strings.Builder, idx int32, depth int) {
	n := l.tree.node(idx)

	kind := n.kind.String()
	if n.kind == KindFlex {
		kind = kind + "/" + n.dir.String()
	}

	var res Result
	if l.computed {
		res = l.results[idx]
	}
	fmt.Fprintf(sb, "%s%s [%s] size=%.2fx%.2f offset=(%.2f, %.2f)\n",
		strings.Repeat("  ", depth), n.name, kind,
		res.Size.Width, res.Size.Height, res.Offset.X, res.Offset.Y)

	for _, ci := range n.children {
		l.dumpNode(sb, ci, depth+1)
	}
}
