package sumtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Internal nodes carry the covered position range and the stored
// aggregate; leaves additionally mark growth padding.
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.capacity > 0 {
		nodelist, edgelist := "", ""
		t.dotNode(0, 0, t.capacity-1, &nodelist, &edgelist)
		io.WriteString(w, nodelist)
		io.WriteString(w, edgelist)
	}
	io.WriteString(w, "}\n")
}

func (t *Tree[T]) dotNode(node, start, end int, nodelist, edgelist *string) {
	if start == end {
		label := fmt.Sprintf("@%d\\n%v", start, t.nodes[node])
		style := "shape=box,style=filled,fillcolor=lightgray"
		if start >= t.length {
			style = "shape=box,style=dashed" // growth padding
		}
		*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", node, label, style)
		return
	}
	mid := start + (end-start)/2
	left := node + 1
	right := rightChild(node, start, mid)
	label := fmt.Sprintf("[%d,%d]\\n%v", start, end, t.nodes[node])
	*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", node, label)
	*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node, left)
	*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node, right)
	t.dotNode(left, start, mid, nodelist, edgelist)
	t.dotNode(right, mid+1, end, nodelist, edgelist)
}
