package ast

import (
	"fmt"
	"strings"
)

// Pretty renders an indented dump of the tree rooted at node, one line per
// node, leaves carrying their literal text.
func Pretty(node Node) string {
	var b strings.Builder
	writePretty(&b, node, 0)
	return b.String()
}

func writePretty(b *strings.Builder, node Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if node == nil {
		b.WriteString("<nil>\n")
		return
	}
	b.WriteString(string(node.NodeType()))
	if label := nodeLabel(node); label != "" {
		b.WriteString("\t")
		b.WriteString(label)
	}
	b.WriteString("\n")
	for _, child := range node.Children() {
		writePretty(b, child, depth+1)
	}
}

func nodeLabel(node Node) string {
	switch n := node.(type) {
	case *Name:
		return n.Value
	case *Identifier:
		return n.Name
	case *StringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *IntegerLiteral:
		return n.Raw
	case *FloatLiteral:
		return n.Raw
	case *UnaryExpression:
		return n.Operator
	case *BinaryExpression:
		return n.Operator
	default:
		return ""
	}
}
