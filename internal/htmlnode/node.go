// Package htmlnode provides a tree of HTML nodes
// that can be rendered into an HTML string.
//
// A tree is made of two kinds of nodes:
// [Leaf] nodes hold a value and never have children,
// and [Parent] nodes wrap one or more children in an element.
//
// Attribute values and leaf values are written verbatim.
// Nothing is escaped, so callers must not feed untrusted input
// into a tree whose output is served as HTML.
package htmlnode

import (
	"fmt"
	"strings"
)

type (
	// Node is a node in an HTML tree.
	// It is either a *Leaf or a *Parent.
	Node interface{ node() }

	// Leaf is a node without children.
	//
	// If Tag is empty, the leaf renders as its raw Value.
	// Otherwise, Value is wrapped in the element named by Tag.
	Leaf struct {
		Tag   string
		Value string
		Attrs []Attr
	}

	// Parent is an element wrapping one or more child nodes.
	//
	// Tag and Children are required,
	// and every child must be non-nil,
	// but this is only checked when the node is rendered.
	Parent struct {
		Tag      string
		Children []Node
		Attrs    []Attr
	}
)

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

func (*Leaf) node()   {}
func (*Parent) node() {}

// Attr is a single attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// String returns a debugging representation of the leaf.
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q, %v)", l.Tag, l.Value, l.Attrs)
}

// String returns a debugging representation of the parent
// and all its descendants.
func (p *Parent) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Parent(%q, [", p.Tag)
	for i, c := range p.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c)
	}
	fmt.Fprintf(&sb, "], %v)", p.Attrs)
	return sb.String()
}

// Equal reports whether two trees are structurally equal.
//
// Nodes are equal if they are the same kind of node
// with the same tag, value, and attributes,
// and their children are pairwise equal in the same order.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		b, ok := b.(*Leaf)
		if !ok || (a == nil) != (b == nil) {
			return false
		}
		if a == nil {
			return true
		}
		return a.Tag == b.Tag &&
			a.Value == b.Value &&
			attrsEqual(a.Attrs, b.Attrs)

	case *Parent:
		b, ok := b.(*Parent)
		if !ok || (a == nil) != (b == nil) {
			return false
		}
		if a == nil {
			return true
		}
		if a.Tag != b.Tag || !attrsEqual(a.Attrs, b.Attrs) {
			return false
		}
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true

	case nil:
		return b == nil

	default:
		panic(fmt.Sprintf("unrecognized node type %T", a))
	}
}

func attrsEqual(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
