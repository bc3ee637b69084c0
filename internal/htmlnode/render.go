package htmlnode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
)

// Errors reported when rendering malformed trees.
var (
	ErrMissingTag    = errors.New("parent node has no tag")
	ErrEmptyChildren = errors.New("parent node has no children")
	ErrNilNode       = errors.New("node is nil")
)

// RenderAttrs renders a list of attributes in order.
// Each attribute is preceded by a single space.
// Values are not escaped.
func RenderAttrs(attrs []Attr) string {
	var sb strings.Builder
	writeAttrs(&sb, attrs)
	return sb.String()
}

// Render renders the tree rooted at n into an HTML string.
//
// No whitespace is inserted between elements.
// Rendering fails if any Parent in the tree
// is missing its tag or has no children,
// or if any node in the tree is nil.
func Render(n Node) (string, error) {
	var r renderer
	if err := r.RenderNode(n); err != nil {
		return "", errtrace.Wrap(err)
	}
	return r.String(), nil
}

// Write renders the tree rooted at n into w.
//
// Nothing is written if the tree is malformed.
func Write(w io.Writer, n Node) error {
	s, err := Render(n)
	if err != nil {
		return errtrace.Wrap(err)
	}
	_, err = io.WriteString(w, s)
	return errtrace.Wrap(err)
}

type renderer struct {
	strings.Builder
}

func (r *renderer) RenderNode(n Node) error {
	switch n := n.(type) {
	case nil:
		return errtrace.Wrap(ErrNilNode)

	case *Leaf:
		if n == nil {
			return errtrace.Wrap(ErrNilNode)
		}
		if n.Tag == "" {
			r.WriteString(n.Value)
			return nil
		}
		r.openTag(n.Tag, n.Attrs)
		r.WriteString(n.Value)
		r.closeTag(n.Tag)
		return nil

	case *Parent:
		if n == nil {
			return errtrace.Wrap(ErrNilNode)
		}
		if n.Tag == "" {
			return errtrace.Wrap(ErrMissingTag)
		}
		if len(n.Children) == 0 {
			return errtrace.Wrap(fmt.Errorf("<%s>: %w", n.Tag, ErrEmptyChildren))
		}

		r.openTag(n.Tag, n.Attrs)
		for i, c := range n.Children {
			if err := r.RenderNode(c); err != nil {
				return errtrace.Wrap(fmt.Errorf("<%s> child %d: %w", n.Tag, i, err))
			}
		}
		r.closeTag(n.Tag)
		return nil

	default:
		panic(fmt.Sprintf("unrecognized node type %T", n))
	}
}

func (r *renderer) openTag(tag string, attrs []Attr) {
	r.WriteByte('<')
	r.WriteString(tag)
	writeAttrs(&r.Builder, attrs)
	r.WriteByte('>')
}

func (r *renderer) closeTag(tag string) {
	r.WriteString("</")
	r.WriteString(tag)
	r.WriteByte('>')
}

func writeAttrs(sb *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
}
