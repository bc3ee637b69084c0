// Package classify turns inline spans into HTML leaf nodes.
package classify

import (
	"errors"
	"fmt"

	"braces.dev/errtrace"
	"go.abhg.dev/inlinehtml/internal/htmlnode"
	"go.abhg.dev/inlinehtml/internal/span"
)

// ImageAlt is the alt text given to every image.
//
// Spans do not carry a description of their image,
// so a fixed placeholder is used.
const ImageAlt = "This is an image"

// ErrInvalidSpan indicates that a span has an unknown style.
var ErrInvalidSpan = errors.New("invalid span")

// Classify builds the HTML leaf for a span.
//
//	plain   text
//	bold    <b>text</b>
//	italic  <i>text</i>
//	code    <code>text</code>
//	link    <a href="url">text</a>
//	image   <img src="url" alt="This is an image"></img>
//
// The text of image spans is ignored.
func Classify(s span.Span) (*htmlnode.Leaf, error) {
	switch s.Style {
	case span.Plain:
		return &htmlnode.Leaf{Value: s.Text}, nil
	case span.Bold:
		return &htmlnode.Leaf{Tag: "b", Value: s.Text}, nil
	case span.Italic:
		return &htmlnode.Leaf{Tag: "i", Value: s.Text}, nil
	case span.Code:
		return &htmlnode.Leaf{Tag: "code", Value: s.Text}, nil
	case span.Link:
		return &htmlnode.Leaf{
			Tag:   "a",
			Value: s.Text,
			Attrs: []htmlnode.Attr{
				{Name: "href", Value: s.URL},
			},
		}, nil
	case span.Image:
		return &htmlnode.Leaf{
			Tag: "img",
			Attrs: []htmlnode.Attr{
				{Name: "src", Value: s.URL},
				{Name: "alt", Value: ImageAlt},
			},
		}, nil
	default:
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", s, ErrInvalidSpan))
	}
}

// All classifies a sequence of spans in order.
// It stops at the first span that cannot be classified.
func All(spans []span.Span) ([]htmlnode.Node, error) {
	if len(spans) == 0 {
		return nil, nil
	}

	nodes := make([]htmlnode.Node, len(spans))
	for i, s := range spans {
		leaf, err := Classify(s)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("span %d: %w", i, err))
		}
		nodes[i] = leaf
	}
	return nodes, nil
}
