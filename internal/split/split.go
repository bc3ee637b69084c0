// Package split promotes delimited regions of inline spans
// into styled spans.
//
// Given the text "This is *bold* text" and the delimiter "*",
// the region between the pair of delimiters becomes a separate span
// with the requested style:
//
//	"This is "  plain
//	"bold"      bold
//	" text"     plain
//
// Text with an unbalanced delimiter is left alone rather than rejected.
package split

import (
	"errors"
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/inlinehtml/internal/span"
)

// Errors reported by [Split] for invalid arguments.
var (
	ErrEmptyInput     = errors.New("no spans to split")
	ErrEmptyDelimiter = errors.New("delimiter must not be empty")
	ErrInvalidStyle   = errors.New("invalid target style")
)

// Split splits the text of each span on delimiter,
// and returns a new sequence of spans where regions enclosed
// by delimiters have the given style.
//
// For each span, the text is split on every occurrence of delimiter.
// The span is kept unchanged unless this produces
// a multiple of three fragments.
// Otherwise, fragments at even positions become plain spans,
// fragments at odd positions become spans with the given style,
// and empty fragments are dropped.
//
// Every span is split regardless of its current style,
// and the pieces of a span lose their original style and URL.
// Running Split on the output of an earlier Split
// will therefore re-split styled text that contains the new delimiter.
func Split(spans []span.Span, delimiter string, style span.Style) ([]span.Span, error) {
	if len(spans) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	if delimiter == "" {
		return nil, errtrace.Wrap(ErrEmptyDelimiter)
	}
	if !style.Valid() {
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", style, ErrInvalidStyle))
	}

	out := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		out = appendSplit(out, s, delimiter, style)
	}
	return out, nil
}

func appendSplit(out []span.Span, s span.Span, delimiter string, style span.Style) []span.Span {
	parts := strings.Split(s.Text, delimiter)
	if len(parts) == 1 || len(parts)%3 != 0 {
		return append(out, s)
	}

	for i, part := range parts {
		if part == "" {
			continue
		}

		partStyle := span.Plain
		if i%2 == 1 {
			partStyle = style
		}
		out = append(out, span.Text(part, partStyle))
	}
	return out
}
