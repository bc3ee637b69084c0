// Package span defines inline spans:
// runs of text that carry a single semantic style.
//
// Spans are plain values.
// Two spans are equal if and only if they compare equal with ==.
package span

import (
	"errors"
	"fmt"

	"braces.dev/errtrace"
)

// Errors reported by [Span.Validate].
var (
	ErrMissingURL    = errors.New("span requires a URL")
	ErrUnexpectedURL = errors.New("span must not have a URL")
	ErrInvalidStyle  = errors.New("invalid span style")
)

// Span is a run of text with one semantic style.
type Span struct {
	Text  string
	Style Style

	// URL is the destination of a link or the source of an image.
	// It is empty for all other styles.
	URL string
}

// Text builds a span with the given style and no URL.
func Text(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// Linked builds a link span pointing to url.
func Linked(text, url string) Span {
	return Span{Text: text, Style: Link, URL: url}
}

// Img builds an image span for the image at url.
func Img(text, url string) Span {
	return Span{Text: text, Style: Image, URL: url}
}

// Validate reports whether the span is well-formed:
// the style is known, and a URL is present
// if and only if the style calls for one.
func (s Span) Validate() error {
	switch {
	case !s.Style.Valid():
		return errtrace.Wrap(fmt.Errorf("%v: %w", s.Style, ErrInvalidStyle))
	case s.Style.HasURL() && s.URL == "":
		return errtrace.Wrap(fmt.Errorf("%v: %w", s.Style, ErrMissingURL))
	case !s.Style.HasURL() && s.URL != "":
		return errtrace.Wrap(fmt.Errorf("%v: %w", s.Style, ErrUnexpectedURL))
	}
	return nil
}

// String returns a debugging representation of the span.
func (s Span) String() string {
	if s.URL == "" {
		return fmt.Sprintf("Span(%q, %v)", s.Text, s.Style)
	}
	return fmt.Sprintf("Span(%q, %v, %q)", s.Text, s.Style, s.URL)
}
