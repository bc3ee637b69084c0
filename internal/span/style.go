package span

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Style is the semantic style of a [Span].
//
// The zero value is not a valid style.
// It stands for "no style" and is rejected wherever a style is required.
type Style int

// Styles supported by spans.
const (
	Plain Style = iota + 1
	Bold
	Italic
	Code
	Link
	Image
)

var _styleNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	return s >= Plain && s <= Image
}

// HasURL reports whether spans of this style carry a URL.
func (s Style) HasURL() bool {
	return s == Link || s == Image
}

// String returns the lowercase name of the style,
// or "Style(N)" for unknown styles.
func (s Style) String() string {
	if s.Valid() {
		return _styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses the name of a style.
// It is the inverse of [Style.String] and is case-insensitive.
// "normal" is accepted as an alias for "plain".
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "normal" {
		return Plain, nil
	}
	for s := Plain; s <= Image; s++ {
		if _styleNames[s] == name {
			return s, nil
		}
	}
	return 0, errtrace.Errorf("unknown style %q", name)
}

// Set receives a style name from the command line.
func (s *Style) Set(name string) error {
	v, err := ParseStyle(name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*s = v
	return nil
}

// Get returns the style.
// This is to comply with the [flag.Getter] interface.
func (s *Style) Get() any { return *s }
