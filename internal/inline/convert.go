// Package inline converts annotated lines of text into HTML trees.
//
// A [Converter] runs the text through a series of delimiter rules,
// classifies the resulting spans into leaf nodes,
// and wraps them in a single parent element.
package inline

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/inlinehtml/internal/classify"
	"go.abhg.dev/inlinehtml/internal/htmlnode"
	"go.abhg.dev/inlinehtml/internal/span"
	"go.abhg.dev/inlinehtml/internal/split"
	"golang.org/x/sync/errgroup"
)

// DefaultTag is the element that wraps converted text
// if the Converter does not specify one.
const DefaultTag = "p"

// Rule promotes text enclosed in Delimiter to Style.
type Rule struct {
	Delimiter string
	Style     span.Style
}

// String returns the rule in the form "delimiter=style".
func (r *Rule) String() string {
	return fmt.Sprintf("%s=%v", r.Delimiter, r.Style)
}

// Set parses a rule in the form "delimiter=style".
// The last "=" separates the two, so the delimiter may contain "=".
func (r *Rule) Set(s string) error {
	idx := strings.LastIndexByte(s, '=')
	if idx < 0 {
		return errtrace.Errorf("expected form 'delimiter=style', got %q", s)
	}

	delim := s[:idx]
	if delim == "" {
		return errtrace.Wrap(split.ErrEmptyDelimiter)
	}

	style, err := span.ParseStyle(s[idx+1:])
	if err != nil {
		return errtrace.Wrap(err)
	}

	r.Delimiter = delim
	r.Style = style
	return nil
}

// Get returns the rule.
// This is to comply with the [flag.Getter] interface.
func (r *Rule) Get() any { return *r }

// DefaultRules are the rules used if the Converter does not specify any.
//
// Longer delimiters go first so that "**" is not consumed as two "*".
var DefaultRules = []Rule{
	{Delimiter: "**", Style: span.Bold},
	{Delimiter: "*", Style: span.Italic},
	{Delimiter: "`", Style: span.Code},
}

// Converter turns text into HTML trees.
type Converter struct {
	// Rules applied to text in order.
	// Defaults to DefaultRules.
	Rules []Rule

	// Tag is the element wrapping each converted text.
	// Defaults to DefaultTag.
	Tag string

	// Jobs is the maximum number of texts rendered at the same time
	// by RenderAll. Defaults to GOMAXPROCS.
	Jobs int

	// Log receives debug messages. Defaults to discarding them.
	Log *log.Logger
}

func (c *Converter) rules() []Rule {
	if len(c.Rules) == 0 {
		return DefaultRules
	}
	return c.Rules
}

func (c *Converter) tag() string {
	if c.Tag == "" {
		return DefaultTag
	}
	return c.Tag
}

var _discardLog = log.New(io.Discard, "", 0)

func (c *Converter) logger() *log.Logger {
	if c.Log == nil {
		return _discardLog
	}
	return c.Log
}

// Spans splits text into styled spans using the converter's rules.
//
// The result is empty if the text holds only delimiters.
func (c *Converter) Spans(text string) ([]span.Span, error) {
	spans := []span.Span{span.Text(text, span.Plain)}
	for _, r := range c.rules() {
		if len(spans) == 0 {
			// Every fragment was dropped by an earlier rule.
			break
		}

		var err error
		spans, err = split.Split(spans, r.Delimiter, r.Style)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("rule %v: %w", &r, err))
		}
	}
	return spans, nil
}

// Convert builds an HTML tree for text.
// The tree is a single element holding one leaf per span,
// or a single empty leaf if there are no spans.
func (c *Converter) Convert(text string) (*htmlnode.Parent, error) {
	spans, err := c.Spans(text)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(spans) == 0 {
		spans = []span.Span{span.Text("", span.Plain)}
	}
	c.logger().Printf("%q: %v", text, spans)

	children, err := classify.All(spans)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &htmlnode.Parent{
		Tag:      c.tag(),
		Children: children,
	}, nil
}

// Render converts text and renders the result into HTML.
func (c *Converter) Render(text string) (string, error) {
	tree, err := c.Convert(text)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(htmlnode.Render(tree))
}

// RenderAll renders each of the given texts into HTML
// and returns the results in the same order.
//
// Texts are rendered concurrently.
// If any text fails or ctx is canceled,
// RenderAll returns the first failure
// and skips texts that have not yet started.
func (c *Converter) RenderAll(ctx context.Context, texts []string) ([]string, error) {
	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	out := make([]string, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}
			html, err := c.Render(text)
			if err != nil {
				return errtrace.Wrap(fmt.Errorf("text %d: %w", i, err))
			}
			out[i] = html
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return out, nil
}
