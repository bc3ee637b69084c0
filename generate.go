package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/inlinehtml/internal/errdefer"
	"go.abhg.dev/inlinehtml/internal/inline"
	"go.abhg.dev/inlinehtml/internal/linebuf"
	"golang.org/x/text/unicode/norm"
)

// Converter renders lines of text into HTML.
type Converter interface {
	RenderAll(ctx context.Context, texts []string) ([]string, error)
}

var _ Converter = (*inline.Converter)(nil)

// Generator converts user-specified input files into HTML.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger
	Stdin     io.Reader
	Converter Converter

	// Normalize input text to Unicode NFC before converting it.
	Normalize bool
}

// Generate converts the non-blank lines of all inputs
// and writes one line of HTML to w for each of them.
//
// Inputs are read in order. An empty list or "-" reads from Stdin.
// Nothing is written if any line fails to convert.
func (g *Generator) Generate(ctx context.Context, w io.Writer, inputs []string) error {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var lines []string
	for _, input := range inputs {
		got, err := g.readLines(input)
		if err != nil {
			return errtrace.Wrap(err)
		}
		g.Log.Printf("Read %d lines from %v", len(got), input)
		lines = append(lines, got...)
	}

	out, err := g.Converter.RenderAll(ctx, lines)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var buf bytes.Buffer
	for _, html := range out {
		buf.WriteString(html)
		buf.WriteByte('\n')
	}
	_, err = buf.WriteTo(w)
	return errtrace.Wrap(err)
}

func (g *Generator) readLines(input string) (_ []string, err error) {
	r := g.Stdin
	if input != "-" {
		var f *os.File
		f, err = os.Open(input)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		r = f
	}

	var lines []string
	err = linebuf.Lines(r, func(line []byte) {
		line = bytes.TrimRight(line, "\r\n")
		if len(bytes.TrimSpace(line)) == 0 {
			return
		}
		if g.Normalize {
			line = norm.NFC.Bytes(line)
		}
		lines = append(lines, string(line))
	})
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("read %v: %w", input, err))
	}
	return lines, nil
}
