// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/inlinehtml/internal/linebuf"
)

// Writer builds an io.Writer that logs each line written to it
// with t.Logf.
//
// A final line without a trailing newline is logged
// when the test finishes.
func Writer(t testing.TB) io.Writer {
	w, done := linebuf.Writer(func(line []byte) {
		t.Logf("%s", bytes.TrimSuffix(line, []byte{'\n'}))
	})
	t.Cleanup(done)
	return w
}
