// Package linebuf splits byte streams into lines.
package linebuf

import (
	"bytes"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// Writer returns an io.Writer that calls fn once per line written to it.
// Lines passed to fn include their trailing newline.
//
// The final line may not end with a newline.
// Call done after the last write to deliver it.
// fn must not retain the slice it receives.
func Writer(fn func(line []byte)) (_ io.Writer, done func()) {
	w := writer{emit: fn}
	return &w, w.flush
}

// Lines reads r to completion and calls fn for each line.
func Lines(r io.Reader, fn func(line []byte)) error {
	w, done := Writer(fn)
	if _, err := io.Copy(w, r); err != nil {
		return errtrace.Wrap(err)
	}
	done()
	return nil
}

type writer struct {
	emit func([]byte)

	mu      sync.Mutex
	partial bytes.Buffer // incomplete line from earlier writes
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.partial.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx+1], bs[idx+1:]
		if w.partial.Len() == 0 {
			w.emit(line)
			continue
		}

		w.partial.Write(line)
		w.emit(w.partial.Bytes())
		w.partial.Reset()
	}
	return total, nil
}

func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.partial.Len() > 0 {
		w.emit(w.partial.Bytes())
		w.partial.Reset()
	}
}
