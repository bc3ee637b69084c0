// Package errdefer runs deferred cleanup
// whose failure must be reported by the surrounding function.
package errdefer

import (
	"errors"
	"io"

	"braces.dev/errtrace"
)

// Close closes closer and joins its error, if any, into *err.
//
// Use it in a defer statement in a function with a named error return:
//
//	defer errdefer.Close(&err, f)
func Close(err *error, closer io.Closer) {
	if cerr := closer.Close(); cerr != nil {
		*err = errors.Join(*err, errtrace.Wrap(cerr))
	}
}
