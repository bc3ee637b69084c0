// Package flagvalue provides flag.Value implementations
// used by the command line interface.
package flagvalue

import "flag"

// Getter is satisfied by *T if *T implements flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}
