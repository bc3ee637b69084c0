package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag that may be repeated.
// Each occurrence is parsed by *T and appended to the list.
type List[T any, PT Getter[T]] []T

// ListOf turns a slice into a repeatable flag.
//
//	flag.Var(flagvalue.ListOf(&rules), "rule", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the parsed values as a []T.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String joins the values with "; ".
func (lv *List[T, PT]) String() string {
	if lv == nil {
		return ""
	}

	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = fmt.Sprint(PT(&(*lv)[i]))
	}
	return strings.Join(items, "; ")
}

// Set parses one occurrence of the flag.
// The list is left unchanged if s is invalid.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
