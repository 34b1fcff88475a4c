package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This hands out random readable names for opaque handles. Split fragments
// are plain coordinate slices with no identity of their own, so callers key
// names off whatever stable handle they hold, usually a pointer into the
// fragment collection. The memo is never trimmed, but names are generated
// lazily, so it only grows while something is actually being debugged.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so make them nondeterministic to
	// remind the user that a name never means the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized readable name for handle, which must be hashable.
// Nil handles all answer to "Ø".
func Name(handle interface{}) string {
	if handle == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(handle); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[handle]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[handle] = r
	return r
}
