package reactive

import "reflect"

// SameValue reports whether a and b are the same value for change detection.
// Comparable values use ==. Functions, slices and maps are never the same,
// which makes them behave like fresh closures or literals every render.
func SameValue(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// Interface-typed struct fields can still hold incomparable values.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func depsEqual(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !SameValue(prev[i], next[i]) {
			return false
		}
	}
	return true
}
