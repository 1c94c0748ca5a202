// Package errors defines the coded errors raised by the primitives runtime.
//
// Every error carries a short code (P001, R001, ...), a category, a one-line
// message and a longer detail drawn from the template registry. errors.Is
// matches two *Error values by code, so callers can compare a recovered panic
// against an exported sentinel:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        err, _ := r.(error)
//	        if errors.Is(err, portal.ErrNoProvider) { ... }
//	    }
//	}()
package errors
