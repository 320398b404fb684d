package quickhull

import "github.com/pkg/errors"

// The hull computation itself has no failure modes, but the source contract
// checker does, and threading error returns through it would clutter code
// whose steady state cannot fail. Instead it uses panics, and the public API
// recovers to convert to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
