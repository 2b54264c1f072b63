package core

import "fmt"

// InvariantViolation is the typed value carried by a panic raised when an
// internal structural invariant does not hold: component-tree bucket
// bookkeeping out of range, a split-findmin dispatch that doesn't match any
// of its three shapes, and similar conditions a correct caller can never
// trigger. These are bugs, not runtime errors, so they are never returned
// as an error value; callers recover them only in tests that probe for
// them deliberately.
type InvariantViolation struct {
	// Package names the package that detected the violation, e.g. "comptree".
	Package string
	// Message describes which invariant failed.
	Message string
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("%s: internal invariant violated: %s", v.Package, v.Message)
}

// Assert panics with an InvariantViolation attributed to pkg if cond is
// false. Call sites guard conditions that a correct implementation can
// never violate; an assertion firing means the bug is in this module, not
// in caller input.
func Assert(pkg string, cond bool, message string) {
	if !cond {
		panic(InvariantViolation{Package: pkg, Message: message})
	}
}
