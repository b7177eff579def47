package sql

import "gopkg.in/src-d/go-errors.v1"

// Error kinds for the LQP core, declared the way auth.ErrNotAuthorized and
// friends are declared upstream: a *errors.Kind per failure mode, matched
// in callers and tests with .Is and constructed with .New.
var (
	// ErrInvariantViolation is raised when a structural contract of the LQP
	// is broken: a cross join carrying a predicate, a non-cross join
	// carrying none, or a derived-property query issued against a node
	// whose required input is unset.
	ErrInvariantViolation = errors.NewKind("invariant violation: %s")

	// ErrIncompatibleTypes is raised at expression construction time when
	// operand data types fail the compatibility matrix.
	ErrIncompatibleTypes = errors.NewKind("incompatible types: %s and %s")

	// ErrUnknownColumn names the condition of an LQPColumn resolving
	// against a node that is not reachable from the current traversal root.
	// No function in this module returns it: during nullability resolution
	// a column whose owner is not a direct input of the asking node is
	// reported as non-nullable (see plan.childNullabilityContext).
	ErrUnknownColumn = errors.NewKind("unknown column: node %s is not reachable from the query root")

	// ErrNotImplemented marks a join mode / predicate shape combination
	// that constraint propagation does not model. Propagation itself never
	// returns this error — it returns the empty constraint set — but
	// callers that want to distinguish "conservatively empty" from an
	// actual bug can construct it for logging or assertions.
	ErrNotImplemented = errors.NewKind("not implemented: %s")
)
