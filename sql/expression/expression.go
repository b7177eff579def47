// Package expression implements the scalar expression tree (spec §4.1, C2):
// values, column references, binary predicates, logical combinators, and
// between. Every variant is a small, immutable value; trees are built
// bottom-up and shared the same way LQP nodes are.
package expression

import (
	"github.com/mitchellh/hashstructure"

	"github.com/hyriseql/lqp/sql"
)

// DescriptionMode selects how much detail Description renders, per spec §4.1.
type DescriptionMode int

const (
	// Short renders a compact, single-token-ish form.
	Short DescriptionMode = iota
	// Detailed renders every operand recursively.
	Detailed
)

// NullabilityContext tells an expression how to resolve the nullability of
// the LQPColumns it references. A node computing its own output
// nullability asks each projected expression IsNullable with a context
// whose ColumnNullable answers "is this particular column, from this
// particular source node, currently nullable" — which for most nodes is
// just "ask the input," but outer joins and aggregates need to inject
// nullability that isn't intrinsic to the referenced node itself.
type NullabilityContext interface {
	// ColumnNullable reports whether the column at the given index of the
	// node identified by owner is nullable in the surrounding plan.
	ColumnNullable(owner sql.NodeID, columnIndex int) bool
}

// Expression is the contract every node in the scalar expression tree
// satisfies (spec §4.1).
type Expression interface {
	// DataType returns the scalar type this expression produces.
	DataType() sql.DataType

	// IsNullable reports whether, given the nullability of the column
	// references it contains (resolved via ctx), this expression may
	// yield NULL.
	IsNullable(ctx NullabilityContext) bool

	// Description renders a human-readable form of the expression.
	Description(mode DescriptionMode) string

	// Hash returns a content hash suitable for shallow_hash mixing and for
	// ConstraintSet membership. Two expressions that are ShallowEqual
	// under the identity mapping must hash identically.
	Hash() uint64

	// ShallowEqual reports structural equality with other, resolving any
	// LQPColumn node references on both sides through mapping before
	// comparing. mapping may be nil, meaning "compare identities as-is."
	ShallowEqual(other Expression, mapping sql.IdentityMapping) bool

	// DeepCopy clones the expression, rewriting every LQPColumn's owning
	// node identity through mapping.
	DeepCopy(mapping sql.IdentityMapping) Expression

	// Children returns this expression's direct sub-expressions, for
	// generic tree walks. Leaves (Value, LQPColumn) return nil.
	Children() []Expression
}

func (m DescriptionMode) String() string {
	if m == Detailed {
		return "detailed"
	}
	return "short"
}

// hashOf hashes a plain data struct with hashstructure, the way
// shallow_hash/Hash are specified to mix in "kind and kind-specific
// scalars" (spec §4.2) rather than hand-rolled bit mixing.
func hashOf(v interface{}) uint64 {
	h, err := hashstructure.Hash(v, nil)
	if err != nil {
		// hashstructure only fails on unsupported types (channels, funcs);
		// every expression payload here is plain data, so this is
		// unreachable in practice. Fall back to a fixed sentinel rather
		// than panicking out of a pure query method.
		return 0
	}
	return h
}
