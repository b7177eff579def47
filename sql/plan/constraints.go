package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// UniqueConstraint is a set of column expressions declared to form a key of
// the relation at the node it is attached to (spec §3 "Unique constraint",
// GLOSSARY).
type UniqueConstraint struct {
	Columns []expression.Expression
}

// NewUniqueConstraint builds a UniqueConstraint over the given columns.
func NewUniqueConstraint(columns ...expression.Expression) UniqueConstraint {
	return UniqueConstraint{Columns: columns}
}

// Contains reports whether e is one of u's columns, comparing under
// mapping.
func (u UniqueConstraint) Contains(e expression.Expression, mapping sql.IdentityMapping) bool {
	for _, c := range u.Columns {
		if c.ShallowEqual(e, mapping) {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every column of u also appears, under mapping,
// among candidates — the check Projection forwarding needs ("every column
// in U appears verbatim ... in the projection list", spec §4.3).
func (u UniqueConstraint) SubsetOf(candidates []expression.Expression, mapping sql.IdentityMapping) bool {
	for _, c := range u.Columns {
		found := false
		for _, cand := range candidates {
			if c.ShallowEqual(cand, mapping) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal reports whether u and other declare the same column set under
// mapping, order-independent.
func (u UniqueConstraint) Equal(other UniqueConstraint, mapping sql.IdentityMapping) bool {
	if len(u.Columns) != len(other.Columns) {
		return false
	}
	return u.SubsetOf(other.Columns, mapping) && other.SubsetOf(u.Columns, mapping)
}

// Hash is stable across identity remapping when mapping is the identity:
// it sums per-column hashes, which is order-independent by construction
// (spec §9 "Constraint set ... hashing must be stable across identity
// remapping when the mapping is the identity").
func (u UniqueConstraint) Hash() uint64 {
	var sum uint64
	for _, c := range u.Columns {
		sum += c.Hash()
	}
	return sum
}

// ConstraintSet is a set of sets of column expressions (spec §9). The zero
// value is the empty constraint set, which propagation returns
// conservatively whenever a shape is unsupported (spec §7).
type ConstraintSet []UniqueConstraint

// Contains reports whether u is already present in s, under mapping.
func (s ConstraintSet) Contains(u UniqueConstraint, mapping sql.IdentityMapping) bool {
	for _, existing := range s {
		if existing.Equal(u, mapping) {
			return true
		}
	}
	return false
}

// Union returns the set union of s and other, deduplicating constraints
// that are Equal under the identity mapping. This is the "U_L ∪ U_R"
// operation spec §4.5's propagation table calls for.
func (s ConstraintSet) Union(other ConstraintSet) ConstraintSet {
	out := make(ConstraintSet, 0, len(s)+len(other))
	out = append(out, s...)
	for _, u := range other {
		if !out.Contains(u, nil) {
			out = append(out, u)
		}
	}
	return out
}

// Filter returns the subset of s for which keep returns true.
func (s ConstraintSet) Filter(keep func(UniqueConstraint) bool) ConstraintSet {
	var out ConstraintSet
	for _, u := range s {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
