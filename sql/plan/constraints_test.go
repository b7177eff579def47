package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql/expression"
)

func TestUniqueConstraintEqualIsOrderIndependent(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	a, b := col(table, 0), col(table, 1)

	u1 := NewUniqueConstraint(a, b)
	u2 := NewUniqueConstraint(b, a)

	require.True(t, u1.Equal(u2, nil))
	require.Equal(t, u1.Hash(), u2.Hash())
}

func TestUniqueConstraintSubsetOf(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	a, b := col(table, 0), col(table, 1)

	u := NewUniqueConstraint(a)
	require.True(t, u.SubsetOf([]expression.Expression{a, b}, nil))
	require.False(t, u.SubsetOf([]expression.Expression{b}, nil))
}

func TestConstraintSetUnionDeduplicates(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	a := col(table, 0)

	s1 := ConstraintSet{NewUniqueConstraint(a)}
	s2 := ConstraintSet{NewUniqueConstraint(a)}

	union := s1.Union(s2)
	require.Len(t, union, 1)
}

func TestConstraintSetFilter(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	a, b := col(table, 0), col(table, 1)

	s := ConstraintSet{NewUniqueConstraint(a), NewUniqueConstraint(b)}
	filtered := s.Filter(func(u UniqueConstraint) bool {
		return u.Contains(a, nil)
	})
	require.Len(t, filtered, 1)
}
