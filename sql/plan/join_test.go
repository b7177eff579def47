package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

func equiPredicate(left, right *expression.LQPColumn) []expression.Expression {
	return []expression.Expression{expression.MustNewBinaryPredicate(left, right, expression.Equals)}
}

// TestCrossJoinRejection is §8 scenario 1.
func TestCrossJoinRejection(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))

	_, err := NewJoin(Cross, l, r, equiPredicate(col(l, 0), col(r, 0)))
	require.Error(t, err)
	require.True(t, sql.ErrInvariantViolation.Is(err))

	_, err = NewJoin(Inner, l, r, nil)
	require.Error(t, err)
	require.True(t, sql.ErrInvariantViolation.Is(err))
}

// TestOuterJoinNullability is §8 scenario 2.
func TestOuterJoinNullability(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(Left, l, r, equiPredicate(col(l, 0), col(r, 0)))

	// Left-side columns (0, 1) keep the input's own nullability.
	leftA, err := j.IsColumnNullable(0)
	require.NoError(t, err)
	require.False(t, leftA)

	// Right-side columns (2, 3) all become nullable under a Left outer join,
	// even column 2 ("a"), which is NOT NULL on r itself.
	rightA, err := j.IsColumnNullable(2)
	require.NoError(t, err)
	require.True(t, rightA)
}

func TestFullOuterJoinMakesBothSidesNullable(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(FullOuter, l, r, equiPredicate(col(l, 0), col(r, 0)))

	leftA, err := j.IsColumnNullable(0)
	require.NoError(t, err)
	require.True(t, leftA)

	rightA, err := j.IsColumnNullable(2)
	require.NoError(t, err)
	require.True(t, rightA)
}

// TestInnerEquiJoinBothUnique is §8 scenario 3.
func TestInnerEquiJoinBothUnique(t *testing.T) {
	l := NewStoredTable(fixtureTable("l", mustConstraint(0)))
	r := NewStoredTable(fixtureTable("r", mustConstraint(0)))
	j := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))

	constraints, err := j.Constraints()
	require.NoError(t, err)
	require.Len(t, constraints, 2)
	require.True(t, constraints.Contains(NewUniqueConstraint(col(l, 0)), nil))
	require.True(t, constraints.Contains(NewUniqueConstraint(col(r, 0)), nil))
}

// TestInnerEquiJoinOneSideUnique is §8 scenario 4: left unique protects
// right from duplication, so the output constraint set is R's alone.
func TestInnerEquiJoinOneSideUnique(t *testing.T) {
	l := NewStoredTable(fixtureTable("l", mustConstraint(0)))
	r := NewStoredTable(fixtureTable("r", mustConstraint(1))) // unique on b, not the join key a
	j := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))

	constraints, err := j.Constraints()
	require.NoError(t, err)
	require.Len(t, constraints, 1)

	rightConstraints, err := r.Constraints()
	require.NoError(t, err)
	require.Equal(t, rightConstraints, constraints)
}

func TestInnerEquiJoinNeitherUniqueDropsConstraints(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))

	constraints, err := j.Constraints()
	require.NoError(t, err)
	require.Empty(t, constraints)
}

// TestSemiJoinForwardsLeftRegardlessOfRight is §8 scenario 5.
func TestSemiJoinForwardsLeftRegardlessOfRight(t *testing.T) {
	l := NewStoredTable(fixtureTable("l", mustConstraint(0)))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(Semi, l, r, equiPredicate(col(l, 0), col(r, 0)))

	constraints, err := j.Constraints()
	require.NoError(t, err)

	leftConstraints, err := l.Constraints()
	require.NoError(t, err)
	require.Equal(t, leftConstraints, constraints)

	cols, err := j.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 2, "Semi join output is left columns only")
}

func TestAntiJoinOutputIsLeftOnly(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(AntiNullAsTrue, l, r, equiPredicate(col(l, 0), col(r, 0)))

	cols, err := j.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 2)

	// Anti-join constraint propagation is conservatively empty (spec §9
	// open question), regardless of left uniqueness.
	constraints, err := j.Constraints()
	require.NoError(t, err)
	require.Empty(t, constraints)
}

// TestMultiPredicateGuard is §8 scenario 6.
func TestMultiPredicateGuard(t *testing.T) {
	l := NewStoredTable(fixtureTable("l", mustConstraint(0)))
	r := NewStoredTable(fixtureTable("r", mustConstraint(0)))
	predicates := []expression.Expression{
		expression.MustNewBinaryPredicate(col(l, 0), col(r, 0), expression.Equals),
		expression.MustNewBinaryPredicate(col(l, 1), col(r, 1), expression.Equals),
	}
	j := MustNewJoin(Inner, l, r, predicates)

	constraints, err := j.Constraints()
	require.NoError(t, err)
	require.Empty(t, constraints)
}

func TestNonEqualsPredicateDropsConstraints(t *testing.T) {
	l := NewStoredTable(fixtureTable("l", mustConstraint(0)))
	r := NewStoredTable(fixtureTable("r", mustConstraint(0)))
	predicates := []expression.Expression{
		expression.MustNewBinaryPredicate(col(l, 0), col(r, 0), expression.LessThan),
	}
	j := MustNewJoin(Inner, l, r, predicates)

	constraints, err := j.Constraints()
	require.NoError(t, err)
	require.Empty(t, constraints)
}

func TestJoinColumnCountOtherModes(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))

	cols, err := j.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 4)
}

func TestJoinShallowEqualRequiresSameMode(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	inner := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))
	left := MustNewJoin(Left, l, r, equiPredicate(col(l, 0), col(r, 0)))

	require.False(t, inner.ShallowEqual(left, nil))

	mapping := sql.IdentityMapping{}
	cp := inner.ShallowCopy(mapping)
	require.True(t, inner.ShallowEqual(cp, mapping))
	require.Equal(t, inner.ShallowHash(), cp.ShallowHash())
}
