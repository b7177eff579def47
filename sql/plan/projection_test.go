package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

func TestProjectionColumnsAndNullability(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	n := NewProjection([]expression.Expression{col(table, 1), col(table, 0)}, table)

	cols, err := n.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 2)

	nullable, err := n.IsColumnNullable(0)
	require.NoError(t, err)
	require.True(t, nullable, "projection position 0 re-exposes column b, which is nullable")

	notNull, err := n.IsColumnNullable(1)
	require.NoError(t, err)
	require.False(t, notNull)
}

// TestProjectionForwardsOnlyConstraintsFullyPresent is the §8 algebraic
// law: Projection(t, cols).constraints() forwards every unique constraint
// of t whose columns are all present as bare LQPColumns in cols.
func TestProjectionForwardsOnlyConstraintsFullyPresent(t *testing.T) {
	table := NewStoredTable(fixtureTable("t", sql.NewColumnIndexSet(0)))

	keepsConstraint := NewProjection([]expression.Expression{col(table, 0), col(table, 1)}, table)
	constraints, err := keepsConstraint.Constraints()
	require.NoError(t, err)
	require.Len(t, constraints, 1)

	dropsConstraint := NewProjection([]expression.Expression{col(table, 1)}, table)
	constraints2, err := dropsConstraint.Constraints()
	require.NoError(t, err)
	require.Empty(t, constraints2)
}

func TestProjectionIndexOutOfRange(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	n := NewProjection([]expression.Expression{col(table, 0)}, table)

	_, err := n.IsColumnNullable(5)
	require.Error(t, err)
	require.True(t, sql.ErrInvariantViolation.Is(err))
}
