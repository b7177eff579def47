package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

func TestPredicatePassesThroughSchema(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	filter := expression.MustNewBinaryPredicate(col(table, 0), expression.NewValue(sql.Int, int32(1)), expression.Equals)
	n := NewPredicate(filter, table)

	cols, err := n.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 2)

	nullable, err := n.IsColumnNullable(1)
	require.NoError(t, err)
	require.True(t, nullable)
}

// TestPredicateOfPredicateForwardsStoredTableConstraints is the §8
// algebraic law: Predicate(Predicate(t, p1), p2).constraints() == t.constraints()
// whenever t is a StoredTable.
func TestPredicateOfPredicateForwardsStoredTableConstraints(t *testing.T) {
	table := NewStoredTable(fixtureTable("t", sql.NewColumnIndexSet(0)))
	p1 := NewPredicate(expression.MustNewBinaryPredicate(col(table, 0), expression.NewValue(sql.Int, int32(1)), expression.Equals), table)
	p2 := NewPredicate(expression.MustNewBinaryPredicate(col(table, 1), expression.NewValue(sql.String, "x"), expression.Equals), p1)

	tableConstraints, err := table.Constraints()
	require.NoError(t, err)

	p2Constraints, err := p2.Constraints()
	require.NoError(t, err)

	require.Equal(t, tableConstraints, p2Constraints)
}

func TestPredicateRequiresLeftInput(t *testing.T) {
	n := &PredicateNode{NodeBase: newNodeBase(), Filter: expression.NewValue(sql.Int, int32(1))}
	_, err := n.ColumnExpressions()
	require.True(t, sql.ErrInvariantViolation.Is(err))
}
