package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
)

func TestSortPassesThroughSchemaAndConstraints(t *testing.T) {
	table := NewStoredTable(fixtureTable("t", mustConstraint(0)))
	n := NewSort([]SortKey{{Column: col(table, 0), Direction: Descending}}, table)

	cols, err := n.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 2)

	constraints, err := n.Constraints()
	require.NoError(t, err)
	require.Len(t, constraints, 1)
}

func TestSortShallowCopyAndEqual(t *testing.T) {
	table := NewStoredTable(fixtureTable("t"))
	n := NewSort([]SortKey{{Column: col(table, 0), Direction: Ascending}}, table)

	mapping := sql.IdentityMapping{}
	cp := n.ShallowCopy(mapping)
	require.True(t, n.ShallowEqual(cp, mapping))
	require.Equal(t, n.ShallowHash(), cp.ShallowHash())
}
