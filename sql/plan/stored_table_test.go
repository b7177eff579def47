package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

func TestStoredTableColumnExpressions(t *testing.T) {
	table := fixtureTable("t")
	n := NewStoredTable(table)

	cols, err := n.ColumnExpressions()
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "a", cols[0].Description(expression.Short))
	require.Equal(t, n.ID(), col(n, 0).Node)
}

func TestStoredTableNullabilityPassesThroughCatalog(t *testing.T) {
	n := NewStoredTable(fixtureTable("t"))

	notNull, err := n.IsColumnNullable(0)
	require.NoError(t, err)
	require.False(t, notNull)

	nullable, err := n.IsColumnNullable(1)
	require.NoError(t, err)
	require.True(t, nullable)

	_, err = n.IsColumnNullable(5)
	require.Error(t, err)
	require.True(t, sql.ErrInvariantViolation.Is(err))
}

func TestStoredTableConstraintsLiftFromCatalog(t *testing.T) {
	n := NewStoredTable(fixtureTable("t", sql.NewColumnIndexSet(0)))

	constraints, err := n.Constraints()
	require.NoError(t, err)
	require.Len(t, constraints, 1)
	require.True(t, constraints[0].Contains(col(n, 0), nil))
}

func TestStoredTableShallowCopyAllocatesFreshIdentity(t *testing.T) {
	n := NewStoredTable(fixtureTable("t"))
	mapping := sql.IdentityMapping{}

	cp := n.ShallowCopy(mapping)
	require.NotEqual(t, n.ID(), cp.ID())
	require.True(t, n.ShallowEqual(cp, mapping))
	require.Equal(t, n.ShallowHash(), cp.ShallowHash())
}

func TestStoredTableIndexScanAttribute(t *testing.T) {
	n := NewStoredTable(fixtureTable("t"))
	n.IsIndexScan = true

	require.Equal(t, "[StoredTable]", n.Description(expression.Short))
	require.Contains(t, n.Description(expression.Detailed), "index_scan: true")

	other := NewStoredTable(fixtureTable("t"))
	require.False(t, n.ShallowEqual(other, nil), "IsIndexScan must participate in shallow equality")
}
