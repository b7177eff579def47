package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

func TestWalkVisitsEveryNode(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))
	root := NewLimit(10, j)

	var kinds []NodeKind
	Walk(root, func(n Node) { kinds = append(kinds, n.Kind()) })

	require.Equal(t, []NodeKind{LimitKind, JoinKind, StoredTableKind, StoredTableKind}, kinds)
	require.Equal(t, 4, CountNodes(root))
}

func TestInspectEarlyStopSkipsDescendants(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	p := NewPredicate(expression.MustNewBinaryPredicate(col(l, 0), expression.NewValue(sql.Int, int32(1)), expression.Equals), l)
	root := NewLimit(5, p)

	visited := 0
	Inspect(root, func(n Node) bool {
		visited++
		return n.Kind() != PredicateKind
	})

	require.Equal(t, 2, visited, "Predicate is visited but its input is not descended into")
}

func TestReachable(t *testing.T) {
	l := NewStoredTable(fixtureTable("l"))
	r := NewStoredTable(fixtureTable("r"))
	j := MustNewJoin(Inner, l, r, equiPredicate(col(l, 0), col(r, 0)))

	require.True(t, Reachable(j, l.ID()))
	require.True(t, Reachable(j, r.ID()))
	require.False(t, Reachable(l, r.ID()))
}

// TestWalkRevisitsSharedSubplan documents that Walk does not deduplicate a
// node reachable through two parent edges (spec §4.4 "no caching").
func TestWalkRevisitsSharedSubplan(t *testing.T) {
	shared := NewStoredTable(fixtureTable("shared"))
	j := MustNewJoin(Cross, shared, shared, nil)

	require.Equal(t, 3, CountNodes(j))
}
