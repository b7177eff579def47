package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// fixtureTable builds a two-column (a int, b nullable string) catalog table
// for tests, optionally declaring unique constraints over column indices.
func fixtureTable(name string, constraints ...sql.ColumnIndexSet) sql.TableSpecification {
	return sql.TableSpecification{
		Name:     name,
		RowCount: 1000,
		Columns: []sql.ColumnSpecification{
			{Name: "a", DataType: sql.Int, Encoding: sql.Unencoded},
			{Name: "b", DataType: sql.String, Encoding: sql.Dictionary, Nullable: true},
		},
		Constraints: constraints,
	}
}

// col looks up column index i of node's ColumnExpressions as an *LQPColumn.
func col(n Node, i int) *expression.LQPColumn {
	cols, err := n.ColumnExpressions()
	if err != nil {
		panic(err)
	}
	return cols[i].(*expression.LQPColumn)
}

// mustConstraint builds a ColumnIndexSet over the given indices, a short
// alias for sql.NewColumnIndexSet used throughout the node test files.
func mustConstraint(indices ...int) sql.ColumnIndexSet {
	return sql.NewColumnIndexSet(indices...)
}
