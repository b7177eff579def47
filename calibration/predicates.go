package calibration

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
	"github.com/hyriseql/lqp/sql/plan"
)

// FunctorFamily names one of the seven predicate generator functor families
// spec §4.6 enumerates.
type FunctorFamily string

const (
	BetweenValueValue  FunctorFamily = "between_value_value"
	BetweenColumnColumn FunctorFamily = "between_column_column"
	ColumnValue        FunctorFamily = "column_value"
	ColumnColumn       FunctorFamily = "column_column"
	Like               FunctorFamily = "like"
	EquiOnStrings      FunctorFamily = "equi_on_strings"
	Or                 FunctorFamily = "or"
)

// AllFunctorFamilies lists every functor family, in the declaration order
// of spec §4.6. familiesForReferenceColumn keeps this relative order within
// each of its two halves.
func AllFunctorFamilies() []FunctorFamily {
	return []FunctorFamily{
		BetweenValueValue,
		BetweenColumnColumn,
		ColumnValue,
		ColumnColumn,
		Like,
		EquiOnStrings,
		Or,
	}
}

// functorColumn resolves the first catalog column of table matching
// (dataType, encoding), as an expression.LQPColumn over table. It reports
// ok=false — not an error — when no such column exists, the documented
// "skip" behavior of spec §4.6.
func functorColumn(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType) (*expression.LQPColumn, bool, error) {
	indices := table.Table().ColumnsOfType(dataType, encoding)
	if len(indices) == 0 {
		return nil, false, nil
	}
	cols, err := table.ColumnExpressions()
	if err != nil {
		return nil, false, err
	}
	return cols[indices[0]].(*expression.LQPColumn), true, nil
}

// functorColumnPair resolves two columns of table matching (dataType,
// encoding) for the *_column_column functor shapes. When only one such
// column exists it is reused for both positions (a degenerate but still
// type-valid predicate, since this generator builds plans, not rows to
// execute against); when none exists it reports ok=false.
func functorColumnPair(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType) (a, b *expression.LQPColumn, ok bool, err error) {
	indices := table.Table().ColumnsOfType(dataType, encoding)
	if len(indices) == 0 {
		return nil, nil, false, nil
	}
	cols, err := table.ColumnExpressions()
	if err != nil {
		return nil, nil, false, err
	}
	second := indices[0]
	if len(indices) > 1 {
		second = indices[1]
	}
	return cols[indices[0]].(*expression.LQPColumn), cols[second].(*expression.LQPColumn), true, nil
}

// betweenValueValue builds `column BETWEEN v0 AND v_selectivity`, a window
// over the value domain starting at its beginning and retaining
// selectivity of it.
func betweenValueValue(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType, selectivity float64) (expression.Expression, bool, error) {
	col, ok, err := functorColumn(table, dataType, encoding)
	if err != nil || !ok {
		return nil, ok, err
	}
	lower, err := generateValueExpression(dataType, 0, false)
	if err != nil {
		return nil, false, err
	}
	upper, err := generateValueExpression(dataType, selectivity, false)
	if err != nil {
		return nil, false, err
	}
	b, err := expression.NewBetween(col, lower, upper)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// betweenColumnColumn builds `column BETWEEN lowerColumn AND upperColumn`
// over two catalog columns of the requested shape.
func betweenColumnColumn(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType) (expression.Expression, bool, error) {
	lower, upper, ok, err := functorColumnPair(table, dataType, encoding)
	if err != nil || !ok {
		return nil, ok, err
	}
	valueCol, _, _ := functorColumn(table, dataType, encoding)
	b, err := expression.NewBetween(valueCol, lower, upper)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// columnValue builds `column <= v_selectivity`.
func columnValue(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType, selectivity float64) (expression.Expression, bool, error) {
	col, ok, err := functorColumn(table, dataType, encoding)
	if err != nil || !ok {
		return nil, ok, err
	}
	value, err := generateValueExpression(dataType, selectivity, false)
	if err != nil {
		return nil, false, err
	}
	p, err := expression.NewBinaryPredicate(col, value, expression.LessThanEquals)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// columnColumn builds `columnA <= columnB` over two catalog columns of the
// requested shape.
func columnColumn(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType) (expression.Expression, bool, error) {
	a, b, ok, err := functorColumnPair(table, dataType, encoding)
	if err != nil || !ok {
		return nil, ok, err
	}
	p, err := expression.NewBinaryPredicate(a, b, expression.LessThanEquals)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// like builds `column LIKE 'value_NNNN%'` (NNNN being the selectivity's
// domain index), string-typed only (spec §4.6
// "like (string-typed, with optional trailing wildcard driven by
// selectivity)"). It skips for any non-string data type.
func like(table *plan.StoredTableNode, encoding sql.EncodingType, selectivity float64) (expression.Expression, bool, error) {
	col, ok, err := functorColumn(table, sql.String, encoding)
	if err != nil || !ok {
		return nil, ok, err
	}
	pattern, err := generateValueExpression(sql.String, selectivity, true)
	if err != nil {
		return nil, false, err
	}
	p, err := expression.NewBinaryPredicate(col, pattern, expression.Like)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// equiOnStrings builds `columnA = columnB` over two string-typed columns,
// the shape an optimiser's equi-join-key estimation is calibrated against
// (spec §4.6 "equi_on_strings"). It skips for any non-string data type.
func equiOnStrings(table *plan.StoredTableNode, encoding sql.EncodingType) (expression.Expression, bool, error) {
	a, b, ok, err := functorColumnPair(table, sql.String, encoding)
	if err != nil || !ok {
		return nil, ok, err
	}
	p, err := expression.NewBinaryPredicate(a, b, expression.Equals)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// or builds a disjunction of two columnValue predicates at selectivity/2
// and selectivity, the "disjunction combining two atomic predicates" shape
// of spec §4.6.
func or(table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType, selectivity float64) (expression.Expression, bool, error) {
	left, ok, err := columnValue(table, dataType, encoding, selectivity/2)
	if err != nil || !ok {
		return nil, ok, err
	}
	right, ok, err := columnValue(table, dataType, encoding, selectivity)
	if err != nil || !ok {
		return nil, ok, err
	}
	combined, err := expression.NewOr(left, right)
	if err != nil {
		return nil, false, err
	}
	return combined, true, nil
}

// buildPredicate dispatches family to its functor, returning ok=false when
// the functor skips (no matching column, or a string-only functor paired
// with a non-string data type).
func buildPredicate(family FunctorFamily, table *plan.StoredTableNode, dataType sql.DataType, encoding sql.EncodingType, selectivity float64) (expression.Expression, bool, error) {
	switch family {
	case BetweenValueValue:
		return betweenValueValue(table, dataType, encoding, selectivity)
	case BetweenColumnColumn:
		return betweenColumnColumn(table, dataType, encoding)
	case ColumnValue:
		return columnValue(table, dataType, encoding, selectivity)
	case ColumnColumn:
		return columnColumn(table, dataType, encoding)
	case Like:
		if dataType != sql.String {
			return nil, false, nil
		}
		return like(table, encoding, selectivity)
	case EquiOnStrings:
		if dataType != sql.String {
			return nil, false, nil
		}
		return equiOnStrings(table, encoding)
	case Or:
		return or(table, dataType, encoding, selectivity)
	default:
		return nil, false, sql.ErrNotImplemented.New("predicate functor family: " + string(family))
	}
}
