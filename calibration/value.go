package calibration

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// domainSize is the size of the deterministic value domain
// generateValueExpression draws from: selectivity s maps to the value at
// position floor(s * domainSize) of that ordering, clamped to
// [0, domainSize-1] (spec §4.6 "mapping it to a
// value drawn from a deterministic ordering of the column domain").
const domainSize = 1000

// generateValueExpression builds the literal expression.Value a predicate
// functor needs for dataType at the given selectivity. When trailingLike is
// true a '%' wildcard is appended for a LIKE prefix match; this only
// applies to string-typed columns (spec §4.6).
func generateValueExpression(dataType sql.DataType, selectivity float64, trailingLike bool) (*expression.Value, error) {
	index := domainIndex(selectivity)
	switch dataType {
	case sql.Int:
		v, err := cast.ToInt32E(index)
		if err != nil {
			return nil, err
		}
		return expression.NewValue(sql.Int, v), nil
	case sql.Long:
		v, err := cast.ToInt64E(index)
		if err != nil {
			return nil, err
		}
		return expression.NewValue(sql.Long, v), nil
	case sql.Float:
		v, err := cast.ToFloat32E(index)
		if err != nil {
			return nil, err
		}
		return expression.NewValue(sql.Float, v), nil
	case sql.Double:
		v, err := cast.ToFloat64E(index)
		if err != nil {
			return nil, err
		}
		return expression.NewValue(sql.Double, v), nil
	case sql.String:
		s, err := cast.ToStringE(fmt.Sprintf("value_%04d", index))
		if err != nil {
			return nil, err
		}
		if trailingLike {
			s += "%"
		}
		return expression.NewValue(sql.String, s), nil
	default:
		return nil, sql.ErrNotImplemented.New(fmt.Sprintf("value generation for data type %s", dataType))
	}
}

// domainIndex maps a selectivity in [0, 1] to a position in [0, domainSize),
// clamping out-of-range selectivities rather than panicking on a config
// typo.
func domainIndex(selectivity float64) int {
	if selectivity <= 0 {
		return 0
	}
	if selectivity >= 1 {
		return domainSize - 1
	}
	return int(selectivity * float64(domainSize))
}
