package expression

import (
	"fmt"

	"github.com/hyriseql/lqp/sql"
)

// AggregateFunction is the closed set of aggregate functions the
// expression tree's function/arithmetic extension point (spec §3) models
// for this core. Physical evaluation is out of scope; only the shape
// needed to derive output type and nullability is specified here.
type AggregateFunction uint8

const (
	Count AggregateFunction = iota
	Sum
	Avg
	Max
	Min
)

func (f AggregateFunction) String() string {
	switch f {
	case Count:
		return "COUNT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	case Max:
		return "MAX"
	case Min:
		return "MIN"
	default:
		return "?"
	}
}

// AggregateExpr applies an AggregateFunction to an Argument column within a
// group. CountStar is true for the bare COUNT(*) form, which has no
// argument and is never null (spec §4.3 "Nullability of an aggregate
// column follows standard SQL (COUNT never null; SUM/MAX/MIN/AVG null on
// empty group unless grouped)").
//
// "Null on empty group unless grouped" is realised as: when Grouped is
// true (there is at least one group-by column, so every group is
// non-empty by construction of GROUP BY) SUM/MAX/MIN/AVG are as nullable
// as their argument; when Grouped is false (a scalar aggregate over the
// whole, possibly zero-row, input) they are always nullable, since an
// empty input yields a single NULL row for these functions.
type AggregateExpr struct {
	Function  AggregateFunction
	Argument  Expression
	CountStar bool
	Grouped   bool
}

// NewCountStar builds the COUNT(*) aggregate.
func NewCountStar(grouped bool) *AggregateExpr {
	return &AggregateExpr{Function: Count, CountStar: true, Grouped: grouped}
}

// NewAggregate builds an aggregate function call over argument.
func NewAggregate(fn AggregateFunction, argument Expression, grouped bool) *AggregateExpr {
	return &AggregateExpr{Function: fn, Argument: argument, Grouped: grouped}
}

func (a *AggregateExpr) DataType() sql.DataType {
	switch a.Function {
	case Count:
		return sql.Long
	case Avg:
		return sql.Double
	default:
		if a.Argument != nil {
			return a.Argument.DataType()
		}
		return sql.Null
	}
}

func (a *AggregateExpr) IsNullable(ctx NullabilityContext) bool {
	switch a.Function {
	case Count:
		return false
	default:
		if !a.Grouped {
			return true
		}
		if a.Argument != nil {
			return a.Argument.IsNullable(ctx)
		}
		return true
	}
}

func (a *AggregateExpr) Description(mode DescriptionMode) string {
	if a.CountStar {
		return "COUNT(*)"
	}
	return fmt.Sprintf("%s(%s)", a.Function, a.Argument.Description(mode))
}

func (a *AggregateExpr) Hash() uint64 {
	var argHash uint64
	if a.Argument != nil {
		argHash = a.Argument.Hash()
	}
	return hashOf(struct {
		Kind      string
		Function  AggregateFunction
		Argument  uint64
		CountStar bool
		Grouped   bool
	}{"aggregate", a.Function, argHash, a.CountStar, a.Grouped})
}

func (a *AggregateExpr) ShallowEqual(other Expression, mapping sql.IdentityMapping) bool {
	o, ok := other.(*AggregateExpr)
	if !ok || a.Function != o.Function || a.CountStar != o.CountStar || a.Grouped != o.Grouped {
		return false
	}
	if a.Argument == nil || o.Argument == nil {
		return a.Argument == nil && o.Argument == nil
	}
	return a.Argument.ShallowEqual(o.Argument, mapping)
}

func (a *AggregateExpr) DeepCopy(mapping sql.IdentityMapping) Expression {
	cp := &AggregateExpr{Function: a.Function, CountStar: a.CountStar, Grouped: a.Grouped}
	if a.Argument != nil {
		cp.Argument = a.Argument.DeepCopy(mapping)
	}
	return cp
}

func (a *AggregateExpr) Children() []Expression {
	if a.Argument == nil {
		return nil
	}
	return []Expression{a.Argument}
}

var _ Expression = (*AggregateExpr)(nil)
