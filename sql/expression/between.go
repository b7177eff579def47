package expression

import (
	"fmt"

	"github.com/hyriseql/lqp/sql"
)

// Between is the ternary value/lower/upper-bound predicate, spec §3
// "Between (ternary): value, lower, upper bound." ComparisonType has no
// between condition, so a BETWEEN is always expressed with this node rather
// than a BinaryPredicate.
type Between struct {
	Value Expression
	Lower Expression
	Upper Expression
}

// NewBetween constructs a Between, checking value/lower and value/upper for
// type compatibility.
func NewBetween(value, lower, upper Expression) (*Between, error) {
	if err := RequireCompatible(value.DataType(), lower.DataType()); err != nil {
		return nil, err
	}
	if err := RequireCompatible(value.DataType(), upper.DataType()); err != nil {
		return nil, err
	}
	return &Between{Value: value, Lower: lower, Upper: upper}, nil
}

func (b *Between) DataType() sql.DataType { return sql.String }

func (b *Between) IsNullable(ctx NullabilityContext) bool {
	return b.Value.IsNullable(ctx) || b.Lower.IsNullable(ctx) || b.Upper.IsNullable(ctx)
}

func (b *Between) Description(mode DescriptionMode) string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", b.Value.Description(mode), b.Lower.Description(mode), b.Upper.Description(mode))
}

func (b *Between) Hash() uint64 {
	return hashOf(struct {
		Kind  string
		Value uint64
		Lower uint64
		Upper uint64
	}{"between", b.Value.Hash(), b.Lower.Hash(), b.Upper.Hash()})
}

func (b *Between) ShallowEqual(other Expression, mapping sql.IdentityMapping) bool {
	o, ok := other.(*Between)
	if !ok {
		return false
	}
	return b.Value.ShallowEqual(o.Value, mapping) &&
		b.Lower.ShallowEqual(o.Lower, mapping) &&
		b.Upper.ShallowEqual(o.Upper, mapping)
}

func (b *Between) DeepCopy(mapping sql.IdentityMapping) Expression {
	return &Between{
		Value: b.Value.DeepCopy(mapping),
		Lower: b.Lower.DeepCopy(mapping),
		Upper: b.Upper.DeepCopy(mapping),
	}
}

func (b *Between) Children() []Expression {
	return []Expression{b.Value, b.Lower, b.Upper}
}

var _ Expression = (*Between)(nil)
