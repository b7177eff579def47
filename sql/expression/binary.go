package expression

import (
	"fmt"

	"github.com/hyriseql/lqp/sql"
)

// ComparisonType is the closed set of binary predicate conditions, spec §3
// "BinaryPredicate: ... condition ∈ {Equals, NotEquals, ...}".
type ComparisonType uint8

const (
	Equals ComparisonType = iota
	NotEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals
	Like
	NotLike
	In
	NotIn
)

var comparisonSymbols = [...]string{
	Equals:             "=",
	NotEquals:          "!=",
	LessThan:           "<",
	LessThanEquals:     "<=",
	GreaterThan:        ">",
	GreaterThanEquals:  ">=",
	Like:               "LIKE",
	NotLike:            "NOT LIKE",
	In:                 "IN",
	NotIn:              "NOT IN",
}

func (c ComparisonType) String() string {
	if int(c) < len(comparisonSymbols) {
		return comparisonSymbols[c]
	}
	return "?"
}

// IsEquals reports whether c is the Equals condition — the shape join
// constraint propagation (spec §4.5) requires for an equi-join predicate.
func (c ComparisonType) IsEquals() bool { return c == Equals }

// BinaryPredicate is a two-operand comparison, spec §3/§4.1. Construction
// enforces the compatibility matrix and, for Like/NotLike, that both
// operands are string-typed (invariant (iii)).
type BinaryPredicate struct {
	Left      Expression
	Right     Expression
	Condition ComparisonType
}

// NewBinaryPredicate constructs a BinaryPredicate, returning
// ErrIncompatibleTypes if left and right's data types are not Compatible,
// or if condition is Like/NotLike and either operand is not string-typed.
func NewBinaryPredicate(left, right Expression, condition ComparisonType) (*BinaryPredicate, error) {
	if err := RequireCompatible(left.DataType(), right.DataType()); err != nil {
		return nil, err
	}
	if condition == Like || condition == NotLike {
		if err := RequireString(left.DataType()); err != nil {
			return nil, err
		}
		if err := RequireString(right.DataType()); err != nil {
			return nil, err
		}
	}
	return &BinaryPredicate{Left: left, Right: right, Condition: condition}, nil
}

// MustNewBinaryPredicate is NewBinaryPredicate but panics on error, for
// call sites (tests, fixture builders) that construct from known-good,
// already-validated operands.
func MustNewBinaryPredicate(left, right Expression, condition ComparisonType) *BinaryPredicate {
	p, err := NewBinaryPredicate(left, right, condition)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *BinaryPredicate) DataType() sql.DataType { return sql.String }

// IsNullable implements spec §4.1's three-valued-logic rule: null if either
// operand is null; Like additionally requires both operands non-null (a
// redundant but explicit restatement, since either-null already yields
// null under the general rule).
func (p *BinaryPredicate) IsNullable(ctx NullabilityContext) bool {
	return p.Left.IsNullable(ctx) || p.Right.IsNullable(ctx)
}

func (p *BinaryPredicate) Description(mode DescriptionMode) string {
	return fmt.Sprintf("%s %s %s", p.Left.Description(mode), p.Condition, p.Right.Description(mode))
}

func (p *BinaryPredicate) Hash() uint64 {
	return hashOf(struct {
		Kind      string
		Condition ComparisonType
		Left      uint64
		Right     uint64
	}{"binary_predicate", p.Condition, p.Left.Hash(), p.Right.Hash()})
}

func (p *BinaryPredicate) ShallowEqual(other Expression, mapping sql.IdentityMapping) bool {
	o, ok := other.(*BinaryPredicate)
	if !ok || p.Condition != o.Condition {
		return false
	}
	return p.Left.ShallowEqual(o.Left, mapping) && p.Right.ShallowEqual(o.Right, mapping)
}

func (p *BinaryPredicate) DeepCopy(mapping sql.IdentityMapping) Expression {
	return &BinaryPredicate{
		Left:      p.Left.DeepCopy(mapping),
		Right:     p.Right.DeepCopy(mapping),
		Condition: p.Condition,
	}
}

func (p *BinaryPredicate) Children() []Expression {
	return []Expression{p.Left, p.Right}
}

var _ Expression = (*BinaryPredicate)(nil)
