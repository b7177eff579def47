package expression

import (
	"fmt"
	"strings"

	"github.com/hyriseql/lqp/sql"
)

// LogicalOperator distinguishes And from Or (spec §3 "Logical: And / Or
// over sub-expressions").
type LogicalOperator uint8

const (
	And LogicalOperator = iota
	Or
)

func (op LogicalOperator) String() string {
	if op == Or {
		return "OR"
	}
	return "AND"
}

// LogicalExpression combines two or more boolean sub-expressions with And
// or Or.
type LogicalExpression struct {
	Operator LogicalOperator
	Operands []Expression
}

// NewAnd builds a conjunction of operands. At least two operands are
// required; fewer is a construction error in the same spirit as the join
// predicate-count invariant (spec §4.5 "Edge rules").
func NewAnd(operands ...Expression) (*LogicalExpression, error) {
	return newLogical(And, operands)
}

// NewOr builds a disjunction of operands.
func NewOr(operands ...Expression) (*LogicalExpression, error) {
	return newLogical(Or, operands)
}

func newLogical(op LogicalOperator, operands []Expression) (*LogicalExpression, error) {
	if len(operands) < 2 {
		return nil, sql.ErrInvariantViolation.New("logical expression requires at least two operands")
	}
	return &LogicalExpression{Operator: op, Operands: operands}, nil
}

func (l *LogicalExpression) DataType() sql.DataType { return sql.String }

func (l *LogicalExpression) IsNullable(ctx NullabilityContext) bool {
	for _, o := range l.Operands {
		if o.IsNullable(ctx) {
			return true
		}
	}
	return false
}

func (l *LogicalExpression) Description(mode DescriptionMode) string {
	parts := make([]string, len(l.Operands))
	for i, o := range l.Operands {
		parts[i] = o.Description(mode)
	}
	sep := fmt.Sprintf(" %s ", l.Operator)
	return "(" + strings.Join(parts, sep) + ")"
}

func (l *LogicalExpression) Hash() uint64 {
	hashes := make([]uint64, len(l.Operands))
	for i, o := range l.Operands {
		hashes[i] = o.Hash()
	}
	return hashOf(struct {
		Kind     string
		Operator LogicalOperator
		Operands []uint64
	}{"logical", l.Operator, hashes})
}

func (l *LogicalExpression) ShallowEqual(other Expression, mapping sql.IdentityMapping) bool {
	o, ok := other.(*LogicalExpression)
	if !ok || l.Operator != o.Operator || len(l.Operands) != len(o.Operands) {
		return false
	}
	for i := range l.Operands {
		if !l.Operands[i].ShallowEqual(o.Operands[i], mapping) {
			return false
		}
	}
	return true
}

func (l *LogicalExpression) DeepCopy(mapping sql.IdentityMapping) Expression {
	operands := make([]Expression, len(l.Operands))
	for i, o := range l.Operands {
		operands[i] = o.DeepCopy(mapping)
	}
	return &LogicalExpression{Operator: l.Operator, Operands: operands}
}

func (l *LogicalExpression) Children() []Expression {
	return l.Operands
}

var _ Expression = (*LogicalExpression)(nil)
