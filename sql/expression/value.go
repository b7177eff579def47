package expression

import (
	"fmt"

	"github.com/hyriseql/lqp/sql"
)

// Value is a constant scalar, spec §3 "Value: a constant of a known data
// type plus null flag." A NULL value still carries the DataType it would
// have if non-null, so comparisons can still type-check it.
type Value struct {
	Type   sql.DataType
	Val    interface{}
	IsNull bool
}

// NewValue constructs a non-null literal of the given type.
func NewValue(t sql.DataType, v interface{}) *Value {
	return &Value{Type: t, Val: v}
}

// NewNullValue constructs a typed NULL literal.
func NewNullValue(t sql.DataType) *Value {
	return &Value{Type: t, IsNull: true}
}

func (v *Value) DataType() sql.DataType { return v.Type }

func (v *Value) IsNullable(ctx NullabilityContext) bool { return v.IsNull }

func (v *Value) Description(mode DescriptionMode) string {
	if v.IsNull {
		return "NULL"
	}
	switch v.Type {
	case sql.String:
		return fmt.Sprintf("%q", v.Val)
	default:
		return fmt.Sprintf("%v", v.Val)
	}
}

func (v *Value) Hash() uint64 {
	return hashOf(struct {
		Kind   string
		Type   sql.DataType
		Val    interface{}
		IsNull bool
	}{"value", v.Type, v.Val, v.IsNull})
}

func (v *Value) ShallowEqual(other Expression, mapping sql.IdentityMapping) bool {
	o, ok := other.(*Value)
	if !ok {
		return false
	}
	return v.Type == o.Type && v.IsNull == o.IsNull && v.Val == o.Val
}

func (v *Value) DeepCopy(mapping sql.IdentityMapping) Expression {
	cp := *v
	return &cp
}

func (v *Value) Children() []Expression { return nil }

var _ Expression = (*Value)(nil)
