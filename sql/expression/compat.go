package expression

import "github.com/hyriseql/lqp/sql"

// Compatible implements the "fixed compatibility matrix" spec §3 invariant
// (ii) refers to without naming: Null is compatible with every type (a NULL
// literal may stand in for any operand), every numeric type is mutually
// compatible with every other numeric type, and String is only compatible
// with itself.
func Compatible(a, b sql.DataType) bool {
	if a == sql.Null || b == sql.Null {
		return true
	}
	if a.IsNumeric() && b.IsNumeric() {
		return true
	}
	return a == b
}

// RequireCompatible returns ErrIncompatibleTypes if a and b are not
// Compatible, the construction-time check spec §7 calls out as "fatal at
// construction time."
func RequireCompatible(a, b sql.DataType) error {
	if !Compatible(a, b) {
		return sql.ErrIncompatibleTypes.New(a, b)
	}
	return nil
}

// RequireString returns ErrIncompatibleTypes if t is neither String nor
// Null, the guard Like/NotLike operands must pass (spec §3 invariant (iii)).
func RequireString(t sql.DataType) error {
	if t == sql.String || t == sql.Null {
		return nil
	}
	return sql.ErrIncompatibleTypes.New(t, sql.String)
}
