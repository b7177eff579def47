package sql

// ColumnSpecification is the immutable-once-published column metadata
// record the LQP consumes from the catalog (§3 "Column metadata"). It names
// a column, its declared type and encoding, and whether it may hold NULL.
type ColumnSpecification struct {
	Name     string
	DataType DataType
	Encoding EncodingType
	Nullable bool
}

// TableSpecification is the catalog's view of one table: its ordered
// columns, row count, and the unique constraints declared over it (§6 "To
// the catalog"). Column order is significant — StoredTable.ColumnExpressions
// produces one LQPColumn per entry, in this order.
type TableSpecification struct {
	Name       string
	RowCount   uint64
	Columns    []ColumnSpecification
	Constraints []ColumnIndexSet
}

// ColumnIndexSet is a set of column indices into a TableSpecification's
// Columns slice, used to declare a unique constraint at the catalog level
// before it is lifted into an expression-keyed UniqueConstraint at the
// StoredTable node (see plan.UniqueConstraint).
type ColumnIndexSet map[int]struct{}

// NewColumnIndexSet builds a ColumnIndexSet from a list of column indices.
func NewColumnIndexSet(indices ...int) ColumnIndexSet {
	s := make(ColumnIndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// ColumnByName finds a column by name, case-sensitively, the way the
// catalog's column list is expected to already be normalised by the
// SQL-parsing layer upstream of this core.
func (t TableSpecification) ColumnByName(name string) (int, ColumnSpecification, bool) {
	for i, c := range t.Columns {
		if c.Name == name {
			return i, c, true
		}
	}
	return -1, ColumnSpecification{}, false
}

// ColumnsOfType returns the indices of every column whose DataType and
// Encoding match, used by the calibration generator's predicate functors to
// find a column to build a predicate over (§4.6, "fails (skips) if no
// column of the required (data_type, encoding) exists").
func (t TableSpecification) ColumnsOfType(dt DataType, enc EncodingType) []int {
	var out []int
	for i, c := range t.Columns {
		if c.DataType == dt && c.Encoding == enc {
			out = append(out, i)
		}
	}
	return out
}
