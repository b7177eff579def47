package sql

// Catalog is the read-only interface the LQP core consumes from its
// external collaborator (§6 "To the catalog"): for each table name, the
// ordered list of columns and the row count. It deliberately says nothing
// about storage, chunking, or physical encodings beyond the tag on each
// column.
type Catalog interface {
	// Table looks up a table by name. The second return value is false if
	// no such table is known to the catalog.
	Table(name string) (TableSpecification, bool)

	// TableNames lists every table the catalog knows about, in a stable
	// order.
	TableNames() []string
}

// StaticCatalog is an in-memory Catalog backed by a fixed slice of
// TableSpecification values, suitable for tests and for the calibration
// generator's CLI entry point. It is the LQP-scoped analogue of the
// teacher's in-memory table provider: a simple map-backed lookup with no
// storage engine behind it.
type StaticCatalog struct {
	order  []string
	tables map[string]TableSpecification
}

// NewStaticCatalog builds a StaticCatalog from a list of table
// specifications, preserving the given order for TableNames.
func NewStaticCatalog(tables ...TableSpecification) *StaticCatalog {
	c := &StaticCatalog{
		tables: make(map[string]TableSpecification, len(tables)),
	}
	for _, t := range tables {
		c.order = append(c.order, t.Name)
		c.tables[t.Name] = t
	}
	return c
}

func (c *StaticCatalog) Table(name string) (TableSpecification, bool) {
	t, ok := c.tables[name]
	return t, ok
}

func (c *StaticCatalog) TableNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

var _ Catalog = (*StaticCatalog)(nil)
