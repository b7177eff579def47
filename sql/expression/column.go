package expression

import (
	"fmt"

	"github.com/hyriseql/lqp/sql"
)

// LQPColumn is a back-reference to a specific column of a specific LQP
// node, spec §3 "LQPColumn: ... Identity is (owning node identity, column
// index)." It is a weak reference, not ownership (§9): during structural
// copy the owning node identity is rewritten through the supplied mapping,
// never the column index.
type LQPColumn struct {
	// Node is the identity of the LQP node that defines this column.
	Node sql.NodeID
	// Index is the position of the column among that node's
	// column_expressions.
	Index int
	// Name and Type are cached for description/type-checking purposes;
	// they mirror what Node.ColumnExpressions()[Index] would report and
	// must stay in sync with the referenced node's schema. This avoids
	// requiring every expression-tree consumer to carry the whole plan
	// just to describe a column reference.
	Name string
	Type sql.DataType
}

// NewLQPColumn constructs a column reference to the column at index of the
// node identified by owner.
func NewLQPColumn(owner sql.NodeID, index int, name string, dt sql.DataType) *LQPColumn {
	return &LQPColumn{Node: owner, Index: index, Name: name, Type: dt}
}

func (c *LQPColumn) DataType() sql.DataType { return c.Type }

func (c *LQPColumn) IsNullable(ctx NullabilityContext) bool {
	if ctx == nil {
		return false
	}
	return ctx.ColumnNullable(c.Node, c.Index)
}

func (c *LQPColumn) Description(mode DescriptionMode) string {
	if mode == Detailed {
		return fmt.Sprintf("%s [node=%s, col=%d]", c.Name, c.Node, c.Index)
	}
	return c.Name
}

func (c *LQPColumn) Hash() uint64 {
	return hashOf(struct {
		Kind  string
		Node  sql.NodeID
		Index int
	}{"lqp_column", c.Node, c.Index})
}

func (c *LQPColumn) ShallowEqual(other Expression, mapping sql.IdentityMapping) bool {
	o, ok := other.(*LQPColumn)
	if !ok {
		return false
	}
	return mapping.Resolve(c.Node) == mapping.Resolve(o.Node) && c.Index == o.Index
}

func (c *LQPColumn) DeepCopy(mapping sql.IdentityMapping) Expression {
	cp := *c
	cp.Node = mapping.Resolve(c.Node)
	return &cp
}

func (c *LQPColumn) Children() []Expression { return nil }

var _ Expression = (*LQPColumn)(nil)
