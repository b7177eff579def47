package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// LimitNode caps the number of rows its input produces (spec §4.3 "Sort /
// Limit / Validate: pass-through schema, nullability, and constraints").
type LimitNode struct {
	NodeBase
	RowCount uint64
}

// NewLimit wires a limit over child.
func NewLimit(rowCount uint64, child Node) *LimitNode {
	n := &LimitNode{NodeBase: newNodeBase(), RowCount: rowCount}
	n.SetLeftInput(child)
	return n
}

func (n *LimitNode) Kind() NodeKind { return LimitKind }

func (n *LimitNode) NodeExpressions() []expression.Expression { return nil }

func (n *LimitNode) Description(mode expression.DescriptionMode) string {
	return describeNode(LimitKind, mode, []string{attr("rows", n.RowCount)}, nil)
}

func (n *LimitNode) String() string { return n.Description(expression.Short) }

func (n *LimitNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &LimitNode{NodeBase: NodeBase{id: mapping.AllocateCopy(n.id)}, RowCount: n.RowCount}
}

func (n *LimitNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*LimitNode)
	return ok && n.RowCount == o.RowCount
}

func (n *LimitNode) ShallowHash() uint64 {
	return hashOf(struct {
		Kind     NodeKind
		RowCount uint64
	}{LimitKind, n.RowCount})
}

func (n *LimitNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *LimitNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Limit.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Limit.column_expressions"); err != nil {
		return nil, err
	}
	return n.left.columnExpressionsDepth(depth + 1)
}

func (n *LimitNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *LimitNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Limit.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Limit.is_column_nullable"); err != nil {
		return false, err
	}
	return n.left.isColumnNullableDepth(index, depth+1)
}

func (n *LimitNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *LimitNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Limit.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Limit.constraints"); err != nil {
		return nil, err
	}
	return n.left.constraintsDepth(depth + 1)
}

var _ Node = (*LimitNode)(nil)
