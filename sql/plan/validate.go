package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// ValidateNode is a pass-through marker node (spec §4.3 "Sort / Limit /
// Validate"), used upstream of this core to check MVCC visibility of rows
// before they are returned. It carries no expressions of its own and
// forwards schema, nullability, and constraints verbatim.
type ValidateNode struct {
	NodeBase
}

// NewValidate wires a Validate marker over child.
func NewValidate(child Node) *ValidateNode {
	n := &ValidateNode{NodeBase: newNodeBase()}
	n.SetLeftInput(child)
	return n
}

func (n *ValidateNode) Kind() NodeKind { return ValidateKind }

func (n *ValidateNode) NodeExpressions() []expression.Expression { return nil }

func (n *ValidateNode) Description(mode expression.DescriptionMode) string {
	return describeNode(ValidateKind, mode, nil, nil)
}

func (n *ValidateNode) String() string { return n.Description(expression.Short) }

func (n *ValidateNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &ValidateNode{NodeBase: NodeBase{id: mapping.AllocateCopy(n.id)}}
}

func (n *ValidateNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	_, ok := other.(*ValidateNode)
	return ok
}

func (n *ValidateNode) ShallowHash() uint64 {
	return hashOf(struct{ Kind NodeKind }{ValidateKind})
}

func (n *ValidateNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *ValidateNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Validate.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Validate.column_expressions"); err != nil {
		return nil, err
	}
	return n.left.columnExpressionsDepth(depth + 1)
}

func (n *ValidateNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *ValidateNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Validate.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Validate.is_column_nullable"); err != nil {
		return false, err
	}
	return n.left.isColumnNullableDepth(index, depth+1)
}

func (n *ValidateNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *ValidateNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Validate.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Validate.constraints"); err != nil {
		return nil, err
	}
	return n.left.constraintsDepth(depth + 1)
}

var _ Node = (*ValidateNode)(nil)
