package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// UnionNode is UNION ALL over two inputs with the same column count (spec
// §4.3 "Union (All)"). The output column list is the positional union of
// inputs (the left input's column expressions, by position); nullability
// of position i is the OR of both inputs' nullability at i; constraints
// are dropped, since concatenating two relations can introduce duplicate
// keys.
type UnionNode struct {
	NodeBase
}

// NewUnion wires a UNION ALL of left and right.
func NewUnion(left, right Node) *UnionNode {
	n := &UnionNode{NodeBase: newNodeBase()}
	n.SetLeftInput(left)
	n.SetRightInput(right)
	return n
}

func (n *UnionNode) Kind() NodeKind { return UnionKind }

func (n *UnionNode) NodeExpressions() []expression.Expression { return nil }

func (n *UnionNode) Description(mode expression.DescriptionMode) string {
	return describeNode(UnionKind, mode, nil, nil)
}

func (n *UnionNode) String() string { return n.Description(expression.Short) }

func (n *UnionNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &UnionNode{NodeBase: NodeBase{id: mapping.AllocateCopy(n.id)}}
}

func (n *UnionNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	_, ok := other.(*UnionNode)
	return ok
}

func (n *UnionNode) ShallowHash() uint64 {
	return hashOf(struct{ Kind NodeKind }{UnionKind})
}

func (n *UnionNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *UnionNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Union.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Union.column_expressions"); err != nil {
		return nil, err
	}
	if err := n.requireRight("Union.column_expressions"); err != nil {
		return nil, err
	}
	return n.left.columnExpressionsDepth(depth + 1)
}

func (n *UnionNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *UnionNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Union.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Union.is_column_nullable"); err != nil {
		return false, err
	}
	if err := n.requireRight("Union.is_column_nullable"); err != nil {
		return false, err
	}
	leftNull, err := n.left.isColumnNullableDepth(index, depth+1)
	if err != nil {
		return false, err
	}
	rightNull, err := n.right.isColumnNullableDepth(index, depth+1)
	if err != nil {
		return false, err
	}
	return leftNull || rightNull, nil
}

func (n *UnionNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *UnionNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Union.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Union.constraints"); err != nil {
		return nil, err
	}
	if err := n.requireRight("Union.constraints"); err != nil {
		return nil, err
	}
	return nil, nil
}

var _ Node = (*UnionNode)(nil)
