package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// ProjectionNode computes a new column list from its input (spec §4.3
// "Projection"). Output columns are exactly the projection list;
// nullability of output column i is the nullability of the i-th projection
// expression. A declared input-level unique constraint is forwarded only
// if every one of its columns survives verbatim (as a bare LQPColumn) in
// the projection list.
type ProjectionNode struct {
	NodeBase
	Projections []expression.Expression
}

// NewProjection wires a projection list over child.
func NewProjection(projections []expression.Expression, child Node) *ProjectionNode {
	n := &ProjectionNode{NodeBase: newNodeBase(), Projections: projections}
	n.SetLeftInput(child)
	return n
}

func (n *ProjectionNode) Kind() NodeKind { return ProjectionKind }

func (n *ProjectionNode) NodeExpressions() []expression.Expression { return n.Projections }

func (n *ProjectionNode) Description(mode expression.DescriptionMode) string {
	return describeNode(ProjectionKind, mode, nil, n.Projections)
}

func (n *ProjectionNode) String() string { return n.Description(expression.Short) }

func (n *ProjectionNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &ProjectionNode{
		NodeBase:    NodeBase{id: mapping.AllocateCopy(n.id)},
		Projections: deepCopyExprList(n.Projections, mapping),
	}
}

func (n *ProjectionNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*ProjectionNode)
	if !ok {
		return false
	}
	return compareExprLists(n.Projections, o.Projections, mapping)
}

func (n *ProjectionNode) ShallowHash() uint64 {
	return hashOf(struct {
		Kind        NodeKind
		Projections []uint64
	}{ProjectionKind, hashExprList(n.Projections)})
}

func (n *ProjectionNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *ProjectionNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Projection.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Projection.column_expressions"); err != nil {
		return nil, err
	}
	return n.Projections, nil
}

func (n *ProjectionNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *ProjectionNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Projection.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Projection.is_column_nullable"); err != nil {
		return false, err
	}
	if index < 0 || index >= len(n.Projections) {
		return false, sql.ErrInvariantViolation.New("column index out of range")
	}
	return n.Projections[index].IsNullable(nullabilityContextFor(n, depth)), nil
}

// Constraints forwards every unique constraint of the input whose columns
// all appear, as bare LQPColumns, in the projection list (spec §4.3,
// §8 "Projection(t, cols).constraints() forwards every unique constraint
// of t whose columns are all present as bare LQPColumns in cols").
func (n *ProjectionNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *ProjectionNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Projection.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Projection.constraints"); err != nil {
		return nil, err
	}
	inputConstraints, err := n.left.constraintsDepth(depth + 1)
	if err != nil {
		return nil, err
	}
	return inputConstraints.Filter(func(u UniqueConstraint) bool {
		return u.SubsetOf(n.Projections, nil)
	}), nil
}

var _ Node = (*ProjectionNode)(nil)
