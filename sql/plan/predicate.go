package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// PredicateNode filters rows of its input by a boolean expression (spec
// §4.3 "Predicate"). It never changes the schema: column_expressions,
// nullability, and constraints all pass through from the input unchanged —
// filtering can only shrink a relation, never widen or duplicate it.
type PredicateNode struct {
	NodeBase
	Filter expression.Expression
}

// NewPredicate wires a filter expression over child.
func NewPredicate(filter expression.Expression, child Node) *PredicateNode {
	n := &PredicateNode{NodeBase: newNodeBase(), Filter: filter}
	n.SetLeftInput(child)
	return n
}

func (n *PredicateNode) Kind() NodeKind { return PredicateKind }

func (n *PredicateNode) NodeExpressions() []expression.Expression {
	return []expression.Expression{n.Filter}
}

func (n *PredicateNode) Description(mode expression.DescriptionMode) string {
	return describeNode(PredicateKind, mode, nil, n.NodeExpressions())
}

func (n *PredicateNode) String() string { return n.Description(expression.Short) }

func (n *PredicateNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &PredicateNode{
		NodeBase: NodeBase{id: mapping.AllocateCopy(n.id)},
		Filter:   n.Filter.DeepCopy(mapping),
	}
}

func (n *PredicateNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*PredicateNode)
	if !ok {
		return false
	}
	return n.Filter.ShallowEqual(o.Filter, mapping)
}

func (n *PredicateNode) ShallowHash() uint64 {
	return hashOf(struct {
		Kind   NodeKind
		Filter uint64
	}{PredicateKind, n.Filter.Hash()})
}

func (n *PredicateNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *PredicateNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Predicate.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Predicate.column_expressions"); err != nil {
		return nil, err
	}
	return n.left.columnExpressionsDepth(depth + 1)
}

func (n *PredicateNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *PredicateNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Predicate.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Predicate.is_column_nullable"); err != nil {
		return false, err
	}
	return n.left.isColumnNullableDepth(index, depth+1)
}

func (n *PredicateNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *PredicateNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Predicate.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Predicate.constraints"); err != nil {
		return nil, err
	}
	return n.left.constraintsDepth(depth + 1)
}

var _ Node = (*PredicateNode)(nil)
