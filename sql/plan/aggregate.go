package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// AggregateNode groups its input by GroupBy and computes Aggregates per
// group (spec §4.3 "Aggregate"). Output columns are the group-by columns
// followed by the aggregate expressions; the group-by columns form a new
// unique constraint on the output (one row per distinct group-by tuple).
type AggregateNode struct {
	NodeBase
	GroupBy    []expression.Expression
	Aggregates []*expression.AggregateExpr
}

// NewAggregate wires a group-by/aggregate computation over child.
func NewAggregate(groupBy []expression.Expression, aggregates []*expression.AggregateExpr, child Node) *AggregateNode {
	n := &AggregateNode{NodeBase: newNodeBase(), GroupBy: groupBy, Aggregates: aggregates}
	n.SetLeftInput(child)
	return n
}

func (n *AggregateNode) Kind() NodeKind { return AggregateKind }

func (n *AggregateNode) NodeExpressions() []expression.Expression {
	out := make([]expression.Expression, 0, len(n.GroupBy)+len(n.Aggregates))
	out = append(out, n.GroupBy...)
	for _, a := range n.Aggregates {
		out = append(out, a)
	}
	return out
}

func (n *AggregateNode) Description(mode expression.DescriptionMode) string {
	return describeNode(AggregateKind, mode, nil, n.NodeExpressions())
}

func (n *AggregateNode) String() string { return n.Description(expression.Short) }

func (n *AggregateNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	groupBy := deepCopyExprList(n.GroupBy, mapping)
	aggs := make([]*expression.AggregateExpr, len(n.Aggregates))
	for i, a := range n.Aggregates {
		aggs[i] = a.DeepCopy(mapping).(*expression.AggregateExpr)
	}
	return &AggregateNode{NodeBase: NodeBase{id: mapping.AllocateCopy(n.id)}, GroupBy: groupBy, Aggregates: aggs}
}

func (n *AggregateNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*AggregateNode)
	if !ok {
		return false
	}
	return compareExprLists(n.NodeExpressions(), o.NodeExpressions(), mapping)
}

func (n *AggregateNode) ShallowHash() uint64 {
	return hashOf(struct {
		Kind  NodeKind
		Exprs []uint64
	}{AggregateKind, hashExprList(n.NodeExpressions())})
}

func (n *AggregateNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *AggregateNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Aggregate.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Aggregate.column_expressions"); err != nil {
		return nil, err
	}
	return n.NodeExpressions(), nil
}

func (n *AggregateNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *AggregateNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Aggregate.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Aggregate.is_column_nullable"); err != nil {
		return false, err
	}
	cols := n.NodeExpressions()
	if index < 0 || index >= len(cols) {
		return false, sql.ErrInvariantViolation.New("column index out of range")
	}
	return cols[index].IsNullable(nullabilityContextFor(n, depth)), nil
}

// Constraints returns a single unique constraint over the group-by
// columns, plus the input's unique constraints that are a subset of the
// group-by list (a constraint narrower than or equal to the grouping key
// remains a key of the grouped output, since GROUP BY never merges rows
// that already differed on it).
func (n *AggregateNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *AggregateNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Aggregate.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Aggregate.constraints"); err != nil {
		return nil, err
	}
	if len(n.GroupBy) == 0 {
		return nil, nil
	}
	out := ConstraintSet{NewUniqueConstraint(n.GroupBy...)}
	inputConstraints, err := n.left.constraintsDepth(depth + 1)
	if err != nil {
		return nil, err
	}
	forwarded := inputConstraints.Filter(func(u UniqueConstraint) bool {
		return u.SubsetOf(n.GroupBy, nil)
	})
	return out.Union(forwarded), nil
}

var _ Node = (*AggregateNode)(nil)
