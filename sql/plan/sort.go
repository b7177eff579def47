package plan

import (
	"fmt"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// SortDirection is Ascending or Descending for a single sort key.
type SortDirection uint8

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey pairs a column expression with its sort direction.
type SortKey struct {
	Column    expression.Expression
	Direction SortDirection
}

// SortNode orders its input by a list of keys (spec §4.3 "Sort / Limit /
// Validate: pass-through schema, nullability, and constraints").
type SortNode struct {
	NodeBase
	Keys []SortKey
}

// NewSort wires a sort over child.
func NewSort(keys []SortKey, child Node) *SortNode {
	n := &SortNode{NodeBase: newNodeBase(), Keys: keys}
	n.SetLeftInput(child)
	return n
}

func (n *SortNode) Kind() NodeKind { return SortKind }

func (n *SortNode) NodeExpressions() []expression.Expression {
	out := make([]expression.Expression, len(n.Keys))
	for i, k := range n.Keys {
		out[i] = k.Column
	}
	return out
}

func (n *SortNode) Description(mode expression.DescriptionMode) string {
	attrs := make([]string, len(n.Keys))
	for i, k := range n.Keys {
		attrs[i] = fmt.Sprintf("%s %s", k.Column.Description(mode), k.Direction)
	}
	return describeNode(SortKind, mode, attrs, nil)
}

func (n *SortNode) String() string { return n.Description(expression.Short) }

func (n *SortNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	keys := make([]SortKey, len(n.Keys))
	for i, k := range n.Keys {
		keys[i] = SortKey{Column: k.Column.DeepCopy(mapping), Direction: k.Direction}
	}
	return &SortNode{NodeBase: NodeBase{id: mapping.AllocateCopy(n.id)}, Keys: keys}
}

func (n *SortNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*SortNode)
	if !ok || len(n.Keys) != len(o.Keys) {
		return false
	}
	for i := range n.Keys {
		if n.Keys[i].Direction != o.Keys[i].Direction {
			return false
		}
		if !n.Keys[i].Column.ShallowEqual(o.Keys[i].Column, mapping) {
			return false
		}
	}
	return true
}

func (n *SortNode) ShallowHash() uint64 {
	dirs := make([]SortDirection, len(n.Keys))
	for i, k := range n.Keys {
		dirs[i] = k.Direction
	}
	return hashOf(struct {
		Kind  NodeKind
		Cols  []uint64
		Dirs  []SortDirection
	}{SortKind, hashExprList(n.NodeExpressions()), dirs})
}

func (n *SortNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *SortNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Sort.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Sort.column_expressions"); err != nil {
		return nil, err
	}
	return n.left.columnExpressionsDepth(depth + 1)
}

func (n *SortNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *SortNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Sort.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Sort.is_column_nullable"); err != nil {
		return false, err
	}
	return n.left.isColumnNullableDepth(index, depth+1)
}

func (n *SortNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *SortNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Sort.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Sort.constraints"); err != nil {
		return nil, err
	}
	return n.left.constraintsDepth(depth + 1)
}

var _ Node = (*SortNode)(nil)
