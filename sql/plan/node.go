// Package plan implements the Logical Query Plan: a shared DAG of
// relational-algebra nodes (spec §3, §4.2–§4.5, C3/C4/C5/C6). Nodes are
// built bottom-up and wired by setting inputs; every derived property
// (column_expressions, is_column_nullable, constraints) is recomputed from
// live inputs on every call rather than cached (spec §4.4).
package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// NodeKind is the closed tagged union of LQP node variants (spec §4.3).
type NodeKind uint8

const (
	StoredTableKind NodeKind = iota
	PredicateKind
	ProjectionKind
	JoinKind
	AggregateKind
	SortKind
	LimitKind
	UnionKind
	ValidateKind
)

var nodeKindNames = [...]string{
	StoredTableKind: "StoredTable",
	PredicateKind:   "Predicate",
	ProjectionKind:  "Projection",
	JoinKind:        "Join",
	AggregateKind:   "Aggregate",
	SortKind:        "Sort",
	LimitKind:       "Limit",
	UnionKind:       "Union",
	ValidateKind:    "Validate",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is the contract every LQP node variant satisfies (spec §4.2, C3).
type Node interface {
	// ID is this node's stable identity (spec §3 "Identity is by
	// pointer/handle").
	ID() sql.NodeID
	// Kind identifies which of the closed set of node variants this is.
	Kind() NodeKind

	// Left and Right return this node's inputs, or nil if unset.
	Left() Node
	Right() Node
	// SetLeftInput and SetRightInput wire this node's inputs. Per spec
	// §5, these must not be called again once the node has been handed to
	// a concurrent reader.
	SetLeftInput(Node)
	SetRightInput(Node)

	// NodeExpressions returns the expressions specific to this node kind:
	// predicates for Predicate/Join, the projection list for Projection,
	// group-by plus aggregate expressions for Aggregate, and so on.
	NodeExpressions() []expression.Expression

	// Description renders this node's bracketed label (spec §6).
	Description(mode expression.DescriptionMode) string

	// ShallowCopy produces a new node of the same kind with
	// NodeExpressions rewritten through mapping. Inputs are NOT
	// recursively copied; the caller wires them (spec §4.2).
	ShallowCopy(mapping sql.IdentityMapping) Node

	// ShallowEqual reports kind identity, node-expression equality up to
	// mapping, and equality of any kind-specific attributes (e.g. join
	// mode). It does not compare inputs.
	ShallowEqual(other Node, mapping sql.IdentityMapping) bool

	// ShallowHash mixes in kind and kind-specific scalars, not inputs.
	ShallowHash() uint64

	// ColumnExpressions derives this node's output columns from its
	// inputs and its own expressions. Never cached (spec §4.4).
	ColumnExpressions() ([]expression.Expression, error)

	// IsColumnNullable derives whether the column at index may be NULL.
	IsColumnNullable(index int) (bool, error)

	// Constraints derives the set of unique constraints holding at this
	// node. Pass-through nodes (Predicate, Sort, Limit, Validate) return
	// their input's constraints unchanged.
	Constraints() (ConstraintSet, error)

	// columnExpressionsDepth, isColumnNullableDepth, and constraintsDepth
	// are the depth-counted recursive cores ColumnExpressions,
	// IsColumnNullable, and Constraints delegate to at depth 0. Every
	// implementation checks sql.DepthExceeded(depth) before touching its
	// inputs and passes depth+1 to any input it recurses into, the
	// explicit depth counter spec §5 asks for to guard unbounded
	// recursion on deep plans.
	columnExpressionsDepth(depth int) ([]expression.Expression, error)
	isColumnNullableDepth(index, depth int) (bool, error)
	constraintsDepth(depth int) (ConstraintSet, error)

	String() string
}

// NodeBase holds the bookkeeping every node kind shares: identity and the
// up-to-two input slots. Concrete node types embed it and implement the
// kind-specific virtual methods themselves — a tagged union realised as a
// closed set of types rather than a runtime vtable, since Go already gives
// us that through interface satisfaction.
type NodeBase struct {
	id          sql.NodeID
	left, right Node
}

func newNodeBase() NodeBase {
	return NodeBase{id: sql.NewNodeID()}
}

func (b *NodeBase) ID() sql.NodeID { return b.id }

func (b *NodeBase) Left() Node  { return b.left }
func (b *NodeBase) Right() Node { return b.right }

func (b *NodeBase) SetLeftInput(n Node)  { b.left = n }
func (b *NodeBase) SetRightInput(n Node) { b.right = n }

// requireLeft returns ErrInvariantViolation if this node's left input is
// unset, the assertion spec §4.2 requires before computing a derived
// property.
func (b *NodeBase) requireLeft(op string) error {
	if b.left == nil {
		return sql.ErrInvariantViolation.New(op + ": left input is not set")
	}
	return nil
}

func (b *NodeBase) requireRight(op string) error {
	if b.right == nil {
		return sql.ErrInvariantViolation.New(op + ": right input is not set")
	}
	return nil
}

// depthGuard returns ErrInvariantViolation once depth has passed
// sql.MaxPlanDepth, the check every recursive derived-property
// implementation performs before it touches its inputs (spec §5 "guard
// against unbounded recursion on deep plans").
func depthGuard(op string, depth int) error {
	if sql.DepthExceeded(depth) {
		return sql.ErrInvariantViolation.New(op + ": exceeded max plan depth")
	}
	return nil
}

// childNullabilityContext resolves LQPColumn nullability for the
// expressions a node owns directly (its predicates, projection list, and
// so on), which in a well-formed plan reference only that node's own
// direct inputs. This is the interpretation this implementation adopts for
// "the nullability of its column references in the surrounding LQP" (spec
// §4.1): scoped to immediate inputs rather than an arbitrary ancestor walk,
// matching every worked example in spec §8. depth is the depth the owning
// node was itself entered at; resolving into a direct input continues the
// same depth count rather than restarting it at 0.
type childNullabilityContext struct {
	left, right Node
	depth       int
}

func (c childNullabilityContext) ColumnNullable(owner sql.NodeID, index int) bool {
	if c.left != nil && c.left.ID() == owner {
		n, _ := c.left.isColumnNullableDepth(index, c.depth+1)
		return n
	}
	if c.right != nil && c.right.ID() == owner {
		n, _ := c.right.isColumnNullableDepth(index, c.depth+1)
		return n
	}
	return false
}

func nullabilityContextFor(n Node, depth int) expression.NullabilityContext {
	return childNullabilityContext{left: n.Left(), right: n.Right(), depth: depth}
}

// compareExprLists reports whether a and b have the same length and every
// element is ShallowEqual under mapping, pairwise.
func compareExprLists(a, b []expression.Expression, mapping sql.IdentityMapping) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ShallowEqual(b[i], mapping) {
			return false
		}
	}
	return true
}

func deepCopyExprList(exprs []expression.Expression, mapping sql.IdentityMapping) []expression.Expression {
	out := make([]expression.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = e.DeepCopy(mapping)
	}
	return out
}

func hashExprList(exprs []expression.Expression) []uint64 {
	out := make([]uint64, len(exprs))
	for i, e := range exprs {
		out[i] = e.Hash()
	}
	return out
}
