package plan

import (
	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// JoinMode is the closed set of join semantics (spec §4.5).
type JoinMode uint8

const (
	Inner JoinMode = iota
	Left
	Right
	FullOuter
	Cross
	Semi
	AntiNullAsTrue
	AntiNullAsFalse
)

var joinModeNames = [...]string{
	Inner:           "Inner",
	Left:            "Left",
	Right:           "Right",
	FullOuter:       "FullOuter",
	Cross:           "Cross",
	Semi:            "Semi",
	AntiNullAsTrue:  "AntiNullAsTrue",
	AntiNullAsFalse: "AntiNullAsFalse",
}

func (m JoinMode) String() string {
	if int(m) < len(joinModeNames) {
		return joinModeNames[m]
	}
	return "Unknown"
}

// IsSemiOrAnti reports whether m produces only left-side output columns
// (spec §4.5 "Semi/Anti* → left inputs columns only").
func (m JoinMode) IsSemiOrAnti() bool {
	return m == Semi || m == AntiNullAsTrue || m == AntiNullAsFalse
}

// JoinNode combines rows of two inputs under a JoinMode (spec §4.5).
type JoinNode struct {
	NodeBase
	Mode       JoinMode
	Predicates []expression.Expression
}

// NewJoin constructs a join node, enforcing spec §4.5's edge rules:
// constructing a non-cross join without predicates, or a cross join with
// predicates, fails with ErrInvariantViolation.
func NewJoin(mode JoinMode, left, right Node, predicates []expression.Expression) (*JoinNode, error) {
	if mode == Cross && len(predicates) != 0 {
		return nil, sql.ErrInvariantViolation.New("cross join must not carry predicates")
	}
	if mode != Cross && len(predicates) == 0 {
		return nil, sql.ErrInvariantViolation.New("non-cross join must carry at least one predicate")
	}
	n := &JoinNode{NodeBase: newNodeBase(), Mode: mode, Predicates: predicates}
	n.SetLeftInput(left)
	n.SetRightInput(right)
	return n, nil
}

// MustNewJoin is NewJoin but panics on error, for fixture construction at
// call sites that already know the shape is valid.
func MustNewJoin(mode JoinMode, left, right Node, predicates []expression.Expression) *JoinNode {
	n, err := NewJoin(mode, left, right, predicates)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *JoinNode) Kind() NodeKind { return JoinKind }

func (n *JoinNode) NodeExpressions() []expression.Expression { return n.Predicates }

func (n *JoinNode) Description(mode expression.DescriptionMode) string {
	return describeNode(JoinKind, mode, []string{attr("mode", n.Mode)}, n.Predicates)
}

func (n *JoinNode) String() string { return n.Description(expression.Short) }

func (n *JoinNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &JoinNode{
		NodeBase:   NodeBase{id: mapping.AllocateCopy(n.id)},
		Mode:       n.Mode,
		Predicates: deepCopyExprList(n.Predicates, mapping),
	}
}

// ShallowEqual requires identical join mode and expression-equal predicate
// lists under mapping (spec §4.5).
func (n *JoinNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*JoinNode)
	if !ok || n.Mode != o.Mode {
		return false
	}
	return compareExprLists(n.Predicates, o.Predicates, mapping)
}

// ShallowHash mixes in the join mode (spec §4.5).
func (n *JoinNode) ShallowHash() uint64 {
	return hashOf(struct {
		Kind       NodeKind
		Mode       JoinMode
		Predicates []uint64
	}{JoinKind, n.Mode, hashExprList(n.Predicates)})
}

func (n *JoinNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *JoinNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("Join.column_expressions", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Join.column_expressions"); err != nil {
		return nil, err
	}
	leftCols, err := n.left.columnExpressionsDepth(depth + 1)
	if err != nil {
		return nil, err
	}
	if n.Mode.IsSemiOrAnti() {
		return leftCols, nil
	}
	if err := n.requireRight("Join.column_expressions"); err != nil {
		return nil, err
	}
	rightCols, err := n.right.columnExpressionsDepth(depth + 1)
	if err != nil {
		return nil, err
	}
	out := make([]expression.Expression, 0, len(leftCols)+len(rightCols))
	out = append(out, leftCols...)
	out = append(out, rightCols...)
	return out, nil
}

// IsColumnNullable implements spec §4.5's nullability table: Left outer
// makes right-side columns nullable, Right outer makes left-side columns
// nullable, FullOuter makes both sides nullable, and every other mode
// passes per-side input nullability through unchanged.
func (n *JoinNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *JoinNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("Join.is_column_nullable", depth); err != nil {
		return false, err
	}
	if err := n.requireLeft("Join.is_column_nullable"); err != nil {
		return false, err
	}
	leftCols, err := n.left.columnExpressionsDepth(depth + 1)
	if err != nil {
		return false, err
	}
	if n.Mode.IsSemiOrAnti() {
		if index < 0 || index >= len(leftCols) {
			return false, sql.ErrInvariantViolation.New("column index out of range")
		}
		return n.left.isColumnNullableDepth(index, depth+1)
	}
	if err := n.requireRight("Join.is_column_nullable"); err != nil {
		return false, err
	}
	if index < len(leftCols) {
		leftNull, err := n.left.isColumnNullableDepth(index, depth+1)
		if err != nil {
			return false, err
		}
		if n.Mode == Right || n.Mode == FullOuter {
			return true, nil
		}
		return leftNull, nil
	}
	rightIndex := index - len(leftCols)
	rightNull, err := n.right.isColumnNullableDepth(rightIndex, depth+1)
	if err != nil {
		return false, err
	}
	if n.Mode == Left || n.Mode == FullOuter {
		return true, nil
	}
	return rightNull, nil
}

// singleEquiJoinKey detects whether this join's predicate list is exactly
// one Equals BinaryPredicate between a bare LQPColumn owned by the left
// input and a bare LQPColumn owned by the right input (in either operand
// order), the only shape spec §4.5 propagates constraints for. It returns
// the columns canonicalised as (leftColumn, rightColumn).
func (n *JoinNode) singleEquiJoinKey() (leftCol, rightCol *expression.LQPColumn, ok bool) {
	if len(n.Predicates) != 1 {
		return nil, nil, false
	}
	bp, isBinary := n.Predicates[0].(*expression.BinaryPredicate)
	if !isBinary || !bp.Condition.IsEquals() {
		return nil, nil, false
	}
	lc, lok := bp.Left.(*expression.LQPColumn)
	rc, rok := bp.Right.(*expression.LQPColumn)
	if !lok || !rok {
		return nil, nil, false
	}
	leftID, rightID := n.left.ID(), n.right.ID()
	if lc.Node == leftID && rc.Node == rightID {
		return lc, rc, true
	}
	if lc.Node == rightID && rc.Node == leftID {
		return rc, lc, true
	}
	return nil, nil, false
}

// Constraints implements the propagation table of spec §4.5. Every shape
// outside the single-equi-join-predicate case returns the empty set, per
// the "when in doubt, drop constraints" policy of spec §7.
func (n *JoinNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *JoinNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("Join.constraints", depth); err != nil {
		return nil, err
	}
	if err := n.requireLeft("Join.constraints"); err != nil {
		return nil, err
	}
	if n.Mode == Cross {
		return nil, nil
	}
	if err := n.requireRight("Join.constraints"); err != nil {
		return nil, err
	}

	leftConstraints, err := n.left.constraintsDepth(depth + 1)
	if err != nil {
		return nil, err
	}

	leftCol, rightCol, ok := n.singleEquiJoinKey()
	if !ok {
		// Multi-predicate or non-equi shape: conservatively drop (spec §8
		// scenario 6, "Multi-predicate guard").
		return nil, nil
	}

	if n.Mode.IsSemiOrAnti() {
		if n.Mode == Semi {
			return leftConstraints, nil
		}
		// AntiNullAsTrue / AntiNullAsFalse: marked "?" in the source this
		// core is ported from (spec §9 open question). Preserved as
		// conservatively empty; flagged here for the optimiser team rather
		// than guessed at.
		return nil, nil
	}

	rightConstraints, err := n.right.constraintsDepth(depth + 1)
	if err != nil {
		return nil, err
	}

	leftUnique := leftConstraints.Contains(NewUniqueConstraint(leftCol), nil)
	rightUnique := rightConstraints.Contains(NewUniqueConstraint(rightCol), nil)

	switch n.Mode {
	case Inner:
		switch {
		case leftUnique && rightUnique:
			return leftConstraints.Union(rightConstraints), nil
		case leftUnique:
			return rightConstraints, nil
		case rightUnique:
			return leftConstraints, nil
		default:
			return nil, nil
		}
	case Left, Right, FullOuter:
		// TODO: forward the preserved side's constraints here (spec §9:
		// "Left/Right outer joins carry a TODO to forward the preserved
		// side's constraints; the current behaviour is to return empty.").
		return nil, nil
	default:
		return nil, nil
	}
}

var _ Node = (*JoinNode)(nil)
