package plan

import (
	"sort"

	"github.com/hyriseql/lqp/sql"
	"github.com/hyriseql/lqp/sql/expression"
)

// StoredTableNode is a leaf node referring to a catalog table (spec §4.3
// "StoredTable"). Its columns, nullability, and declared unique
// constraints pass through verbatim from the catalog.
type StoredTableNode struct {
	NodeBase
	TableName string
	table     sql.TableSpecification
	// IsIndexScan tags this leaf as the index-scan alternative of a plan
	// (spec §4.6 "index-scan variant as a side-by-side alternative plan").
	// It is a logical hint only; no physical index machinery backs it,
	// since storage/indexing is out of this core's scope (spec §1).
	IsIndexScan bool
}

// NewStoredTable constructs a leaf node over the given catalog table.
func NewStoredTable(table sql.TableSpecification) *StoredTableNode {
	return &StoredTableNode{NodeBase: newNodeBase(), TableName: table.Name, table: table}
}

// Table returns the catalog specification backing this leaf.
func (n *StoredTableNode) Table() sql.TableSpecification { return n.table }

func (n *StoredTableNode) Kind() NodeKind { return StoredTableKind }

func (n *StoredTableNode) NodeExpressions() []expression.Expression { return nil }

func (n *StoredTableNode) Description(mode expression.DescriptionMode) string {
	attrs := []string{attr("table", n.TableName)}
	if n.IsIndexScan {
		attrs = append(attrs, "index_scan: true")
	}
	return describeNode(StoredTableKind, mode, attrs, nil)
}

func (n *StoredTableNode) String() string { return n.Description(expression.Short) }

func (n *StoredTableNode) ShallowCopy(mapping sql.IdentityMapping) Node {
	return &StoredTableNode{
		NodeBase:    NodeBase{id: mapping.AllocateCopy(n.id)},
		TableName:   n.TableName,
		table:       n.table,
		IsIndexScan: n.IsIndexScan,
	}
}

func (n *StoredTableNode) ShallowEqual(other Node, mapping sql.IdentityMapping) bool {
	o, ok := other.(*StoredTableNode)
	if !ok {
		return false
	}
	return n.TableName == o.TableName && n.IsIndexScan == o.IsIndexScan
}

func (n *StoredTableNode) ShallowHash() uint64 {
	return hashOf(struct {
		Kind      NodeKind
		TableName string
		IndexScan bool
	}{StoredTableKind, n.TableName, n.IsIndexScan})
}

func (n *StoredTableNode) ColumnExpressions() ([]expression.Expression, error) {
	return n.columnExpressionsDepth(0)
}

func (n *StoredTableNode) columnExpressionsDepth(depth int) ([]expression.Expression, error) {
	if err := depthGuard("StoredTable.ColumnExpressions", depth); err != nil {
		return nil, err
	}
	out := make([]expression.Expression, len(n.table.Columns))
	for i, c := range n.table.Columns {
		out[i] = expression.NewLQPColumn(n.id, i, c.Name, c.DataType)
	}
	return out, nil
}

func (n *StoredTableNode) IsColumnNullable(index int) (bool, error) {
	return n.isColumnNullableDepth(index, 0)
}

func (n *StoredTableNode) isColumnNullableDepth(index, depth int) (bool, error) {
	if err := depthGuard("StoredTable.IsColumnNullable", depth); err != nil {
		return false, err
	}
	if index < 0 || index >= len(n.table.Columns) {
		return false, sql.ErrInvariantViolation.New("column index out of range")
	}
	return n.table.Columns[index].Nullable, nil
}

func (n *StoredTableNode) Constraints() (ConstraintSet, error) {
	return n.constraintsDepth(0)
}

func (n *StoredTableNode) constraintsDepth(depth int) (ConstraintSet, error) {
	if err := depthGuard("StoredTable.Constraints", depth); err != nil {
		return nil, err
	}
	cols, _ := n.columnExpressionsDepth(depth + 1)
	var out ConstraintSet
	for _, idxSet := range n.table.Constraints {
		indices := make([]int, 0, len(idxSet))
		for idx := range idxSet {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		var columns []expression.Expression
		for _, idx := range indices {
			if idx < 0 || idx >= len(cols) {
				continue
			}
			columns = append(columns, cols[idx])
		}
		out = append(out, NewUniqueConstraint(columns...))
	}
	return out, nil
}

var _ Node = (*StoredTableNode)(nil)
