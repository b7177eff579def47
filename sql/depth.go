package sql

// MaxPlanDepth bounds the recursion depth of derived-property traversals
// (column_expressions, is_column_nullable, constraints) over the LQP. §5
// asks implementations to guard against unbounded recursion on deep plans;
// rather than relying on the platform stack limit, every recursive
// traversal in package plan threads a depth counter and fails loudly past
// this bound.
var MaxPlanDepth = 1024

// DepthExceeded reports whether depth has passed MaxPlanDepth, the
// condition every recursive derived-property function in package plan
// checks before recursing further.
func DepthExceeded(depth int) bool {
	return depth > MaxPlanDepth
}
