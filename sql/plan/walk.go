package plan

import "github.com/hyriseql/lqp/sql"

// Inspect walks the DAG reachable from n via Left/Right in pre-order,
// calling visit on each node. It does not deduplicate shared sub-plans: a
// node reachable through two parents is visited once per edge, the cheap
// behavior spec §4.4's "no caching" design deliberately accepts. Returning
// false from visit stops the walk from descending into that node's inputs,
// but sibling branches are still visited.
func Inspect(n Node, visit func(Node) bool) {
	inspectDepth(n, visit, 0)
}

// inspectDepth is Inspect's depth-counted core. Past sql.MaxPlanDepth it
// stops descending rather than visiting further, since Inspect's signature
// has no error-return channel to surface ErrInvariantViolation through.
func inspectDepth(n Node, visit func(Node) bool, depth int) {
	if n == nil || sql.DepthExceeded(depth) {
		return
	}
	if !visit(n) {
		return
	}
	inspectDepth(n.Left(), visit, depth+1)
	inspectDepth(n.Right(), visit, depth+1)
}

// Walk is Inspect without the early-stop signal, for callers that always
// want a full traversal.
func Walk(n Node, visit func(Node)) {
	Inspect(n, func(nd Node) bool {
		visit(nd)
		return true
	})
}

// CountNodes counts how many node visits a full walk from n performs
// (counting a shared sub-plan once per reaching edge, matching Inspect).
func CountNodes(n Node) int {
	count := 0
	Walk(n, func(Node) { count++ })
	return count
}

// Reachable reports whether target is reachable from root via Left/Right,
// the check LQPColumn resolution invariant (i) relies on (spec §3 "every
// LQPColumn must point at a node reachable from the current root").
func Reachable(root Node, target sql.NodeID) bool {
	found := false
	Inspect(root, func(n Node) bool {
		if found {
			return false
		}
		if n.ID() == target {
			found = true
			return false
		}
		return true
	})
	return found
}
