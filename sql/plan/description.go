package plan

import (
	"fmt"
	"strings"

	"github.com/hyriseql/lqp/sql/expression"
)

// describeNode renders the shared node label spec §6 specifies: "[Kind]" in
// Short mode, "[Kind] attr1: v1 [expr1] [expr2] ..." in Detailed mode. attrs
// are kind-specific key/value pairs (e.g. join mode); exprs are this node's
// NodeExpressions.
func describeNode(kind NodeKind, mode expression.DescriptionMode, attrs []string, exprs []expression.Expression) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(kind.String())
	b.WriteString("]")
	if mode == expression.Detailed {
		for _, a := range attrs {
			b.WriteString(" ")
			b.WriteString(a)
		}
		for _, e := range exprs {
			b.WriteString(" [")
			b.WriteString(e.Description(mode))
			b.WriteString("]")
		}
	}
	return b.String()
}

func attr(name string, value interface{}) string {
	return fmt.Sprintf("%s: %v", name, value)
}
