// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strings"
)

// Format returns a textual description of a node tree, one node per
// line, children indented below their parent. Bounds are relative to
// the parent, as stored in the nodes.
//
// For example, a column of two 10x10 children spaced by 5 formats as
//
//	(0,0)-(10,25)
//	  (0,0)-(10,10)
//	  (0,15)-(10,25)
func Format(n Node) string {
	var b strings.Builder
	format(&b, n, 0)
	return b.String()
}

func format(b *strings.Builder, n Node, depth int) {
	fmt.Fprintf(b, "%s%v\n", strings.Repeat("  ", depth), n.bounds)
	for _, c := range n.children {
		format(b, c, depth+1)
	}
}
