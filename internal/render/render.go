// Package render turns a category tree into the textual dumps shown by
// the fintree binary: a plain indented listing and a branch-glyph
// rendering for terminals. Both show every node's name and amount,
// recursively, in pre-order.
package render

import (
	"fmt"
	"strings"

	lgtree "github.com/charmbracelet/lipgloss/tree"

	"fintree/internal/tree"
)

// DefaultPrecision is the number of decimal places used for amounts
// when no precision is configured.
const DefaultPrecision = 2

func label(n *tree.Node, precision int) string {
	return fmt.Sprintf("%s (%.*f)", n.Name, precision, n.Amount)
}

// Plain renders the subtree rooted at n as an indented listing, one
// node per line, children indented two spaces under their parent.
// The output is deterministic and carries no terminal styling.
func Plain(n *tree.Node, precision int) string {
	var b strings.Builder
	plain(&b, n, precision, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func plain(b *strings.Builder, n *tree.Node, precision, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(label(n, precision))
	b.WriteByte('\n')
	for _, child := range n.Children() {
		plain(b, child, precision, depth+1)
	}
}

// Pretty renders the subtree rooted at n with branch glyphs, suitable
// for display on a terminal.
func Pretty(n *tree.Node, precision int) string {
	return build(n, precision).String()
}

func build(n *tree.Node, precision int) *lgtree.Tree {
	t := lgtree.Root(label(n, precision))
	for _, child := range n.Children() {
		if len(child.Children()) == 0 {
			t.Child(label(child, precision))
		} else {
			t.Child(build(child, precision))
		}
	}
	return t
}
