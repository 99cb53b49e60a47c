package tree

import "fmt"

// Node is a single entry in a category hierarchy: a label, the node's
// own amount, and an ordered sequence of exclusively owned children.
// Names are lookup keys but are not required to be unique across a
// tree. Amounts are not validated: NaN and infinite values are
// accepted and propagate through Total, matching IEEE-754 semantics.
type Node struct {
	Name   string
	Amount float64

	children []*Node
}

// New returns a leaf node with the given name and amount. Both are
// taken as-is; an empty name is permitted.
func New(name string, amount float64) *Node {
	return &Node{Name: name, Amount: amount}
}

// Attach appends child to the end of n's child sequence, transferring
// ownership of child to n. No cycle check is performed: attaching a
// node to itself or to one of its own descendants is a caller error,
// and neither Total nor Find terminates on a cyclic structure.
func (n *Node) Attach(child *Node) {
	n.children = append(n.children, child)
}

// Children returns the child sequence in insertion order. The returned
// slice is a view into the node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Total returns the recursive sum of the subtree rooted at n: the
// node's own amount first, then each child's total in insertion order.
// The summation order is deterministic but, as with any float
// accumulation, not associative-safe: two trees holding the same
// amounts in different shapes may differ in the last bits.
func (n *Node) Total() float64 {
	total := n.Amount
	for _, child := range n.children {
		total += child.Total()
	}
	return total
}

// Walk visits the subtree rooted at n in pre-order (node before
// children, children in insertion order), calling fn for each node.
// Traversal stops as soon as fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node named name in a pre-order walk of the
// subtree rooted at n. The returned node is a view into the existing
// tree, not a copy. A miss is reported as (nil, false); it is a normal
// outcome, not an error.
func (n *Node) Find(name string) (*Node, bool) {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found, found != nil
}

// String returns a compact one-line form of the node itself, without
// its children.
func (n *Node) String() string {
	return fmt.Sprintf("%s (%.2f)", n.Name, n.Amount)
}
