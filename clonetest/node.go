package clonetest

import "github.com/zoobzio/dolly"

// Node is a tree node with a back-reference to its parent.
//
// Children are the canonical direction: cloning walks down through Children
// and re-wires each cloned child's Parent onto its cloned parent. Parent is
// never followed, so a cloned subtree root is detached (Parent is nil).
type Node struct {
	ID       int
	Name     string
	Parent   *Node `clone:"-"`
	Children []*Node
}

// NewNode returns a node with no children.
func NewNode(id int, name string) *Node {
	return &Node{ID: id, Name: name, Children: []*Node{}}
}

// Add attaches child under n and returns child.
func (n *Node) Add(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Allocate implements Template[*Node].
func (n *Node) Allocate() *Node {
	return &Node{Children: make([]*Node, 0, len(n.Children))}
}

// Populate implements Template[*Node].
func (n *Node) Populate(target *Node) {
	target.ID = n.ID
	target.Name = n.Name
	if n.Children == nil {
		target.Children = nil
		return
	}
	dolly.CloneSliceInto(&target.Children, n.Children)
	for _, child := range target.Children {
		child.Parent = target
	}
}

// Clone returns an independent copy of the subtree rooted at n.
func (n *Node) Clone() *Node { return dolly.Clone(n) }

// CloneAny implements Cloneable.
func (n *Node) CloneAny() any { return n.Clone() }

// Chain returns the root of a linear chain depth nodes deep.
func Chain(depth int) *Node {
	root := NewNode(0, "root")
	cur := root
	for i := 1; i < depth; i++ {
		cur = cur.Add(NewNode(i, "node"))
	}
	return root
}
