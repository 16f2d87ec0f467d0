package pascal

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/pascal3d/scenebridge/pkg/scene"
)

// Node is a single typed node in a Pascal scene graph. The transform uses
// Pascal axes (Y-up); children are ordered and exclusively owned.
type Node struct {
	ID        string
	Kind      Kind
	Name      string
	Transform scene.Transform
	Attrs     Attrs
	Children  []*Node
}

// NewID generates a Pascal-style node id: "<kind>_<8 hex chars>".
func NewID(k Kind) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%s", k, hex.EncodeToString(u[:])[:8])
}

// NewNode creates a node of the given kind with a fresh id, an identity
// transform, and the kind's zero attributes.
func NewNode(k Kind, name string) *Node {
	return &Node{
		ID:        NewID(k),
		Kind:      k,
		Name:      name,
		Transform: scene.IdentityTransform(),
		Attrs:     newAttrs(k),
	}
}

// AddChild appends a child, preserving insertion order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Walk visits n and every descendant in pre-order. Traversal stops early if
// fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
