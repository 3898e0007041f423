package clues

import (
	"iter"
	"slices"
)

// node is one clue in the search tree
type node struct {
	clue  string
	left  *node
	right *node
}

// Collection is the sorted set of clues discovered during a session
type Collection struct {
	root *node
	size int
}

// New creates an empty clue collection
func New() *Collection {
	return &Collection{}
}

// insert places clue under n and returns the subtree root.
// Equal clues are ignored; added reports whether a node was created.
func insert(n *node, clue string) (root *node, added bool) {
	if n == nil {
		return &node{clue: clue}, true
	}
	switch {
	case clue < n.clue:
		n.left, added = insert(n.left, clue)
	case clue > n.clue:
		n.right, added = insert(n.right, clue)
	}
	return n, added
}

// Insert adds a clue to the collection, returning false if it was already there
func (c *Collection) Insert(clue string) bool {
	var added bool
	c.root, added = insert(c.root, clue)
	if added {
		c.size++
	}
	return added
}

// Contains reports whether the clue has been collected
func (c *Collection) Contains(clue string) bool {
	n := c.root
	for n != nil {
		switch {
		case clue < n.clue:
			n = n.left
		case clue > n.clue:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of distinct clues
func (c *Collection) Len() int {
	return c.size
}

// Empty reports whether no clue has been collected yet
func (c *Collection) Empty() bool {
	return c.root == nil
}

// InOrder visits every clue in ascending order
func (c *Collection) InOrder(visit func(clue string)) {
	walk(c.root, func(clue string) bool {
		visit(clue)
		return true
	})
}

// All returns an iterator over the clues in ascending order
func (c *Collection) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(c.root, yield)
	}
}

// Sorted returns the clues in ascending order
func (c *Collection) Sorted() []string {
	return slices.Collect(c.All())
}

// walk is a left-root-right traversal that stops once yield returns false
func walk(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.clue) && walk(n.right, yield)
}
