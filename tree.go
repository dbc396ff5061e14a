package lazy

import (
	"errors"
	"iter"
)

// ErrNilRoot is returned when a traversal is started without a root node.
var ErrNilRoot = errors.New("nil root node")

// Node is a tree node. A node with no children is a leaf,
// nil and empty Children are treated the same way.
type Node[T any] struct {
	Value    T          `yaml:"value"`
	Children []*Node[T] `yaml:"children,omitempty"`
}

// DepthFirst returns an iterator over the tree nodes in depth-first pre-order:
// a node comes before its subtrees, subtrees go left to right.
func DepthFirst[T any](root *Node[T]) (iter.Seq[*Node[T]], error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	return func(yield func(*Node[T]) bool) {
		Values(newDepthFirst(root))(yield)
	}, nil
}

// BreadthFirst returns an iterator over the tree nodes level by level,
// left to right within a level.
func BreadthFirst[T any](root *Node[T]) (iter.Seq[*Node[T]], error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	return func(yield func(*Node[T]) bool) {
		Values(newBreadthFirst(root))(yield)
	}, nil
}

type frame[T any] struct {
	node *Node[T]
	next int // index of the next child to descend into
}

// depthFirst walks the tree with an explicit stack instead of recursion.
type depthFirst[T any] struct {
	root  *Node[T]
	stack []frame[T]
}

func newDepthFirst[T any](root *Node[T]) *depthFirst[T] {
	return &depthFirst[T]{root: root}
}

func (d *depthFirst[T]) Next() (*Node[T], bool) {
	if d.root != nil {
		root := d.root
		d.root = nil
		d.stack = append(d.stack, frame[T]{node: root})

		return root, true
	}

	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			if child == nil {
				continue
			}

			d.stack = append(d.stack, frame[T]{node: child})

			return child, true
		}

		d.stack = d.stack[:len(d.stack)-1]
	}

	return nil, false
}

// breadthFirst keeps every discovered node in a buffer and reads it with a cursor.
type breadthFirst[T any] struct {
	queue  []*Node[T]
	cursor int
}

func newBreadthFirst[T any](root *Node[T]) *breadthFirst[T] {
	return &breadthFirst[T]{queue: []*Node[T]{root}}
}

func (b *breadthFirst[T]) Next() (*Node[T], bool) {
	if b.cursor >= len(b.queue) {
		return nil, false
	}

	node := b.queue[b.cursor]
	b.cursor++
	for _, child := range node.Children {
		if child != nil {
			b.queue = append(b.queue, child)
		}
	}

	return node, true
}
