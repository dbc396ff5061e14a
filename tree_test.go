package lazy_test

import (
	"iter"
	"testing"

	"github.com/dmksnnk/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(v int, children ...*lazy.Node[int]) *lazy.Node[int] {
	return &lazy.Node[int]{Value: v, Children: children}
}

func values(seq iter.Seq[*lazy.Node[int]]) []int {
	var result []int
	for n := range seq {
		result = append(result, n.Value)
	}
	return result
}

func depthTree() *lazy.Node[int] {
	//        1
	//      / | \
	//     2  6  7
	//    / \     \
	//   3   4     8
	//       |
	//       5
	return node(1,
		node(2, node(3), node(4, node(5))),
		node(6),
		node(7, node(8)),
	)
}

func breadthTree() *lazy.Node[int] {
	//        1
	//      / | \
	//     2  3  4
	//    / \     \
	//   5   6     7
	//       |
	//       8
	return node(1,
		node(2, node(5), node(6, node(8))),
		node(3),
		node(4, node(7)),
	)
}

func TestDepthFirst(t *testing.T) {
	t.Run("example tree", func(t *testing.T) {
		seq, err := lazy.DepthFirst(depthTree())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, values(seq))
	})

	t.Run("single node", func(t *testing.T) {
		seq, err := lazy.DepthFirst(node(1))
		require.NoError(t, err)
		assert.Equal(t, []int{1}, values(seq))
	})

	t.Run("empty and nil children", func(t *testing.T) {
		root := node(1, &lazy.Node[int]{Value: 2, Children: []*lazy.Node[int]{}}, node(3))
		seq, err := lazy.DepthFirst(root)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values(seq))
	})

	t.Run("yields node identity", func(t *testing.T) {
		root := depthTree()
		seq, err := lazy.DepthFirst(root)
		require.NoError(t, err)
		for n := range seq {
			assert.Same(t, root, n)
			break
		}
	})

	t.Run("deep tree", func(t *testing.T) {
		const depth = 100_000
		root := node(0)
		cur := root
		for i := 1; i < depth; i++ {
			child := node(i)
			cur.Children = []*lazy.Node[int]{child}
			cur = child
		}

		seq, err := lazy.DepthFirst(root)
		require.NoError(t, err)
		got := values(seq)
		require.Len(t, got, depth)
		assert.Equal(t, depth-1, got[depth-1])
	})

	t.Run("stop early", func(t *testing.T) {
		seq, err := lazy.DepthFirst(depthTree())
		require.NoError(t, err)

		var got []int
		for n := range seq {
			got = append(got, n.Value)
			if n.Value == 4 {
				break
			}
		}
		assert.Equal(t, []int{1, 2, 3, 4}, got)
	})

	t.Run("nil root", func(t *testing.T) {
		_, err := lazy.DepthFirst[int](nil)
		assert.ErrorIs(t, err, lazy.ErrNilRoot)
	})
}

func TestBreadthFirst(t *testing.T) {
	t.Run("example tree", func(t *testing.T) {
		seq, err := lazy.BreadthFirst(breadthTree())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, values(seq))
	})

	t.Run("depth example tree", func(t *testing.T) {
		seq, err := lazy.BreadthFirst(depthTree())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 6, 7, 3, 4, 8, 5}, values(seq))
	})

	t.Run("ranging twice starts over", func(t *testing.T) {
		seq, err := lazy.BreadthFirst(breadthTree())
		require.NoError(t, err)
		assert.Equal(t, values(seq), values(seq))
	})

	t.Run("nil children entries are skipped", func(t *testing.T) {
		seq, err := lazy.BreadthFirst(node(1, nil, node(2)))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, values(seq))
	})

	t.Run("nil root", func(t *testing.T) {
		_, err := lazy.BreadthFirst[int](nil)
		assert.ErrorIs(t, err, lazy.ErrNilRoot)
	})
}
