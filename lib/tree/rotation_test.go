package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

// recordBalancer keeps the bare BST shape and records rotations.
type recordBalancer struct {
	rotations [][2]int
}

func (b *recordBalancer) afterInsert(*treeNode[int, int], bool) {}
func (b *recordBalancer) erase(*treeNode[int, int])               {}
func (b *recordBalancer) afterAccess(*treeNode[int, int])         {}

func (b *recordBalancer) afterRotate(lower, upper *treeNode[int, int]) {
	b.rotations = append(b.rotations, [2]int{lower.key, upper.key})
}

func newRecordCore(t *testing.T, keys ...int) (*bstCore[int, int], *recordBalancer) {
	b := &recordBalancer{}
	c := newBSTCore[int, int]("BST", infra.OrderedKeyCompare[int], b)
	for _, key := range keys {
		_, created, err := c.insert(key, key)
		require.NoError(t, err)
		require.True(t, created)
	}
	return c, b
}

func requireLinked(t *testing.T, x *treeNode[int, int]) {
	if x == nil {
		return
	}
	if x.left != nil {
		require.Equal(t, x, x.left.parent)
		requireLinked(t, x.left)
	}
	if x.right != nil {
		require.Equal(t, x, x.right.parent)
		requireLinked(t, x.right)
	}
}

func TestRotateLeftAndRight(t *testing.T) {
	c, b := newRecordCore(t, 2, 1, 4, 3, 5)

	y := c.rotateLeft(c.root)
	require.Equal(t, 4, y.key)
	require.Equal(t, y, c.root)
	require.Nil(t, c.root.parent)
	require.Equal(t, 2, c.root.left.key)
	require.Equal(t, 5, c.root.right.key)
	require.Equal(t, 1, c.root.left.left.key)
	require.Equal(t, 3, c.root.left.right.key)
	requireLinked(t, c.root)
	require.Equal(t, [][2]int{{2, 4}}, b.rotations)

	keys, err := c.ToList(InOrder)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, keys)

	y = c.rotateRight(c.root)
	require.Equal(t, 2, y.key)
	require.Equal(t, y, c.root)
	require.Equal(t, 1, c.root.left.key)
	require.Equal(t, 4, c.root.right.key)
	require.Equal(t, 3, c.root.right.left.key)
	require.Equal(t, 5, c.root.right.right.key)
	requireLinked(t, c.root)
	require.Equal(t, [][2]int{{2, 4}, {4, 2}}, b.rotations)
}

func TestRotateSubtree(t *testing.T) {
	c, _ := newRecordCore(t, 10, 5, 20, 15, 25)
	right := c.root.right

	y := c.rotateRight(right)
	require.Equal(t, 15, y.key)
	require.Equal(t, y, c.root.right)
	require.Equal(t, c.root, y.parent)
	require.Equal(t, 20, y.right.key)
	require.Nil(t, y.left)
	require.Equal(t, 25, y.right.right.key)
	requireLinked(t, c.root)

	c.lift(y.right)
	require.Equal(t, 20, c.root.right.key)
	requireLinked(t, c.root)

	keys, err := c.ToList(InOrder)
	require.NoError(t, err)
	require.Equal(t, []int{5, 10, 15, 20, 25}, keys)
}

func TestRotate_Panics(t *testing.T) {
	c, _ := newRecordCore(t, 1, 2)
	require.Panics(t, func() {
		c.rotateRight(c.root)
	})
	require.Panics(t, func() {
		c.rotateLeft(c.root.right)
	})
	require.Panics(t, func() {
		c.lift(c.root)
	})
	require.Panics(t, func() {
		c.rotateLeft(nil)
	})
}

func TestDetach(t *testing.T) {
	c, _ := newRecordCore(t, 4, 2, 6, 1, 3)
	require.Panics(t, func() {
		c.detach(c.root)
	})

	child, parent := c.detach(c.root.right)
	require.Nil(t, child)
	require.Equal(t, 4, parent.key)
	require.Equal(t, int64(4), c.count)

	y := c.spliceTarget(c.root.left)
	require.Equal(t, 3, y.key)
	require.Equal(t, 3, c.root.left.key)
	child, parent = c.detach(y)
	require.Nil(t, child)
	require.Equal(t, 3, parent.key)

	child, parent = c.detach(c.root)
	require.Equal(t, 3, child.key)
	require.Nil(t, parent)
	require.Equal(t, child, c.root)
	require.Nil(t, c.root.parent)
	requireLinked(t, c.root)
	require.Equal(t, int64(2), c.count)
}
