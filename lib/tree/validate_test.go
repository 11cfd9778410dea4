package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func coreForTest[K any, V any](t *testing.T, tree Tree[K, V]) *bstCore[K, V] {
	c, err := coreOf(tree)
	require.NoError(t, err)
	return c
}

func TestValidate_UnknownTree(t *testing.T) {
	type wrapped struct {
		Tree[int, int]
	}
	tree := wrapped{Tree: NewAVLTree[int, int]()}
	require.ErrorIs(t, Validate[int, int](tree), errUnknownTree)
	require.ErrorIs(t, OrderViolationValidate[int, int](tree), errUnknownTree)
}

func TestValidate_OrderViolation(t *testing.T) {
	tree := NewSplayTree[int, int]()
	for _, key := range []int{1, 2, 3, 4} {
		require.NoError(t, tree.Insert(key, key))
	}
	require.NoError(t, Validate[int, int](tree))

	c := coreForTest[int, int](t, tree)
	c.root.key, c.root.left.key = c.root.left.key, c.root.key
	err := OrderViolationValidate[int, int](tree)
	require.ErrorIs(t, err, errOrderViolation)
	require.ErrorIs(t, Validate[int, int](tree), errOrderViolation)
}

func TestValidate_SizeAndParentViolation(t *testing.T) {
	tree := NewAVLTree[int, int]()
	for i := 1; i <= 7; i++ {
		require.NoError(t, tree.Insert(i, i))
	}
	c := coreForTest[int, int](t, tree)

	c.count++
	require.ErrorIs(t, SizeViolationValidate[int, int](tree), errSizeViolation)
	c.count--
	require.NoError(t, SizeViolationValidate[int, int](tree))

	c.root.left.left.parent = c.root
	c.root.right.parent = nil
	err := ParentLinkValidate[int, int](tree)
	require.ErrorIs(t, err, errParentViolation)
	require.Len(t, multierr.Errors(err), 2)
}

func TestValidate_RBViolation(t *testing.T) {
	tree := NewRBTree[int, int]()
	for i := 1; i <= 15; i++ {
		require.NoError(t, tree.Insert(i, i))
	}
	require.NoError(t, Validate[int, int](tree))
	c := coreForTest[int, int](t, tree)

	c.root.color = Red
	require.ErrorIs(t, RedViolationValidate[int, int](tree), errRedViolation)
	c.root.color = Black

	// A red leaf painted black adds one black on a single path.
	var leaf *treeNode[int, int]
	inOrderWalk(c.root, func(x *treeNode[int, int]) bool {
		if x.isLeaf() && x.isRed() {
			leaf = x
			return false
		}
		return true
	})
	require.NotNil(t, leaf)
	leaf.color = Black
	require.ErrorIs(t, BlackViolationValidate[int, int](tree), errBlackViolation)
	require.ErrorIs(t, Validate[int, int](tree), errBlackViolation)
	leaf.color = Red
	require.NoError(t, Validate[int, int](tree))

	// Red parent with a red child.
	leaf.parent.color = Red
	require.ErrorIs(t, RedViolationValidate[int, int](tree), errRedViolation)
}

func TestValidate_AVLViolation(t *testing.T) {
	tree := NewAVLTree[int, int]()
	for i := 1; i <= 7; i++ {
		require.NoError(t, tree.Insert(i, i))
	}
	require.NoError(t, AVLViolationValidate[int, int](tree))
	c := coreForTest[int, int](t, tree)

	c.root.left.height = 5
	require.ErrorIs(t, AVLViolationValidate[int, int](tree), errAVLHeightMismatch)
	c.root.left.height = 2
	require.NoError(t, AVLViolationValidate[int, int](tree))

	// Hang a chain under the rightmost leaf.
	x := c.root.maximum()
	for key := 8; key <= 10; key++ {
		_, _, err := c.insert(key, key)
		require.NoError(t, err)
		x = x.right
		x.height = 1
	}
	for aux := x.parent; aux != nil; aux = aux.parent {
		aux.updateHeight()
	}
	err := Validate[int, int](tree)
	require.ErrorIs(t, err, errAVLViolation)
	require.NotErrorIs(t, err, errAVLHeightMismatch)
	require.False(t, IsHeightBalanced[int, int](tree))
}
