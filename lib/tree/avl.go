package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/AVL_tree
// avl properties:
// p1. The heights of the two child subtrees of any node differ by at most one.
// (Conclusion) The height of an avl tree with n nodes is less than
//   1.4405 * log2(n + 2) - 0.3277.
//
// The height of a nil node is 0 and a leaf is 1.
// Balance factor BF(X) = height(X.left) - height(X.right).

var _ AVLTree[int, struct{}] = (*avlTree[int, struct{}])(nil)

type avlTree[K any, V any] struct {
	*bstCore[K, V]
}

func (tree *avlTree[K, V]) afterInsert(z *treeNode[K, V], created bool) {
	if !created {
		return
	}
	z.height = 1
	tree.rebalance(z.parent)
}

func (tree *avlTree[K, V]) erase(z *treeNode[K, V]) {
	y := tree.spliceTarget(z)
	_, p := tree.detach(y)
	tree.rebalance(p)
}

// Both nodes' children are in place, lower goes first.
func (tree *avlTree[K, V]) afterRotate(lower, upper *treeNode[K, V]) {
	lower.updateHeight()
	upper.updateHeight()
}

func (tree *avlTree[K, V]) afterAccess(*treeNode[K, V]) {}

/*
Walk from x up to the root, refresh the height and fix the
first (insert) or every (remove) unbalanced ancestor.

ll: X is left heavy and its left child L is not right heavy.

	    X                 L
	   / \               / \
	  L   C   r-rot(X)  A   X
	 / \    ========>  /   / \
	A   B             ..  B   C
	/
   ..

lr: X is left heavy and its left child L is right heavy.

	    X                   X                  B
	   / \    l-rot(L)     / \    r-rot(X)    / \
	  L   C   ========>   B   C   ========>  L   X
	   \                 /                        \
	    B               L                          C

rr, rl: mirrored.

After an insert, the rotated subtree gets back its old height,
so no ancestor is unbalanced any more. A remove may shorten
the subtree and the walk keeps rotating on its way up.
*/
func (tree *avlTree[K, V]) rebalance(x *treeNode[K, V]) {
	for ; x != nil; x = x.parent {
		x.updateHeight()
		switch bf := x.balanceFactor(); {
		case bf > 1:
			if /* lr */ x.left.balanceFactor() < 0 {
				tree.fixup("lr", x)
				tree.rotateLeft(x.left)
			} else /* ll */ {
				tree.fixup("ll", x)
			}
			x = tree.rotateRight(x)
		case bf < -1:
			if /* rl */ x.right.balanceFactor() > 0 {
				tree.fixup("rl", x)
				tree.rotateRight(x.right)
			} else /* rr */ {
				tree.fixup("rr", x)
			}
			x = tree.rotateLeft(x)
		default:
		}
	}
}

// Height is kept by the root.
func (tree *avlTree[K, V]) Height() int {
	return tree.root.getHeight()
}

func (tree *avlTree[K, V]) Clone() Tree[K, V] {
	clone := &avlTree[K, V]{}
	clone.bstCore = tree.bstCore.cloneFor(clone)
	return clone
}

func NewAVLTree[K infra.OrderedKey, V any](opts ...TreeOption[K, V]) AVLTree[K, V] {
	return NewAVLTreeFunc[K, V](infra.OrderedKeyCompare[K], opts...)
}

func NewAVLTreeFunc[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) AVLTree[K, V] {
	tree := &avlTree[K, V]{}
	tree.bstCore = newBSTCore[K, V]("AVLTree", cmp, tree, opts...)
	return tree
}
