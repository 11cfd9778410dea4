package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://www.cs.cmu.edu/~sleator/papers/self-adjusting.pdf
//
// A splay tree keeps the BST order only. Every successful
// access (insert, search, touch, min, max, successor,
// predecessor) moves the node to the root, the amortized cost
// is O(log n). A remove splays the parent of the removed node.
// A failed access changes nothing.

var _ SplayTree[int, struct{}] = (*splayTree[int, struct{}])(nil)

type splayTree[K any, V any] struct {
	*bstCore[K, V]
}

func (tree *splayTree[K, V]) afterInsert(z *treeNode[K, V], _ bool) {
	tree.splay(z)
}

func (tree *splayTree[K, V]) erase(z *treeNode[K, V]) {
	y := tree.spliceTarget(z)
	if _, p := tree.detach(y); p != nil {
		tree.splay(p)
	}
}

func (tree *splayTree[K, V]) afterRotate(_, _ *treeNode[K, V]) {}

func (tree *splayTree[K, V]) afterAccess(x *treeNode[K, V]) {
	tree.splay(x)
}

/*
zig: The parent P is the root.

	    P            X
	   / \          / \
	  X   C  ===>  A   P
	 / \              / \
	A   B            B   C

zig-zig: X and P are both left (or both right) children.
Rotate the grandpa G first, then P.

	      G          X
	     / \        / \
	    P   D      A   P
	   / \   ===>     / \
	  X   C          B   G
	 / \                / \
	A   B              C   D

zig-zag: X and P are children on opposite sides.
Rotate P, then G, both lift X.

	    G              X
	   / \           /   \
	  P   D  ===>   P     G
	 / \           / \   / \
	A   X         A   B C   D
	   / \
	  B   C
*/
func (tree *splayTree[K, V]) splay(x *treeNode[K, V]) {
	for !x.isRoot() {
		p := x.parent
		switch {
		case /* zig */ p.isRoot():
			tree.fixup("zig", x)
			tree.lift(x)
		case /* zig-zig */ x.direction() == p.direction():
			tree.fixup("zig-zig", x)
			tree.lift(p)
			tree.lift(x)
		default: // zig-zag
			tree.fixup("zig-zag", x)
			tree.lift(x)
			tree.lift(x)
		}
	}
}

func (tree *splayTree[K, V]) Touch(key K) error {
	x, err := tree.search(key)
	if err != nil {
		return err
	}
	tree.splay(x)
	return nil
}

func (tree *splayTree[K, V]) Clone() Tree[K, V] {
	clone := &splayTree[K, V]{}
	clone.bstCore = tree.bstCore.cloneFor(clone)
	return clone
}

func NewSplayTree[K infra.OrderedKey, V any](opts ...TreeOption[K, V]) SplayTree[K, V] {
	return NewSplayTreeFunc[K, V](infra.OrderedKeyCompare[K], opts...)
}

func NewSplayTreeFunc[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) SplayTree[K, V] {
	tree := &splayTree[K, V]{}
	tree.bstCore = newBSTCore[K, V]("SplayTree", cmp, tree, opts...)
	return tree
}
