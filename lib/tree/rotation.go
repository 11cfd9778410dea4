package tree

import (
	"go.uber.org/zap"
)

/*
		 |                         |
		 X                         Y
		/ \     rotateLeft(X)     / \
	   A   Y    ============>    X   C
		  / \                   / \
		 B   C                 A   B
*/
func (tree *bstCore[K, V]) rotateLeft(x *treeNode[K, V]) *treeNode[K, V] {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()
	tree.relink(p, y, dir)
	tree.rotated(Left, x, y)
	return y
}

/*
		   |                         |
		   X                         Y
		  / \     rotateRight(X)    / \
		 Y   C    ============>    A   X
		/ \                           / \
	   A   B                         B   C
*/
func (tree *bstCore[K, V]) rotateRight(x *treeNode[K, V]) *treeNode[K, V] {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()
	tree.relink(p, y, dir)
	tree.rotated(Right, x, y)
	return y
}

// relink hangs y where x used to be under p.
func (tree *bstCore[K, V]) relink(p, y *treeNode[K, V], dir Direction) {
	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown node direction to rotate")
	}
	y.parent = p
}

func (tree *bstCore[K, V]) rotated(dir Direction, lower, upper *treeNode[K, V]) {
	tree.b.afterRotate(lower, upper)
	tree.cfg.stats.IncreaseRotationCount(dir)
	if tree.cfg.logger != nil {
		tree.cfg.logger.Debug("rotate",
			zap.Stringer("direction", dir),
			zap.Any("pivot", lower.key),
			zap.Any("promoted", upper.key),
		)
	}
}

// lift rotates x above its parent.
func (tree *bstCore[K, V]) lift(x *treeNode[K, V]) {
	switch x.direction() {
	case Left:
		tree.rotateRight(x.parent)
	case Right:
		tree.rotateLeft(x.parent)
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] lift the root node")
	}
}
