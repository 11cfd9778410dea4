package tree

import (
	"fmt"
	"iter"
	"strings"
)

// All the walks below use an explicit stack or queue, a
// degenerated splay tree may be as deep as it is long.

func inOrderWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	stack := make([]*treeNode[K, V], 0, 32)
	for aux := root; aux != nil || len(stack) > 0; {
		for ; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(aux) {
			return
		}
		aux = aux.right
	}
}

func preOrderWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	if root == nil {
		return
	}
	stack := []*treeNode[K, V]{root}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if !yield(aux) {
			return
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
	}
}

func postOrderWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	var (
		stack = make([]*treeNode[K, V], 0, 32)
		last  *treeNode[K, V]
	)
	for aux := root; aux != nil || len(stack) > 0; {
		if aux != nil {
			stack = append(stack, aux)
			aux = aux.left
			continue
		}
		peek := stack[len(stack)-1]
		if /* right subtree pending */ peek.right != nil && peek.right != last {
			aux = peek.right
			continue
		}
		if !yield(peek) {
			return
		}
		last = peek
		stack = stack[:len(stack)-1]
	}
}

func levelOrderWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	if root == nil {
		return
	}
	queue := []*treeNode[K, V]{root}
	for head := 0; head < len(queue); head++ {
		aux := queue[head]
		if !yield(aux) {
			return
		}
		if aux.left != nil {
			queue = append(queue, aux.left)
		}
		if aux.right != nil {
			queue = append(queue, aux.right)
		}
	}
}

// Deepest level first, each level from left to right.
func reverseLevelOrderWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	if root == nil {
		return
	}
	queue := []*treeNode[K, V]{root}
	for head := 0; head < len(queue); head++ {
		aux := queue[head]
		if aux.right != nil {
			queue = append(queue, aux.right)
		}
		if aux.left != nil {
			queue = append(queue, aux.left)
		}
	}
	for i := len(queue) - 1; i >= 0; i-- {
		if !yield(queue[i]) {
			return
		}
	}
}

/*
Anticlockwise from the root: the left edge top down, then the
leaves left to right, then the right edge bottom up. A node on
both an edge and the leaves (the outermost leaves) shows twice.

	      4
	     / \
	    2   5      => 4, 2, 1, 1, 3, 5, 5
	   / \
	  1   3
*/
func boundaryWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	if root == nil {
		return
	}
	for aux := root; aux != nil; aux = aux.left {
		if !yield(aux) {
			return
		}
	}

	isStopped := false
	leaves := func(x *treeNode[K, V]) {
		if isStopped {
			return
		}
		preOrderWalk(x, func(aux *treeNode[K, V]) bool {
			if aux.isLeaf() && !yield(aux) {
				isStopped = true
				return false
			}
			return true
		})
	}
	leaves(root.left)
	leaves(root.right)
	if isStopped {
		return
	}

	rights := make([]*treeNode[K, V], 0, 16)
	for aux := root.right; aux != nil; aux = aux.right {
		rights = append(rights, aux)
	}
	for i := len(rights) - 1; i >= 0; i-- {
		if !yield(rights[i]) {
			return
		}
	}
}

/*
Diagonal slices of slope -1, each one from the top. The left
children met on a slice start the following slices.

	      4
	     / \
	    2   5      => 4, 5, 2, 3, 1
	   / \
	  1   3
*/
func diagonalWalk[K any, V any](root *treeNode[K, V], yield func(*treeNode[K, V]) bool) {
	if root == nil {
		return
	}
	queue := []*treeNode[K, V]{root}
	for head := 0; head < len(queue); head++ {
		for aux := queue[head]; aux != nil; aux = aux.right {
			if !yield(aux) {
				return
			}
			if aux.left != nil {
				queue = append(queue, aux.left)
			}
		}
	}
}

func walkerOf[K any, V any](order TraversalOrder) (func(*treeNode[K, V], func(*treeNode[K, V]) bool), error) {
	switch order {
	case InOrder:
		return inOrderWalk[K, V], nil
	case PreOrder:
		return preOrderWalk[K, V], nil
	case PostOrder:
		return postOrderWalk[K, V], nil
	case LevelOrder:
		return levelOrderWalk[K, V], nil
	case ReverseLevelOrder:
		return reverseLevelOrderWalk[K, V], nil
	case BoundaryOrder:
		return boundaryWalk[K, V], nil
	case DiagonalOrder:
		return diagonalWalk[K, V], nil
	default:
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
}

// Traverse returns a lazy sequence over the current tree. The
// tree must not be mutated while the sequence is consumed.
// Traverse never splays.
func (tree *bstCore[K, V]) Traverse(order TraversalOrder) (iter.Seq2[K, V], error) {
	walk, err := walkerOf[K, V](order)
	if err != nil {
		return nil, err
	}
	return func(yield func(K, V) bool) {
		walk(tree.root, func(x *treeNode[K, V]) bool {
			return yield(x.key, x.val)
		})
	}, nil
}

func (tree *bstCore[K, V]) ToList(order TraversalOrder) ([]K, error) {
	walk, err := walkerOf[K, V](order)
	if err != nil {
		return nil, err
	}
	keys := make([]K, 0, tree.count)
	walk(tree.root, func(x *treeNode[K, V]) bool {
		keys = append(keys, x.key)
		return true
	})
	return keys, nil
}

// Foreach visits the entries in order until action returns false.
func (tree *bstCore[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	idx := int64(0)
	inOrderWalk(tree.root, func(x *treeNode[K, V]) bool {
		if !action(idx, x.key, x.val) {
			return false
		}
		idx++
		return true
	})
}

func (tree *bstCore[K, V]) Equal(other Tree[K, V]) bool {
	if other == nil || tree.Len() != other.Len() {
		return false
	}
	seq, err := other.Traverse(InOrder)
	if err != nil {
		return false
	}
	next, stop := iter.Pull2(seq)
	defer stop()

	isEqual := true
	inOrderWalk(tree.root, func(x *treeNode[K, V]) bool {
		key, val, ok := next()
		if !ok {
			isEqual = false
			return false
		}
		if res, err := tree.keyCompare(x.key, key); err != nil || res != 0 {
			isEqual = false
			return false
		}
		if !tree.cfg.valEqual(x.val, val) {
			isEqual = false
			return false
		}
		return true
	})
	if _, _, ok := next(); ok {
		return false
	}
	return isEqual
}

// String lists the keys in order, like AVLTree([1, 2, 3]).
func (tree *bstCore[K, V]) String() string {
	builder := strings.Builder{}
	builder.WriteString(tree.name)
	builder.WriteString("([")
	tree.Foreach(func(idx int64, key K, _ V) bool {
		if idx > 0 {
			builder.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&builder, "%v", key)
		return true
	})
	builder.WriteString("])")
	return builder.String()
}
