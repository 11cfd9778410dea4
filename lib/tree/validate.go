package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Tree rule validation utilities. Each validator reports every
// violation it finds, combined by multierr.

var (
	errUnknownTree       = errors.New("[tree] unknown tree implementation")
	errOrderViolation    = errors.New("[tree] bst order violation")
	errSizeViolation     = errors.New("[tree] size violation")
	errParentViolation   = errors.New("[tree] parent link violation")
	errRedViolation      = errors.New("[rbtree] red violation")
	errBlackViolation    = errors.New("[rbtree] black violation")
	errAVLViolation      = errors.New("[avl] balance violation")
	errAVLHeightMismatch = errors.New("[avl] height mismatch")
)

type coreHolder[K any, V any] interface {
	core() *bstCore[K, V]
}

func coreOf[K any, V any](tree Tree[K, V]) (*bstCore[K, V], error) {
	holder, ok := tree.(coreHolder[K, V])
	if !ok {
		return nil, errUnknownTree
	}
	return holder.core(), nil
}

// Inorder traversal to validate the keys are strictly increasing.
func OrderViolationValidate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	var (
		merr error
		prev *treeNode[K, V]
	)
	inOrderWalk(c.root, func(x *treeNode[K, V]) bool {
		if prev != nil {
			res, err := c.keyCompare(prev.key, x.key)
			if err != nil {
				merr = multierr.Append(merr, err)
			} else if res >= 0 {
				merr = multierr.Append(merr, fmt.Errorf("%w: %v before %v", errOrderViolation, prev.key, x.key))
			}
		}
		prev = x
		return true
	})
	return merr
}

func SizeViolationValidate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	count := int64(0)
	preOrderWalk(c.root, func(*treeNode[K, V]) bool {
		count++
		return true
	})
	if count != c.count {
		return fmt.Errorf("%w: %d reachable, %d recorded", errSizeViolation, count, c.count)
	}
	return nil
}

func ParentLinkValidate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	var merr error
	if c.root != nil && c.root.parent != nil {
		merr = multierr.Append(merr, fmt.Errorf("%w: root %v has a parent", errParentViolation, c.root.key))
	}
	levelOrderWalk(c.root, func(x *treeNode[K, V]) bool {
		for _, child := range [2]*treeNode[K, V]{x.left, x.right} {
			if child != nil && child.parent != x {
				merr = multierr.Append(merr, fmt.Errorf("%w: %v", errParentViolation, child.key))
			}
		}
		return true
	})
	return merr
}

func RedViolationValidate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	var merr error
	if c.root.isRed() {
		merr = multierr.Append(merr, fmt.Errorf("%w: red root %v", errRedViolation, c.root.key))
	}
	inOrderWalk(c.root, func(x *treeNode[K, V]) bool {
		if x.isRed() && (x.left.isRed() || x.right.isRed()) {
			merr = multierr.Append(merr, fmt.Errorf("%w: red node %v has a red child", errRedViolation, x.key))
		}
		return true
	})
	return merr
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
	        /  \
	     <8>    [15]
	     / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            <16>

Every node with a nil child is a path end, the black depth of
all of them up to the root must be equal.
*/
func BlackViolationValidate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	blackDepth := func(x *treeNode[K, V]) int {
		depth := 0
		for aux := x; aux != nil; aux = aux.parent {
			if aux.isBlack() {
				depth++
			}
		}
		return depth
	}

	var merr error
	expected := -1
	levelOrderWalk(c.root, func(x *treeNode[K, V]) bool {
		if /* nil leaves, keep one */ x.left != nil && x.right != nil {
			return true
		}
		depth := blackDepth(x)
		if expected < 0 {
			expected = depth
		} else if depth != expected {
			merr = multierr.Append(merr, fmt.Errorf("%w: black depth %d at %v, expected %d",
				errBlackViolation, depth, x.key, expected))
		}
		return true
	})
	return merr
}

// Postorder traversal, the stored heights must match the real
// ones and the balance factors must be in [-1, 1].
func AVLViolationValidate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	var merr error
	heights := make(map[*treeNode[K, V]]int, c.count)
	postOrderWalk(c.root, func(x *treeNode[K, V]) bool {
		l, r := heights[x.left], heights[x.right]
		h := 1 + max(l, r)
		heights[x] = h
		if x.height != h {
			merr = multierr.Append(merr, fmt.Errorf("%w: %v stores %d, real %d", errAVLHeightMismatch, x.key, x.height, h))
		}
		if bf := l - r; bf > 1 || bf < -1 {
			merr = multierr.Append(merr, fmt.Errorf("%w: %v balance factor %d", errAVLViolation, x.key, bf))
		}
		return true
	})
	return merr
}

// Validate runs the common validators and the ones of the tree
// variant.
func Validate[K any, V any](tree Tree[K, V]) error {
	c, err := coreOf(tree)
	if err != nil {
		return err
	}
	merr := multierr.Combine(
		OrderViolationValidate(tree),
		SizeViolationValidate(tree),
		ParentLinkValidate(tree),
	)
	switch c.b.(type) {
	case *avlTree[K, V]:
		merr = multierr.Append(merr, AVLViolationValidate(tree))
	case *rbTree[K, V]:
		merr = multierr.Append(merr, multierr.Combine(
			RedViolationValidate(tree),
			BlackViolationValidate(tree),
		))
	default:
	}
	return merr
}
