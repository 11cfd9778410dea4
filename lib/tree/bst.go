package tree

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
)

type treeNode[K any, V any] struct {
	parent *treeNode[K, V]
	left   *treeNode[K, V]
	right  *treeNode[K, V]
	key    K
	val    V
	height int     // AVL only, 1 for a leaf, 0 elsewhere.
	color  RBColor // Red-black only.
}

func (node *treeNode[K, V]) Key() K {
	return node.key
}

func (node *treeNode[K, V]) Val() V {
	return node.val
}

func (node *treeNode[K, V]) Color() RBColor {
	return node.color
}

func (node *treeNode[K, V]) Height() int {
	return node.getHeight()
}

func (node *treeNode[K, V]) Left() Node[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *treeNode[K, V]) Right() Node[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *treeNode[K, V]) Parent() Node[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

// A nil node is the black nil leaf.
func (node *treeNode[K, V]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *treeNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *treeNode[K, V]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *treeNode[K, V]) isLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *treeNode[K, V]) direction() Direction {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] nil node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *treeNode[K, V]) sibling() *treeNode[K, V] {
	switch node.direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:
	}
	return nil
}

func (node *treeNode[K, V]) uncle() *treeNode[K, V] {
	return node.parent.sibling()
}

func (node *treeNode[K, V]) grandpa() *treeNode[K, V] {
	return node.parent.parent
}

func (node *treeNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *treeNode[K, V]) getHeight() int {
	if node == nil {
		return 0
	}
	return node.height
}

func (node *treeNode[K, V]) updateHeight() {
	node.height = 1 + max(node.left.getHeight(), node.right.getHeight())
}

func (node *treeNode[K, V]) balanceFactor() int {
	if node == nil {
		return 0
	}
	return node.left.getHeight() - node.right.getHeight()
}

func (node *treeNode[K, V]) minimum() *treeNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *treeNode[K, V]) maximum() *treeNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *treeNode[K, V]) pred() *treeNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the first ancestor reached from its right subtree.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *treeNode[K, V]) succ() *treeNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the first ancestor reached from its left subtree.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// balancer is the variant specific part of a tree. The core
// does the structural work and calls back into the balancer
// to restore the variant invariant before returning.
type balancer[K any, V any] interface {
	// afterInsert receives the node holding the inserted key.
	// created is false if an existing value was replaced.
	afterInsert(z *treeNode[K, V], created bool)
	// erase removes z from the tree and rebalances.
	erase(z *treeNode[K, V])
	afterRotate(lower, upper *treeNode[K, V])
	afterAccess(x *treeNode[K, V])
}

type bstCore[K any, V any] struct {
	root  *treeNode[K, V]
	count int64
	name  string
	cfg   *treeConfig[K, V]
	b     balancer[K, V]
}

func newBSTCore[K any, V any](
	name string,
	cmp infra.KeyComparator[K],
	b balancer[K, V],
	opts ...TreeOption[K, V],
) *bstCore[K, V] {
	return &bstCore[K, V]{
		name: name,
		cfg:  newTreeConfig[K, V](name, cmp, opts...),
		b:    b,
	}
}

func (tree *bstCore[K, V]) core() *bstCore[K, V] {
	return tree
}

func (tree *bstCore[K, V]) keyCompare(k1, k2 K) (int64, error) {
	return tree.cfg.cmp(k1, k2)
}

func (tree *bstCore[K, V]) debug(msg string, fields ...zap.Field) {
	if tree.cfg.logger == nil {
		return
	}
	tree.cfg.logger.Debug(msg, fields...)
}

func (tree *bstCore[K, V]) fixup(caseName string, x *treeNode[K, V]) {
	tree.cfg.stats.IncreaseFixupCount(caseName)
	if tree.cfg.logger != nil && x != nil {
		tree.cfg.logger.Debug("fixup", zap.String("case", caseName), zap.Any("key", x.key))
	}
}

func (tree *bstCore[K, V]) search(key K) (*treeNode[K, V], error) {
	for aux := tree.root; aux != nil; {
		res, err := tree.keyCompare(key, aux.key)
		if err != nil {
			return nil, err
		}
		if /* equal */ res == 0 {
			return aux, nil
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	return nil, ErrKeyNotFound
}

// insert places key as a new leaf. Nothing is mutated unless
// the call succeeds.
func (tree *bstCore[K, V]) insert(key K, val V) (z *treeNode[K, V], created bool, err error) {
	var (
		y   *treeNode[K, V]
		res int64
	)
	if tree.root == nil {
		// Nothing to compare with, the key must still be ordered.
		if _, err = tree.keyCompare(key, key); err != nil {
			return nil, false, err
		}
	}
	for x := tree.root; x != nil; {
		y = x
		if res, err = tree.keyCompare(key, x.key); err != nil {
			return nil, false, err
		}
		if /* equal */ res == 0 {
			if !tree.cfg.isValReplace {
				return nil, false, ErrDuplicateKey
			}
			x.val = val
			return x, false, nil
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z = &treeNode[K, V]{
		key:    key,
		val:    val,
		parent: y,
	}
	switch {
	case y == nil:
		tree.root = z
	case res < 0:
		y.left = z
	default:
		y.right = z
	}
	tree.count++
	return z, true, nil
}

// spliceTarget returns the node to be physically removed in
// place of z. If z has two children, its successor (or
// predecessor) entry is moved into z and that neighbour,
// which has at most one child, is returned.
func (tree *bstCore[K, V]) spliceTarget(z *treeNode[K, V]) *treeNode[K, V] {
	if z.left == nil || z.right == nil {
		return z
	}

	var y *treeNode[K, V]
	if tree.cfg.isRmBorrowPred {
		y = z.left.maximum()
	} else {
		y = z.right.minimum()
	}
	z.key, z.val = y.key, y.val
	return y
}

// detach unlinks y (at most one child) and promotes its child.
// The returned parent is where rebalancing starts.
func (tree *bstCore[K, V]) detach(y *treeNode[K, V]) (child, parent *treeNode[K, V]) {
	if y.left != nil && y.right != nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] detach a node with two children")
	}

	child = y.left
	if child == nil {
		child = y.right
	}
	parent = y.parent

	switch y.direction() {
	case Root:
		tree.root = child
	case Left:
		parent.left = child
	case Right:
		parent.right = child
	default:
	}
	if child != nil {
		child.parent = parent
	}

	y.parent, y.left, y.right = nil, nil, nil
	tree.count--
	return child, parent
}

func (tree *bstCore[K, V]) remove(z *treeNode[K, V]) Node[K, V] {
	res := &treeNode[K, V]{
		key: z.key,
		val: z.val,
	}
	tree.b.erase(z)
	tree.cfg.stats.IncreaseRemoveCount()
	tree.debug("remove", zap.Any("key", res.key))
	return res
}

func (tree *bstCore[K, V]) Len() int64 {
	return tree.count
}

func (tree *bstCore[K, V]) IsEmpty() bool {
	return tree.count == 0
}

func (tree *bstCore[K, V]) Root() Node[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// Height walks the tree level by level.
func (tree *bstCore[K, V]) Height() int {
	if tree.root == nil {
		return 0
	}
	height := 0
	level := []*treeNode[K, V]{tree.root}
	for len(level) > 0 {
		height++
		next := make([]*treeNode[K, V], 0, len(level)<<1)
		for _, x := range level {
			if x.left != nil {
				next = append(next, x.left)
			}
			if x.right != nil {
				next = append(next, x.right)
			}
		}
		level = next
	}
	return height
}

func (tree *bstCore[K, V]) Insert(key K, val V) error {
	z, created, err := tree.insert(key, val)
	if err != nil {
		return err
	}
	tree.b.afterInsert(z, created)
	if created {
		tree.cfg.stats.IncreaseInsertCount()
		tree.debug("insert", zap.Any("key", key))
	}
	return nil
}

// InsertAll inserts the entries in sequence order and stops at
// the first failure. It returns the number of entries inserted
// (or replaced) before that.
func (tree *bstCore[K, V]) InsertAll(entries iter.Seq2[K, V]) (int64, error) {
	count := int64(0)
	for key, val := range entries {
		if err := tree.Insert(key, val); err != nil {
			return count, fmt.Errorf("insert entry %d: %w", count, err)
		}
		count++
	}
	return count, nil
}

func (tree *bstCore[K, V]) Remove(key K) (Node[K, V], error) {
	z, err := tree.search(key)
	if err != nil {
		return nil, err
	}
	return tree.remove(z), nil
}

func (tree *bstCore[K, V]) RemoveMin() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	return tree.remove(tree.root.minimum()), nil
}

func (tree *bstCore[K, V]) RemoveMax() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	return tree.remove(tree.root.maximum()), nil
}

func (tree *bstCore[K, V]) Search(key K) (V, error) {
	x, err := tree.search(key)
	if err != nil {
		var zero V
		return zero, err
	}
	tree.b.afterAccess(x)
	return x.val, nil
}

func (tree *bstCore[K, V]) Contains(key K) bool {
	_, err := tree.Search(key)
	return err == nil
}

func (tree *bstCore[K, V]) Min() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	x := tree.root.minimum()
	tree.b.afterAccess(x)
	return x, nil
}

func (tree *bstCore[K, V]) Max() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	x := tree.root.maximum()
	tree.b.afterAccess(x)
	return x, nil
}

func (tree *bstCore[K, V]) Successor(key K) (Node[K, V], error) {
	x, err := tree.search(key)
	if err != nil {
		return nil, err
	}
	s := x.succ()
	if s == nil {
		return nil, fmt.Errorf("%w: no successor", ErrKeyNotFound)
	}
	tree.b.afterAccess(s)
	return s, nil
}

func (tree *bstCore[K, V]) Predecessor(key K) (Node[K, V], error) {
	x, err := tree.search(key)
	if err != nil {
		return nil, err
	}
	p := x.pred()
	if p == nil {
		return nil, fmt.Errorf("%w: no predecessor", ErrKeyNotFound)
	}
	tree.b.afterAccess(p)
	return p, nil
}

// Release unlinks every node, so nothing outlives the tree
// through a retained node reference.
func (tree *bstCore[K, V]) Release() {
	aux := tree.root
	tree.root = nil
	if aux == nil {
		tree.count = 0
		return
	}

	stack := make([]*treeNode[K, V], 0, 64)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		aux.parent, aux.left, aux.right = nil, nil, nil
	}
	tree.cfg.stats.RecordSize(-tree.count)
	tree.count = 0
}

// cloneFor copies the node graph (keys, values, colors and
// heights) into a new core bound to b.
func (tree *bstCore[K, V]) cloneFor(b balancer[K, V]) *bstCore[K, V] {
	clone := &bstCore[K, V]{
		count: tree.count,
		name:  tree.name,
		cfg:   tree.cfg,
		b:     b,
	}
	if tree.root == nil {
		return clone
	}

	copyOf := func(src *treeNode[K, V]) *treeNode[K, V] {
		return &treeNode[K, V]{
			key:    src.key,
			val:    src.val,
			height: src.height,
			color:  src.color,
		}
	}
	type pair struct {
		src, dst *treeNode[K, V]
	}
	clone.root = copyOf(tree.root)
	stack := []pair{{tree.root, clone.root}}
	for size := len(stack); size > 0; size = len(stack) {
		p := stack[size-1]
		stack = stack[:size-1]
		if p.src.left != nil {
			p.dst.left = copyOf(p.src.left)
			p.dst.left.parent = p.dst
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = copyOf(p.src.right)
			p.dst.right.parent = p.dst
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
	}
	tree.cfg.stats.RecordSize(clone.count)
	return clone
}
