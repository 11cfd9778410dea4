package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
// The longest path nodes' number is 2 * shortest path nodes' number.

var _ RBTree[int, struct{}] = (*rbTree[int, struct{}])(nil)

type rbTree[K any, V any] struct {
	*bstCore[K, V]
}

func (tree *rbTree[K, V]) afterInsert(z *treeNode[K, V], created bool) {
	if !created {
		return
	}
	z.color = Red
	tree.insertRebalance(z)
}

func (tree *rbTree[K, V]) afterRotate(_, _ *treeNode[K, V]) {}

func (tree *rbTree[K, V]) afterAccess(*treeNode[K, V]) {}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: The parent P is black. Nothing is violated.

im2: Both the parent P and the uncle U are red, so the grandpa G
is black. Push the blackness of G down to P and U.
G may become a red-violation with its own parent, go on with G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im3: P is red, U is black and X is an inner grandchild of G.
Rotate P away from X, then P (now the outer child of X) plays
the X role in im4.

	  [G]                 [G]
	  / \    l-rot(P)     / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im4: P is red, U is black and X is an outer grandchild of G.

	    [G]                 <P>               [P]
	    / \    r-rot(G)     / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]

The root is repainted black at last.
*/
func (tree *rbTree[K, V]) insertRebalance(x *treeNode[K, V]) {
	for !x.isRoot() {
		p := x.parent
		if /* im1 */ p.isBlack() {
			break
		}

		// A red parent is never the root, so the grandpa exists.
		g := x.grandpa()
		if /* im2 */ u := x.uncle(); u.isRed() {
			tree.fixup("im2", x)
			p.color, u.color, g.color = Black, Black, Red
			x = g
			continue
		}

		if /* im3 */ x.direction() != p.direction() {
			tree.fixup("im3", x)
			tree.lift(x)
			x, p = p, x
		}

		/* im4 */
		tree.fixup("im4", x)
		p.color, g.color = Black, Red
		tree.lift(p)
		break
	}
	tree.root.color = Black
}

/*
y is the node physically removed (at most one child).

r1: y is a red leaf, remove directly.

r2: y has a single child, which must be red (see conclusion).
Promote it and repaint it into black.

r3: y is a black leaf. Removing it leaves a black-violation, so
rebalance with y still in place as the "double black" node,
then remove it.
*/
func (tree *rbTree[K, V]) erase(z *treeNode[K, V]) {
	y := tree.spliceTarget(z)
	if y.isLeaf() {
		if /* r3 */ y.isBlack() && !y.isRoot() {
			tree.removeRebalance(y)
		}
		/* r1 */
		tree.detach(y)
	} else /* r2 */ {
		child, _ := tree.detach(y)
		child.color = Black
	}

	if tree.root != nil {
		tree.root.color = Black
	}
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X carries an extra black. S is X's sibling, Sc is the nephew on
X's side and Sd is the nephew on the far side.

rm1: S is red, so P, Sc and Sd are black. Rotate P toward X and
swap the colors of P and S. X gets a black sibling (old Sc).

	  [P]                   <S>               [S]
	  / \    l-rot(P)       / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: S, Sc and Sd are black and P is red. Repaint S into red and
P into black, the extra black is absorbed.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: P, S, Sc and Sd are all black. Repaint S into red, so both
sides of P lost one black, and go on with P.

rm4: S is black, Sc is red and Sd is black. Rotate S away from X
and swap the colors of S and Sc. Enter rm5.

	  {P}                   {P}
	  / \    r-rot(S)       / \
	[X] [S]  ==========>  [X] [Sc]
	    / \                     \
	  <Sc> [Sd]                 <S>
	                              \
	                              [Sd]

rm5: S is black and Sd is red. Rotate P toward X, S takes the
color of P, P and Sd become black. Done.

	  {P}                   {S}
	  / \    l-rot(P)       / \
	[X] [S]  ==========>  [P] [Sd]
	    / \               / \
	 {Sc} <Sd>          [X] {Sc}
*/
func (tree *rbTree[K, V]) removeRebalance(x *treeNode[K, V]) {
	for !x.isRoot() && x.isBlack() {
		p, s := x.parent, x.sibling()
		dir := x.direction()
		if /* rm1 */ s.isRed() {
			tree.fixup("rm1", x)
			tree.lift(s)
			s.color, p.color = Black, Red
			s = x.sibling()
		}

		var sc, sd *treeNode[K, V]
		switch dir {
		case Left:
			sc, sd = s.left, s.right
		case Right:
			sc, sd = s.right, s.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			s.color = Red
			if /* rm2 */ p.isRed() {
				tree.fixup("rm2", x)
				p.color = Black
				return
			}
			/* rm3 */
			tree.fixup("rm3", x)
			x = p
			continue
		}

		if /* rm4 */ sd.isBlack() {
			tree.fixup("rm4", x)
			tree.lift(sc)
			sc.color, s.color = Black, Red
			s, sd = sc, s
		}

		/* rm5 */
		tree.fixup("rm5", x)
		tree.lift(s)
		s.color, p.color = p.color, Black
		sd.color = Black
		return
	}
}

func (tree *rbTree[K, V]) Clone() Tree[K, V] {
	clone := &rbTree[K, V]{}
	clone.bstCore = tree.bstCore.cloneFor(clone)
	return clone
}

func NewRBTree[K infra.OrderedKey, V any](opts ...TreeOption[K, V]) RBTree[K, V] {
	return NewRBTreeFunc[K, V](infra.OrderedKeyCompare[K], opts...)
}

func NewRBTreeFunc[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOption[K, V]) RBTree[K, V] {
	tree := &rbTree[K, V]{}
	tree.bstCore = newBSTCore[K, V]("RBTree", cmp, tree, opts...)
	return tree
}
