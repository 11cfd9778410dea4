package tree

// Shape predicates work on the read-only Node view, so they
// accept any Tree implementation. An empty tree satisfies all.

func bfsNodes[K any, V any](tree Tree[K, V]) []Node[K, V] {
	root := tree.Root()
	if root == nil {
		return nil
	}
	queue := make([]Node[K, V], 0, tree.Len())
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		if l := queue[head].Left(); l != nil {
			queue = append(queue, l)
		}
		if r := queue[head].Right(); r != nil {
			queue = append(queue, r)
		}
	}
	return queue
}

// IsFull reports whether every node has zero or two children.
func IsFull[K any, V any](tree Tree[K, V]) bool {
	for _, x := range bfsNodes(tree) {
		if (x.Left() == nil) != (x.Right() == nil) {
			return false
		}
	}
	return true
}

// IsPerfect reports whether every level is completely filled.
func IsPerfect[K any, V any](tree Tree[K, V]) bool {
	n := len(bfsNodes(tree))
	h := tree.Height()
	return n == 1<<h-1
}

// IsComplete reports whether every level but the last is
// filled and the last one is filled from the left.
func IsComplete[K any, V any](tree Tree[K, V]) bool {
	isEnd := false
	for _, x := range bfsNodes(tree) {
		for _, child := range [2]Node[K, V]{x.Left(), x.Right()} {
			if child == nil {
				isEnd = true
			} else if isEnd {
				return false
			}
		}
	}
	return true
}

// IsDegenerate reports whether no node has two children.
func IsDegenerate[K any, V any](tree Tree[K, V]) bool {
	for _, x := range bfsNodes(tree) {
		if x.Left() != nil && x.Right() != nil {
			return false
		}
	}
	return true
}

// IsHeightBalanced reports whether the subtree heights of every
// node differ by at most one. Heights are computed, not read.
func IsHeightBalanced[K any, V any](tree Tree[K, V]) bool {
	nodes := bfsNodes(tree)
	heights := make(map[Node[K, V]]int, len(nodes))
	heightOf := func(x Node[K, V]) int {
		if x == nil {
			return 0
		}
		return heights[x]
	}
	// Children come after their parent in BFS order.
	for i := len(nodes) - 1; i >= 0; i-- {
		x := nodes[i]
		l, r := heightOf(x.Left()), heightOf(x.Right())
		if l-r > 1 || r-l > 1 {
			return false
		}
		heights[x] = 1 + max(l, r)
	}
	return true
}
