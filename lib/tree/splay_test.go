package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func splaySequentialTree(t *testing.T, n int) SplayTree[int, int] {
	tree := NewSplayTree[int, int]()
	for i := 1; i <= n; i++ {
		require.NoError(t, tree.Insert(i, i))
		require.Equal(t, i, tree.Root().Key())
	}
	return tree
}

func TestSplayTree_InsertSplays(t *testing.T) {
	tree := splaySequentialTree(t, 7)
	require.NoError(t, Validate[int, int](tree))

	// Every insert lands on the right of the old root.
	require.Equal(t, 7, tree.Height())
	require.True(t, IsDegenerate[int, int](tree))
	keys, err := tree.ToList(PreOrder)
	require.NoError(t, err)
	require.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, keys)
}

func TestSplayTree_SearchSplays(t *testing.T) {
	tree := splaySequentialTree(t, 7)

	val, err := tree.Search(3)
	require.NoError(t, err)
	require.Equal(t, 3, val)
	require.Equal(t, 3, tree.Root().Key())
	require.NoError(t, Validate[int, int](tree))
	keys, err := tree.ToList(InOrder)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys)

	// zig-zig on a chain roughly halves the depth.
	require.Less(t, tree.Height(), 7)

	require.True(t, tree.Contains(6))
	require.Equal(t, 6, tree.Root().Key())
}

func TestSplayTree_FailedAccess(t *testing.T) {
	tree := splaySequentialTree(t, 7)
	before, err := tree.ToList(PreOrder)
	require.NoError(t, err)

	_, err = tree.Search(100)
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.ErrorIs(t, tree.Touch(0), ErrKeyNotFound)
	require.False(t, tree.Contains(-1))
	_, err = tree.Successor(7)
	require.ErrorIs(t, err, ErrKeyNotFound)

	after, err := tree.ToList(PreOrder)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Equal(t, 7, tree.Root().Key())
}

func TestSplayTree_Touch(t *testing.T) {
	tree := splaySequentialTree(t, 7)
	require.NoError(t, tree.Touch(1))
	require.Equal(t, 1, tree.Root().Key())
	require.Nil(t, tree.Root().Left())
	require.NoError(t, Validate[int, int](tree))

	require.NoError(t, tree.Touch(4))
	require.Equal(t, 4, tree.Root().Key())
	require.NoError(t, Validate[int, int](tree))
}

func TestSplayTree_MinMaxSuccPred(t *testing.T) {
	tree := splaySequentialTree(t, 7)

	x, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, 1, x.Key())
	require.Equal(t, 1, tree.Root().Key())

	x, err = tree.Max()
	require.NoError(t, err)
	require.Equal(t, 7, x.Key())
	require.Equal(t, 7, tree.Root().Key())

	x, err = tree.Predecessor(4)
	require.NoError(t, err)
	require.Equal(t, 3, x.Key())
	require.Equal(t, 3, tree.Root().Key())

	x, err = tree.Successor(3)
	require.NoError(t, err)
	require.Equal(t, 4, x.Key())
	require.Equal(t, 4, tree.Root().Key())
	require.NoError(t, Validate[int, int](tree))
}

func TestSplayTree_Remove(t *testing.T) {
	tree := splaySequentialTree(t, 7)

	// The root has a single child, nothing left to splay.
	x, err := tree.Remove(7)
	require.NoError(t, err)
	require.Equal(t, 7, x.Key())
	require.Equal(t, 6, tree.Root().Key())

	// The parent of the removed node is splayed.
	x, err = tree.Remove(3)
	require.NoError(t, err)
	require.Equal(t, 3, x.Key())
	require.Equal(t, 4, tree.Root().Key())
	require.NoError(t, Validate[int, int](tree))

	keys, err := tree.ToList(InOrder)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 5, 6}, keys)

	_, err = tree.Remove(3)
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.Equal(t, int64(5), tree.Len())
	require.Equal(t, 4, tree.Root().Key())
}

func TestSplayTree_TraverseDoesNotSplay(t *testing.T) {
	tree := splaySequentialTree(t, 5)
	seq, err := tree.Traverse(InOrder)
	require.NoError(t, err)
	for range seq {
	}
	tree.Foreach(func(int64, int, int) bool { return true })
	_ = tree.String()
	require.Equal(t, 5, tree.Root().Key())
}

func TestSplayTreeRandomInsertAndRemove(t *testing.T) {
	total := 5000
	tree := NewSplayTree[int, int]()
	perm := randv2.Perm(total)
	for i, key := range perm {
		require.NoError(t, tree.Insert(key, i))
		require.Equal(t, key, tree.Root().Key())
	}
	require.NoError(t, Validate[int, int](tree))

	randv2.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	for _, key := range perm[:total/2] {
		_, err := tree.Search(key)
		require.NoError(t, err)
		require.Equal(t, key, tree.Root().Key())
		x, err := tree.Remove(key)
		require.NoError(t, err)
		require.Equal(t, key, x.Key())
	}
	require.NoError(t, Validate[int, int](tree))
	require.Equal(t, int64(total-total/2), tree.Len())
	keys, err := tree.ToList(InOrder)
	require.NoError(t, err)
	for _, key := range keys {
		require.True(t, tree.Contains(key))
		require.Equal(t, key, tree.Root().Key())
	}
}

func BenchmarkSplayTree_Random(b *testing.B) {
	b.StopTimer()
	tree := NewSplayTree[int, struct{}](WithTreeValReplace[int, struct{}]())

	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Insert(rngArr[i], struct{}{}); err != nil {
			panic(err)
		}
	}
}
