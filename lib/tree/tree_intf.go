package tree

import (
	"errors"
	"iter"
)

var (
	ErrKeyNotFound  = errors.New("[tree] key not found")
	ErrDuplicateKey = errors.New("[tree] duplicate key")
	ErrEmptyTree    = errors.New("[tree] there is no element")
	ErrInvalidOrder = errors.New("[tree] invalid traversal order")
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "Unknown"
}

type Direction int8

const (
	Left Direction = -1 + iota
	Root
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return "Unknown"
}

type TraversalOrder uint8

const (
	InOrder TraversalOrder = iota
	PreOrder
	PostOrder
	LevelOrder
	ReverseLevelOrder
	BoundaryOrder
	DiagonalOrder
	_orderMax
)

var orderNames = [_orderMax]string{
	InOrder:           "inorder",
	PreOrder:          "preorder",
	PostOrder:         "postorder",
	LevelOrder:        "levelorder",
	ReverseLevelOrder: "reverselevelorder",
	BoundaryOrder:     "boundary",
	DiagonalOrder:     "diagonal",
}

func (o TraversalOrder) String() string {
	if o >= _orderMax {
		return "unknown"
	}
	return orderNames[o]
}

func ParseTraversalOrder(name string) (TraversalOrder, error) {
	for o, n := range orderNames {
		if n == name {
			return TraversalOrder(o), nil
		}
	}
	return _orderMax, ErrInvalidOrder
}

// Node is the read-only view of a tree node.
// Missing links are reported as untyped nil.
type Node[K any, V any] interface {
	Key() K
	Val() V
	Left() Node[K, V]
	Right() Node[K, V]
	Parent() Node[K, V]
}

type RBNode[K any, V any] interface {
	Node[K, V]
	Color() RBColor
}

// AVLNode exposes the stored subtree height. Only AVL trees
// maintain it, red-black and splay nodes always report 0.
type AVLNode[K any, V any] interface {
	Node[K, V]
	Height() int
}

// Tree is the contract shared by the AVL, red-black and splay trees.
//
// A tree is not safe for concurrent use. Splay tree reads
// restructure the tree, so they need exclusive access too.
type Tree[K any, V any] interface {
	Len() int64
	IsEmpty() bool
	// Height counts nodes on the longest root to leaf path.
	Height() int
	Root() Node[K, V]
	Insert(key K, val V) error
	InsertAll(entries iter.Seq2[K, V]) (int64, error)
	// Remove returns a detached node holding the removed entry.
	Remove(key K) (Node[K, V], error)
	RemoveMin() (Node[K, V], error)
	RemoveMax() (Node[K, V], error)
	Search(key K) (V, error)
	Contains(key K) bool
	Min() (Node[K, V], error)
	Max() (Node[K, V], error)
	Successor(key K) (Node[K, V], error)
	Predecessor(key K) (Node[K, V], error)
	Traverse(order TraversalOrder) (iter.Seq2[K, V], error)
	ToList(order TraversalOrder) ([]K, error)
	Foreach(action func(idx int64, key K, val V) bool)
	Clone() Tree[K, V]
	// Equal compares the in-order entries only, shape is ignored.
	Equal(other Tree[K, V]) bool
	Release()
	String() string
}

type AVLTree[K any, V any] interface {
	Tree[K, V]
}

type RBTree[K any, V any] interface {
	Tree[K, V]
}

type SplayTree[K any, V any] interface {
	Tree[K, V]
	// Touch promotes key to the root without reading it.
	Touch(key K) error
}
