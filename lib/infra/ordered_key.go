package infra

import "errors"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

var ErrIncomparableKeys = errors.New("[infra] keys are incomparable")

// KeyComparator
// Assume i is the new key.
//  1. i == j (return 0)
//  2. i > j (return 1), turn to right part.
//  3. i < j (return -1), turn to left part.
//
// A comparator unable to order i and j returns ErrIncomparableKeys
// (or an error wrapping it).
type KeyComparator[K any] func(i, j K) (int64, error)

// OrderedKeyCompare is the natural ordering of OrderedKey.
// NaN has no position in a total order, so it is rejected.
func OrderedKeyCompare[K OrderedKey](i, j K) (int64, error) {
	if /* NaN */ i != i || j != j {
		return 0, ErrIncomparableKeys
	}
	if i == j {
		return 0, nil
	} else if i < j {
		return -1, nil
	}
	return 1, nil
}

// ReverseKeyComparator flips the result of cmp.
func ReverseKeyComparator[K any](cmp KeyComparator[K]) KeyComparator[K] {
	return func(i, j K) (int64, error) {
		res, err := cmp(i, j)
		return -res, err
	}
}
