// Package bktree implements a BK-tree, a metric-indexed tree for fast
// range queries over any item type: given a distance function satisfying
// the triangle inequality, Find returns every stored item within a given
// distance of a query without scanning the whole collection.
//
// The metric must satisfy metric(x, x) == 0, metric(x, y) == metric(y, x)
// and the triangle inequality. These properties are preconditions, not
// checked at runtime; violating them makes Find silently miss matches.
//
// The tree is append-only and not safe for concurrent Insert. Read-only
// Find and Iterator calls may run in parallel on a tree that is not being
// mutated.
package bktree

// Metric reports the distance between two items as a non-negative integer.
type Metric[T any] func(a, b T) int

type Tree[T any] interface {
	Insert(item T)
	Find(query T, radius int) []Result[T]
	Iterator() Iterator[T]
	Size() int
	String() string
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// New returns a tree bound to metric, with the initial items inserted in
// argument order. Insertion order determines tree shape.
func New[T any](metric Metric[T], items ...T) Tree[T] {
	t := &tree[T]{metric: metric}
	for _, item := range items {
		t.Insert(item)
	}
	return t
}
