package bktree

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

var (
	ErrNoMoreItems = errors.New("There are no more items in the tree")
)

type (
	tree[T any] struct {
		size   int
		root   *node[T]
		metric Metric[T]
	}

	// Result pairs a stored item with its exact distance to the query.
	Result[T any] struct {
		Distance int
		Item     T
	}

	node[T any] struct {
		item T
		// one child per distinct edge distance; the edge label equals
		// metric(item, child.item) at insertion time and is never recomputed
		children map[int]*node[T]
	}

	iterator[T any] struct {
		pending []*node[T]
	}
)

func newNode[T any](item T) *node[T] {
	return &node[T]{item: item}
}

func (t *tree[T]) String() string {
	if t.root == nil {
		return fmt.Sprintf("bktree[empty, metric=%s]", metricName(t.metric))
	}
	return fmt.Sprintf("bktree[%d items, %d top-level nodes, metric=%s]",
		t.size, len(t.root.children), metricName(t.metric))
}

func metricName[T any](m Metric[T]) string {
	if m == nil {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(m).Pointer()); fn != nil {
		return fn.Name()
	}
	return "<unknown>"
}
