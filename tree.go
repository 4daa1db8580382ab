package bktree

import "sort"

func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Insert adds item as a new leaf. Insertion descends through existing
// children whose edge distance collides with the computed distance, so
// equal items chain along distance-0 edges rather than being rejected.
func (t *tree[T]) Insert(item T) {
	t.size++
	if t.root == nil {
		t.root = newNode(item)
		return
	}

	curr := t.root
	for {
		d := t.metric(item, curr.item)
		next := curr.childAt(d)
		if next == nil {
			curr.attach(d, newNode(item))
			return
		}
		curr = next
	}
}

// Find returns every stored item whose distance to query is at most radius,
// ordered by ascending distance. Items of equal distance keep discovery
// order, which depends on tree shape and is not part of the contract.
// A negative radius yields no results.
func (t *tree[T]) Find(query T, radius int) []Result[T] {
	if t.root == nil || radius < 0 {
		return nil
	}

	var found []Result[T]
	candidates := []*node[T]{t.root}

	for len(candidates) > 0 {
		curr := candidates[0]
		candidates = candidates[1:]

		d := t.metric(query, curr.item)
		if d <= radius {
			found = append(found, Result[T]{Distance: d, Item: curr.item})
		}
		candidates = curr.childrenWithin(candidates, d-radius, d+radius)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Distance < found[j].Distance
	})
	return found
}

// Iterator walks every stored item exactly once, in unspecified order.
// Each call starts from scratch against the current tree structure.
func (t *tree[T]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	if t.root != nil {
		it.pending = []*node[T]{t.root}
	}
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && len(it.pending) > 0
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	curr := it.pending[0]
	it.pending = curr.appendChildren(it.pending[1:])
	return curr.item, nil
}
