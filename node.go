package bktree

// childAt returns the child reached over an edge of exactly the given
// distance, or nil when no such edge exists.
func (n *node[T]) childAt(distance int) *node[T] {
	if n.children == nil {
		return nil
	}
	return n.children[distance]
}

// attach links child over an edge of the given distance. The caller must
// have checked that the distance is not already taken.
func (n *node[T]) attach(distance int, child *node[T]) {
	if n.children == nil {
		n.children = make(map[int]*node[T])
	}
	n.children[distance] = child
}

// childrenWithin appends to dst every child whose edge distance k satisfies
// lower <= k <= upper. By the triangle inequality only those subtrees can
// hold an item within the query radius; the bound must stay this closed
// interval, a narrower one drops true matches.
func (n *node[T]) childrenWithin(dst []*node[T], lower, upper int) []*node[T] {
	for k, c := range n.children {
		if lower <= k && k <= upper {
			dst = append(dst, c)
		}
	}
	return dst
}

func (n *node[T]) appendChildren(dst []*node[T]) []*node[T] {
	for _, c := range n.children {
		dst = append(dst, c)
	}
	return dst
}
