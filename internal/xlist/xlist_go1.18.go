//go:build go1.18

// Package xlist is the node chain underneath linkedlist.List. It does no bounds checking of its
// own: callers are expected to pass nodes that belong to the list and indexes that are in range.
package xlist

type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	size  int
}

func (l *List[T]) Len() int        { return l.size }
func (l *List[T]) Front() *Node[T] { return l.front }
func (l *List[T]) Back() *Node[T]  { return l.back }

func (l *List[T]) Clear() { l.front = nil; l.back = nil; l.size = 0 }

func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{
		next:  l.front,
		Value: value,
	}
	if l.front != nil {
		l.front.prev = node
	}
	l.front = node
	if l.back == nil {
		l.back = node
	}
	l.size++
	return node
}

func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{
		prev:  l.back,
		Value: value,
	}
	if l.back != nil {
		l.back.next = node
	}
	l.back = node
	if l.front == nil {
		l.front = node
	}
	l.size++
	return node
}

func (l *List[T]) InsertBefore(value T, mark *Node[T]) *Node[T] {
	node := &Node[T]{
		Value: value,
	}
	node.prev = mark.prev
	if node.prev != nil {
		node.prev.next = node
	}
	mark.prev = node
	node.next = mark
	if l.front == mark {
		l.front = node
	}
	l.size++
	return node
}

// Remove unlinks node from l. node must be in l.
func (l *List[T]) Remove(node *Node[T]) {
	if l.front == node {
		l.front = node.next
	} else {
		node.prev.next = node.next
	}
	if l.back == node {
		l.back = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.prev = nil
	node.next = nil
	l.size--
}

// At returns the node at position i, walking from whichever end is closer. Returns nil if i is out
// of range.
func (l *List[T]) At(i int) *Node[T] {
	if i < 0 || i >= l.size {
		return nil
	}
	if i < l.size/2 {
		node := l.front
		for ; i > 0; i-- {
			node = node.next
		}
		return node
	}
	node := l.back
	for j := l.size - 1; j > i; j-- {
		node = node.prev
	}
	return node
}

// SpliceBefore moves every node of other into l just before mark, or onto the back of l if mark is
// nil. other is left empty. The nodes are relinked, not copied.
//
// other must not be l.
func (l *List[T]) SpliceBefore(other *List[T], mark *Node[T]) {
	if other.size == 0 {
		return
	}
	first, last := other.front, other.back

	var before *Node[T]
	if mark == nil {
		before = l.back
	} else {
		before = mark.prev
	}

	first.prev = before
	last.next = mark
	if before == nil {
		l.front = first
	} else {
		before.next = first
	}
	if mark == nil {
		l.back = last
	} else {
		mark.prev = last
	}
	l.size += other.size
	other.Clear()
}

type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	Value T
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }
