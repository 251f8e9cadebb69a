package linkedlist

import (
	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/linkedlist/internal/xlist"
)

// ContainsFunc returns true if any item in l satisfies f.
func (l *List[T]) ContainsFunc(f func(T) bool) bool {
	return l.find(f) != nil
}

// IndexFunc returns the index of the first item in l that satisfies f, or -1 if none do.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	i := 0
	for node := l.nodes.Front(); node != nil; node = node.Next() {
		if f(node.Value) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexFunc returns the index of the last item in l that satisfies f, or -1 if none do.
func (l *List[T]) LastIndexFunc(f func(T) bool) int {
	i := l.nodes.Len() - 1
	for node := l.nodes.Back(); node != nil; node = node.Prev() {
		if f(node.Value) {
			return i
		}
		i--
	}
	return -1
}

// RemoveFunc removes the first item in l that satisfies f. Returns true if an item was removed.
func (l *List[T]) RemoveFunc(f func(T) bool) bool {
	node := l.find(f)
	if node == nil {
		return false
	}
	l.nodes.Remove(node)
	return true
}

func (l *List[T]) find(f func(T) bool) *xlist.Node[T] {
	for node := l.nodes.Front(); node != nil; node = node.Next() {
		if f(node.Value) {
			return node
		}
	}
	return nil
}

// Contains returns true if value is in l.
func Contains[T comparable](l *List[T], value T) bool {
	return l.ContainsFunc(equalTo(value))
}

// IndexOf returns the index of the first occurrence of value in l, or -1 if it isn't present.
func IndexOf[T comparable](l *List[T], value T) int {
	return l.IndexFunc(equalTo(value))
}

// LastIndexOf returns the index of the last occurrence of value in l, or -1 if it isn't present.
func LastIndexOf[T comparable](l *List[T], value T) int {
	return l.LastIndexFunc(equalTo(value))
}

// Remove removes the first occurrence of value from l. Returns true if it was present.
func Remove[T comparable](l *List[T], value T) bool {
	return l.RemoveFunc(equalTo(value))
}

func equalTo[T comparable](value T) func(T) bool {
	return func(other T) bool { return other == value }
}

// Iterate returns an iterator over l's items from front to back. l must not be modified while the
// iterator is in use.
func (l *List[T]) Iterate() iterator.Iterator[T] {
	return &nodeIterator[T]{node: l.nodes.Front()}
}

// Backward returns an iterator over l's items from back to front. l must not be modified while the
// iterator is in use.
func (l *List[T]) Backward() iterator.Iterator[T] {
	return &nodeIterator[T]{node: l.nodes.Back(), backward: true}
}

type nodeIterator[T any] struct {
	node     *xlist.Node[T]
	backward bool
}

func (it *nodeIterator[T]) Next() (T, bool) {
	if it.node == nil {
		var zero T
		return zero, false
	}
	value := it.node.Value
	if it.backward {
		it.node = it.node.Prev()
	} else {
		it.node = it.node.Next()
	}
	return value, true
}
