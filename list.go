// Package linkedlist provides a generic doubly-linked list with constant-time access to both ends
// and index-based access that walks from whichever end is closer.
//
// Operations that take an index never panic on a bad one. Getters return false in their second
// return, and mutators return false to report that the list was not modified.
package linkedlist

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/iterator"
	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/linkedlist/internal/xlist"
)

// List is a doubly-linked list of T. The zero value is an empty list ready to use.
//
// List is not safe for concurrent use. Callers that share a List between goroutines must
// synchronize access themselves.
type List[T any] struct {
	nodes xlist.List[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding values in order.
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	l.AddAll(values)
	return l
}

// FromIterator returns a list holding everything it produces, in order.
func FromIterator[T any](it iterator.Iterator[T]) *List[T] {
	l := New[T]()
	l.InsertIterator(0, it)
	return l
}

// Clone returns a new list holding the same values as l in the same order.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for node := l.nodes.Front(); node != nil; node = node.Next() {
		c.nodes.PushBack(node.Value)
	}
	return c
}

// Len returns the number of items in l.
func (l *List[T]) Len() int { return l.nodes.Len() }

// First returns the first item in l, or false in the second return if l is empty.
func (l *List[T]) First() (T, bool) {
	return valueOf(l.nodes.Front())
}

// Last returns the last item in l, or false in the second return if l is empty.
func (l *List[T]) Last() (T, bool) {
	return valueOf(l.nodes.Back())
}

// PushFront adds value to the front of l.
func (l *List[T]) PushFront(value T) { l.nodes.PushFront(value) }

// PushBack adds value to the back of l.
func (l *List[T]) PushBack(value T) { l.nodes.PushBack(value) }

// Add is an alias for PushBack.
func (l *List[T]) Add(value T) { l.nodes.PushBack(value) }

// PopFront removes and returns the first item in l, or returns false in the second return if l is
// empty.
func (l *List[T]) PopFront() (T, bool) {
	return l.removeNode(l.nodes.Front())
}

// PopBack removes and returns the last item in l, or returns false in the second return if l is
// empty.
func (l *List[T]) PopBack() (T, bool) {
	return l.removeNode(l.nodes.Back())
}

// Get returns the item at index i, or false in the second return if i is not in [0, l.Len()).
func (l *List[T]) Get(i int) (T, bool) {
	return valueOf(l.nodes.At(i))
}

// Set replaces the item at index i with value and returns the item that was there. Returns false in
// the second return and leaves l unchanged if i is not in [0, l.Len()).
func (l *List[T]) Set(i int, value T) (T, bool) {
	node := l.nodes.At(i)
	if node == nil {
		var zero T
		return zero, false
	}
	old := node.Value
	node.Value = value
	return old, true
}

// Insert inserts value so that it becomes the item at index i, shifting later items back by one.
// i may be l.Len(), which appends. Returns false without modifying l if i is not in [0, l.Len()].
func (l *List[T]) Insert(i int, value T) bool {
	if !l.insertable(i) {
		return false
	}
	if i == l.nodes.Len() {
		l.nodes.PushBack(value)
	} else {
		l.nodes.InsertBefore(value, l.nodes.At(i))
	}
	return true
}

// RemoveAt removes and returns the item at index i, or returns false in the second return if i is
// not in [0, l.Len()).
func (l *List[T]) RemoveAt(i int) (T, bool) {
	return l.removeNode(l.nodes.At(i))
}

// AddAll appends values to the back of l in order. Returns true if l was modified.
func (l *List[T]) AddAll(values []T) bool {
	return l.InsertAll(l.nodes.Len(), values)
}

// InsertAll inserts values in order so that values[0] becomes the item at index i. i may be
// l.Len(), which appends. Returns false without modifying l if i is not in [0, l.Len()] or values is
// empty.
func (l *List[T]) InsertAll(i int, values []T) bool {
	return l.InsertIterator(i, iterator.Slice(values))
}

// InsertIterator is InsertAll for the items produced by it. it is drained completely before l is
// modified, so it may iterate over l itself.
func (l *List[T]) InsertIterator(i int, it iterator.Iterator[T]) bool {
	if !l.insertable(i) {
		return false
	}
	var chain xlist.List[T]
	for {
		value, ok := it.Next()
		if !ok {
			break
		}
		chain.PushBack(value)
	}
	if chain.Len() == 0 {
		return false
	}
	l.nodes.SpliceBefore(&chain, l.nodes.At(i))
	return true
}

// Splice moves every item of other into l so that other's first item becomes the item at index i.
// The items are relinked rather than copied, and other is left empty. i may be l.Len(), which
// appends.
//
// Returns false and modifies neither list if i is not in [0, l.Len()] or other is nil or empty.
//
// If other is l, a copy of l's items is inserted at i instead.
func (l *List[T]) Splice(i int, other *List[T]) bool {
	if other == nil || other.Len() == 0 || !l.insertable(i) {
		return false
	}
	if other == l {
		return l.InsertAll(i, l.ToSlice())
	}
	l.nodes.SpliceBefore(&other.nodes, l.nodes.At(i))
	return true
}

// Append moves every item of other onto the back of l, leaving other empty. See Splice.
func (l *List[T]) Append(other *List[T]) bool {
	return l.Splice(l.nodes.Len(), other)
}

// Concat returns a new list holding the items of each of lists in order. None of lists are
// modified.
func Concat[T any](lists ...*List[T]) *List[T] {
	out := New[T]()
	for _, l := range lists {
		if l == nil {
			continue
		}
		out.Append(l.Clone())
	}
	return out
}

// Clear removes all items from l.
func (l *List[T]) Clear() { l.nodes.Clear() }

// ToSlice returns a newly allocated slice of l's items in order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.nodes.Len())
	for node := l.nodes.Front(); node != nil; node = node.Next() {
		out = append(out, node.Value)
	}
	return out
}

// String renders l as "[]" when empty and as "[a <-> b <-> c]" otherwise.
func (l *List[T]) String() string {
	if l.nodes.Len() == 0 {
		return "[]"
	}
	parts := xslices.Map(l.ToSlice(), func(value T) string { return fmt.Sprint(value) })
	return "[" + strings.Join(parts, " <-> ") + "]"
}

func (l *List[T]) insertable(i int) bool {
	return i >= 0 && i <= l.nodes.Len()
}

func (l *List[T]) removeNode(node *xlist.Node[T]) (T, bool) {
	if node == nil {
		var zero T
		return zero, false
	}
	l.nodes.Remove(node)
	return node.Value, true
}

func valueOf[T any](node *xlist.Node[T]) (T, bool) {
	if node == nil {
		var zero T
		return zero, false
	}
	return node.Value, true
}
