package xlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func checkList[T any](t *testing.T, l *List[T], expected []T) {
	t.Helper()

	if l.size == 0 {
		require.Nil(t, l.front)
		require.Nil(t, l.back)
	} else {
		require.Nil(t, l.front.prev)
		require.Nil(t, l.back.next)
	}

	var forward []T
	var prev *Node[T]
	for node := l.front; node != nil; node = node.next {
		require.True(t, node.prev == prev, "bad prev link at forward position %d", len(forward))
		forward = append(forward, node.Value)
		prev = node
	}
	require.True(t, prev == l.back)
	require.Len(t, forward, l.size)

	var backward []T
	for node := l.back; node != nil; node = node.prev {
		backward = append(backward, node.Value)
	}
	require.Len(t, backward, l.size)

	if len(expected) == 0 {
		require.Empty(t, forward)
		return
	}
	require.Equal(t, expected, forward)
	for i := range backward {
		require.Equal(t, expected[len(expected)-1-i], backward[i])
	}
}

func fromSlice[T any](values ...T) *List[T] {
	var l List[T]
	for _, v := range values {
		l.PushBack(v)
	}
	return &l
}

func TestPush(t *testing.T) {
	var l List[int]
	checkList(t, &l, nil)

	l.PushFront(2)
	checkList(t, &l, []int{2})
	require.True(t, l.Front() == l.Back())

	l.PushFront(1)
	l.PushBack(3)
	checkList(t, &l, []int{1, 2, 3})

	l.Clear()
	checkList(t, &l, nil)
}

func TestInsertBefore(t *testing.T) {
	l := fromSlice(1, 3)
	l.InsertBefore(2, l.Back())
	checkList(t, l, []int{1, 2, 3})

	l.InsertBefore(0, l.Front())
	checkList(t, l, []int{0, 1, 2, 3})
}

func TestRemove(t *testing.T) {
	l := fromSlice(1, 2, 3, 4)

	l.Remove(l.At(1))
	checkList(t, l, []int{1, 3, 4})

	l.Remove(l.Front())
	checkList(t, l, []int{3, 4})

	l.Remove(l.Back())
	checkList(t, l, []int{3})

	node := l.Front()
	l.Remove(node)
	checkList(t, l, nil)
	require.Nil(t, node.Next())
	require.Nil(t, node.Prev())
}

func TestAt(t *testing.T) {
	for n := 0; n < 8; n++ {
		l := List[int]{}
		for i := 0; i < n; i++ {
			l.PushBack(i * 10)
		}
		require.Nil(t, l.At(-1))
		require.Nil(t, l.At(n))
		for i := 0; i < n; i++ {
			node := l.At(i)
			require.NotNil(t, node)
			require.Equal(t, i*10, node.Value)
		}
	}
}

func TestSpliceBefore(t *testing.T) {
	tests := []struct {
		name     string
		into     []int
		other    []int
		at       int
		expected []int
	}{
		{"IntoEmpty", nil, []int{1, 2}, 0, []int{1, 2}},
		{"Front", []int{3, 4}, []int{1, 2}, 0, []int{1, 2, 3, 4}},
		{"Middle", []int{1, 4}, []int{2, 3}, 1, []int{1, 2, 3, 4}},
		{"Back", []int{1, 2}, []int{3, 4}, 2, []int{1, 2, 3, 4}},
		{"Single", []int{1, 3}, []int{2}, 1, []int{1, 2, 3}},
		{"EmptyOther", []int{1, 2}, nil, 1, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			into := fromSlice(tt.into...)
			other := fromSlice(tt.other...)
			into.SpliceBefore(other, into.At(tt.at))
			checkList(t, into, tt.expected)
			checkList(t, other, nil)
		})
	}
}
