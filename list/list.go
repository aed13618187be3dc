// Package list contains the implementation of a type-safe, singly-linked list.
//
// The standard library provides a doubly-linked list in the container/list
// package, which stores values as interface{} and links every element in both
// directions. The List type in this package takes the opposite trade-off: it is
// generic over the element type, and each element only references its
// successor. Insertion and removal at the front of the list run in constant
// time, while operations on the back of the list or at an arbitrary position
// walk the chain from the front.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[int]{}
//	l.PushBack(10)
//	l.PushBack(5)
//	l.PushFront(20)
//
//	list.Sort(&l)
//
//	l.Range(func(v int) bool {
//		...
//		return true
//	})
//
// Operations that require elements, like Front or PopBack, report misuse by
// returning ErrEmpty or ErrIndexOutOfRange rather than panicking. The list is
// not safe to use concurrently from multiple goroutines.
package list

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned by operations which need at least one element
	// when called on an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrIndexOutOfRange is returned by At when the index does not designate
	// an element of the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type cell[T any] struct {
	next  *cell[T]
	value T
}

// List values are singly-linked sequences of elements of type T.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *cell[T]
	size int
}

// New constructs a list containing the values passed as arguments, in order.
//
// Complexity: O(n)
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	tail := &l.head
	for _, v := range values {
		c := &cell[T]{value: v}
		*tail = c
		tail = &c.next
	}
	l.size = len(values)
	return l
}

// Len returns the number of elements in the list.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// Empty returns true if the list contains no elements.
//
// Complexity: O(1)
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the element at the front of the list, or ErrEmpty if the list
// has no elements.
//
// Complexity: O(1)
func (l *List[T]) Front() (value T, err error) {
	if l.head == nil {
		return value, ErrEmpty
	}
	return l.head.value, nil
}

// Back returns the element at the back of the list, or ErrEmpty if the list
// has no elements.
//
// Complexity: O(n)
func (l *List[T]) Back() (value T, err error) {
	if l.head == nil {
		return value, ErrEmpty
	}
	return l.last().value, nil
}

// At returns the element at the zero-based position index. The method returns
// an error matching ErrIndexOutOfRange if index is negative or not lower than
// the length of the list.
//
// Complexity: O(n)
func (l *List[T]) At(index int) (value T, err error) {
	if index < 0 || index >= l.size {
		return value, errors.Wrapf(ErrIndexOutOfRange, "index %d of list with length %d", index, l.size)
	}
	c := l.head
	for i := 0; i < index; i++ {
		c = c.next
	}
	return c.value, nil
}

// PushFront inserts value at the front of the list.
//
// Complexity: O(1)
func (l *List[T]) PushFront(value T) {
	l.head = &cell[T]{next: l.head, value: value}
	l.size++
}

// PushBack inserts value at the back of the list.
//
// Complexity: O(n)
func (l *List[T]) PushBack(value T) {
	c := &cell[T]{value: value}
	if l.head == nil {
		l.head = c
	} else {
		l.last().next = c
	}
	l.size++
}

// PopFront removes the element at the front of the list and returns it, or
// returns ErrEmpty if the list was empty.
//
// Complexity: O(1)
func (l *List[T]) PopFront() (value T, err error) {
	c := l.head
	if c == nil {
		return value, ErrEmpty
	}
	l.head, c.next = c.next, nil
	l.size--
	return c.value, nil
}

// PopBack removes the element at the back of the list and returns it, or
// returns ErrEmpty if the list was empty.
//
// Complexity: O(n)
func (l *List[T]) PopBack() (value T, err error) {
	if l.head == nil {
		return value, ErrEmpty
	}
	// Walk to the link referencing the last cell so it can be re-terminated,
	// which is the list head itself when there is a single element.
	link := &l.head
	for (*link).next != nil {
		link = &(*link).next
	}
	value, *link = (*link).value, nil
	l.size--
	return value, nil
}

// Clear removes all elements from the list.
//
// The links between cells are severed one by one so that no cell released by
// the list keeps the rest of the chain reachable.
//
// Complexity: O(n)
func (l *List[T]) Clear() {
	for c := l.head; c != nil; {
		next := c.next
		c.next = nil
		c = next
	}
	l.head = nil
	l.size = 0
}

// Reverse reverses the order of elements in the list, in place.
//
// Complexity: O(n)
func (l *List[T]) Reverse() {
	var prev *cell[T]
	for c := l.head; c != nil; {
		next := c.next
		c.next = prev
		prev, c = c, next
	}
	l.head = prev
}

// Range calls f for each element of the list, from front to back. If f returns
// false, the iteration is stopped.
//
// Complexity: O(n)
func (l *List[T]) Range(f func(T) bool) {
	for c := l.head; c != nil; c = c.next {
		if !f(c.value) {
			break
		}
	}
}

// Values returns a slice containing a copy of the list elements, from front to
// back.
//
// Complexity: O(n)
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for c := l.head; c != nil; c = c.next {
		values = append(values, c.value)
	}
	return values
}

func (l *List[T]) last() *cell[T] {
	c := l.head
	for c.next != nil {
		c = c.next
	}
	return c
}
