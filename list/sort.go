package list

import (
	"golang.org/x/exp/constraints"

	"github.com/segmentio/forwardlist/compare"
)

// Sort orders the elements of l in ascending order.
//
// See SortFunc for details on the algorithm.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(compare.Function[T])
}

// SortFunc orders the elements of the list according to the comparison
// function cmp, which must return a negative number when a < b, a positive
// number when a > b, and zero when a and b are equal.
//
// The list is sorted in place by relinking its cells with a merge sort, no
// elements are copied. The sort is stable: elements which compare equal retain
// their original relative order.
//
// Complexity: O(n log n)
func (l *List[T]) SortFunc(cmp func(T, T) int) {
	l.head = mergeSort(l.head, cmp)
}

// mergeSort sorts the chain starting at head and returns its new head. The
// recursion depth is bounded by log2 of the chain length.
func mergeSort[T any](head *cell[T], cmp func(T, T) int) *cell[T] {
	if head == nil || head.next == nil {
		return head
	}
	mid := middle(head)
	right := mid.next
	mid.next = nil
	return merge(mergeSort(head, cmp), mergeSort(right, cmp), cmp)
}

// middle returns the last cell of the first half of the non-empty chain
// starting at head. A chain of length n is split in a first half of ceil(n/2)
// cells and a second half of floor(n/2) cells.
func middle[T any](head *cell[T]) *cell[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// merge relinks the cells of two sorted chains into a single sorted chain.
// On ties, cells of the left chain are taken first.
func merge[T any](left, right *cell[T], cmp func(T, T) int) *cell[T] {
	head := cell[T]{}
	tail := &head

	for left != nil && right != nil {
		if cmp(left.value, right.value) <= 0 {
			tail.next, left = left, left.next
		} else {
			tail.next, right = right, right.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return head.next
}
