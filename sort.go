package strq

// An Algorithm selects the sorting strategy used by [Queue.SortBy].
type Algorithm int

const (
	// Merge splits the chain at its structural midpoint, sorts the
	// halves and splices them back together. O(n log n) worst case.
	Merge Algorithm = iota

	// Partition pivots on the last node of each range and exchanges
	// payloads between nodes, quicksort-style. O(n log n) on average
	// but O(n^2) in the worst case.
	Partition
)

// Sort sorts the queue's elements into ascending byte-wise
// lexicographic order using the [Merge] algorithm. See [Queue.SortBy].
func (q *Queue) Sort() {
	q.SortBy(Merge)
}

// SortBy sorts like [Queue.Sort] using the given algorithm. The sort
// operates in place on the existing chain: no nodes are allocated or
// released, only relinked or, for [Partition], their payloads
// exchanged. Neither algorithm is stable; callers must not depend on
// the relative order of equal elements. SortBy is a no-op if q is nil
// or holds fewer than two elements.
func (q *Queue) SortBy(alg Algorithm) {
	if q == nil || q.count < 2 {
		return
	}

	switch alg {
	case Partition:
		quickSort(q.head, q.tail)
	default:
		q.head = mergeSort(q.head)
	}

	// Either algorithm may leave tail stale; rederive it from the
	// head.
	tail := q.head
	for tail.next != nil {
		tail = tail.next
	}
	q.tail = tail
}

// mergeSort sorts the chain starting at head and returns its new head.
func mergeSort(head *node) *node {
	if head == nil || head.next == nil {
		return head
	}

	// Walk slow/fast pointers to the structural midpoint and cut the
	// chain there.
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil

	return merge(mergeSort(head), mergeSort(right))
}

// merge splices two sorted chains into one, relinking whichever head
// node holds the smaller value rather than copying values around.
func merge(left, right *node) *node {
	var head *node
	at := &head
	for left != nil && right != nil {
		if left.val < right.val {
			*at = left
			left = left.next
		} else {
			*at = right
			right = right.next
		}
		at = &(*at).next
	}
	if left != nil {
		*at = left
	} else {
		*at = right
	}
	return head
}

// quickSort sorts the inclusive chain range [first, last] by
// exchanging node payloads around a pivot. Ranges are delimited by
// nodes rather than indices because the chain is singly linked; the
// left recursion is bounded by the last node the partition pass placed
// before the pivot, which stays nil when nothing precedes it.
func quickSort(first, last *node) {
	if first == nil || last == nil {
		return
	}
	if first == last || last.next == first {
		return
	}

	// Partition on last's payload: r scans the range while l marks the
	// slot the next smaller payload is swapped into, with prev
	// trailing one node behind l.
	var prev *node
	l := first
	for r := first; r != last; r = r.next {
		if r.val < last.val {
			l.val, r.val = r.val, l.val
			prev = l
			l = l.next
		}
	}
	l.val, last.val = last.val, l.val

	quickSort(first, prev)
	quickSort(l.next, last)
}
