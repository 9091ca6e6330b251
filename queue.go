package strq

// A node is one link of a queue's chain. It holds one value and the
// rest of the chain after it.
type node struct {
	val  string
	next *node
}

// A Queue is a FIFO queue of strings. It is backed by a singly-linked
// chain of nodes together with a reference to the last node for quick
// appends and a maintained element count. The zero value is an empty
// queue ready to use.
//
// A Queue is not safe for concurrent use; a caller that shares one
// across goroutines must serialize access itself. A nil *Queue is
// tolerated by every method: mutations report failure, queries report
// an empty queue.
type Queue struct {
	head, tail *node
	count      int
}

// New returns a new, empty queue.
func New() *Queue {
	return new(Queue)
}

// Len returns the number of elements in the queue, or 0 if q is nil.
// It is constant-time; the count is maintained by every mutation.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

// PushFront inserts s as a new element at the head of the queue. It
// reports false, mutating nothing, if q is nil.
func (q *Queue) PushFront(s string) bool {
	if q == nil {
		return false
	}

	n := &node{val: s, next: q.head}
	q.head = n
	if q.tail == nil {
		q.tail = n
	}
	q.count++
	return true
}

// PushBack appends s as a new element at the tail of the queue. It
// reports false, mutating nothing, if q is nil.
func (q *Queue) PushBack(s string) bool {
	if q == nil {
		return false
	}

	// The chain must always terminate at the new tail.
	n := &node{val: s, next: nil}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count++
	return true
}

// PopFront removes the head element and returns its value. It reports
// false if q is nil or empty.
func (q *Queue) PopFront() (string, bool) {
	if q == nil || q.head == nil {
		return "", false
	}

	n := q.head
	q.head = n.next
	q.count--
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	return n.val, true
}

// PopFrontInto removes the head element and copies its value into dst,
// C-string style: at most len(dst)-1 bytes of the value followed by a
// NUL terminator, truncated rather than overflowed. It reports false,
// removing nothing, if q is nil or empty or dst has no room for the
// terminator.
func (q *Queue) PopFrontInto(dst []byte) bool {
	if len(dst) == 0 {
		return false
	}

	v, ok := q.PopFront()
	if !ok {
		return false
	}

	n := copy(dst, v[:min(len(v), len(dst)-1)])
	dst[n] = 0
	return true
}

// Clear removes every element, leaving q empty and reusable. The chain
// is unlinked node by node so that removed nodes do not keep each
// other reachable. Clear is a no-op on a nil queue.
func (q *Queue) Clear() {
	if q == nil {
		return
	}

	for q.head != nil {
		n := q.head
		q.head = n.next
		n.next = nil
		n.val = ""
		q.count--
	}
	q.tail = nil
}
