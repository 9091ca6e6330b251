package strq

// Reverse reverses the order of the queue's elements in place by
// relinking the chain; no nodes are allocated or released. The old
// tail becomes the head and the old head becomes the tail. Reverse is
// a no-op if q is nil or empty.
func (q *Queue) Reverse() {
	if q == nil || q.head == nil {
		return
	}

	q.tail = q.head

	var prev *node
	cur := q.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	q.head = prev
}
