//go:build go1.23

package strq

import "iter"

// All returns an iterator over the queue's elements in order from head
// to tail. It yields nothing if q is nil. The queue must not be
// mutated during iteration.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for n := q.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
