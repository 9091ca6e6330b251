package strq

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// checkChain walks the chain from head and verifies the structural
// invariants: the count agrees with head and tail being set, walking
// exactly count nodes from head reaches tail, and tail's next link is
// nil.
func checkChain(t *testing.T, q *Queue) {
	t.Helper()

	if (q.count == 0) != (q.head == nil) || (q.count == 0) != (q.tail == nil) {
		t.Fatalf("count %d disagrees with head=%v tail=%v", q.count, q.head != nil, q.tail != nil)
	}
	if q.head == nil {
		return
	}

	n := q.head
	for i := 1; i < q.count; i++ {
		if n.next == nil {
			t.Fatalf("chain ends after %d of %d nodes", i, q.count)
		}
		n = n.next
	}
	if n != q.tail {
		t.Fatalf("walking %d nodes from head does not reach tail", q.count)
	}
	if n.next != nil {
		t.Fatalf("tail node has a dangling next link")
	}
}

func TestChainInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests.

	q := New()
	var model []string

	for range 2000 {
		s := strconv.Itoa(rng.IntN(100))
		switch rng.IntN(8) {
		case 0:
			q.PushFront(s)
			model = append([]string{s}, model...)
		case 1, 2, 3:
			q.PushBack(s)
			model = append(model, s)
		case 4, 5:
			v, ok := q.PopFront()
			if ok != (len(model) > 0) {
				t.Fatalf("PopFront reported %v with %d elements in the model", ok, len(model))
			}
			if ok {
				if v != model[0] {
					t.Fatalf("PopFront returned %q, want %q", v, model[0])
				}
				model = model[1:]
			}
		case 6:
			q.Reverse()
			slices.Reverse(model)
		case 7:
			alg := Merge
			if rng.IntN(2) == 0 {
				alg = Partition
			}
			q.SortBy(alg)
			slices.Sort(model)
		}

		checkChain(t, q)
		if q.Len() != len(model) {
			t.Fatalf("Len() = %d, want %d", q.Len(), len(model))
		}
	}

	got := slices.Collect(q.All())
	if diff := cmp.Diff(model, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("queue diverged from model (-want +got):\n%s", diff)
	}
}
