// ============================================================================
// INTRUSIVE LIST PRIMITIVE VALIDATION
// ============================================================================
//
// Direct coverage of the sentinel list underneath every queue structure:
// link state transitions, FIFO pop order, whole-list splicing, and detach
// from the middle of a chain.

package priorityq

import "testing"

func TestListEmptyState(t *testing.T) {
	var l node
	l.listInit()

	if l.listHas() {
		t.Fatal("fresh list reports items")
	}
	if l.dq() != nil {
		t.Fatal("pop from empty list returned a node")
	}
	if l.count() != 0 {
		t.Fatalf("empty list count %d", l.count())
	}

	var n node
	if n.inList() {
		t.Fatal("zero node reports linked")
	}
}

func TestListFIFO(t *testing.T) {
	var l node
	var ns [4]node
	l.listInit()

	for i := range ns {
		l.nq(&ns[i])
		if !ns[i].inList() {
			t.Fatalf("node %d not linked after nq", i)
		}
	}
	if l.count() != 4 {
		t.Fatalf("count %d, want 4", l.count())
	}
	for i := range ns {
		if got := l.dq(); got != &ns[i] {
			t.Fatalf("pop %d returned wrong node", i)
		}
		if ns[i].inList() {
			t.Fatalf("node %d still linked after pop", i)
		}
	}
	if l.listHas() {
		t.Fatal("list not empty after draining")
	}
}

func TestListDetachMiddle(t *testing.T) {
	var l node
	var ns [3]node
	l.listInit()
	for i := range ns {
		l.nq(&ns[i])
	}

	ns[1].unlink()
	if ns[1].inList() {
		t.Fatal("detached node still linked")
	}
	if l.count() != 2 {
		t.Fatalf("count %d after detach, want 2", l.count())
	}
	if l.dq() != &ns[0] || l.dq() != &ns[2] {
		t.Fatal("neighbors corrupted by middle detach")
	}
}

func TestListSplice(t *testing.T) {
	var a, b node
	var ns [5]node
	a.listInit()
	b.listInit()

	a.nq(&ns[0])
	a.nq(&ns[1])
	b.nq(&ns[2])
	b.nq(&ns[3])
	b.nq(&ns[4])

	a.appendAll(&b)
	if b.listHas() {
		t.Fatal("source list not cleared by splice")
	}
	if a.count() != 5 {
		t.Fatalf("target count %d after splice, want 5", a.count())
	}
	for i := range ns {
		if a.dq() != &ns[i] {
			t.Fatalf("splice broke ordering at %d", i)
		}
	}

	// Splicing an empty list is a no-op.
	a.nq(&ns[0])
	a.appendAll(&b)
	if a.count() != 1 {
		t.Fatal("empty-source splice mutated target")
	}
}
