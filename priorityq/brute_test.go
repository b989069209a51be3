// ============================================================================
// EXHAUSTIVE CLASSIFICATION VALIDATION
// ============================================================================
//
// Brute-forces the entire counter/priority state space: for every counter
// value 0..255 and every priority 0..127, a lone item must insert, extract
// as itself, and leave the queue empty. This covers both branches of the
// bin-selection rule (no-wrap and wraparound) and every counter-advancement
// path a single item can take.
//
// The counter is advanced to the target value by cycling a priority-1 item,
// which bumps the counter exactly once per round trip.

package priorityq

import "testing"

func TestBruteForceEveryCounterAndPriority(t *testing.T) {
	var q Queue
	var p Priority

	counter := uint8(0)
	for ci := 0; ci < 256; ci, counter = ci+1, counter+1 {
		for prio := 0; prio < Ceiling; prio++ {
			q.Init()
			p.Init()

			// Spin the counter up to the target value.
			p.Set(nil, 1)
			for step := uint8(0); step < counter; step++ {
				q.Enqueue(&p)
				if q.Dequeue() != &p {
					t.Fatalf("counter %d: spin-up lost the item at step %d", counter, step)
				}
			}
			if q.PriorityCounter() != counter {
				t.Fatalf("counter spin-up reached %d, want %d", q.PriorityCounter(), counter)
			}
			if q.Dequeue() != nil {
				t.Fatalf("counter %d: queue not empty after spin-up", counter)
			}

			p.Set(nil, uint8(prio))
			q.Enqueue(&p)
			if q.Dequeue() != &p {
				t.Fatalf("counter %d priority %d: item lost", counter, prio)
			}
			if q.Dequeue() != nil || q.Size() != 0 {
				t.Fatalf("counter %d priority %d: residue after drain", counter, prio)
			}
		}
	}
}
