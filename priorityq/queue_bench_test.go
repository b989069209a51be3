// ============================================================================
// PRIORITYQ MICROBENCHMARK SUITE
// ============================================================================
//
// Performance measurement for the core operations, plus a container/heap
// baseline for the same workload shapes. The interesting comparison is the
// growth curve: the lazy queue's per-operation cost stays flat as the item
// count grows while the heap's log factor climbs.
//
// Workload shapes:
//   - Churn: single item cycling through enqueue/dequeue (counter motion)
//   - Batch: enqueue-all/dequeue-all cycles at several sizes
//   - Urgent: straight-to-done fast path
//   - Baseline: identical batch shape on container/heap

package priorityq

import (
	"container/heap"
	"math/rand"
	"testing"
)

// ============================================================================
// METADATA ACCESS
// ============================================================================

func BenchmarkSize(b *testing.B) {
	var q Queue
	q.Init()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Size()
	}
}

// ============================================================================
// CORE OPERATION BENCHMARKS
// ============================================================================

// BenchmarkChurnSingle cycles one item through the queue, driving the
// counter through its full wrap over and over.
func BenchmarkChurnSingle(b *testing.B) {
	var q Queue
	var p Priority
	q.Init()
	p.Init()
	p.Set(nil, 1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.Enqueue(&p)
		_ = q.Dequeue()
	}
}

// BenchmarkUrgentChurn measures the straight-to-done fast path.
func BenchmarkUrgentChurn(b *testing.B) {
	var q Queue
	var p Priority
	q.Init()
	p.Init()
	p.Set(nil, Urgent)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.Enqueue(&p)
		_ = q.Dequeue()
	}
}

// benchBatch runs enqueue-all/dequeue-all cycles over n pre-allocated
// items with a fixed random priority assignment.
func benchBatch(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(69))
	var q Queue
	q.Init()

	ps := make([]Priority, n)
	for i := range ps {
		ps[i].Init()
		ps[i].Set(nil, uint8(rng.Intn(Ceiling)))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := range ps {
			q.Enqueue(&ps[j])
		}
		for q.Dequeue() != nil {
		}
	}
}

func BenchmarkBatch64(b *testing.B)   { benchBatch(b, 64) }
func BenchmarkBatch1K(b *testing.B)   { benchBatch(b, 1024) }
func BenchmarkBatch16K(b *testing.B)  { benchBatch(b, 16384) }
func BenchmarkBatch128K(b *testing.B) { benchBatch(b, 131072) }

// BenchmarkRemove measures detach cost from a populated queue.
func BenchmarkRemove(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(69))
	var q Queue
	q.Init()

	ps := make([]Priority, n)
	for i := range ps {
		ps[i].Init()
		ps[i].Set(nil, uint8(1+rng.Intn(Ceiling-1)))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := &ps[i%n]
		q.Enqueue(p)
		q.Remove(p)
	}
}

// ============================================================================
// CONTAINER/HEAP BASELINE
// ============================================================================

type benchHeap []uint8

func (h benchHeap) Len() int            { return len(h) }
func (h benchHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h benchHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *benchHeap) Push(x interface{}) { *h = append(*h, x.(uint8)) }
func (h *benchHeap) Pop() interface{} {
	old := *h
	n := len(old) - 1
	v := old[n]
	*h = old[:n]
	return v
}

// benchHeapBatch runs the identical batch shape on container/heap.
func benchHeapBatch(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(69))
	prios := make([]uint8, n)
	for i := range prios {
		prios[i] = uint8(rng.Intn(Ceiling))
	}
	h := make(benchHeap, 0, n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, p := range prios {
			heap.Push(&h, p)
		}
		for h.Len() != 0 {
			_ = heap.Pop(&h)
		}
	}
}

func BenchmarkHeapBatch64(b *testing.B)   { benchHeapBatch(b, 64) }
func BenchmarkHeapBatch1K(b *testing.B)   { benchHeapBatch(b, 1024) }
func BenchmarkHeapBatch16K(b *testing.B)  { benchHeapBatch(b, 16384) }
func BenchmarkHeapBatch128K(b *testing.B) { benchHeapBatch(b, 131072) }
