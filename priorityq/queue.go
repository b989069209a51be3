// ════════════════════════════════════════════════════════════════════════════════════════════════
// Lazy Starvation-Free Priority Queue
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Bin Classification, Counter Advancement, and Queue Management
//
// Description:
//   Priority queue over 129 levels (0..127 plus Urgent) with O(1) amortized enqueue, dequeue,
//   and remove. Items route through eight radix bins keyed to bit positions of a wrapping 8-bit
//   priority counter; each extraction performs one bounded chunk of reorganization instead of
//   ever scanning the full item set. Every admitted item is extracted within a bounded number
//   of calls no matter how much higher-priority traffic follows it.
//
// Features:
//   - Eight bins bound any item to at most 8 reclassifications over its lifetime
//   - Wrapping counter advanced lazily, only when no other structure can supply output
//   - Self-adjusting immediate-queue release keeps priority-0 traffic and bin work balanced
//   - Zero allocation: all capacity lives inside caller-owned items
//
// Safety model:
//   - Single-threaded by design; callers provide exclusion when sharing
//   - Items must stay address-stable while linked (embedded node links)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package priorityq

import "math/bits"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONFIGURATION CONSTANTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

const (
	// BinCount is the number of radix bins. Eight suffice to route any
	// 8-bit relative priority: the bin index is the bit position at
	// which an item's relative priority and the counter are guaranteed
	// to agree permanently once the counter reaches it.
	BinCount = 8

	// ceilMask selects the bits a regular priority may occupy.
	ceilMask = uint8(Ceiling - 1)
)

// highBit8 returns the index of the highest set bit. Input must be
// nonzero; callers guard the one case that can produce zero.
//
//go:nosplit
//go:inline
func highBit8(n uint8) int {
	return bits.Len8(n) - 1
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// QUEUE STRUCTURE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Queue manages the counter, the four holding structures, and size
// accounting. It is a fixed-size value: create one, call Init, and
// reuse it for the life of the scheduling session. It allocates
// nothing and frees nothing.
//
// Invariant: size = sizeDone + sizeImed + sizeQ, and each size field
// equals the live length of its structure(s); sizeQ covers the
// processing list plus all bins.
type Queue struct {
	// pc is the rotating priority counter. Native uint8 wraparound
	// stands in for the masking the algorithm requires.
	pc          uint8
	counterImed uint32 // Restartable immediate-release budget
	size        uint32 // Total linked items
	sizeDone    uint32 // Items in done
	sizeImed    uint32 // Items in immediate
	sizeQ       uint32 // Items in processing + bins

	done       node // Ready for extraction; urgent items land here
	immediate  node // Priority-0 items awaiting controlled release
	processing node // Pulled from a bin this step, awaiting re-classification
	bins       [BinCount]node
}

// Init resets the queue to empty. Must be called before first use and
// may be called again to discard all membership state (items left
// linked become stale and must be re-initialized by their owners).
func (q *Queue) Init() {
	*q = Queue{}
	q.done.listInit()
	q.immediate.listInit()
	q.processing.listInit()
	for i := range q.bins {
		q.bins[i].listInit()
	}
}

// Size returns the number of items currently linked anywhere in the
// queue. O(1) via cached counters.
//
//go:nosplit
//go:inline
func (q *Queue) Size() uint32 {
	return q.size
}

// Empty reports whether the queue holds no items.
//
//go:nosplit
//go:inline
func (q *Queue) Empty() bool {
	return q.size == 0
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// BIN CLASSIFICATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// nqOnly files an item into the bin its relative priority selects
// against the current counter. Size accounting is the caller's job.
//
// Selection rule, for relative priority rp and counter pc:
//   - No-wrap case (rp-1 >= pc in uint8 arithmetic): rp is numerically
//     ahead of pc by at most 127. The leading differing bit is a '1'
//     in rp and a '0' in pc; the counter flips that exact bit on its
//     way up, so the bin index is highBit8(rp ^ pc).
//   - Wrap case (otherwise): the counter occupies the full 8-bit space
//     while priorities cap at 127, so an item can sit numerically
//     behind the counter yet logically ahead of it. Only 0→1 bit
//     transitions trigger bins (the top bit excepted, handled during
//     advancement), so the next agreeing position is the highest bit
//     set in both: highBit8(rp & pc). When rp and pc share no set bits
//     at all, the only transition the item can wait on is the top-bit
//     wraparound flip, so it files into the last bin and gets
//     re-derived once the counter wraps.
//
// Either way the index is the count of remaining counter-bit events
// the item must observe — at most 7, independent of item count.
//
//go:nosplit
//go:inline
func (q *Queue) nqOnly(p *Priority) {
	pc := q.pc
	rp := p.rel

	var index int
	if rp-1 >= pc {
		index = highBit8(rp ^ pc)
	} else if masked := rp & pc; masked != 0 {
		index = highBit8(masked)
	} else {
		index = BinCount - 1
	}
	q.bins[index].nq(&p.node)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// COUNTER ADVANCEMENT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// advanceCounter moves the priority counter to the next value at which
// some occupied bin's trigger bit transitions 0→1, and splices every
// triggered bin onto the processing list. Invoked only when bins hold
// work and nothing else can supply output this step.
//
// Algorithm:
//  1. Scan bins upward from 0; pick the smallest index i whose bin is
//     occupied while counter bit i is 0. Fall back to the last bin.
//  2. newpc = (pc | (2^i - 1)) + 1 — sets the bits below i, then the
//     increment carries into bit i, flipping it 0→1 and clearing the
//     bits below. This is the unique next counter value with that flip.
//  3. Splice bin i onto processing unconditionally.
//  4. Splice every later bin whose trigger bit also flipped between
//     old and new counter. Lower bits count only 0→1 transitions; the
//     top bit counts any flip so wraparound keeps the queue running.
//     Work is proportional to bits that actually flipped, not BinCount.
//
//go:nosplit
//go:inline
func (q *Queue) advanceCounter() {
	pc := q.pc

	index := 0
	msb := uint8(1)
	for index < BinCount-1 && !(q.bins[index].listHas() && pc&msb == 0) {
		index++
		msb <<= 1
	}

	newpc := (pc | (msb - 1)) + 1

	// The chosen bin is triggered no matter how we advanced. Items go
	// through processing, never straight to immediate: each must be
	// re-derived against the new counter first.
	q.processing.appendAll(&q.bins[index])
	index++

	// Trigger mask: any flip of the top bit, 0→1 flips below it.
	flips := (^ceilMask & (pc ^ newpc)) | (ceilMask & (^pc & newpc))
	flips >>= index
	for flips != 0 {
		if flips&1 != 0 {
			q.processing.appendAll(&q.bins[index])
		}
		index++
		flips >>= 1
	}

	q.pc = newpc
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// IMMEDIATE-QUEUE STARVATION CONTROL
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// advanceImmediates promotes a bounded, self-adjusting number of
// immediate items to done. The restartable budget is recomputed as
// highBit(sizeImed)+1 whenever it hits zero, and is otherwise
// decremented or halved as items move — roughly half of each step's
// effort goes to immediates, half to the bin machinery, without a
// hard global ratio.
//
//go:nosplit
//go:inline
func (q *Queue) advanceImmediates() {
	if q.sizeImed == 0 {
		return
	}
	if q.counterImed != 0 {
		// Promoted items are retagged on the spot: Remove and urgent
		// re-enqueue both dispatch on the location tag, so a stale
		// locImed here would desynchronize every size counter.
		n := q.immediate.dqQuick()
		toPriority(n).loc = locDone
		q.done.nq(n)
		q.sizeImed--
		q.sizeDone++
		if q.sizeDone < q.sizeImed {
			if q.sizeImed&1 == 0 {
				// Move a second item, then halve the budget to
				// compensate.
				n = q.immediate.dqQuick()
				toPriority(n).loc = locDone
				q.done.nq(n)
				q.sizeImed--
				q.sizeDone++
				q.counterImed >>= 1
			} else {
				q.counterImed--
			}
		} else {
			// Done is keeping up; shrink the budget sharply.
			q.counterImed >>= 2
		}
	} else {
		// Budget exhausted: restart from the immediate backlog size.
		q.counterImed = uint32(bits.Len32(q.sizeImed))
	}
}

// advanceQueue performs one bounded step of bin advancement: drain up
// to ⌈log2(sizeQ)⌉+1 items from processing (re-binning or promoting
// each), or advance the counter when processing is empty. Combined
// with the 8-bin lifetime bound this yields amortized O(1) extraction
// independent of how many priority levels are in use.
//
//go:nosplit
//go:inline
func (q *Queue) advanceQueue() {
	if q.sizeQ == 0 {
		return
	}
	if q.processing.listHas() {
		limit := uint32(bits.Len32(q.sizeQ))
		for {
			p := toPriority(q.processing.dqQuick())
			if p.rel != q.pc {
				q.nqOnly(p)
			} else {
				// Due exactly now: release through immediate so
				// priority-0 pacing still applies.
				p.loc = locImed
				q.sizeQ--
				q.sizeImed++
				q.immediate.nq(&p.node)
			}
			limit--
			if limit == 0 || !q.processing.listHas() {
				break
			}
		}
	} else {
		q.advanceCounter()
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PUBLIC OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Enqueue admits an item at the priority most recently given to Set,
// or re-prioritizes it if already linked. O(1).
//
// Re-priority rules for linked items:
//   - Urgent always relocates straight to done — the only permitted
//     downward move in wait time, since done is terminal.
//   - Already in done or immediate, or the new priority is no better
//     than the remaining wait: no-op. Rejecting equal-or-worse
//     refreshes is what keeps a constantly re-inserted item from
//     being deferred forever.
//   - Otherwise the item is unlinked and falls through to fresh
//     classification below.
//
// Fresh classification routes by priority: nonzero levels compute a
// relative priority against the current counter and land in a bin,
// Urgent lands in done, and zero lands in immediate.
func (q *Queue) Enqueue(p *Priority) {
	if p.loc == locDone {
		return
	}

	if p.node.inList() {
		if p.urg {
			p.node.unlinkOnly()
			q.done.nq(&p.node)
			// Can only be coming from immediate or the queued set.
			if p.loc == locImed {
				q.sizeImed--
			} else {
				q.sizeQ--
			}
			q.sizeDone++
			p.loc = locDone
			return
		} else if p.loc == locImed || p.abs >= p.rel-q.pc {
			// On the way out already, or no better than the current
			// position. Re-filing here would let a caller reset an
			// item's wait forever.
			return
		} else {
			p.node.unlinkOnly()
			// Can only be in the queued set.
			q.sizeQ--
			q.size--
		}
	}

	if p.abs != 0 {
		p.rel = p.abs + q.pc
		p.loc = locQ
		q.sizeQ++
		q.nqOnly(p)
	} else if p.urg {
		p.rel = q.pc
		p.loc = locDone
		q.sizeDone++
		q.done.nq(&p.node)
	} else {
		p.rel = q.pc
		p.loc = locImed
		q.sizeImed++
		q.immediate.nq(&p.node)
	}
	q.size++
}

// Dequeue returns the next due item, or nil when the queue is empty.
// Amortized O(1): each pass performs one bounded step of immediate
// advancement and one bounded step of bin advancement, then tries the
// done queue; with items present a bounded number of passes must
// produce output. The returned item is detached with its location
// cleared.
func (q *Queue) Dequeue() *Priority {
	if q.size == 0 {
		return nil
	}

	var n *node
	for {
		q.advanceImmediates()
		q.advanceQueue()
		if n = q.done.dq(); n != nil {
			break
		}
	}
	q.sizeDone--
	q.size--
	p := toPriority(n)
	p.loc = locNone
	return p
}

// Remove detaches the item from whichever structure holds it and fixes
// the counters. Safe on items never inserted or already extracted —
// the call is idempotent. O(1).
func (q *Queue) Remove(p *Priority) {
	if p.node.inList() {
		p.node.unlink()
		switch p.loc {
		case locDone:
			q.sizeDone--
		case locImed:
			q.sizeImed--
		default: // locQ
			q.sizeQ--
		}
		q.size--
		p.loc = locNone
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// DIAGNOSTIC ACCESSORS
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Everything below exists for verification and debug dumps. None of it
// is part of the functional contract, and the walked counts are O(n).

// PriorityCounter returns the current wrapping counter value.
func (q *Queue) PriorityCounter() uint8 {
	return q.pc
}

// CountBin walks bin index&(BinCount-1) and returns its length.
func (q *Queue) CountBin(index uint32) uint32 {
	return q.bins[uint32(BinCount-1)&index].count()
}

// CountAll walks every structure and returns the total item count.
func (q *Queue) CountAll() uint32 {
	c := q.done.count() + q.immediate.count() + q.processing.count()
	for i := range q.bins {
		c += q.bins[i].count()
	}
	return c
}

// CountImmediate walks the immediate list.
func (q *Queue) CountImmediate() uint32 {
	return q.immediate.count()
}

// CountDone walks the done list.
func (q *Queue) CountDone() uint32 {
	return q.done.count()
}

// CountQueued walks the processing list and all bins.
func (q *Queue) CountQueued() uint32 {
	c := q.processing.count()
	for i := range q.bins {
		c += q.bins[i].count()
	}
	return c
}

// SizeImmediate returns the tracked immediate count.
func (q *Queue) SizeImmediate() uint32 {
	return q.sizeImed
}

// SizeDone returns the tracked done count.
func (q *Queue) SizeDone() uint32 {
	return q.sizeDone
}

// SizeQueued returns the tracked processing+bins count.
func (q *Queue) SizeQueued() uint32 {
	return q.sizeQ
}
