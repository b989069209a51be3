// ════════════════════════════════════════════════════════════════════════════════════════════════
// Priority Item Record
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Caller-Owned Queue Entry with Embedded Links
//
// Description:
//   A Priority is the unit the queue schedules: an embedded list node, an opaque payload
//   reference, and the absolute/relative priority bookkeeping the classification algorithm
//   needs. The queue links and unlinks items but never owns their memory — creation and
//   destruction belong entirely to the caller.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package priorityq

import "unsafe"

const (
	// Ceiling is the number of regular priority levels. Valid absolute
	// priorities are 0 through Ceiling-1, plus the Urgent marker.
	Ceiling = 128

	// Urgent marks an item that must bypass every regular level and go
	// straight to the done queue.
	Urgent uint8 = 128
)

// Location tags record which structure currently holds an item's link.
const (
	locNone uint8 = iota // Detached: not held anywhere
	locDone              // Done queue: ready for extraction
	locImed              // Immediate queue: priority-0 awaiting release
	locQ                 // Bins or processing list: awaiting advancement
)

// Priority is a caller-owned queue entry.
//
// Field Layout:
//   - node: Embedded links for whichever structure holds the item
//   - data: Opaque payload reference, never touched by the queue
//   - abs:  Absolute priority as supplied by the caller (0..127)
//   - rel:  Relative priority, computed against the counter at insert
//   - loc:  Location tag matching the structure holding the links
//   - urg:  Urgent marker, mutually exclusive with a nonzero abs
//
// ⚠️  The node links are embedded: an item must not be copied or moved
// while it is linked. Stack values must outlive their queue membership.
type Priority struct {
	node      // Must stay first: extraction recovers the item from its link address
	data any  // Opaque payload reference (caller-owned)
	abs  uint8
	rel  uint8
	loc  uint8
	urg  bool
}

// toPriority recovers the containing item from its embedded node.
// Relies on node being the first field, so the addresses coincide.
//
//go:nosplit
//go:inline
func toPriority(n *node) *Priority {
	return (*Priority)(unsafe.Pointer(n))
}

// Init resets the item to a zeroed, detached state with priority 0.
// The zero value of Priority is equivalent.
func (p *Priority) Init() {
	*p = Priority{}
}

// Set assigns the payload and priority. priority must be in [0, 127] or
// Urgent; anything else violates the wrapping-arithmetic contract the
// classification rule depends on, and panics rather than silently
// corrupting the queue. Calling Set on a linked item does not by itself
// reclassify it — that decision belongs to the next Enqueue.
func (p *Priority) Set(data any, priority uint8) {
	if priority > Urgent {
		panic("priorityq: priority out of range [0, 128]")
	}
	p.data = data
	if priority != Urgent {
		p.abs = priority
		p.urg = false
	} else {
		p.abs = 0
		p.urg = true
	}
}

// Value returns the absolute priority. Urgent items report 0.
//
//go:nosplit
//go:inline
func (p *Priority) Value() uint8 {
	return p.abs
}

// Data returns the payload reference.
//
//go:nosplit
//go:inline
func (p *Priority) Data() any {
	return p.data
}

// IsActive reports whether the item is currently linked into a queue.
//
//go:nosplit
//go:inline
func (p *Priority) IsActive() bool {
	return p.node.inList()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// DIAGNOSTIC ACCESSORS
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// For dump printers and verification only; not part of the functional
// contract.

// IsUrgent reports the urgent marker.
func (p *Priority) IsUrgent() bool {
	return p.urg
}

// Relative returns the stored relative priority. Meaningful only while
// the item is queued.
func (p *Priority) Relative() uint8 {
	return p.rel
}

// Location names the structure currently holding the item.
func (p *Priority) Location() string {
	switch p.loc {
	case locNone:
		return "NONE"
	case locDone:
		return "DONE/URGENT"
	case locImed:
		return "IMMEDIATE"
	case locQ:
		return "QUEUE"
	default:
		return "ERROR"
	}
}
