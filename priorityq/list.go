// ════════════════════════════════════════════════════════════════════════════════════════════════
// Intrusive Circular List Primitive
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Sentinel-Based Doubly-Linked List with Splice Support
//
// Description:
//   Link-field primitive shared by every holding structure in the queue (bins, immediate,
//   processing, done). Items embed their own node, so linking and unlinking never allocates.
//   A list is just a self-linked sentinel node; splicing an entire list onto another is O(1).
//
// Features:
//   - Detached state distinguishable from linked state (nil vs non-nil links)
//   - O(1) push-back, pop-front, self-detach, and whole-list splice
//   - Diagnostic O(n) count kept off every correctness-critical path
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package priorityq

// node carries the embedded link fields for one list membership.
// A node is either detached (both links nil) or linked into exactly one
// list with mutually consistent neighbor pointers.
type node struct {
	prev *node
	next *node
}

// inList reports whether the node is currently linked anywhere.
// Sentinels are always self-linked and therefore always "in list".
//
//go:nosplit
//go:inline
func (n *node) inList() bool {
	return n.next != nil
}

// clear resets the node to the detached state.
//
//go:nosplit
//go:inline
func (n *node) clear() {
	n.prev = nil
	n.next = nil
}

// unlinkOnly removes the node from its neighbors without clearing its
// own links. Requires valid neighbors; callers relink or clear after.
//
//go:nosplit
//go:inline
func (n *node) unlinkOnly() {
	n.next.prev = n.prev
	n.prev.next = n.next
}

// unlink removes the node and leaves it detached.
//
//go:nosplit
//go:inline
func (n *node) unlink() {
	n.unlinkOnly()
	n.clear()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SENTINEL LIST OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// listInit makes the sentinel an empty list (self-linked).
//
//go:nosplit
//go:inline
func (l *node) listInit() {
	l.next = l
	l.prev = l
}

// listHas reports whether the list holds at least one item.
//
//go:nosplit
//go:inline
func (l *node) listHas() bool {
	return l != l.next
}

// nq appends an item at the back of the list.
//
//go:nosplit
//go:inline
func (l *node) nq(n *node) {
	n.next = l
	n.prev = l.prev
	l.prev.next = n
	l.prev = n
}

// dqQuick pops the front item without a nil check or link clearing.
// The list MUST be non-empty and the caller MUST relink the result.
//
//go:nosplit
//go:inline
func (l *node) dqQuick() *node {
	n := l.next
	n.unlinkOnly()
	return n
}

// dq pops the front item, returning nil when the list is empty.
// The returned node is fully detached.
//
//go:nosplit
//go:inline
func (l *node) dq() *node {
	if l != l.next {
		n := l.next
		n.unlink()
		return n
	}
	return nil
}

// appendAll splices every item of src onto the back of l and leaves
// src empty. O(1) regardless of how many items move.
//
//go:nosplit
//go:inline
func (l *node) appendAll(src *node) {
	if src.listHas() {
		src.next.prev = l.prev
		src.prev.next = l
		l.prev.next = src.next
		l.prev = src.prev
		src.listInit()
	}
}

// count walks the list and returns its length. Diagnostic only — the
// queue never calls this on a correctness-critical path.
func (l *node) count() uint32 {
	var c uint32
	for n := l.next; n != l; n = n.next {
		c++
	}
	return c
}
