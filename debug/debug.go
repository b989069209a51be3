// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path logging and queue dump helpers (zero-alloc)
//
// Purpose:
//   - Logs infrequent error paths without introducing heap pressure.
//   - Dumps queue and item state for verification and failure diagnostics.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Dump functions walk lists (O(n)); keep them off hot paths.
//
// ⚠️ Never invoke in hot loops — use only in failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import (
	"github.com/craig8196/sfpriorityq/priorityq"
	"github.com/craig8196/sfpriorityq/utils"
)

// DropError logs error messages with a custom alloc-free print strategy.
// It writes directly to stderr (file descriptor 2), bypassing any heap allocations.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		// Error case: direct concatenation, no fmt machinery.
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		// No error case: print just the prefix (tagged warnings).
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs debug messages with zero-allocation print strategy.
// Used for cold-path diagnostics and infrequent events.
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}

// appendLine appends "label: value\n" with an alloc-free decimal value.
func appendLine(dst []byte, label string, v uint64) []byte {
	dst = append(dst, label...)
	dst = append(dst, ':', ' ')
	dst = utils.AppendUint(dst, v)
	return append(dst, '\n')
}

// appendPair appends "label: walked==tracked\n" so accounting drift is
// visible at a glance.
func appendPair(dst []byte, label string, walked, tracked uint64) []byte {
	dst = append(dst, label...)
	dst = append(dst, ':', ' ')
	dst = utils.AppendUint(dst, walked)
	dst = append(dst, '=', '=')
	dst = utils.AppendUint(dst, tracked)
	return append(dst, '\n')
}

// DumpQueueStats writes the counter, the walked-vs-tracked size pairs, and
// every bin occupancy to stderr.
func DumpQueueStats(q *priorityq.Queue) {
	buf := make([]byte, 0, 512)
	buf = appendLine(buf, "PRIORITY COUNTER", uint64(q.PriorityCounter()))
	buf = appendPair(buf, "TOTAL COUNT==SIZE", uint64(q.CountAll()), uint64(q.Size()))
	buf = appendPair(buf, "DONE COUNT==SIZE", uint64(q.CountDone()), uint64(q.SizeDone()))
	buf = appendPair(buf, "IMMEDIATE COUNT==SIZE", uint64(q.CountImmediate()), uint64(q.SizeImmediate()))
	buf = appendPair(buf, "QUEUE COUNT==SIZE", uint64(q.CountQueued()), uint64(q.SizeQueued()))
	buf = append(buf, "BIN COUNTS:\n"...)
	for i := uint32(0); i < priorityq.BinCount; i++ {
		buf = utils.AppendUint(buf, uint64(i))
		buf = append(buf, ':', ' ')
		buf = utils.AppendUint(buf, uint64(q.CountBin(i)))
		buf = append(buf, '\n')
	}
	utils.PrintWarning(utils.B2s(buf))
}

// DumpPriorityStats writes one item's priority, relative priority,
// location, and link state to stderr.
func DumpPriorityStats(p *priorityq.Priority) {
	buf := make([]byte, 0, 160)
	buf = appendLine(buf, "PRIORITY", uint64(p.Value()))
	buf = appendLine(buf, "RELATIVE PRIORITY", uint64(p.Relative()))
	buf = append(buf, "LOCATION: "...)
	buf = append(buf, p.Location()...)
	buf = append(buf, "\nURGENT? "...)
	buf = append(buf, yesno(p.IsUrgent())...)
	buf = append(buf, "\nIN QUEUE? "...)
	buf = append(buf, yesno(p.IsActive())...)
	buf = append(buf, '\n')
	utils.PrintWarning(utils.B2s(buf))
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
