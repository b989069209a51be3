// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Benchmark Harness Tunables
//
// Purpose:
//   - Defines defaults for the queue-vs-heap benchmark harness and the
//     amortized-complexity calculator.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Harness Defaults ────────────────────────────

const (
	// DefaultIterations is how many enqueue-all/dequeue-all cycles each
	// scenario runs. Large enough to swamp timer granularity at small
	// item counts.
	DefaultIterations = 128

	// DefaultItems is the item count used when no sweep is requested.
	DefaultItems = 10
)

// SweepItems lists the item counts a full sweep measures. Powers of two
// so the heap baseline's log factor steps cleanly.
var SweepItems = []int{16, 64, 256, 1024, 4096, 16384, 65536}

// ───────────────────────────── Result Storage ──────────────────────────────

const (
	// ResultsDBPath is where harvest runs persist their measurement rows.
	ResultsDBPath = "pq_bench.db"

	// SchemaVersion is stamped on every run row so old measurement rows
	// stay interpretable after schema changes.
	SchemaVersion = 1
)
