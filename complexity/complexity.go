// ════════════════════════════════════════════════════════════════════════════════════════════════
// Amortized Complexity Calculator
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Exhaustive Update-Count Analysis
//
// Description:
//   Walks the queue's entire classification state space — every 8-bit counter value crossed with
//   every relative priority — and counts how many bin updates each item can cost before it
//   surfaces. One update places the item; each set bit below its bin's high bit is one future
//   cascade hop. The average over all states is the amortized updates-per-item bound.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package complexity

import "math/bits"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RESULT TYPES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

const (
	// counterStates is every value the 8-bit priority counter can hold.
	counterStates = 256

	// priorityStates is the number of relative priority levels per counter.
	priorityStates = 128
)

// Profile is the exhaustive analysis over the full state space.
type Profile struct {
	// PerCounter holds the amortized updates per item at each counter value.
	PerCounter [counterStates]float64 `json:"per_counter"`

	// Amortized is the global average over every (counter, priority) state.
	Amortized float64 `json:"amortized"`
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ANALYSIS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// updates counts the bin placements one item costs: the initial insert
// plus one cascade hop for each lower bit of its relative priority that
// survives under the bin's mask. Mirrors the queue's selection rule,
// including the last-bin fallback for wrapped items sharing no set bits
// with the counter.
func updates(counter, relative uint8) int {
	var index int
	if relative-1 >= counter {
		index = bits.Len8(relative^counter) - 1
	} else if masked := relative & counter; masked != 0 {
		index = bits.Len8(masked) - 1
	} else {
		index = 7
	}
	mask := uint8(1)<<index - 1
	return 1 + bits.OnesCount8(mask&relative)
}

// Analyze sweeps every counter value and every nonzero priority below the
// ceiling, accumulating per-counter and global amortized update counts.
func Analyze() Profile {
	var profile Profile
	total := 0.0

	counter := uint8(0)
	for counterIndex := 0; counterIndex < counterStates; counterIndex++ {
		local := 0.0
		for priority := uint8(1); priority < priorityStates; priority++ {
			relative := counter + priority
			u := float64(updates(counter, relative))
			local += u
			total += u
		}
		profile.PerCounter[counterIndex] = local / priorityStates
		counter++
	}

	profile.Amortized = total / (priorityStates * counterStates)
	return profile
}
