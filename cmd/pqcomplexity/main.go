// ════════════════════════════════════════════════════════════════════════════════════════════════
// Complexity Calculator
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Amortized Update-Count Analysis CLI
//
// Description:
//   Sweeps every (counter, priority) classification state, printing per-counter amortized update
//   counts and the global amortized bound. JSON output is available for tooling.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/craig8196/sfpriorityq/complexity"
	"github.com/craig8196/sfpriorityq/debug"
	"github.com/craig8196/sfpriorityq/utils"

	"github.com/sugawarayuuta/sonnet"
)

func main() {
	asJSON := flag.Bool("json", false, "emit the full profile as JSON")
	flag.Parse()

	profile := complexity.Analyze()

	if *asJSON {
		raw, err := sonnet.Marshal(&profile)
		if err != nil {
			debug.DropError("profile", err)
			os.Exit(1)
		}
		raw = append(raw, '\n')
		os.Stdout.Write(raw)
		return
	}

	var buf []byte
	buf = append(buf, "COUNTER: AMORTIZED_UPDATES\n"...)
	for i, local := range profile.PerCounter {
		buf = utils.AppendUint(buf, uint64(i))
		buf = append(buf, ": "...)
		buf = strconv.AppendFloat(buf, local, 'f', 6, 64)
		buf = append(buf, '\n')
	}
	buf = append(buf, "Amortized complexity is "...)
	buf = strconv.AppendFloat(buf, profile.Amortized, 'f', 6, 64)
	buf = append(buf, " updates per priority.\n"...)
	os.Stdout.Write(buf)
}
