// ════════════════════════════════════════════════════════════════════════════════════════════════
// Benchmark Runner
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Queue-vs-Min-Heap Benchmark CLI
//
// Description:
//   Runs the scenario sweep from benchharvest, appends the rows to the SQLite results database,
//   and prints the JSON run report to stdout.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"
	"os"

	"github.com/craig8196/sfpriorityq/benchharvest"
	"github.com/craig8196/sfpriorityq/constants"
	"github.com/craig8196/sfpriorityq/debug"
)

func main() {
	dbPath := flag.String("db", constants.ResultsDBPath, "SQLite results database path (empty disables persistence)")
	reportPath := flag.String("report", "", "write the JSON report here instead of stdout")
	items := flag.Int("n", 0, "single-scenario item count (0 runs the full sweep)")
	iterations := flag.Int("iterations", constants.DefaultIterations, "enqueue/dequeue cycles per scenario")
	flag.Parse()

	scenarios := benchharvest.DefaultScenarios()
	if *items > 0 {
		scenarios = []benchharvest.Scenario{{
			Label:      "single-n" + flag.Lookup("n").Value.String(),
			Items:      *items,
			Iterations: *iterations,
		}}
	}

	report, err := benchharvest.Harvest(scenarios, *dbPath)
	if err != nil {
		debug.DropError("harvest", err)
		os.Exit(1)
	}

	raw, err := benchharvest.ReportJSON(report)
	if err != nil {
		debug.DropError("report", err)
		os.Exit(1)
	}
	raw = append(raw, '\n')

	if *reportPath != "" {
		if err := os.WriteFile(*reportPath, raw, 0o644); err != nil {
			debug.DropError("report write", err)
			os.Exit(1)
		}
		return
	}
	os.Stdout.Write(raw)
}
