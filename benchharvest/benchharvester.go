// ════════════════════════════════════════════════════════════════════════════════════════════════
// Benchmark Harvester
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Starvation-Free Priority Queue
// Component: Queue-vs-Min-Heap Measurement Harness with Persistent Results
//
// Description:
//   Times the lazy priority queue against an array-backed binary min-heap over identical
//   enqueue-all/dequeue-all workloads, subtracting measured loop overhead from both sides.
//   Every run is stamped with a UUID, persisted to SQLite for cross-run comparison,
//   and summarized as a JSON report.
//
// Features:
//   - Deterministic workloads: scenario labels hash (SHA3) to PRNG seeds
//   - Loop-overhead subtraction for honest per-operation numbers
//   - Append-only results table keyed by run and scenario
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package benchharvest

import (
	"database/sql"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/craig8196/sfpriorityq/constants"
	"github.com/craig8196/sfpriorityq/priorityq"
	"github.com/craig8196/sfpriorityq/utils"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/crypto/sha3"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RESULT TYPES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Measurement captures one timed implementation over one scenario.
type Measurement struct {
	Name        string  `json:"name"`
	RawSeconds  float64 `json:"raw_time"`
	Overhead    float64 `json:"overhead_time"`
	Total       float64 `json:"total_time"`
	AvgIter     float64 `json:"average_iteration_time"`
	AvgItem     float64 `json:"average_n_time"`
	Iterations  int     `json:"iterations"`
	Items       int     `json:"n"`
}

// ScenarioResult pairs the two measurements taken over one workload.
type ScenarioResult struct {
	Label   string      `json:"label"`
	Seed    uint64      `json:"seed"`
	MinHeap Measurement `json:"min_heap"`
	Queue   Measurement `json:"priorityq"`
	Speedup float64     `json:"speedup"`
}

// RunReport is the full output of one harvest.
type RunReport struct {
	RunID     string           `json:"run_id"`
	Schema    int              `json:"schema_version"`
	StartedAt time.Time        `json:"started_at"`
	Results   []ScenarioResult `json:"results"`
}

// Scenario describes one workload shape.
type Scenario struct {
	Label      string
	Items      int
	Iterations int
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// DETERMINISTIC SEEDING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// DeriveSeed hashes a scenario label to a PRNG seed: SHA3-256, first
// eight bytes, avalanche-mixed. Identical labels always replay the exact
// same priority sequence across runs and machines.
func DeriveSeed(label string) uint64 {
	h := sha3.Sum256(utils.S2b(label))
	return utils.Mix64(binary.BigEndian.Uint64(h[:8]))
}

// randomItems builds n caller-owned items with seeded random priorities
// in [0, 127].
func randomItems(rng *rand.Rand, n int) []priorityq.Priority {
	ps := make([]priorityq.Priority, n)
	for i := range ps {
		ps[i].Init()
		ps[i].Set(nil, uint8(rng.Uint32())&(priorityq.Ceiling-1))
	}
	return ps
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MIN-HEAP REFERENCE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// minHeap is the array-backed binary heap baseline: same item type,
// ordering on absolute priority only.
type minHeap struct {
	items []*priorityq.Priority
}

func newMinHeap(capacity int) *minHeap {
	return &minHeap{items: make([]*priorityq.Priority, 0, capacity)}
}

func (h *minHeap) nq(p *priorityq.Priority) {
	h.items = append(h.items, p)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) >> 1
		if h.items[parent].Value() <= p.Value() {
			break
		}
		h.items[i] = h.items[parent]
		i = parent
	}
	h.items[i] = p
}

func (h *minHeap) dq() *priorityq.Priority {
	n := len(h.items)
	if n == 0 {
		return nil
	}
	top := h.items[0]
	last := h.items[n-1]
	h.items = h.items[:n-1]
	n--
	if n == 0 {
		return top
	}

	i := 0
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.items[right].Value() < h.items[left].Value() {
			child = right
		}
		if h.items[child].Value() >= last.Value() {
			break
		}
		h.items[i] = h.items[child]
		i = child
	}
	h.items[i] = last
	return top
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TIMED SECTIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// sink defeats dead-code elimination in the overhead loop.
var sink uint64

// timeLoop measures the bare cost of the iteration scaffolding so it can
// be subtracted from both timed sections.
func timeLoop(outer, inner int) float64 {
	start := time.Now()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			sink++
		}
		for i := 0; i < inner; i++ {
			sink++
		}
	}
	return time.Since(start).Seconds()
}

func timeMinHeap(h *minHeap, iterations int, ps []priorityq.Priority) float64 {
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		for i := range ps {
			h.nq(&ps[i])
		}
		for range ps {
			h.dq()
		}
	}
	return time.Since(start).Seconds()
}

func timeQueue(q *priorityq.Queue, iterations int, ps []priorityq.Priority) float64 {
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		for i := range ps {
			q.Enqueue(&ps[i])
		}
		for range ps {
			q.Dequeue()
		}
	}
	return time.Since(start).Seconds()
}

// measure folds a raw timing into the derived per-iteration and per-item
// figures the report carries.
func measure(name string, raw, overhead float64, iterations, items int) Measurement {
	total := raw - overhead
	avgIter := total / float64(iterations)
	return Measurement{
		Name:       name,
		RawSeconds: raw,
		Overhead:   overhead,
		Total:      total,
		AvgIter:    avgIter,
		AvgItem:    avgIter / float64(items),
		Iterations: iterations,
		Items:      items,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HARVESTING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// DefaultScenarios builds the standard sweep from the configured item
// counts.
func DefaultScenarios() []Scenario {
	scenarios := make([]Scenario, 0, len(constants.SweepItems))
	for _, n := range constants.SweepItems {
		scenarios = append(scenarios, Scenario{
			Label:      "sweep-n" + string(appendInt(nil, n)),
			Items:      n,
			Iterations: constants.DefaultIterations,
		})
	}
	return scenarios
}

func appendInt(dst []byte, v int) []byte {
	return utils.AppendUint(dst, uint64(v))
}

// RunScenario times both implementations over one workload and returns
// the paired result.
func RunScenario(sc Scenario) ScenarioResult {
	seed := DeriveSeed(sc.Label)
	rng := rand.New(rand.NewSource(int64(seed)))

	heapItems := randomItems(rng, sc.Items)
	queueItems := make([]priorityq.Priority, sc.Items)
	for i := range heapItems {
		queueItems[i].Init()
		queueItems[i].Set(nil, heapItems[i].Value())
	}

	h := newMinHeap(sc.Items)
	var q priorityq.Queue
	q.Init()

	overhead := timeLoop(sc.Iterations, sc.Items)
	rawHeap := timeMinHeap(h, sc.Iterations, heapItems)
	rawQueue := timeQueue(&q, sc.Iterations, queueItems)

	mh := measure("min__heap", rawHeap, overhead, sc.Iterations, sc.Items)
	mq := measure("priorityq", rawQueue, overhead, sc.Iterations, sc.Items)

	speedup := 0.0
	if mq.Total > 0 {
		speedup = mh.Total / mq.Total
	}

	return ScenarioResult{
		Label:   sc.Label,
		Seed:    seed,
		MinHeap: mh,
		Queue:   mq,
		Speedup: speedup,
	}
}

// Harvest runs every scenario, persists the rows to the SQLite results
// database at dbPath, and returns the run report.
func Harvest(scenarios []Scenario, dbPath string) (*RunReport, error) {
	report := &RunReport{
		RunID:     uuid.NewString(),
		Schema:    constants.SchemaVersion,
		StartedAt: time.Now().UTC(),
	}

	for _, sc := range scenarios {
		report.Results = append(report.Results, RunScenario(sc))
	}

	if dbPath != "" {
		if err := persistRun(dbPath, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// ReportJSON renders the report for consumption by tooling.
func ReportJSON(report *RunReport) ([]byte, error) {
	return sonnet.Marshal(report)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PERSISTENCE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

const schemaDDL = `
CREATE TABLE IF NOT EXISTS bench_runs (
	run_id     TEXT PRIMARY KEY,
	schema     INTEGER NOT NULL,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS bench_results (
	run_id      TEXT NOT NULL,
	label       TEXT NOT NULL,
	impl        TEXT NOT NULL,
	seed        INTEGER NOT NULL,
	items       INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	raw_seconds REAL NOT NULL,
	overhead    REAL NOT NULL,
	total       REAL NOT NULL,
	avg_item    REAL NOT NULL,
	PRIMARY KEY (run_id, label, impl)
);`

// persistRun writes the run header and one row per (scenario, impl) in a
// single transaction.
func persistRun(dbPath string, report *RunReport) error {
	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := database.Exec(schemaDDL); err != nil {
		return err
	}

	tx, err := database.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(
		"INSERT INTO bench_runs (run_id, schema, started_at) VALUES (?, ?, ?)",
		report.RunID, report.Schema, report.StartedAt.Format(time.RFC3339Nano),
	); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(
		"INSERT INTO bench_results (run_id, label, impl, seed, items, iterations, raw_seconds, overhead, total, avg_item) " +
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, res := range report.Results {
		for _, m := range []Measurement{res.MinHeap, res.Queue} {
			if _, err := stmt.Exec(
				report.RunID, res.Label, m.Name, int64(res.Seed),
				m.Items, m.Iterations, m.RawSeconds, m.Overhead, m.Total, m.AvgItem,
			); err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	return tx.Commit()
}
