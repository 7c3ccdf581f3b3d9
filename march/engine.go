package march

import (
	"github.com/trevor-makes/avr-dram-tester/bus"
	"github.com/trevor-makes/avr-dram-tester/chip"
)

// Reporter receives the outcome of each cell verification and of each
// completed iteration. Fail is called once per verification read that
// mismatches (a faulty cell can be reported by several steps of one
// iteration) and must not block the caller; Pass is called once at the end of an iteration
// that had zero failures.
type Reporter interface {
	Fail(addr bus.Address)
	Pass()
}

// step is one row of the March C- table: metadata plus the
// hand-specialized function that actually performs it.
type step struct {
	name  string
	dir   Direction
	read  ReadSpec
	write WriteSpec
	once  func(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address))
}

// sequence is the full six-step March C- pattern. Metadata (dir, read,
// write) is used for logging and tests, and by runStep once per step to
// pick the DIN level (from write) and the quadrant order (from dir); no
// per-cell loop branches on it.
var sequence = [6]step{
	{name: "w0", dir: Up, read: NoRead, write: WriteZero, once: onceUpWriteZero},
	{name: "r0w1", dir: Up, read: ExpectZero, write: WriteOne, once: onceUpVerifyZeroWriteOne},
	{name: "r1w0", dir: Up, read: ExpectOne, write: WriteZero, once: onceUpVerifyOneWriteZero},
	{name: "r0w1-down", dir: Down, read: ExpectZero, write: WriteOne, once: onceDownVerifyZeroWriteOne},
	{name: "r1w0-down", dir: Down, read: ExpectOne, write: WriteZero, once: onceDownVerifyOneWriteZero},
	{name: "r0", dir: Down, read: ExpectZero, write: NoWrite, once: onceDownVerifyZeroNoWrite},
}

// quadrant is one (rowHigh, colHigh) combination a 256K step visits.
type quadrant struct {
	rowHigh, colHigh bool
}

// upQuadrants and downQuadrants give the four-quadrant visit order for
// each direction, per SPEC_FULL.md's composition rule: Up visits
// (0,0)->(1,0)->(0,1)->(1,1); Down visits the reverse.
var upQuadrants = [4]quadrant{
	{false, false}, {true, false}, {false, true}, {true, true},
}

var downQuadrants = [4]quadrant{
	{true, true}, {false, true}, {true, false}, {false, false},
}

// Engine composes the six-step March C- sequence and owns the
// Controller and detected chip.Kind it runs against.
type Engine struct {
	bus      *bus.Controller
	kind     chip.Kind
	reporter Reporter
	observer StepObserver
}

// New returns an Engine that drives c, treating it as the given kind,
// and reports outcomes to r.
func New(c *bus.Controller, kind chip.Kind, r Reporter, opts ...Option) *Engine {
	e := &Engine{bus: c, kind: kind, reporter: r}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// runStep sets DIN once for the step, then runs the step's specialized
// function once (64K) or four times across the quadrant order (256K).
// This is the only place kind is branched on; the branch happens once
// per step call, never inside a per-cell loop.
func (e *Engine) runStep(s step, failed *bool) {
	e.bus.SetDin(s.write.din())

	onFail := func(addr bus.Address) {
		*failed = true
		e.reporter.Fail(addr)
	}

	stepFailed := false
	wrappedFail := func(addr bus.Address) {
		stepFailed = true
		onFail(addr)
	}

	if e.kind == chip.Dram64K {
		s.once(e.bus, false, false, wrappedFail)
	} else {
		quadrants := upQuadrants
		if s.dir == Down {
			quadrants = downQuadrants
		}
		for _, q := range quadrants {
			s.once(e.bus, q.rowHigh, q.colHigh, wrappedFail)
		}
	}

	if e.observer != nil {
		e.observer(s.name, s.dir, stepFailed)
	}
}

// RunIteration runs all six March C- steps once and reports Pass to the
// Reporter if none of them invoked Fail. It returns whether the
// iteration passed.
func (e *Engine) RunIteration() bool {
	failed := false
	for _, s := range sequence {
		e.runStep(s, &failed)
	}
	if !failed {
		e.reporter.Pass()
	}
	return !failed
}

// Run calls RunIteration forever. There is no cancellation: matching
// the core test loop's invariant that a March pass cannot be aborted
// from the outside once started.
func (e *Engine) Run() {
	for {
		e.RunIteration()
	}
}
