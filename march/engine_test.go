package march

import (
	"testing"

	"github.com/trevor-makes/avr-dram-tester/bus"
	"github.com/trevor-makes/avr-dram-tester/chip"
	"github.com/trevor-makes/avr-dram-tester/sim"
)

// recordingReporter counts Fail/Pass calls and remembers every failing
// address, for scenario assertions.
type recordingReporter struct {
	fails  []bus.Address
	passes int
}

func (r *recordingReporter) Fail(addr bus.Address) { r.fails = append(r.fails, addr) }
func (r *recordingReporter) Pass()                 { r.passes++ }

func TestRunIterationFresh64KPasses(t *testing.T) {
	dram := sim.New(false, true)
	c := bus.New(dram)
	r := &recordingReporter{}
	e := New(c, chip.Dram64K, r)

	if !e.RunIteration() {
		t.Fatalf("RunIteration on a fresh 64K chip returned false")
	}
	if len(r.fails) != 0 {
		t.Errorf("Fail called %d times, want 0", len(r.fails))
	}
	if r.passes != 1 {
		t.Errorf("Pass called %d times, want 1", r.passes)
	}
}

func TestRunIterationStuckAt1Fails(t *testing.T) {
	dram := sim.New(false, true)
	dram.InjectFault(sim.Fault{Kind: sim.StuckAt1, Address: uint32(0x42) | uint32(0x17)<<8})
	c := bus.New(dram)
	r := &recordingReporter{}
	e := New(c, chip.Dram64K, r)

	if e.RunIteration() {
		t.Fatalf("RunIteration with a stuck-at-1 fault returned true")
	}
	if r.passes != 0 {
		t.Errorf("Pass called %d times, want 0", r.passes)
	}
	if len(r.fails) == 0 {
		t.Fatalf("Fail was never called")
	}
	for _, addr := range r.fails {
		if addr.Row != 0x42 || addr.Col != 0x17 {
			t.Errorf("unexpected failing address %+v", addr)
		}
	}
}

func TestRunIterationCouplingFault(t *testing.T) {
	dram := sim.New(false, true)
	dram.InjectFault(sim.Fault{Kind: sim.CouplingSet, Address: 0, CoupledAddress: 1})
	c := bus.New(dram)
	r := &recordingReporter{}
	e := New(c, chip.Dram64K, r)

	if e.RunIteration() {
		t.Fatalf("RunIteration with a coupling fault returned true")
	}
	if r.passes != 0 {
		t.Errorf("Pass called %d times, want 0", r.passes)
	}
}

func TestRunStep256KVisitsAllFourQuadrants(t *testing.T) {
	dram := sim.New(true, true)
	c := bus.New(dram)
	r := &recordingReporter{}
	e := New(c, chip.Dram256K, r)

	// Seed a 1 at each quadrant's (0,0) cell so the check below can tell
	// a cell step 1 wrote from one it never touched.
	c.SetDin(true)
	for _, q := range upQuadrants {
		c.Write(bus.Address{Row: 0, Col: 0, RowHigh: q.rowHigh, ColHigh: q.colHigh})
	}

	failed := false
	e.runStep(sequence[0], &failed)

	// Step 1 (Up, NoRead, WriteZero) must have reached every one of the
	// four (rowHigh, colHigh) quadrants' (0,0) cell, not just the
	// (false,false) one a 64K chip would use.
	for _, q := range upQuadrants {
		if got := c.Read(bus.Address{Row: 0, Col: 0, RowHigh: q.rowHigh, ColHigh: q.colHigh}); got != bus.Zero {
			t.Errorf("cell at quadrant %+v after step 1 = %v, want Zero", q, got)
		}
	}
}

func TestStepObserverInvokedPerStep(t *testing.T) {
	dram := sim.New(false, true)
	c := bus.New(dram)
	r := &recordingReporter{}

	var names []string
	e := New(c, chip.Dram64K, r, WithStepObserver(func(name string, dir Direction, failed bool) {
		names = append(names, name)
	}))

	e.RunIteration()
	if len(names) != 6 {
		t.Fatalf("observer invoked %d times, want 6", len(names))
	}
}
