// Command benchconsole probes the DRAM on a test jig, runs the March C-
// engine against it, and renders a live terminal dashboard of the chip
// kind, iteration count, last step, and LED state. The dashboard also
// shows fast/nominal/slow access-time counters; this command runs no
// measurement sweep, so they stay at zero. It is bench tooling only,
// not a feature of the tested device.
package main

import (
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell"

	"github.com/trevor-makes/avr-dram-tester/bench"
	"github.com/trevor-makes/avr-dram-tester/bus"
	"github.com/trevor-makes/avr-dram-tester/chip"
	"github.com/trevor-makes/avr-dram-tester/indicator"
	"github.com/trevor-makes/avr-dram-tester/march"
	"github.com/trevor-makes/avr-dram-tester/measure"
)

// dashboard tracks the state rendered to the screen, guarded by a
// mutex since the March pass and the render loop run concurrently.
type dashboard struct {
	mu sync.Mutex

	kind       chip.Kind
	iterations int
	lastStep   string
	lastFailed bool
	green, red bool

	histogram [3]int // indexed by measure.Band
}

func (d *dashboard) onStep(name string, dir march.Direction, failed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastStep, d.lastFailed = name, failed
}

func (d *dashboard) onPass() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.iterations++
	d.green = true
}

func (d *dashboard) onFail() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.red = true
	d.green = false
}

func (d *dashboard) onSample(band measure.Band) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.histogram[band]++
}

func (d *dashboard) render(s tcell.Screen) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s.Clear()
	style := tcell.StyleDefault
	drawText(s, 0, 0, style, fmt.Sprintf("chip kind:   %s", d.kind))
	drawText(s, 0, 1, style, fmt.Sprintf("iterations:  %d", d.iterations))
	drawText(s, 0, 2, style, fmt.Sprintf("last step:   %s (failed=%v)", d.lastStep, d.lastFailed))

	ledStyle := style
	if d.green {
		ledStyle = ledStyle.Foreground(tcell.ColorGreen)
	}
	if d.red {
		ledStyle = ledStyle.Foreground(tcell.ColorRed)
	}
	drawText(s, 0, 4, ledStyle, fmt.Sprintf("green=%-5v red=%-5v", d.green, d.red))

	drawText(s, 0, 6, style, fmt.Sprintf("fast:    %d", d.histogram[measure.BandFast]))
	drawText(s, 0, 7, style, fmt.Sprintf("nominal: %d", d.histogram[measure.BandNominal]))
	drawText(s, 0, 8, style, fmt.Sprintf("slow:    %d", d.histogram[measure.BandSlow]))

	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// reporterAdapter adapts dashboard's onPass/onFail into march.Reporter,
// forwarding every failure to an indicator.Controller as well so the
// jig's real LEDs and ERR pin stay in sync with the on-screen display.
type reporterAdapter struct {
	dashboard *dashboard
	indicator *indicator.Controller
}

func (r *reporterAdapter) Fail(addr bus.Address) {
	r.dashboard.onFail()
	r.indicator.Fail(addr)
}

func (r *reporterAdapter) Pass() {
	r.dashboard.onPass()
	r.indicator.Pass()
}

func main() {
	jigPort := flag.String("jig-port", "", "serial port name for the bench jig (auto-detected if empty)")
	flag.Parse()

	conn, err := bench.Dial(*jigPort)
	if err != nil {
		log.Fatalf("benchconsole: %v", err)
	}
	defer conn.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("benchconsole: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("benchconsole: %v", err)
	}
	defer screen.Fini()

	c := bus.New(conn)
	kind := chip.Probe(c)

	d := &dashboard{kind: kind}
	ind := indicator.New(conn, conn)
	reporter := &reporterAdapter{dashboard: d, indicator: ind}

	eng := march.New(c, kind, reporter, march.WithStepObserver(d.onStep))
	go eng.Run()

	go func() {
		for range time.Tick(200 * time.Millisecond) {
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	d.render(screen)
	for {
		switch e := screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			d.render(screen)
		case *tcell.EventKey:
			if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
				return
			}
		}
	}
}
