// Command tester drives the DRAM test core: power-up, chip probe, and
// either the March C- pattern or the alternate access-time measurement
// mode, depending on the mode-select line.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/spf13/afero"

	"github.com/trevor-makes/avr-dram-tester/bench"
	"github.com/trevor-makes/avr-dram-tester/bus"
	"github.com/trevor-makes/avr-dram-tester/chip"
	"github.com/trevor-makes/avr-dram-tester/gpio"
	"github.com/trevor-makes/avr-dram-tester/indicator"
	"github.com/trevor-makes/avr-dram-tester/march"
	"github.com/trevor-makes/avr-dram-tester/measure"
	"github.com/trevor-makes/avr-dram-tester/sim"
)

func main() {
	backend := flag.String("backend", "sim", "gpio.Port backend: sim or bench")
	jigPort := flag.String("jig-port", "", "serial port name for the bench backend (auto-detected if empty)")
	honorsA8 := flag.Bool("sim-256k", false, "sim backend: model a 256K part instead of 64K")
	modeSelect := flag.Bool("sim-test-mode", true, "sim backend: value ModeSelect.Read reports")
	faultProfile := flag.String("sim-fault-profile", "", "sim backend: JSON fault profile to inject")
	flag.Parse()

	port, closeFn, err := openPort(*backend, *jigPort, *honorsA8, *modeSelect, *faultProfile)
	if err != nil {
		log.Fatalf("tester: %v", err)
	}
	defer closeFn()

	run(port)
}

func openPort(backend, jigPort string, honorsA8, modeSelect bool, faultProfile string) (gpio.Port, func(), error) {
	switch backend {
	case "sim":
		dram := sim.New(honorsA8, modeSelect)
		if faultProfile != "" {
			faults, err := sim.LoadFaultProfile(afero.NewOsFs(), faultProfile)
			if err != nil {
				return nil, nil, err
			}
			for _, f := range faults {
				dram.InjectFault(f)
			}
		}
		return dram, func() {}, nil
	case "bench":
		conn, err := bench.Dial(jigPort)
		if err != nil {
			return nil, nil, err
		}
		return conn, func() { conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// powerUp performs the DRAM bias-generator settling delay and the
// mandatory RAS-only wake-up cycles.
func powerUp(port gpio.Port) {
	port.Set(gpio.Idle)
	port.Wait500us()

	for i := 0; i < 8; i++ {
		port.SetLow(0)
		port.Set(gpio.RAS)
		port.Set(gpio.Idle)
	}
}

func run(port gpio.Port) {
	powerUp(port)

	if !port.Read() {
		runMeasurement(port)
		return
	}

	c := bus.New(port)
	kind := chip.Probe(c)
	log.Printf("tester: detected %s DRAM", kind)

	ind := indicator.New(port, port)
	eng := march.New(c, kind, ind, march.WithStepObserver(func(name string, dir march.Direction, failed bool) {
		if failed {
			log.Printf("tester: step %s (%s) had a mismatch", name, dir)
		}
	}))
	eng.Run()
}

func runMeasurement(port gpio.Port) {
	c := bus.New(port)
	measure.InitDiagonal(c)

	for {
		// Report the slowest band seen in the sweep, once, between sweeps.
		sampled := false
		slowest := measure.BandFast
		measure.SweepOnce(c, port, measure.DefaultThreshold, func(addr bus.Address, band measure.Band) {
			sampled = true
			if band > slowest {
				slowest = band
			}
		})
		if !sampled {
			continue
		}
		for i := 0; i < slowest.Blinks(); i++ {
			port.SetIndicator(true, false)
			port.SetIndicator(false, false)
		}
	}
}
