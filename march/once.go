package march

import "github.com/trevor-makes/avr-dram-tester/bus"

// Each function below walks one quadrant of the address space exactly
// once, composing the strobed address from a 16-bit counter: the low
// byte becomes the row, the high byte becomes the column. rowHigh and
// colHigh are the A8-line bits for 256K parts; a 64K caller always
// passes false for both.
//
// DIN is not set here — the caller (Engine.runStep) sets it once per
// step, before any of these run, per the step's WriteSpec.
//
// onFail is invoked, and the loop continues, whenever a verify read
// disagrees with the expected bit. A function with nothing to verify
// ignores it.

// onceUpWriteZero implements Up, NoRead, WriteZero: step 1, the
// initialization pass.
func onceUpWriteZero(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address)) {
	var counter uint16
	for {
		addr := bus.Address{Row: byte(counter), Col: byte(counter >> 8), RowHigh: rowHigh, ColHigh: colHigh}
		c.Write(addr)
		counter++
		if counter == 0 {
			return
		}
	}
}

// onceUpVerifyZeroWriteOne implements Up, ExpectZero, WriteOne: step 2.
func onceUpVerifyZeroWriteOne(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address)) {
	var counter uint16
	for {
		addr := bus.Address{Row: byte(counter), Col: byte(counter >> 8), RowHigh: rowHigh, ColHigh: colHigh}
		if c.Read(addr) != bus.Zero {
			onFail(addr)
		}
		c.Write(addr)
		counter++
		if counter == 0 {
			return
		}
	}
}

// onceUpVerifyOneWriteZero implements Up, ExpectOne, WriteZero: step 3.
func onceUpVerifyOneWriteZero(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address)) {
	var counter uint16
	for {
		addr := bus.Address{Row: byte(counter), Col: byte(counter >> 8), RowHigh: rowHigh, ColHigh: colHigh}
		if c.Read(addr) != bus.One {
			onFail(addr)
		}
		c.Write(addr)
		counter++
		if counter == 0 {
			return
		}
	}
}

// onceDownVerifyZeroWriteOne implements Down, ExpectZero, WriteOne: step 4.
func onceDownVerifyZeroWriteOne(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address)) {
	var counter uint16
	for {
		counter--
		addr := bus.Address{Row: byte(counter), Col: byte(counter >> 8), RowHigh: rowHigh, ColHigh: colHigh}
		if c.Read(addr) != bus.Zero {
			onFail(addr)
		}
		c.Write(addr)
		if counter == 0 {
			return
		}
	}
}

// onceDownVerifyOneWriteZero implements Down, ExpectOne, WriteZero: step 5.
func onceDownVerifyOneWriteZero(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address)) {
	var counter uint16
	for {
		counter--
		addr := bus.Address{Row: byte(counter), Col: byte(counter >> 8), RowHigh: rowHigh, ColHigh: colHigh}
		if c.Read(addr) != bus.One {
			onFail(addr)
		}
		c.Write(addr)
		if counter == 0 {
			return
		}
	}
}

// onceDownVerifyZeroNoWrite implements Down, ExpectZero, NoWrite: step 6,
// the final verify-only pass.
func onceDownVerifyZeroNoWrite(c *bus.Controller, rowHigh, colHigh bool, onFail func(bus.Address)) {
	var counter uint16
	for {
		counter--
		addr := bus.Address{Row: byte(counter), Col: byte(counter >> 8), RowHigh: rowHigh, ColHigh: colHigh}
		if c.Read(addr) != bus.Zero {
			onFail(addr)
		}
		if counter == 0 {
			return
		}
	}
}
