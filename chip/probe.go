package chip

import "github.com/trevor-makes/avr-dram-tester/bus"

// Kind is the detected DRAM family.
type Kind int

const (
	// Dram64K is a 4164-family part: 8-bit row, 8-bit column.
	Dram64K Kind = iota
	// Dram256K is a 41256-family part: 9-bit row, 9-bit column, using
	// the A8 line as the extra row/column bit.
	Dram256K
)

// String names the kind, for logging.
func (k Kind) String() string {
	if k == Dram256K {
		return "256K"
	}
	return "64K"
}

// RowBits and ColBits return the address width of the family.
func (k Kind) RowBits() int {
	if k == Dram256K {
		return 9
	}
	return 8
}

func (k Kind) ColBits() int { return k.RowBits() }

// Probe writes 1 at (rowHigh=0, colHigh=0, row=0, col=0), then writes 0
// at (rowHigh=1, colHigh=1, row=0, col=0), then reads back
// (rowHigh=0, colHigh=0, row=0, col=0). If the chip honors A8 as a real
// address bit, the second write lands on a distinct cell and the read
// still returns 1, identifying a 256K part. If A8 is a don't-care, the
// second write aliases the first cell and the read returns 0, identifying
// a 64K part.
func Probe(c *bus.Controller) Kind {
	base := bus.Address{Row: 0, Col: 0, RowHigh: false, ColHigh: false}
	aliased := bus.Address{Row: 0, Col: 0, RowHigh: true, ColHigh: true}

	c.SetDin(true)
	c.Write(base)
	c.SetDin(false)
	c.Write(aliased)

	if c.Read(base) == bus.One {
		return Dram256K
	}
	return Dram64K
}
