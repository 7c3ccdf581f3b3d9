// Package march implements the March C- engine: a single-pass primitive
// specialized by hand into six non-generic functions (one per
// Direction/ReadSpec/WriteSpec combination March C- actually uses), and
// their composition into the full six-step sequence.
//
// The per-cell loop body of each specialized function never branches on
// ReadSpec, WriteSpec, or Direction — each function's body is already the
// fully-resolved straight-line form those would otherwise select at
// runtime. This is deliberate: it is this module's Go analogue of the
// original firmware's compile-time template specialization, and it is
// what keeps each pass fast enough that the row-as-low-byte iteration
// order alone satisfies the DRAM refresh window: the counter's low byte
// is the strobed row, so any 256 consecutive cells of a pass touch every
// row once, and the engine issues no explicit refresh cycles.
package march
