// Package chip implements the one-shot probe that distinguishes a 64K
// (8-bit row/col, 4164-family) part from a 256K (9-bit row/col,
// 41256-family) part, run once after DRAM init and before any March
// pass.
package chip
