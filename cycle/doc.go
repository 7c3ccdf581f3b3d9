// Package cycle provides the fixed-count busy delays the bus driver
// inserts between control-line transitions to satisfy DRAM timing
// (tRCD, tCAS, tCAC, tRAS). Each WaitN is its own function with a
// straight-line body of exactly N no-ops — there is no loop counter and
// no parameter, so there is nothing to branch on and nothing that could
// suspend the caller.
package cycle
