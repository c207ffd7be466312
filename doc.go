// Package dds is a double-dummy solver for contract bridge: given a
// complete four-hand deal, a trump strain, and an opening leader, it
// computes the maximum number of tricks the side on lead can guarantee
// against optimal defense under perfect information.
//
// The package is a pure, single-threaded, synchronous in-memory
// computation (see spec §5): it performs no I/O, reads no configuration
// from the environment, and emits no logs. Hosts that want concurrency,
// cancellation between solves, or logging wrap [Solver] themselves; see
// the sibling ddsdriver package for one such wrapper.
package dds
