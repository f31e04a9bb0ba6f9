// Package sampler compiles a dynamic Bayesian network model and draws
// synthetic multivariate time series from it.
//
// What:
//
//   - Compile: topological schedule, node roles, structural validation
//     across all phases (violations reported together), and per-(phase,
//     node) sampling plans with loopback lags resolved to buffer offsets.
//   - Engine: one series; Step samples every node once, in topological
//     order, under a given phase.
//   - Generator: N independent series of length T with a three-phase
//     schedule (Initial at step 0, Recurring, optional SecondaryRecurring
//     from the switch point).
//
// Loopback offsets:
//
//	parent before child in the order   offset = lag
//	parent at or after child (or self) offset = lag − 1
//
// Offsets count back from the most recent sample of the parent. A negative
// offset is rejected at compile time and an offset reaching before the start
// of the series fails at run time, both with ErrInvalidLoopback.
//
// Determinism:
//
//	Per-series seeds are drawn sequentially from the master stream
//	(WithSeed / WithRand) before any series starts, so the output of a
//	Generate call depends on the seed alone, not on WithWorkers.
//
// Errors:
//
//   - ErrValidation          inconsistent model or run parameters
//   - ErrInvalidLoopback     a lag reads before the series start
//   - topology.ErrCycleDetected and the topology shape errors
//   - cpd.ErrMissingEntry and the cpd parameter errors
//   - ctx.Err()              Generate canceled
package sampler
