// Package cpd stores conditional probability definitions (CPDs) and draws
// samples from them.
//
// What:
//
//   - CompositeIndex / DecodeIndex / Rows: mixed-radix encoding of a discrete
//     parent assignment into a table row (last parent varies fastest).
//   - Entry: the CPD of one node in one phase. Discrete nodes carry one
//     Categorical row per composite index; continuous nodes carry Moments
//     rows (no continuous parent) or a Regression (continuous parents).
//   - Registry: entries keyed by Key{Phase, Node}.
//   - DrawCategorical, DrawNormal, DrawRegression: primitives over an explicit
//     *rand.Rand; there is no package-level random state.
//
// Errors:
//
//   - ErrMissingEntry         no entry, row, or term for a lookup
//   - ErrLengthMismatch       values and levels differ in length
//   - ErrLevelOutOfRange      value outside 1..L, L < 1, index out of range
//   - ErrInvalidDistribution  malformed categorical row
//   - ErrInvalidSigma         negative/non-finite sigma, non-finite mean or coefficient
package cpd
