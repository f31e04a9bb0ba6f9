// SPDX-License-Identifier: MIT
// Package: tsbngen/cpd
//
// errors.go — sentinel errors for CPD tables and composite indexing.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with cpdErrorf(method, err, ...).

package cpd

import (
	"errors"
	"fmt"
)

// ErrMissingEntry indicates that a (phase, node) context, a composite index,
// or a regression term has no corresponding entry in the registry. The
// caller-supplied tables are incomplete for the declared structure.
var ErrMissingEntry = errors.New("cpd: missing entry")

// ErrLengthMismatch indicates that the parent value list and the level-count
// list passed to CompositeIndex have different lengths.
var ErrLengthMismatch = errors.New("cpd: values and levels differ in length")

// ErrLevelOutOfRange indicates a parent value outside 1..L, a level count
// below 1, or a composite index outside [0, Rows(levels)).
var ErrLevelOutOfRange = errors.New("cpd: level out of range")

// ErrInvalidDistribution indicates a categorical distribution with negative
// or non-finite weights, or weights not summing to 1.
var ErrInvalidDistribution = errors.New("cpd: invalid categorical distribution")

// ErrInvalidSigma indicates a negative or non-finite standard deviation, or a
// non-finite mean or coefficient.
var ErrInvalidSigma = errors.New("cpd: invalid gaussian parameter")

// cpdErrorf wraps err with the method name and a formatted detail.
func cpdErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
