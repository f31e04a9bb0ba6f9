// SPDX-License-Identifier: MIT
// Package: tsbngen/sampler
//
// errors.go — sentinel errors for model validation and sampling.
//
// Error classes surfaced by this package (all fatal, none retried):
//   • topology.ErrCycleDetected — structural, from Compile.
//   • ErrValidation            — model inconsistent, reported before sampling.
//   • cpd.ErrMissingEntry      — CPD tables incomplete for the structure.
//   • ErrInvalidLoopback       — a lag reaches before the start of a series.

package sampler

import (
	"errors"
	"fmt"
)

// ErrValidation indicates a model that cannot be sampled: a discrete node
// with a continuous parent, unknown ids, malformed lags, or inconsistent
// run parameters. Compile reports every violation it finds at once.
var ErrValidation = errors.New("sampler: invalid model")

// ErrInvalidLoopback indicates that resolving a parent value would read a
// sample before the start of the current series.
var ErrInvalidLoopback = errors.New("sampler: loopback reaches before series start")

// samplerErrorf wraps err with the method name and a formatted detail.
func samplerErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// validationErrorf builds one ErrValidation violation scoped to a phase.
func validationErrorf(scope string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", scope, fmt.Sprintf(format, args...), ErrValidation)
}
