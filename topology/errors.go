// SPDX-License-Identifier: MIT
// Package: tsbngen/topology
//
// errors.go — sentinel errors for adjacency ingestion and ordering.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w via topologyErrorf.

package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrNonSquare is returned when the adjacency matrix is empty or not n×n.
	ErrNonSquare = errors.New("topology: adjacency matrix is not square")

	// ErrNonBinary is returned when an adjacency entry is neither 0 nor 1.
	ErrNonBinary = errors.New("topology: adjacency entry is not 0 or 1")

	// ErrCycleDetected is returned when Kahn's algorithm cannot place every
	// node: some in-degree never reached zero.
	ErrCycleDetected = errors.New("topology: cycle detected")

	// ErrUnknownNode is returned for node ids outside [0, n).
	ErrUnknownNode = errors.New("topology: unknown node id")

	// ErrGraphNil is returned when a nil *Graph is passed in.
	ErrGraphNil = errors.New("topology: graph is nil")
)

// topologyErrorf prefixes err with the method name, keeping the sentinel
// reachable through errors.Is.
func topologyErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
