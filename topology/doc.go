// Package topology ingests the intra-step adjacency matrix of a dynamic
// Bayesian network and derives the schedule every time step follows.
//
// What:
//
//   - Graph: dense 0/1 adjacency (row = parent, column = child) with
//     Parents/Children/InDegree queries.
//   - TopologicalOrder: Kahn's algorithm with a FIFO queue; simultaneously
//     ready nodes leave in ascending id order, so the schedule is
//     deterministic for a fixed graph.
//   - AssignRoles: Root for nodes with zero column sum, NonRoot otherwise.
//
// Errors:
//
//   - ErrNonSquare      adjacency matrix empty or not n×n
//   - ErrNonBinary      entry outside {0,1}
//   - ErrCycleDetected  fewer than n nodes could be ordered
//   - ErrUnknownNode    id outside [0, n)
//   - ErrGraphNil       nil *Graph
//   - context.Canceled  ordering canceled via WithCancelContext
package topology
