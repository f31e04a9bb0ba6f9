// Package tsbngen generates synthetic multivariate time series from dynamic
// Bayesian networks with mixed discrete and continuous variables.
//
// 🚀 What is tsbngen?
//
//	A deterministic, concurrent sampler that brings together:
//		• Topology: 0/1 adjacency ingestion, Kahn ordering, root detection
//		• CPDs: categorical tables, Gaussian rows and linear-Gaussian regressions
//		  addressed by the composite index of the discrete parents
//		• Loopbacks: lagged parent reads across time steps, including self lags
//		• Schedule: Initial at step 0, Recurring, optional SecondaryRecurring
//		• Generation: N independent series, one seeded stream each
//
// Under the hood, everything is organized in small packages:
//
//	dbn/         — vocabulary: Node, NodeType, Phase, Relation, parent and lag maps
//	topology/    — Graph, TopologicalOrder, AssignRoles
//	cpd/         — CompositeIndex, Entry, Registry, draw primitives
//	sampler/     — Compile, Engine, Schedule, Generator
//	config/      — YAML/JSON model documents
//	cmd/tsbngen  — CLI: validate and generate
//
// Quick ASCII example:
//
//	    t=0        t=1        t=2
//	    R0 ──────▶ R1 ──────▶ R2      R: discrete regime, lag-1 self loopback
//	    │          │          │
//	    ▼          ▼          ▼
//	    X0         X1         X2      X: continuous, mean chosen by R[t]
//
//	go install github.com/katalvlaran/tsbngen/cmd/tsbngen@latest
package tsbngen
