// Package dbn holds the vocabulary shared by every tsbngen package: node
// types, temporal phases, and the parent/loopback maps that describe how a
// dynamic Bayesian network is wired within and across time steps.
//
// The types here carry no behavior beyond formatting and small helpers; the
// sampling semantics live in package sampler and the CPD layouts in cpd.
package dbn
