// Package config reads model documents (YAML or JSON) and maps them onto
// sampler.Model.
//
// A document lists the nodes, the initial-time adjacency matrix and, per
// phase, the parent lists, loopback lags and CPD entries. An optional run
// section carries default generation parameters. See testdata/ for complete
// examples.
package config
