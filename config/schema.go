package config

import (
	"github.com/katalvlaran/tsbngen/dbn"
)

// File is a model document: the network, its CPDs per phase and the default
// run parameters.
type File struct {
	Nodes      []dbn.Node `yaml:"nodes" json:"nodes"`
	Adjacency  [][]int    `yaml:"adjacency" json:"adjacency"`
	Phases     Phases     `yaml:"phases" json:"phases"`
	SwitchTime int        `yaml:"switch_time,omitempty" json:"switch_time,omitempty"`
	Run        Run        `yaml:"run,omitempty" json:"run,omitempty"`
}

// Phases groups the per-phase sections; Secondary is optional.
type Phases struct {
	Initial   Phase  `yaml:"initial" json:"initial"`
	Recurring Phase  `yaml:"recurring" json:"recurring"`
	Secondary *Phase `yaml:"secondary,omitempty" json:"secondary,omitempty"`
}

// Phase is the structure and CPDs of one phase.
type Phase struct {
	// Parents maps child id to its ordered parent ids.
	Parents map[int][]int `yaml:"parents,omitempty" json:"parents,omitempty"`
	// Loopbacks lists the lagged relations of the phase.
	Loopbacks []Loopback `yaml:"loopbacks,omitempty" json:"loopbacks,omitempty"`
	// CPDs maps node id to its entry in this phase.
	CPDs map[int]Entry `yaml:"cpds" json:"cpds"`
}

// Loopback declares the lags at which Child reads Parent.
type Loopback struct {
	Parent int   `yaml:"parent" json:"parent"`
	Child  int   `yaml:"child" json:"child"`
	Lags   []int `yaml:"lags" json:"lags"`
}

// Entry is the document form of cpd.Entry. Exactly one of Categorical,
// Gaussian and Regression is expected.
type Entry struct {
	Parents     []int       `yaml:"parents,omitempty" json:"parents,omitempty"`
	Categorical [][]float64 `yaml:"categorical,omitempty" json:"categorical,omitempty"`
	Gaussian    []Gaussian  `yaml:"gaussian,omitempty" json:"gaussian,omitempty"`
	Regression  *Regression `yaml:"regression,omitempty" json:"regression,omitempty"`
}

// Gaussian is one Normal(Mean, Sigma²) row.
type Gaussian struct {
	Mean  float64 `yaml:"mean" json:"mean"`
	Sigma float64 `yaml:"sigma" json:"sigma"`
}

// Regression is the document form of cpd.Regression.
type Regression struct {
	Terms          []Term    `yaml:"terms" json:"terms"`
	InterceptSigma []float64 `yaml:"intercept_sigma" json:"intercept_sigma"`
	Sigma          []float64 `yaml:"sigma" json:"sigma"`
}

// Term carries the per-row coefficients of one continuous input. Lag is the
// declared loopback lag, 0 for a same-step parent. Coefficients are keyed by
// that declared lag, not by the effective read offset (lag−1 for a parent
// sampled after the child), so tables written against offsets must be
// re-keyed to the declared lags.
type Term struct {
	Parent       int       `yaml:"parent" json:"parent"`
	Lag          int       `yaml:"lag,omitempty" json:"lag,omitempty"`
	Coefficients []float64 `yaml:"coefficients" json:"coefficients"`
}

// Run holds default generation parameters; CLI flags override them.
type Run struct {
	Series  int   `yaml:"series,omitempty" json:"series,omitempty"`
	Length  int   `yaml:"length,omitempty" json:"length,omitempty"`
	Seed    int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Workers int   `yaml:"workers,omitempty" json:"workers,omitempty"`
}
