package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsbngen/cpd"
	"github.com/katalvlaran/tsbngen/dbn"
	"github.com/katalvlaran/tsbngen/sampler"
)

// ErrInvalidFile indicates a model document that parses but cannot be mapped
// onto a model, e.g. a relation listed twice or a malformed CPD entry.
var ErrInvalidFile = errors.New("config: invalid model file")

// LoadFromPath reads a model file (YAML or JSON) and returns the parsed File.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by
// content (first non-whitespace char).
func LoadFromPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a model from bytes. ext is the file extension used as a format
// hint; empty means detect from content.
func Load(data []byte, ext string) (*File, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		ext = ".yaml"
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		}
	}

	var f File
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse model json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse model yaml: %w", err)
		}
	}

	return &f, nil
}

// Model maps the document onto a sampler.Model. It checks only what the
// document form can get wrong; structural validation is left to
// sampler.Compile.
func (f *File) Model() (sampler.Model, error) {
	reg := cpd.NewRegistry()
	m := sampler.Model{
		Nodes:      f.Nodes,
		Adjacency:  f.Adjacency,
		CPDs:       reg,
		SwitchTime: f.SwitchTime,
	}

	var errs error
	var err error
	m.Initial, err = f.Phases.Initial.build(dbn.Initial, reg)
	errs = multierr.Append(errs, err)
	m.Recurring, err = f.Phases.Recurring.build(dbn.Recurring, reg)
	errs = multierr.Append(errs, err)
	if f.Phases.Secondary != nil {
		sec, err := f.Phases.Secondary.build(dbn.SecondaryRecurring, reg)
		errs = multierr.Append(errs, err)
		m.Secondary = &sec
	}
	if errs != nil {
		return sampler.Model{}, errs
	}

	return m, nil
}

// build converts one phase section and registers its CPDs under phase.
func (p Phase) build(phase dbn.Phase, reg *cpd.Registry) (sampler.PhaseConfig, error) {
	var errs error
	cfg := sampler.PhaseConfig{
		Parents:   dbn.ParentMap(p.Parents),
		Loopbacks: make(dbn.LoopbackMap, len(p.Loopbacks)),
	}
	if cfg.Parents == nil {
		cfg.Parents = dbn.ParentMap{}
	}

	// 1. Loopbacks: one declaration per relation
	for _, lb := range p.Loopbacks {
		rel := dbn.Relation{Parent: lb.Parent, Child: lb.Child}
		if _, dup := cfg.Loopbacks[rel]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%s: loopback %s declared twice: %w", phase, rel, ErrInvalidFile))
			continue
		}
		cfg.Loopbacks[rel] = slices.Clone(lb.Lags)
	}

	// 2. CPD entries, in node order for stable error output
	ids := maps.Keys(p.CPDs)
	slices.Sort(ids)
	for _, id := range ids {
		entry, err := p.CPDs[id].build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s node %d: %w", phase, id, err))
			continue
		}
		reg.Set(cpd.Key{Phase: phase, Node: id}, entry)
	}

	return cfg, errs
}

// build converts one entry, rejecting ambiguous ones.
func (e Entry) build() (*cpd.Entry, error) {
	kinds := 0
	out := &cpd.Entry{Parents: e.Parents}
	if len(e.Categorical) > 0 {
		kinds++
		for _, row := range e.Categorical {
			out.Categorical = append(out.Categorical, cpd.Categorical(row))
		}
	}
	if len(e.Gaussian) > 0 {
		kinds++
		for _, g := range e.Gaussian {
			out.Moments = append(out.Moments, cpd.Moments{Mean: g.Mean, Sigma: g.Sigma})
		}
	}
	if e.Regression != nil {
		kinds++
		reg := &cpd.Regression{
			Terms:          make(map[cpd.Term][]float64, len(e.Regression.Terms)),
			InterceptSigma: e.Regression.InterceptSigma,
			Sigma:          e.Regression.Sigma,
		}
		for _, t := range e.Regression.Terms {
			key := cpd.Term{Parent: t.Parent, Lag: t.Lag}
			if _, dup := reg.Terms[key]; dup {
				return nil, fmt.Errorf("term parent=%d lag=%d listed twice: %w", t.Parent, t.Lag, ErrInvalidFile)
			}
			reg.Terms[key] = t.Coefficients
		}
		out.Regression = reg
	}
	if kinds != 1 {
		return nil, fmt.Errorf("entry needs exactly one of categorical, gaussian, regression, has %d: %w", kinds, ErrInvalidFile)
	}

	return out, nil
}
