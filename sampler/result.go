package sampler

import (
	"github.com/katalvlaran/tsbngen/dbn"
)

// Result is the output of one Generate call.
type Result struct {
	// RunID identifies the run in logs and serialized output.
	RunID string `json:"run_id"`
	// Length is the number of steps in every series.
	Length int `json:"length"`
	// Nodes is the node table the series were drawn for.
	Nodes []dbn.Node `json:"nodes"`
	// Series maps node id to its N series of Length samples each:
	// Series[id][s][t] is node id in series s at step t. Discrete samples
	// hold their 1-based level.
	Series map[int][][]float64 `json:"series"`
}

// Discrete returns the samples of a discrete node as integer levels.
func (r *Result) Discrete(node int) ([][]int, error) {
	if node < 0 || node >= len(r.Nodes) {
		return nil, samplerErrorf("Result.Discrete", ErrValidation, "unknown node %d", node)
	}
	if r.Nodes[node].Type != dbn.Discrete {
		return nil, samplerErrorf("Result.Discrete", ErrValidation, "node %d is %s", node, r.Nodes[node].Type)
	}
	series := r.Series[node]
	out := make([][]int, len(series))
	for s, row := range series {
		out[s] = make([]int, len(row))
		for t, v := range row {
			out[s][t] = int(v)
		}
	}

	return out, nil
}
