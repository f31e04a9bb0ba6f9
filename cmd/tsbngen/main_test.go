package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsbngen/sampler"
)

var testdata = filepath.Join("..", "..", "config", "testdata")

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate(t *testing.T) {
	out, _, err := execute(t, "validate", filepath.Join(testdata, "regime.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "regime.yaml: ok")
	assert.Contains(t, out, "order: [0 1]")
	assert.Contains(t, out, "phase recurring:")
}

func TestValidate_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cycle.yaml")
	doc := "nodes: [{id: 0, type: c}, {id: 1, type: c}]\nadjacency: [[0, 1], [1, 0]]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, _, err := execute(t, "validate", path)
	assert.ErrorContains(t, err, "cycle")
}

// TestGenerate_RunSection takes series, length and seed from the model file.
func TestGenerate_RunSection(t *testing.T) {
	out, logs, err := execute(t, "generate", filepath.Join(testdata, "regime.yaml"))
	require.NoError(t, err)

	var res sampler.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 16, res.Length)
	require.Len(t, res.Series[0], 8)
	assert.Len(t, res.Series[0][0], 16)
	assert.Contains(t, logs, "msg=generating")
	assert.Contains(t, logs, "component=sampler")
}

// TestGenerate_FlagsOverride writes to a file and honors flags over the
// run section.
func TestGenerate_FlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	_, _, err := execute(t, "generate", filepath.Join(testdata, "ar.json"),
		"--series=2", "--length=6", "--switch-time=4", "-o", path, "--indent", "--log-format=json")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var res sampler.Result
	require.NoError(t, json.Unmarshal(data, &res))
	require.Len(t, res.Series[0], 2)
	// recurring doubles through step 3, then x[t] = x[t-2].
	assert.Equal(t, []float64{1, 2, 4, 8, 4, 8}, res.Series[0][0])
}

func TestGenerate_Deterministic(t *testing.T) {
	model := filepath.Join(testdata, "regime.yaml")
	a, _, err := execute(t, "generate", model, "--seed=9", "--log-level=error")
	require.NoError(t, err)
	b, _, err := execute(t, "generate", model, "--seed=9", "--workers=4", "--log-level=error")
	require.NoError(t, err)

	var ra, rb sampler.Result
	require.NoError(t, json.Unmarshal([]byte(a), &ra))
	require.NoError(t, json.Unmarshal([]byte(b), &rb))
	assert.Equal(t, ra.Series, rb.Series)
}

func TestGenerate_BadFlags(t *testing.T) {
	model := filepath.Join(testdata, "regime.yaml")
	_, _, err := execute(t, "generate", model, "--workers=0")
	assert.Error(t, err)
	_, _, err = execute(t, "generate", model, "--length=0")
	assert.ErrorIs(t, err, sampler.ErrValidation)
	_, _, err = execute(t, "generate", model, "--log-format=xml")
	assert.Error(t, err)
	_, _, err = execute(t, "generate")
	assert.Error(t, err)
}

var errDiskFull = errors.New("disk full")

// failingFile accepts writes up to limit bytes and may fail on Close.
type failingFile struct {
	bytes.Buffer
	limit    int
	closeErr error
	closed   bool
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.Len()+len(p) > f.limit {
		return 0, errDiskFull
	}
	return f.Buffer.Write(p)
}

func (f *failingFile) Close() error {
	f.closed = true
	return f.closeErr
}

// TestWriteAndClose reports close and write failures of the output file.
func TestWriteAndClose(t *testing.T) {
	res := &sampler.Result{RunID: "r", Length: 1, Series: map[int][][]float64{0: {{1}}}}

	ok := &failingFile{limit: 1 << 10}
	require.NoError(t, writeAndClose(ok, res, false))
	assert.True(t, ok.closed)
	assert.Contains(t, ok.String(), `"run_id":"r"`)

	lost := &failingFile{limit: 1 << 10, closeErr: errDiskFull}
	err := writeAndClose(lost, res, true)
	require.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "close output")

	short := &failingFile{limit: 4}
	err = writeAndClose(short, res, false)
	require.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "write result")
	assert.True(t, short.closed)
}

func TestGenerate_OutputDirMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "out.json")
	_, _, err := execute(t, "generate", filepath.Join(testdata, "regime.yaml"), "-o", path, "--log-level=error")
	assert.ErrorContains(t, err, "create output")
}
