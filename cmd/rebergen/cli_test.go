package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/rebergen/dataset"
	"github.com/katalvlaran/rebergen/grammar"
)

// resetFlags pins the persistent flag globals to known defaults per test.
func resetFlags(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	verbose = false
	grammarFlag = "embedded"
	alphabetFlag = string(grammar.Reber)
	seed = 42
}

func TestRunGen_EmitsGrammaticalStrings(t *testing.T) {
	resetFlags(t)
	genCount, genCorrupt = 5, false

	var out bytes.Buffer
	genCmd.SetOut(&out)
	require.NoError(t, runGen(genCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	for _, s := range lines {
		ok, err := grammar.Embedded().Accepts(s)
		require.NoError(t, err)
		assert.True(t, ok, "emitted string %q must be grammatical", s)
	}
}

func TestRunGen_SeedReproduces(t *testing.T) {
	resetFlags(t)
	genCount, genCorrupt = 8, false

	runOnce := func() string {
		var out bytes.Buffer
		genCmd.SetOut(&out)
		require.NoError(t, runGen(genCmd, nil))
		return out.String()
	}
	assert.Equal(t, runOnce(), runOnce(), "same seed must reproduce the same lines")
}

func TestRunDataset_JSONLToStdout(t *testing.T) {
	resetFlags(t)
	datasetSize, datasetOut, datasetDB, datasetID = 10, "-", "", ""

	var out bytes.Buffer
	datasetCmd.SetOut(&out)
	require.NoError(t, runDataset(datasetCmd, nil))

	ds, err := dataset.ReadJSONL(&out)
	require.NoError(t, err)
	assert.Equal(t, 10, ds.Len())
	assert.Equal(t, 5, ds.CountLabel(dataset.LabelValid))
	assert.Equal(t, 5, ds.CountLabel(dataset.LabelCorrupted))
}

func TestRunEncode_ReferenceVector(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	encodeCmd.SetOut(&out)
	require.NoError(t, runEncode(encodeCmd, []string{"BTTTXXVVETE"}))
	assert.Equal(t, "[0,4,4,4,6,6,5,5,1,4,1]\n", out.String())

	assert.Error(t, runEncode(encodeCmd, []string{"BQE"}), "unknown symbols must fail")
}

func TestRunCheck_ReportsVerdicts(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	require.NoError(t, runCheck(checkCmd, []string{"BTBTXSETE"}))
	assert.Contains(t, out.String(), "valid")

	out.Reset()
	err := runCheck(checkCmd, []string{"BTBTXSETE", "BTBTXSEPE"})
	require.Error(t, err, "any rejected string must fail the command")
	assert.Contains(t, out.String(), "invalid")
}

func TestResolveGrammar_Flag(t *testing.T) {
	resetFlags(t)

	grammarFlag = "base"
	g, err := resolveGrammar()
	require.NoError(t, err)
	assert.Same(t, grammar.Base(), g)

	grammarFlag = "no/such/file.yaml"
	_, err = resolveGrammar()
	assert.Error(t, err)
}

func TestResolveAlphabet_Flag(t *testing.T) {
	resetFlags(t)

	alphabetFlag = "BEPSB"
	_, err := resolveAlphabet()
	assert.ErrorIs(t, err, grammar.ErrDuplicateSymbol)
}
