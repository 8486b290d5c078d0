package grammar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rebergen/grammar"
)

// reberYAML mirrors the stock embedded Reber grammar as a user document.
const reberYAML = `
root: embedded
grammars:
  base:
    - [{sym: B, next: 1}]
    - [{sym: T, next: 2}, {sym: P, next: 3}]
    - [{sym: S, next: 2}, {sym: X, next: 4}]
    - [{sym: T, next: 3}, {sym: V, next: 5}]
    - [{sym: X, next: 3}, {sym: S, next: 6}]
    - [{sym: P, next: 4}, {sym: V, next: 6}]
    - [{sym: E}]
  embedded:
    - [{sym: B, next: 1}]
    - [{sym: T, next: 2}, {sym: P, next: 3}]
    - [{sub: base, next: 4}]
    - [{sub: base, next: 5}]
    - [{sym: T, next: 6}]
    - [{sym: P, next: 6}]
    - [{sym: E}]
`

// TestParseYAML_ReberDocument parses the reference document and checks the
// resulting grammar recognises the same language as the stock one.
func TestParseYAML_ReberDocument(t *testing.T) {
	g, err := grammar.ParseYAML([]byte(reberYAML))
	require.NoError(t, err)
	require.Equal(t, 7, g.States())

	for s, want := range map[string]bool{
		"BTBTXSETE": true,
		"BPBPVVEPE": true,
		"BTBTXSEPE": false,
		"BTXSE":     false,
	} {
		got, err := g.Accepts(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Accepts(%q)", s)
	}
}

// TestParseYAML_SingleGrammarNeedsNoRoot checks root inference.
func TestParseYAML_SingleGrammarNeedsNoRoot(t *testing.T) {
	doc := `
grammars:
  tiny:
    - [{sym: B, next: 1}]
    - [{sym: E}]
`
	g, err := grammar.ParseYAML([]byte(doc))
	require.NoError(t, err)

	got, err := g.Accepts("BE")
	require.NoError(t, err)
	assert.True(t, got)
}

// TestParseYAML_Rejections covers each document-shape failure.
func TestParseYAML_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not yaml", `{{`},
		{"no grammars", `root: g`},
		{"unknown root", "root: missing\ngrammars:\n  g:\n    - [{sym: B}]\n"},
		{"two grammars no root", "grammars:\n  a:\n    - [{sym: B}]\n  b:\n    - [{sym: E}]\n"},
		{"both sym and sub", "grammars:\n  g:\n    - [{sym: B, sub: g}]\n"},
		{"neither sym nor sub", "grammars:\n  g:\n    - [{next: 0}]\n"},
		{"multi-char sym", "grammars:\n  g:\n    - [{sym: BE}]\n"},
		{"unknown sub", "grammars:\n  g:\n    - [{sub: other}]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grammar.ParseYAML([]byte(tc.doc))
			assert.ErrorIs(t, err, grammar.ErrBadDefinition)
		})
	}

	// Structural faults surface as Validate sentinels, not ErrBadDefinition.
	_, err := grammar.ParseYAML([]byte("grammars:\n  g:\n    - [{sym: B, next: 9}]\n"))
	assert.ErrorIs(t, err, grammar.ErrBadStateIndex)
}

// TestLoadYAML_File round-trips a document through the filesystem.
func TestLoadYAML_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reber.yaml")
	require.NoError(t, os.WriteFile(path, []byte(reberYAML), 0o644))

	g, err := grammar.LoadYAML(path)
	require.NoError(t, err)
	got, err := g.Accepts("BTBTXSETE")
	require.NoError(t, err)
	assert.True(t, got)

	_, err = grammar.LoadYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
