package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rebergen/grammar"
)

// TestAccepts_BaseGrammar runs hand-derived member and non-member strings
// forward through the base Reber grammar.
func TestAccepts_BaseGrammar(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"BTXSE", true},       // B→T→X→S→E, shortest T-branch string
		{"BPVVE", true},       // B→P→V→V→E, shortest P-branch string
		{"BTSSXXTVVE", true},  // self-loops on states 2 and 3
		{"", false},           // empty string is never derivable
		{"B", false},          // stops mid-walk
		{"TSXX", false},       // must start with B
		{"BTXXE", false},      // state 3 has no E transition after X,X
		{"BTSSXXSE", false},   // state 3 offers T/V only, not S
		{"BTXSEE", false},     // trailing symbol past the terminal
		{"BTXSA", false},      // symbol outside the grammar entirely
	}

	g := grammar.Base()
	for _, tc := range cases {
		got, err := g.Accepts(tc.s)
		require.NoError(t, err, "Accepts(%q)", tc.s)
		assert.Equal(t, tc.want, got, "Accepts(%q)", tc.s)
	}
}

// TestAccepts_EmbeddedGrammar verifies recursion through the two embedded
// base-grammar branches, including the branch-symbol agreement rule.
func TestAccepts_EmbeddedGrammar(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"BTBTXSETE", true},    // T branch wrapping base "BTXSE"
		{"BPBPVVEPE", true},    // P branch wrapping base "BPVVE"
		{"BTBPVVETE", true},    // branch choice is independent of the inner walk
		{"BTBTXSEPE", false},   // branch symbols must agree (T ... P)
		{"BTSSXXTVVE", false},  // a bare base string is not in the embedded language
		{"BTBTXSET", false},    // missing the closing E
	}

	g := grammar.Embedded()
	for _, tc := range cases {
		got, err := g.Accepts(tc.s)
		require.NoError(t, err, "Accepts(%q)", tc.s)
		assert.Equal(t, tc.want, got, "Accepts(%q)", tc.s)
	}
}

// TestAccepts_SharedSubGrammar checks that one grammar embedded at several
// places is matched independently at each site.
func TestAccepts_SharedSubGrammar(t *testing.T) {
	inner := grammar.New(
		grammar.State{
			grammar.T(grammar.Lit('S'), grammar.Terminal),
			grammar.T(grammar.Lit('V'), grammar.Terminal),
		},
	)
	outer := grammar.New(
		grammar.State{grammar.T(grammar.Sub(inner), 1)},
		grammar.State{grammar.T(grammar.Sub(inner), grammar.Terminal)},
	)

	for _, s := range []string{"SS", "SV", "VS", "VV"} {
		got, err := outer.Accepts(s)
		require.NoError(t, err)
		assert.True(t, got, "Accepts(%q)", s)
	}
	got, err := outer.Accepts("S")
	require.NoError(t, err)
	assert.False(t, got, "a single inner derivation must not satisfy two sites")
}

// TestAccepts_MalformedGrammar surfaces structural faults hit mid-search.
func TestAccepts_MalformedGrammar(t *testing.T) {
	g := grammar.New(
		grammar.State{grammar.T(grammar.Lit('B'), 1)},
		grammar.State{},
	)
	_, err := g.Accepts("BX")
	assert.ErrorIs(t, err, grammar.ErrEmptyState)

	var nilG *grammar.Grammar
	_, err = nilG.Accepts("B")
	assert.ErrorIs(t, err, grammar.ErrNilGrammar)
}
