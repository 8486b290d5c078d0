// SPDX-License-Identifier: MIT
// Package: rebergen/gen
//
// corrupt.go - single-symbol corruption of a freshly generated string.
//
// Canonical model:
//   - Generate a valid string s of length L ≥ 1 from the grammar.
//   - Draw position i uniformly from [0, L).
//   - Draw the replacement uniformly from alphabet \ {s[i]} - only the exact
//     symbol AT that position is excluded, not its other occurrences.
//   - Return s with position i replaced; s itself is never mutated.
//
// Caveat (preserved, not fixed):
//   - Because grammars can offer several equally valid continuations, the
//     result may occasionally still belong to the grammar's language. No
//     re-validation is performed; consumers train against this small,
//     stable label-noise rate.
//
// Determinism:
//   - Draw order is fixed: the generation walk's draws, then the position
//     draw, then the replacement draw. Same grammar + alphabet + seed ⇒
//     same corrupted string.

package gen

import (
	"fmt"

	"github.com/katalvlaran/rebergen/grammar"
)

// Corrupt generates one valid string from g and returns a copy with the
// symbol at one uniformly random position replaced by a different symbol
// from a. See the file header for the exact draw model.
//
// Errors: everything Generate can return, plus ErrSmallAlphabet when a has
// fewer than two symbols (no replacement exists).
func Corrupt(g *grammar.Grammar, a grammar.Alphabet, opts ...Option) (string, error) {
	cfg := newGenConfig(opts...)

	if a.Len() < 2 {
		return "", fmt.Errorf("Corrupt: alphabet size %d: %w", a.Len(), ErrSmallAlphabet)
	}

	s, err := generate(g, cfg)
	if err != nil {
		return "", fmt.Errorf("Corrupt: %w", err)
	}
	if len(s) == 0 {
		// Unreachable for sound grammars (every walk emits ≥ 1 symbol);
		// kept so a hostile grammar cannot drive rng.Intn(0) into a panic.
		return "", fmt.Errorf("Corrupt: empty derivation: %w", grammar.ErrNoStates)
	}

	// Position draw, then replacement draw - in that order, always.
	pos := cfg.rng.Intn(len(s))
	original := grammar.Symbol(s[pos])

	// Candidates keep alphabet order with the original symbol removed, so
	// the replacement draw is uniform over the remaining symbols.
	candidates := make([]byte, 0, a.Len()-1)
	for i := 0; i < a.Len(); i++ {
		if grammar.Symbol(a[i]) != original {
			candidates = append(candidates, a[i])
		}
	}
	replacement := candidates[cfg.rng.Intn(len(candidates))]

	out := []byte(s)
	out[pos] = replacement

	return string(out), nil
}
