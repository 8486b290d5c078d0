// SPDX-License-Identifier: MIT
// Package: rebergen/gen
//
// generate.go - the grammar walk: one valid string per call.
//
// Canonical model:
//   - Start at state 0; per step, draw one transition uniformly among the
//     current state's transitions (uniform over the transition COUNT, not
//     weighted by symbol).
//   - Literal productions append one symbol; sub-grammar productions append
//     the full output of an independent recursive walk of the sub-grammar.
//   - Advance to the transition's next state; stop at the Terminal sentinel.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - A malformed state reached mid-walk surfaces grammar.ErrEmptyState /
//     grammar.ErrBadStateIndex; run grammar.Validate up front to reject
//     such input before consuming entropy.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Exactly one rng.Intn draw per step, in walk order; sub-walks draw from
//     the same stream inline. Same grammar + seed ⇒ same string, always.
//
// Complexity:
//   - O(L) time and memory for an output of length L (expected finite for
//     grammars that terminate with probability 1).

package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rebergen/grammar"
)

// Generate walks g from state 0 to the terminal sentinel and returns the
// emitted string. Randomness comes exclusively from the RNG supplied via
// WithSeed/WithRand. See the file header for the walk model and guarantees.
func Generate(g *grammar.Grammar, opts ...Option) (string, error) {
	cfg := newGenConfig(opts...)
	s, err := generate(g, cfg)
	if err != nil {
		return "", fmt.Errorf("Generate: %w", err)
	}
	return s, nil
}

// generate is the option-resolved entry shared with Corrupt, so corruption
// reuses the caller's config without re-applying options.
func generate(g *grammar.Grammar, cfg genConfig) (string, error) {
	if g == nil {
		return "", grammar.ErrNilGrammar
	}
	if cfg.rng == nil {
		return "", ErrNeedRandSource
	}

	var sb strings.Builder
	var steps int
	if err := walk(g, cfg, &sb, &steps, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// walk runs one traversal of g at the given nesting depth, appending output
// to sb and charging every transition draw against the shared step budget.
func walk(g *grammar.Grammar, cfg genConfig, sb *strings.Builder, steps *int, depth int) error {
	if depth > cfg.maxDepth {
		return fmt.Errorf("depth %d: %w", depth, ErrDepthLimit)
	}

	state := 0
	for state != grammar.Terminal {
		trs, err := g.Transitions(state)
		if err != nil {
			return fmt.Errorf("state %d: %w", state, err)
		}
		if len(trs) == 0 {
			return fmt.Errorf("state %d: %w", state, grammar.ErrEmptyState)
		}
		if cfg.maxSteps > 0 && *steps >= cfg.maxSteps {
			return fmt.Errorf("state %d after %d steps: %w", state, *steps, ErrStepLimit)
		}

		// One uniform draw over the transition count - the only entropy
		// this step consumes.
		tr := trs[cfg.rng.Intn(len(trs))]
		*steps++

		switch tr.Prod.Kind {
		case grammar.LiteralProduction:
			sb.WriteByte(byte(tr.Prod.Sym))
		case grammar.SubGrammarProduction:
			if tr.Prod.Sub == nil {
				return fmt.Errorf("state %d: %w", state, grammar.ErrNilGrammar)
			}
			// Independent sub-walk from the sub-grammar's state 0; its
			// full output lands inline before the outer walk resumes.
			if err = walk(tr.Prod.Sub, cfg, sb, steps, depth+1); err != nil {
				return err
			}
		}

		state = tr.Next
	}

	return nil
}
