// Package gen produces symbol strings from Reber-style grammars: valid
// strings via uniform random walks (Generate) and near-valid strings via
// single-symbol corruption (Corrupt).
//
// 🚀 What does gen do?
//
//	Generate walks a grammar from state 0, drawing one transition uniformly
//	at random per step, emitting literals and recursively expanding embedded
//	grammars, until the terminal sentinel is reached. Corrupt takes one such
//	valid string and replaces the symbol at one uniformly random position
//	with a different alphabet symbol - the classic negative-example recipe
//	for training sequence classifiers.
//
// ✨ Determinism:
//
//	All randomness flows through one explicit *rand.Rand supplied via
//	WithRand or WithSeed - there is no package-global RNG. For a fixed seed
//	and call order the outputs are byte-identical across runs. The draw
//	order is fixed: the walk's per-step transition draws, then (for Corrupt)
//	the position draw, then the replacement draw.
//
// ⚠️ Corruption caveat:
//
//	Only the symbol at the corrupted position is excluded from the
//	replacement draw, so the result can - rarely - still be grammatical
//	when the grammar offers an equally valid continuation. This small
//	label-noise rate is intentional and preserved; Corrupt performs no
//	grammar re-validation.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/rebergen/gen"
//	  "github.com/katalvlaran/rebergen/grammar"
//	)
//
//	s, err := gen.Generate(grammar.Embedded(), gen.WithSeed(42))
//	c, err := gen.Corrupt(grammar.Embedded(), grammar.Reber, gen.WithSeed(42))
//
// Safety valves for user-supplied grammars:
//
//   - WithMaxSteps(n) converts a never-terminating walk into ErrStepLimit.
//   - WithMaxDepth(d) caps sub-grammar recursion with ErrDepthLimit
//     (stock grammars nest two levels; the default cap is far above that).
//
// See example_test.go for runnable examples.
package gen
