// SPDX-License-Identifier: MIT
// Package: rebergen/gen
//
// options.go - functional options and sentinel errors for the gen package.
//
// Contract (strict):
//   - Options are functional (type Option func(*genConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the walk itself MUST NOT panic - it returns sentinel errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand,
//     there is no package-global RNG and no hidden fallback source.
//   - Options apply in order with last-wins semantics; ResolveRand exposes
//     the resolved RNG so composite callers (dataset.Build) can pin one
//     source across many Generate/Corrupt calls.

package gen

import (
	"errors"
	"math/rand"
)

// Sentinel errors for generation and corruption.
var (
	// ErrNeedRandSource indicates no RNG was supplied; set WithSeed or WithRand.
	ErrNeedRandSource = errors.New("gen: rng is required")

	// ErrStepLimit indicates the walk exceeded the WithMaxSteps budget
	// before reaching the terminal sentinel.
	ErrStepLimit = errors.New("gen: step limit exceeded")

	// ErrDepthLimit indicates sub-grammar recursion exceeded WithMaxDepth.
	ErrDepthLimit = errors.New("gen: recursion depth limit exceeded")

	// ErrSmallAlphabet indicates the alphabet offers no replacement symbol
	// (corruption needs at least two distinct symbols).
	ErrSmallAlphabet = errors.New("gen: alphabet too small to corrupt")
)

// Deterministic defaults (named, no magic numbers).
const (
	// defMaxDepth bounds sub-grammar recursion for arbitrary user grammars;
	// the stock grammars nest two levels.
	defMaxDepth = 64

	// defMaxSteps = 0 disables the step cap: the stock grammars terminate
	// with probability 1, so no cap is imposed unless asked for.
	defMaxSteps = 0
)

// genConfig is the single source of truth for all walk knobs.
// It is resolved once per call and passed by value (immutable to callers).
type genConfig struct {
	// rng drives every random draw; nil means "not supplied" and is
	// rejected by the walk with ErrNeedRandSource.
	rng *rand.Rand

	// maxSteps caps the total number of transition draws across the walk
	// and all sub-walks; 0 disables the cap.
	maxSteps int

	// maxDepth caps sub-grammar nesting depth (the root walk is depth 0).
	maxDepth int
}

// Option customizes one Generate/Corrupt call by mutating the genConfig
// before the walk begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// newGenConfig applies opts in order over deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:      nil,
		maxSteps: defMaxSteps,
		maxDepth: defMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG for the walk.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("gen: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes. Note that each call
// carrying WithSeed starts a fresh stream; to share one stream across
// several calls, build the RNG once and pass WithRand.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxSteps caps the walk at n transition draws; 0 disables the cap.
// Panics on negative n.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("gen: WithMaxSteps(n<0)")
	}
	return func(c *genConfig) { c.maxSteps = n }
}

// WithMaxDepth caps sub-grammar recursion at depth d (root walk is depth 0).
// Panics on d < 1.
func WithMaxDepth(d int) Option {
	if d < 1 {
		panic("gen: WithMaxDepth(d<1)")
	}
	return func(c *genConfig) { c.maxDepth = d }
}

// ResolveRand applies opts and returns the RNG they select, or
// ErrNeedRandSource when none was supplied. Composite callers use this to
// materialize one shared stream, then append WithRand(rng) so every
// downstream call draws from it in sequence.
func ResolveRand(opts ...Option) (*rand.Rand, error) {
	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	return cfg.rng, nil
}
