// SPDX-License-Identifier: MIT
// Package: rebergen/dataset
//
// build.go - balanced dataset assembly.
//
// Canonical model:
//   - ⌊size/2⌋ valid examples first (gen.Generate → encode → label 1.0),
//     then size−⌊size/2⌋ corrupted examples (gen.Corrupt → encode → label 0.0).
//   - Insertion order is part of the contract; no shuffling.
//
// Contract:
//   - size ≥ 0 (else ErrBadSize, rejected before any generation work).
//   - Options must resolve an RNG (gen.ErrNeedRandSource otherwise); the
//     SAME stream is pinned across every inner call, so a WithSeed option
//     seeds the dataset once rather than re-seeding per string.
//   - Encoding failures abort the build; with a consistent grammar/alphabet
//     pair they cannot occur, but the encoder's contract is enforced, not
//     assumed.
//
// Determinism:
//   - Fixed draw order: all draws of example k precede those of example k+1;
//     valid examples draw before corrupted ones. Same seed ⇒ same dataset.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/rebergen/gen"
	"github.com/katalvlaran/rebergen/grammar"
)

// Build assembles a balanced dataset of exactly size examples over grammar g
// and alphabet a: size/2 valid (label 1.0) followed by size-size/2 corrupted
// (label 0.0). See the file header for ordering and determinism guarantees.
//
//	Build(0) → empty dataset; Build(1) → one corrupted example.
func Build(size int, g *grammar.Grammar, a grammar.Alphabet, opts ...gen.Option) (Dataset, error) {
	if size < 0 {
		return nil, fmt.Errorf("Build: size=%d: %w", size, ErrBadSize)
	}

	// Pin one RNG across every inner call. Appending WithRand after the
	// caller's options wins under last-wins semantics, so even a WithSeed
	// passed by the caller collapses into this single shared stream.
	rng, err := gen.ResolveRand(opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	pinned := make([]gen.Option, 0, len(opts)+1)
	pinned = append(pinned, opts...)
	pinned = append(pinned, gen.WithRand(rng))

	valid := size / 2
	ds := make(Dataset, 0, size)

	// 1) Valid half: generate, encode, label 1.0.
	for i := 0; i < valid; i++ {
		s, err := gen.Generate(g, pinned...)
		if err != nil {
			return nil, fmt.Errorf("Build: example %d: %w", i, err)
		}
		seq, err := a.Encode(s)
		if err != nil {
			return nil, fmt.Errorf("Build: example %d: %w", i, err)
		}
		ds = append(ds, Example{Seq: seq, Label: LabelValid})
	}

	// 2) Corrupted remainder: corrupt, encode, label 0.0.
	for i := valid; i < size; i++ {
		s, err := gen.Corrupt(g, a, pinned...)
		if err != nil {
			return nil, fmt.Errorf("Build: example %d: %w", i, err)
		}
		seq, err := a.Encode(s)
		if err != nil {
			return nil, fmt.Errorf("Build: example %d: %w", i, err)
		}
		ds = append(ds, Example{Seq: seq, Label: LabelCorrupted})
	}

	return ds, nil
}
