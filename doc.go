// Package rebergen is a toolkit for generating Reber-grammar symbol
// sequences and assembling balanced, labeled datasets for binary
// sequence classifiers.
//
// 🚀 What is rebergen?
//
//	A small, deterministic library that brings together:
//		• Grammar primitives: states, transitions, literal and embedded
//		  (recursive) productions, structural validation
//		• Random walks: valid strings drawn uniformly over transitions
//		• Corruption: single-symbol flips producing near-valid negatives
//		• Encoding: stable symbol→id mapping over a fixed ordered alphabet
//		• Dataset assembly: balanced ragged datasets, JSONL and SQLite
//		  hand-off formats for external trainers
//
// ✨ Why rebergen?
//
//   - Reproducible – one explicit RNG threaded through every draw;
//     a fixed seed rebuilds a byte-identical dataset
//   - Honest labels – the classic one-symbol corruption is preserved
//     as-is, including its rare still-grammatical negatives
//   - Extensible – define your own grammars in Go or YAML; the stock
//     base and embedded Reber grammars ship as data
//
// Everything is organized under four packages:
//
//	grammar/ — Grammar, Alphabet, validation, membership, YAML loading
//	gen/     — Generate (random walk) & Corrupt (one-symbol flip)
//	dataset/ — balanced assembly, JSONL export, SQLite catalogue
//	cmd/     — the rebergen CLI (gen, dataset, encode, check)
//
// Quick taste:
//
//	ds, err := dataset.Build(10_000, grammar.Embedded(), grammar.Reber,
//	    gen.WithSeed(42))
//
// yields 5,000 valid examples (label 1) followed by 5,000 corrupted ones
// (label 0), each a variable-length sequence of ids in [0,7).
//
// The numeric consumer - batching, padding, model, training - is explicitly
// out of scope; rebergen only guarantees the encode/label contract.
package rebergen
