// Package dataset assembles balanced, labeled example sets for binary
// sequence classifiers from Reber-style grammars.
//
// 🚀 What does dataset do?
//
//	Build(n, g, a, opts...) produces exactly n examples: ⌊n/2⌋ valid strings
//	drawn by gen.Generate and encoded against alphabet a with label 1.0,
//	followed by ⌈n/2⌉ corrupted strings from gen.Corrupt with label 0.0.
//	The valid-before-corrupted order is part of the contract - callers that
//	want shuffling do it themselves, so seeded runs stay reproducible.
//
// ✨ Representation:
//
//	Sequences are ragged: every Example owns its variable-length []int id
//	sequence; a Dataset is never padded into a rectangular array. The
//	downstream numeric consumer (out of scope here) handles batching and
//	padding natively.
//
// ⚙️ Hand-off formats:
//
//	WriteJSONL/ReadJSONL stream a Dataset as one {"seq":[...],"label":1}
//	object per line. Store persists datasets in a SQLite file keyed by id,
//	for runs that want their fixtures catalogued rather than scattered
//	across files.
//
// ⚙️ Usage:
//
//	ds, err := dataset.Build(10000, grammar.Embedded(), grammar.Reber,
//	    gen.WithSeed(42))
//
// Determinism: Build resolves one RNG from the options and threads it
// through every generation and corruption call, so a fixed seed yields a
// byte-identical dataset on every run.
package dataset
