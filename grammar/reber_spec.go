// SPDX-License-Identifier: MIT
// Package: rebergen/grammar
//
// reber_spec.go - canonical stock grammar and alphabet definitions (data-only).
//
// Purpose:
//   - This file is the single source of truth for the two stock Reber
//     grammars: the base 7-state grammar and the embedded grammar that
//     wraps the base grammar twice (once per branch).
//   - Data here are immutable; walking, corruption, and encoding logic live
//     in the gen package and alphabet.go.
//
// Contract (for consumers):
//   - Reber lists the 7 symbols in id order: B=0, E=1, P=2, S=3, T=4, V=5, X=6.
//   - Base() and Embedded() both validate cleanly and terminate with
//     probability 1 under uniform random choice.
//   - Transition order within each state is canonical; do not reorder, since
//     callers rely on it for seed-stable random walks.
//
// Determinism:
//   - Both grammars are constructed once at package init; the same pointer is
//     returned on every call, so sub-grammar identity is stable.
//
// Notes:
//   - State layout follows the customary Reber transition table; the embedded
//     grammar shares a single base-grammar instance between its two branches.

package grammar

// Reber is the stock 7-symbol alphabet, in id order.
const Reber Alphabet = "BEPSTVX"

// baseReber is the base Reber grammar:
//
//	state 0: B→1
//	state 1: T→2 | P→3
//	state 2: S→2 | X→4
//	state 3: T→3 | V→5
//	state 4: X→3 | S→6
//	state 5: P→4 | V→6
//	state 6: E→Terminal
var baseReber = New(
	State{T(Lit('B'), 1)},
	State{T(Lit('T'), 2), T(Lit('P'), 3)},
	State{T(Lit('S'), 2), T(Lit('X'), 4)},
	State{T(Lit('T'), 3), T(Lit('V'), 5)},
	State{T(Lit('X'), 3), T(Lit('S'), 6)},
	State{T(Lit('P'), 4), T(Lit('V'), 6)},
	State{T(Lit('E'), Terminal)},
)

// embeddedReber wraps the base grammar twice:
//
//	state 0: B→1
//	state 1: T→2 | P→3
//	state 2: <base>→4
//	state 3: <base>→5
//	state 4: T→6
//	state 5: P→6
//	state 6: E→Terminal
//
// so every derivation reads B, a branch symbol, one full base-grammar string,
// the same branch symbol again, then E.
var embeddedReber = New(
	State{T(Lit('B'), 1)},
	State{T(Lit('T'), 2), T(Lit('P'), 3)},
	State{T(Sub(baseReber), 4)},
	State{T(Sub(baseReber), 5)},
	State{T(Lit('T'), 6)},
	State{T(Lit('P'), 6)},
	State{T(Lit('E'), Terminal)},
)

// Base returns the stock base Reber grammar. The returned grammar is shared
// and immutable.
func Base() *Grammar { return baseReber }

// Embedded returns the stock embedded Reber grammar, which embeds the base
// grammar twice. The returned grammar is shared and immutable.
func Embedded() *Grammar { return embeddedReber }
