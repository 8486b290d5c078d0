// Package grammar defines the central Grammar, State, Transition, and
// Alphabet types used to describe Reber-style finite-state grammars,
// plus structural validation and membership checking.
//
// A Grammar is an ordered sequence of states; state 0 is always the start
// state. Each state holds a non-empty ordered list of Transitions. A
// Transition carries a Production - either a single literal Symbol or a
// nested sub-Grammar expanded in full - and the index of the next state,
// or the Terminal sentinel when the walk ends there.
//
// Grammars are immutable after construction and safe for concurrent reads.
//
// This file declares Symbol, Production, Transition, State, Grammar,
// sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrNilGrammar       - grammar pointer (or embedded sub-grammar) is nil.
//	ErrNoStates         - grammar holds zero states.
//	ErrEmptyState       - a state holds zero transitions.
//	ErrBadStateIndex    - a next-state index is outside the grammar.
//	ErrUnreachableState - a state cannot be reached from state 0.
package grammar

import "errors"

// Terminal is the next-state sentinel: a transition whose Next is Terminal
// ends the walk after its production is emitted.
const Terminal = -1

// Sentinel errors for grammar structure and traversal.
var (
	// ErrNilGrammar indicates a nil *Grammar where a grammar was required.
	ErrNilGrammar = errors.New("grammar: nil grammar")

	// ErrNoStates indicates a grammar with an empty state list.
	ErrNoStates = errors.New("grammar: grammar has no states")

	// ErrEmptyState indicates a state with zero transitions was declared or reached.
	ErrEmptyState = errors.New("grammar: state has no transitions")

	// ErrBadStateIndex indicates a transition references a state outside the grammar.
	ErrBadStateIndex = errors.New("grammar: state index out of range")

	// ErrUnreachableState indicates a declared state no walk from state 0 can reach.
	ErrUnreachableState = errors.New("grammar: state unreachable from start")
)

// Symbol is a single character of the alphabet.
type Symbol byte

// ProductionKind discriminates the two Production variants.
type ProductionKind uint8

const (
	// LiteralProduction emits exactly one Symbol.
	LiteralProduction ProductionKind = iota

	// SubGrammarProduction emits the full output of one independent walk
	// of the embedded grammar, started from its own state 0.
	SubGrammarProduction
)

// Production is a tagged variant over {Symbol, *Grammar}.
// Exactly one of Sym/Sub is meaningful, selected by Kind; consumers must
// dispatch on Kind explicitly rather than probing the fields.
type Production struct {
	// Kind selects the active variant.
	Kind ProductionKind

	// Sym is the emitted literal when Kind == LiteralProduction.
	Sym Symbol

	// Sub is the embedded grammar when Kind == SubGrammarProduction.
	Sub *Grammar
}

// Lit builds a literal Production emitting s.
func Lit(s Symbol) Production {
	return Production{Kind: LiteralProduction, Sym: s}
}

// Sub builds a sub-grammar Production expanding g in full.
// The reference is kept as-is; g must outlive the owning grammar.
func Sub(g *Grammar) Production {
	return Production{Kind: SubGrammarProduction, Sub: g}
}

// Transition pairs a Production with the index of the state the walk moves
// to after emitting it. Next is either a valid state index within the owning
// grammar or the Terminal sentinel.
type Transition struct {
	// Prod is what this transition emits.
	Prod Production

	// Next is the destination state index, or Terminal.
	Next int
}

// T is shorthand for building a Transition.
func T(p Production, next int) Transition {
	return Transition{Prod: p, Next: next}
}

// State is the ordered, non-empty transition list of one grammar state.
// Walks pick among a state's transitions uniformly at random.
type State []Transition

// Grammar is an immutable ordered sequence of states with state 0 as start.
//
// A grammar may embed other grammars through SubGrammarProduction; the
// reference graph is acyclic by convention (generation over a cyclic
// reference graph only terminates by hitting a caller-supplied depth cap).
type Grammar struct {
	states []State
}

// New builds a Grammar from the given states in order; states[0] is the
// start state. The state slices are copied, so later mutation of the
// arguments does not affect the grammar. Structural soundness is NOT
// checked here - call Validate before trusting user-supplied input.
// Complexity: O(total transitions).
func New(states ...State) *Grammar {
	g := &Grammar{states: make([]State, len(states))}
	for i, st := range states {
		g.states[i] = append(State(nil), st...)
	}
	return g
}

// States reports the number of states in the grammar.
func (g *Grammar) States() int {
	return len(g.states)
}

// Transitions returns the transition list of the given state as a read-only
// view; callers must not mutate it. Returns ErrBadStateIndex when state is
// outside [0, States()).
// Complexity: O(1).
func (g *Grammar) Transitions(state int) ([]Transition, error) {
	if state < 0 || state >= len(g.states) {
		return nil, ErrBadStateIndex
	}
	return g.states[state], nil
}
