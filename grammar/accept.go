package grammar

import "fmt"

// Accepts reports whether s is derivable from g: whether some walk from
// state 0 to the Terminal sentinel emits exactly s, recursing through
// embedded grammars. The search explores every transition choice, so it
// covers all derivations, not just one random walk.
//
// Every completed walk emits at least one symbol, so positions advance
// strictly across productions and the memoized search always terminates,
// even when states self-loop.
//
// Returns ErrEmptyState or ErrBadStateIndex when the search reaches a
// structurally broken state; run Validate first to reject such grammars
// outright.
//
// Complexity: O(states × len(s) × transitions) per distinct grammar thanks
// to memoization on (state, position).
func (g *Grammar) Accepts(s string) (bool, error) {
	if g == nil {
		return false, ErrNilGrammar
	}
	m := &matcher{input: s, memo: make(map[matchKey][]int)}
	ends, err := m.ends(g, 0)
	if err != nil {
		return false, fmt.Errorf("Accepts: %w", err)
	}
	for _, end := range ends {
		if end == len(s) {
			return true, nil
		}
	}
	return false, nil
}

// matchKey identifies one memoized sub-search: a full walk of grammar g
// starting at input position pos.
type matchKey struct {
	g   *Grammar
	pos int
}

// matcher carries the shared input and memo table across the recursion.
type matcher struct {
	input string
	memo  map[matchKey][]int
}

// ends returns every input position at which a complete walk of g, begun at
// position pos, can end. The result is memoized per (g, pos).
func (m *matcher) ends(g *Grammar, pos int) ([]int, error) {
	key := matchKey{g: g, pos: pos}
	if cached, ok := m.memo[key]; ok {
		return cached, nil
	}
	// Seed the memo with an empty result before recursing so re-entrant
	// lookups on the same key (possible only with zero-progress reference
	// cycles) see "no match" instead of recursing forever.
	m.memo[key] = nil

	endSet := make(map[int]struct{})
	if err := m.walk(g, 0, pos, endSet); err != nil {
		return nil, err
	}
	ends := make([]int, 0, len(endSet))
	for end := range endSet {
		ends = append(ends, end)
	}
	m.memo[key] = ends

	return ends, nil
}

// walk explores all transition choices of g from the given state and input
// position, collecting into endSet every position where Terminal is reached.
func (m *matcher) walk(g *Grammar, state, pos int, endSet map[int]struct{}) error {
	trs, err := g.Transitions(state)
	if err != nil {
		return fmt.Errorf("state %d: %w", state, err)
	}
	if len(trs) == 0 {
		return fmt.Errorf("state %d: %w", state, ErrEmptyState)
	}

	for _, tr := range trs {
		switch tr.Prod.Kind {
		case LiteralProduction:
			// One literal symbol must match the next input byte.
			if pos >= len(m.input) || m.input[pos] != byte(tr.Prod.Sym) {
				continue
			}
			if tr.Next == Terminal {
				endSet[pos+1] = struct{}{}
				continue
			}
			if err = m.walk(g, tr.Next, pos+1, endSet); err != nil {
				return err
			}

		case SubGrammarProduction:
			if tr.Prod.Sub == nil {
				return fmt.Errorf("state %d: %w", state, ErrNilGrammar)
			}
			// The embedded grammar may consume several distinct prefixes;
			// continue the outer walk from each feasible end position.
			subEnds, err := m.ends(tr.Prod.Sub, pos)
			if err != nil {
				return err
			}
			for _, subEnd := range subEnds {
				if tr.Next == Terminal {
					endSet[subEnd] = struct{}{}
					continue
				}
				if err = m.walk(g, tr.Next, subEnd, endSet); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
