package grammar

import "fmt"

// Validate checks the structural soundness of g and every grammar it embeds,
// directly or transitively:
//
//  1. the grammar has at least one state (ErrNoStates);
//  2. every state has at least one transition (ErrEmptyState);
//  3. every next-state index is Terminal or within [0, States()) (ErrBadStateIndex);
//  4. every sub-grammar reference is non-nil (ErrNilGrammar);
//  5. every state is reachable from state 0 (ErrUnreachableState).
//
// Errors are wrapped with the offending state index; branch with errors.Is.
// Shared sub-grammars are validated once. Cyclic reference graphs do not
// recurse forever, but note that generation over them only terminates by
// depth cap.
//
// Complexity: O(V + E) per distinct grammar (V states, E transitions).
func (g *Grammar) Validate() error {
	return g.validate(make(map[*Grammar]struct{}))
}

func (g *Grammar) validate(seen map[*Grammar]struct{}) error {
	if g == nil {
		return ErrNilGrammar
	}
	if _, ok := seen[g]; ok {
		// Already validated (or in progress) on this pass.
		return nil
	}
	seen[g] = struct{}{}

	if len(g.states) == 0 {
		return ErrNoStates
	}

	// 1) Per-state structural checks, in declaration order for stable errors.
	for i, st := range g.states {
		if len(st) == 0 {
			return fmt.Errorf("state %d: %w", i, ErrEmptyState)
		}
		for j, tr := range st {
			if tr.Next != Terminal && (tr.Next < 0 || tr.Next >= len(g.states)) {
				return fmt.Errorf("state %d, transition %d: next=%d: %w", i, j, tr.Next, ErrBadStateIndex)
			}
			if tr.Prod.Kind == SubGrammarProduction {
				if tr.Prod.Sub == nil {
					return fmt.Errorf("state %d, transition %d: %w", i, j, ErrNilGrammar)
				}
				if err := tr.Prod.Sub.validate(seen); err != nil {
					return fmt.Errorf("state %d, transition %d: embedded: %w", i, j, err)
				}
			}
		}
	}

	// 2) Reachability sweep from state 0 over next-state edges.
	reached := make([]bool, len(g.states))
	stack := []int{0}
	reached[0] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, tr := range g.states[s] {
			if tr.Next == Terminal || reached[tr.Next] {
				continue
			}
			reached[tr.Next] = true
			stack = append(stack, tr.Next)
		}
	}
	for i, ok := range reached {
		if !ok {
			return fmt.Errorf("state %d: %w", i, ErrUnreachableState)
		}
	}

	return nil
}
