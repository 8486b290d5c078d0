// This file loads user-supplied grammar definitions from YAML documents.
//
// A grammar document names one or more grammars, each an ordered list of
// states, each state an ordered list of transitions. A transition carries
// either a one-character literal (`sym`) or a reference to another grammar
// in the same document (`sub`), plus an optional `next` state index -
// omitting `next` makes the transition terminal.
//
//	root: embedded
//	grammars:
//	  base:
//	    - [{sym: B, next: 1}]
//	    - [{sym: T, next: 2}, {sym: P, next: 3}]
//	    - [{sym: S, next: 2}, {sym: X, next: 4}]
//	    - [{sym: T, next: 3}, {sym: V, next: 5}]
//	    - [{sym: X, next: 3}, {sym: S, next: 6}]
//	    - [{sym: P, next: 4}, {sym: V, next: 6}]
//	    - [{sym: E}]
//	  embedded:
//	    - [{sym: B, next: 1}]
//	    - [{sym: T, next: 2}, {sym: P, next: 3}]
//	    - [{sub: base, next: 4}]
//	    - [{sub: base, next: 5}]
//	    - [{sym: T, next: 6}]
//	    - [{sym: P, next: 6}]
//	    - [{sym: E}]
//
// `root` selects the grammar returned to the caller; it may be omitted when
// the document defines exactly one grammar.
package grammar

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadDefinition indicates a structurally invalid grammar document:
// unparseable YAML, a transition with both or neither of sym/sub, a
// multi-character literal, an unknown sub reference, or a missing root.
var ErrBadDefinition = errors.New("grammar: invalid grammar definition")

// yamlTransition is the on-disk shape of one transition.
type yamlTransition struct {
	Sym  string `yaml:"sym,omitempty"`
	Sub  string `yaml:"sub,omitempty"`
	Next *int   `yaml:"next,omitempty"` // nil means Terminal
}

// yamlDocument is the on-disk shape of a grammar file.
type yamlDocument struct {
	Root     string                        `yaml:"root,omitempty"`
	Grammars map[string][][]yamlTransition `yaml:"grammars"`
}

// ParseYAML parses a grammar document and returns its root grammar with all
// sub references resolved in-document. References may appear in any order;
// the resolved grammars are validated with the same structural checks as
// stock grammars before being returned.
//
// Errors wrap ErrBadDefinition for document-shape problems and the Validate
// sentinels for structural ones.
func ParseYAML(data []byte) (*Grammar, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ParseYAML: %v: %w", err, ErrBadDefinition)
	}
	if len(doc.Grammars) == 0 {
		return nil, fmt.Errorf("ParseYAML: no grammars defined: %w", ErrBadDefinition)
	}

	// 1) Resolve the root name before doing any work.
	root := doc.Root
	if root == "" {
		if len(doc.Grammars) > 1 {
			return nil, fmt.Errorf("ParseYAML: %d grammars but no root selected: %w",
				len(doc.Grammars), ErrBadDefinition)
		}
		for name := range doc.Grammars {
			root = name
		}
	}
	if _, ok := doc.Grammars[root]; !ok {
		return nil, fmt.Errorf("ParseYAML: root %q not defined: %w", root, ErrBadDefinition)
	}

	// 2) Pre-create one empty grammar per name so sub references resolve
	//    regardless of declaration order.
	byName := make(map[string]*Grammar, len(doc.Grammars))
	for name := range doc.Grammars {
		byName[name] = &Grammar{}
	}

	// 3) Fill in states, translating each transition.
	for name, rawStates := range doc.Grammars {
		g := byName[name]
		g.states = make([]State, len(rawStates))
		for i, rawState := range rawStates {
			st := make(State, len(rawState))
			for j, raw := range rawState {
				tr, err := raw.resolve(byName)
				if err != nil {
					return nil, fmt.Errorf("ParseYAML: grammar %q, state %d, transition %d: %w",
						name, i, j, err)
				}
				st[j] = tr
			}
			g.states[i] = st
		}
	}

	// 4) Validate the root (and, through embedding, everything it uses).
	g := byName[root]
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("ParseYAML: grammar %q: %w", root, err)
	}

	return g, nil
}

// LoadYAML reads and parses a grammar document from path.
func LoadYAML(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadYAML: %w", err)
	}
	return ParseYAML(data)
}

// resolve translates one on-disk transition into a Transition, resolving sub
// references against the document's grammar set.
func (raw yamlTransition) resolve(byName map[string]*Grammar) (Transition, error) {
	next := Terminal
	if raw.Next != nil {
		next = *raw.Next
	}

	switch {
	case raw.Sym != "" && raw.Sub != "":
		return Transition{}, fmt.Errorf("both sym and sub set: %w", ErrBadDefinition)
	case raw.Sym != "":
		if len(raw.Sym) != 1 {
			return Transition{}, fmt.Errorf("sym %q is not a single symbol: %w", raw.Sym, ErrBadDefinition)
		}
		return T(Lit(Symbol(raw.Sym[0])), next), nil
	case raw.Sub != "":
		sub, ok := byName[raw.Sub]
		if !ok {
			return Transition{}, fmt.Errorf("unknown sub grammar %q: %w", raw.Sub, ErrBadDefinition)
		}
		return T(Sub(sub), next), nil
	default:
		return Transition{}, fmt.Errorf("neither sym nor sub set: %w", ErrBadDefinition)
	}
}
