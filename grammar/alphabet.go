package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for alphabet encoding and decoding.
var (
	// ErrUnknownSymbol indicates an input symbol absent from the alphabet.
	ErrUnknownSymbol = errors.New("grammar: symbol not in alphabet")

	// ErrBadSymbolID indicates a symbol id outside [0, Len()).
	ErrBadSymbolID = errors.New("grammar: symbol id out of range")

	// ErrDuplicateSymbol indicates an alphabet listing the same symbol twice.
	ErrDuplicateSymbol = errors.New("grammar: duplicate symbol in alphabet")
)

// Alphabet is a fixed ordered symbol set. A symbol's zero-based position in
// the Alphabet is its stable integer id; changing the ordering invalidates
// every sequence previously encoded against it.
type Alphabet string

// Len reports the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// Index returns the id of symbol s, or -1 when s is not in the alphabet.
// Complexity: O(Len()), with the tiny alphabets used here effectively O(1).
func (a Alphabet) Index(s Symbol) int {
	return strings.IndexByte(string(a), byte(s))
}

// Symbol returns the symbol with the given id, or ErrBadSymbolID when id is
// outside [0, Len()).
func (a Alphabet) Symbol(id int) (Symbol, error) {
	if id < 0 || id >= len(a) {
		return 0, fmt.Errorf("Symbol: id=%d, alphabet size=%d: %w", id, len(a), ErrBadSymbolID)
	}
	return Symbol(a[id]), nil
}

// Validate rejects alphabets with repeated symbols (ids must be a bijection).
// Complexity: O(Len()²); alphabets are tiny.
func (a Alphabet) Validate() error {
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if a[i] == a[j] {
				return fmt.Errorf("Validate: symbol %q at %d and %d: %w", a[i], i, j, ErrDuplicateSymbol)
			}
		}
	}
	return nil
}

// Encode maps every symbol of s to its id within the alphabet's fixed
// ordering. The result has exactly len(s) entries. Any symbol outside the
// alphabet fails the whole call with ErrUnknownSymbol - a symbol is never
// silently mis-encoded or skipped.
//
// Encode works on any raw string, so inference-time inputs can be encoded
// directly without going through dataset assembly.
//
// Complexity: O(len(s) · Len()).
func (a Alphabet) Encode(s string) ([]int, error) {
	ids := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		id := a.Index(Symbol(s[i]))
		if id < 0 {
			return nil, fmt.Errorf("Encode: position %d, symbol %q: %w", i, s[i], ErrUnknownSymbol)
		}
		ids[i] = id
	}
	return ids, nil
}

// Decode is the inverse of Encode: it maps ids back to their symbols and
// returns the concatenated string. Fails with ErrBadSymbolID on any id
// outside [0, Len()).
//
// Complexity: O(len(ids)).
func (a Alphabet) Decode(ids []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(ids))
	for i, id := range ids {
		if id < 0 || id >= len(a) {
			return "", fmt.Errorf("Decode: position %d, id=%d: %w", i, id, ErrBadSymbolID)
		}
		sb.WriteByte(a[id])
	}
	return sb.String(), nil
}
