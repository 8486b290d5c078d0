package grammar_test

import (
	"fmt"

	"github.com/katalvlaran/rebergen/grammar"
)

// ExampleAlphabet_Encode shows the fixed symbol→id mapping of the stock
// alphabet (B=0, E=1, P=2, S=3, T=4, V=5, X=6).
func ExampleAlphabet_Encode() {
	ids, err := grammar.Reber.Encode("BTTTXXVVETE")
	if err != nil {
		fmt.Println("encode:", err)
		return
	}
	fmt.Println(ids)

	// Decode is the exact inverse.
	s, _ := grammar.Reber.Decode(ids)
	fmt.Println(s)

	// Output:
	// [0 4 4 4 6 6 5 5 1 4 1]
	// BTTTXXVVETE
}

// ExampleGrammar_Accepts verifies strings against the embedded Reber
// grammar, recursing through its two base-grammar branches.
func ExampleGrammar_Accepts() {
	g := grammar.Embedded()

	for _, s := range []string{"BTBTXSETE", "BTBTXSEPE"} {
		ok, err := g.Accepts(s)
		if err != nil {
			fmt.Println("accepts:", err)
			return
		}
		fmt.Printf("%s → %v\n", s, ok)
	}

	// Output:
	// BTBTXSETE → true
	// BTBTXSEPE → false
}
