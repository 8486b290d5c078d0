package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/rebergen/dataset"
	"github.com/katalvlaran/rebergen/gen"
	"github.com/katalvlaran/rebergen/grammar"
)

// ExampleBuild shows the balance contract: half valid examples first, then
// the corrupted remainder, with ragged per-example sequence lengths.
func ExampleBuild() {
	ds, err := dataset.Build(10, grammar.Embedded(), grammar.Reber, gen.WithSeed(42))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println("examples:", ds.Len())
	fmt.Println("valid:", ds.CountLabel(dataset.LabelValid))
	fmt.Println("corrupted:", ds.CountLabel(dataset.LabelCorrupted))
	fmt.Println("first label:", ds[0].Label, "last label:", ds[9].Label)

	// Output:
	// examples: 10
	// valid: 5
	// corrupted: 5
	// first label: 1 last label: 0
}
