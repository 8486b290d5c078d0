package dataset

import "errors"

// Sentinel errors for dataset assembly and persistence.
var (
	// ErrBadSize indicates a negative dataset size was requested.
	ErrBadSize = errors.New("dataset: negative size")

	// ErrBadRecord indicates a JSONL line or stored row that does not
	// decode into an Example.
	ErrBadRecord = errors.New("dataset: malformed example record")
)

// Labels carried by examples. Valid strings come straight from the
// generator; corrupted strings differ from a valid string at one position.
const (
	// LabelCorrupted marks a corrupted (negative) example.
	LabelCorrupted = 0.0

	// LabelValid marks a grammatical (positive) example.
	LabelValid = 1.0
)

// Example is one labeled, encoded sequence. Seq holds the alphabet ids of
// the underlying string, one entry per symbol; lengths vary per example.
type Example struct {
	// Seq is the encoded symbol-id sequence (ragged, owned by the example).
	Seq []int `json:"seq"`

	// Label is LabelValid or LabelCorrupted.
	Label float64 `json:"label"`
}

// Dataset is an ordered collection of independently sized examples.
// Build emits all label-1 examples before all label-0 examples; callers
// must not assume shuffling.
type Dataset []Example

// Len reports the number of examples.
func (d Dataset) Len() int {
	return len(d)
}

// CountLabel reports how many examples carry the given label.
// Complexity: O(Len()).
func (d Dataset) CountLabel(label float64) int {
	n := 0
	for _, ex := range d {
		if ex.Label == label {
			n++
		}
	}
	return n
}
