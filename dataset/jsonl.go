package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSONL streams d to w as JSON Lines: one {"seq":[...],"label":1}
// object per example, in dataset order. This is the hand-off format for the
// external numeric consumer.
// Complexity: O(total sequence length).
func WriteJSONL(w io.Writer, d Dataset) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, ex := range d {
		// Encoder appends the newline itself, yielding one object per line.
		if err := enc.Encode(ex); err != nil {
			return fmt.Errorf("WriteJSONL: example %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteJSONL: %w", err)
	}
	return nil
}

// ReadJSONL parses a JSON Lines stream back into a Dataset, preserving
// example order. Blank lines are skipped; any non-decodable line fails the
// whole read with ErrBadRecord.
func ReadJSONL(r io.Reader) (Dataset, error) {
	var ds Dataset
	sc := bufio.NewScanner(r)
	// Sequences are unbounded in principle; give long lines headroom.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ex Example
		if err := json.Unmarshal(raw, &ex); err != nil {
			return nil, fmt.Errorf("ReadJSONL: line %d: %v: %w", line, err, ErrBadRecord)
		}
		ds = append(ds, ex)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadJSONL: %w", err)
	}
	return ds, nil
}
