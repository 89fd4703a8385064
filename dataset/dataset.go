// SPDX-License-Identifier: MIT
// Package: vpca/dataset
//
// dataset.go — Trial/Set types and their gob persistence.
//
// Wire layout (gob stream):
//   header{Version, Count} followed by Count trialRecord values in ascending
//   index order. Each record carries the matrix as mat.Dense.MarshalBinary.

package dataset

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
)

// formatVersion is bumped on incompatible changes of the stream layout.
const formatVersion = 1

var (
	// ErrBadTrial indicates a trial without data or with a time axis whose
	// length differs from the number of rows of its matrix.
	ErrBadTrial = errors.New("dataset: invalid trial")

	// ErrBadFormat indicates a stream that is not a dataset, has an
	// unsupported version, or carries a truncated, undecodable or repeated
	// trial record.
	ErrBadFormat = errors.New("dataset: unrecognized format")

	// ErrNoTrial indicates a lookup of an index that is not in the set.
	ErrNoTrial = errors.New("dataset: no such trial")
)

// Trial is one recorded condition: Data is time bins × neurons and T holds
// the time of each bin. T may be empty when no time axis is known.
type Trial struct {
	Data *mat.Dense
	T    []float64
}

// Validate reports ErrBadTrial for unusable trials.
func (t Trial) Validate() error {
	if err := matrix.ValidateNonEmpty(t.Data); err != nil {
		return fmt.Errorf("%w: %w", ErrBadTrial, err)
	}
	if r, _ := t.Data.Dims(); len(t.T) != 0 && len(t.T) != r {
		return fmt.Errorf("%w: len(T)=%d, rows=%d", ErrBadTrial, len(t.T), r)
	}
	return nil
}

// Set maps trial indices to trials.
type Set map[int]Trial

// Indices returns the trial indices in ascending order.
func (s Set) Indices() []int {
	idx := make([]int, 0, len(s))
	for i := range s {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Trial returns the trial stored under i.
func (s Set) Trial(i int) (Trial, error) {
	t, ok := s[i]
	if !ok {
		return Trial{}, fmt.Errorf("Trial(%d): %w", i, ErrNoTrial)
	}
	return t, nil
}

type header struct {
	Version int
	Count   int
}

type trialRecord struct {
	Index int
	Data  []byte
	T     []float64
}

// Encode writes s to w. Every trial is validated first; nothing is written
// when one is invalid.
func Encode(w io.Writer, s Set) error {
	idx := s.Indices()
	for _, i := range idx {
		if err := s[i].Validate(); err != nil {
			return fmt.Errorf("Encode: trial %d: %w", i, err)
		}
	}

	enc := gob.NewEncoder(w)
	if err := enc.Encode(header{Version: formatVersion, Count: len(idx)}); err != nil {
		return fmt.Errorf("Encode: header: %w", err)
	}
	for _, i := range idx {
		tr := s[i]
		raw, err := tr.Data.MarshalBinary()
		if err != nil {
			return fmt.Errorf("Encode: trial %d: %w", i, err)
		}
		if err := enc.Encode(trialRecord{Index: i, Data: raw, T: tr.T}); err != nil {
			return fmt.Errorf("Encode: trial %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads a Set written by Encode.
//
// Every failure after the stream is opened wraps ErrBadFormat; an invalid
// trial additionally wraps ErrBadTrial.
func Decode(r io.Reader) (Set, error) {
	dec := gob.NewDecoder(r)
	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("Decode: header: %w: %w", ErrBadFormat, err)
	}
	if h.Version != formatVersion || h.Count < 0 {
		return nil, fmt.Errorf("Decode: version %d: %w", h.Version, ErrBadFormat)
	}

	s := make(Set, min(h.Count, 1024))
	for k := 0; k < h.Count; k++ {
		var rec trialRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("Decode: record %d: %w: %w", k, ErrBadFormat, err)
		}
		if _, dup := s[rec.Index]; dup {
			return nil, fmt.Errorf("Decode: record %d: duplicate trial %d: %w", k, rec.Index, ErrBadFormat)
		}
		var d mat.Dense
		if err := d.UnmarshalBinary(rec.Data); err != nil {
			return nil, fmt.Errorf("Decode: trial %d: %w: %w", rec.Index, ErrBadFormat, err)
		}
		tr := Trial{Data: &d, T: rec.T}
		if err := tr.Validate(); err != nil {
			return nil, fmt.Errorf("Decode: trial %d: %w: %w", rec.Index, ErrBadFormat, err)
		}
		s[rec.Index] = tr
	}
	return s, nil
}

// Save writes s to path, replacing any existing file.
func (s Set) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()
	return Encode(f, s)
}

// Load reads a Set from path.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
