package sequence

import (
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/constraints"
)

// FromJSON decodes a JSON array into a new sequence.
func FromJSON[T constraints.Ordered](data []byte) (*ArraySequence[T], error) {
	s := Empty[T]()
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

// MarshalJSON encodes the elements as a JSON array. An empty sequence
// encodes as [].
func (s *ArraySequence[T]) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON replaces the elements of s with the decoded JSON array.
// The comparator of s is kept, so decode into a sequence built with the
// ordering you need:
//
//	s := sequence.FromFunc[Point](nil, byX)
//	err := json.Unmarshal(data, s)
func (s *ArraySequence[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("sequence: decode: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	return nil
}

// String renders the elements for humans. The format is JSON today but is
// not stable; do not parse it.
// It implements [fmt.Stringer].
func (s *ArraySequence[T]) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// Digest returns the BLAKE2b-256 hash of the JSON encoding of s. Two
// sequences with equal elements, in the same order, have the same digest.
func (s *ArraySequence[T]) Digest() ([blake2b.Size256]byte, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return [blake2b.Size256]byte{}, fmt.Errorf("sequence: digest: %w", err)
	}
	return blake2b.Sum256(b), nil
}
