// Package core defines the foundation types shared by every prelude package:
// tuples, numeric constraints, sentinel errors and context-keyed config.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other prelude packages.
package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pair is a 2-tuple. It stands in for Haskell's (a, b).
type Pair[A, B any] struct {
	first  A
	second B
}

// NewPair is the canonical constructor for a Pair.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// Fst returns the first component.
func (p Pair[A, B]) Fst() A {
	return p.first
}

// Snd returns the second component.
func (p Pair[A, B]) Snd() B {
	return p.second
}

// Unpack returns both components as multiple return values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// Swap exchanges the components.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{first: p.second, second: p.first}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// Fst returns the first component of p.
func Fst[A, B any](p Pair[A, B]) A {
	return p.first
}

// Snd returns the second component of p.
func Snd[A, B any](p Pair[A, B]) B {
	return p.second
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	first  A
	second B
	third  C
}

// NewTriple is the canonical constructor for a Triple.
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{first: a, second: b, third: c}
}

func (t Triple[A, B, C]) First() A  { return t.first }
func (t Triple[A, B, C]) Second() B { return t.second }
func (t Triple[A, B, C]) Third() C  { return t.third }

// Unpack returns all three components.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.first, t.second, t.third)
}

// Tuples encode as JSON arrays: (1, "a") is [1,"a"].

func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return marshalTuple(p.first, p.second)
}

func (p *Pair[A, B]) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, &p.first, &p.second)
}

func (t Triple[A, B, C]) MarshalJSON() ([]byte, error) {
	return marshalTuple(t.first, t.second, t.third)
}

func (t *Triple[A, B, C]) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, &t.first, &t.second, &t.third)
}

func marshalTuple(items ...any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func unmarshalTuple(data []byte, targets ...any) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != len(targets) {
		return fmt.Errorf("expected a %d-tuple, got %d elements", len(targets), len(raw))
	}
	for i, r := range raw {
		if err := json.Unmarshal(r, targets[i]); err != nil {
			return err
		}
	}
	return nil
}
