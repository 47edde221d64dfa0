// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crypto

import (
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Felt is a single element of the 64-bit goldilocks field, the base field of
// the rollup's proof system
type Felt = goldilocks.Element

const (
	// WordSize is the number of field elements in a Word
	WordSize = 4

	// FeltModulus is the goldilocks prime 2^64 - 2^32 + 1
	FeltModulus uint64 = 0xffffffff00000001
)

// Word is a group of four field elements, the unit in which assets, serial
// numbers, and hash digests are expressed
type Word [WordSize]Felt

// ZeroWord is the all-zero word
var ZeroWord = Word{}

// NewFelt returns a field element for the provided value, reducing it into
// the field if necessary
func NewFelt(val uint64) Felt {
	var f Felt
	f.SetUint64(val % FeltModulus)
	return f
}

// FeltUint64 returns the canonical integer value of a field element
func FeltUint64(f Felt) uint64 {
	return f.Bits()[0]
}

// NewWord returns a word for the provided values, reducing each into the
// field if necessary
func NewWord(vals [WordSize]uint64) Word {
	var w Word
	for i, val := range vals {
		w[i] = NewFelt(val)
	}
	return w
}

// WordUint64s returns the canonical integer values of a word's elements
func WordUint64s(w Word) [WordSize]uint64 {
	var ret [WordSize]uint64
	for i, f := range w {
		ret[i] = FeltUint64(f)
	}
	return ret
}

// WordFromUint64s converts canonical integer values into a word. Unlike
// NewWord it rejects values outside of the field rather than reducing them,
// which makes it suitable for decoding untrusted input
func WordFromUint64s(vals [WordSize]uint64) (Word, error) {
	var w Word
	for i, val := range vals {
		if val >= FeltModulus {
			return Word{}, fmt.Errorf(
				"value %d at index %d is not a valid field element",
				val,
				i,
			)
		}
		w[i].SetUint64(val)
	}
	return w, nil
}

// FeltsToUint64s returns the canonical integer values of the provided
// elements
func FeltsToUint64s(felts []Felt) []uint64 {
	ret := make([]uint64, len(felts))
	for i, f := range felts {
		ret[i] = FeltUint64(f)
	}
	return ret
}

// FeltsFromUint64s converts canonical integer values into field elements,
// rejecting values outside of the field
func FeltsFromUint64s(vals []uint64) ([]Felt, error) {
	ret := make([]Felt, len(vals))
	for i, val := range vals {
		if val >= FeltModulus {
			return nil, fmt.Errorf(
				"value %d at index %d is not a valid field element",
				val,
				i,
			)
		}
		ret[i].SetUint64(val)
	}
	return ret, nil
}

// Elements returns the word's elements as a slice
func (w Word) Elements() []Felt {
	return w[:]
}

// IsZero returns true if all of the word's elements are zero
func (w Word) IsZero() bool {
	return w == ZeroWord
}
