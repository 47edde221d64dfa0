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

package note

import (
	"slices"

	"github.com/blinklabs-io/nocturne/crypto"
)

// MaxInputsPerNote is the maximum number of input elements of a note script
const MaxInputsPerNote = 16

// NoteInputs is the input vector of a note script: up to 16 field elements
// handed to the script when the note is consumed
type NoteInputs struct {
	inputs     []crypto.Felt
	commitment crypto.Digest
}

// NewNoteInputs returns a NoteInputs vector for the provided elements
func NewNoteInputs(inputs []crypto.Felt) (NoteInputs, error) {
	if len(inputs) > MaxInputsPerNote {
		return NoteInputs{}, TooManyInputsError{Count: len(inputs)}
	}
	// Pad with zeros to a multiple of the hasher rate before hashing
	paddedLen := len(inputs)
	if paddedLen%8 != 0 {
		paddedLen += 8 - paddedLen%8
	}
	padded := make([]crypto.Felt, paddedLen)
	copy(padded, inputs)
	return NoteInputs{
		inputs:     slices.Clone(inputs),
		commitment: crypto.HashElements(padded),
	}, nil
}

// Commitment returns the commitment to the input elements
func (n NoteInputs) Commitment() crypto.Digest {
	return n.commitment
}

// Num returns the number of input elements
func (n NoteInputs) Num() int {
	return len(n.inputs)
}

// Elements returns the input elements in order
func (n NoteInputs) Elements() []crypto.Felt {
	return slices.Clone(n.inputs)
}
