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

package transaction

import (
	"slices"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/note"
)

const (
	// MaxInputNotesPerTx is the maximum number of notes consumed by a
	// single transaction
	MaxInputNotesPerTx = 1023

	// MaxOutputNotesPerTx is the maximum number of notes created by a
	// single transaction
	MaxOutputNotesPerTx = 4096
)

// ToInputNote is anything that can stand in for a consumed note: a full
// note before proving, or just its nullifier afterwards. Both yield the
// same collection commitment
type ToInputNote interface {
	Nullifier() note.Nullifier
}

// ToOutputNote is anything that can stand in for a produced note: a full
// note before proving, or just its envelope afterwards
type ToOutputNote interface {
	Envelope() note.NoteEnvelope
}

// InputNotes is the ordered collection of notes consumed by a transaction,
// committed by sequentially hashing each note's nullifier
type InputNotes[T ToInputNote] struct {
	notes      []T
	commitment crypto.Digest
}

// NewInputNotes returns an InputNotes collection for the provided notes
func NewInputNotes[T ToInputNote](notes []T) (InputNotes[T], error) {
	if len(notes) > MaxInputNotesPerTx {
		return InputNotes[T]{}, TooManyInputNotesError{Count: len(notes)}
	}
	seen := make(map[note.Nullifier]struct{}, len(notes))
	elements := make([]crypto.Felt, 0, len(notes)*2*crypto.WordSize)
	for _, tmpNote := range notes {
		nullifier := tmpNote.Nullifier()
		if _, ok := seen[nullifier]; ok {
			return InputNotes[T]{}, DuplicateInputNoteError{
				Nullifier: nullifier,
			}
		}
		seen[nullifier] = struct{}{}
		elements = append(elements, nullifier.Word().Elements()...)
		elements = append(elements, crypto.ZeroWord.Elements()...)
	}
	return InputNotes[T]{
		notes:      slices.Clone(notes),
		commitment: crypto.HashElements(elements),
	}, nil
}

// Commitment returns the sequential-hash commitment to the collection
func (n InputNotes[T]) Commitment() crypto.Digest {
	return n.commitment
}

// Num returns the number of notes in the collection
func (n InputNotes[T]) Num() int {
	return len(n.notes)
}

// Notes returns the collection's notes in order
func (n InputNotes[T]) Notes() []T {
	return slices.Clone(n.notes)
}

// Nullifiers returns the nullifier of each note in order
func (n InputNotes[T]) Nullifiers() []note.Nullifier {
	ret := make([]note.Nullifier, len(n.notes))
	for i, tmpNote := range n.notes {
		ret[i] = tmpNote.Nullifier()
	}
	return ret
}

func (n InputNotes[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(n.notes)
}

func (n *InputNotes[T]) UnmarshalCBOR(data []byte) error {
	var tmpNotes []T
	if _, err := cbor.Decode(data, &tmpNotes); err != nil {
		return err
	}
	// Re-run construction-time validation rather than trusting the bytes
	tmp, err := NewInputNotes(tmpNotes)
	if err != nil {
		return err
	}
	*n = tmp
	return nil
}

// OutputNotes is the ordered collection of notes produced by a transaction,
// committed by sequentially hashing each note's id and metadata
type OutputNotes[T ToOutputNote] struct {
	notes      []T
	commitment crypto.Digest
}

// NewOutputNotes returns an OutputNotes collection for the provided notes
func NewOutputNotes[T ToOutputNote](notes []T) (OutputNotes[T], error) {
	if len(notes) > MaxOutputNotesPerTx {
		return OutputNotes[T]{}, TooManyOutputNotesError{Count: len(notes)}
	}
	seen := make(map[note.NoteId]struct{}, len(notes))
	elements := make([]crypto.Felt, 0, len(notes)*2*crypto.WordSize)
	for _, tmpNote := range notes {
		envelope := tmpNote.Envelope()
		if _, ok := seen[envelope.Id]; ok {
			return OutputNotes[T]{}, DuplicateOutputNoteError{
				Id: envelope.Id,
			}
		}
		seen[envelope.Id] = struct{}{}
		elements = append(
			elements,
			crypto.Digest(envelope.Id).Word().Elements()...,
		)
		elements = append(elements, envelope.Metadata.Word().Elements()...)
	}
	return OutputNotes[T]{
		notes:      slices.Clone(notes),
		commitment: crypto.HashElements(elements),
	}, nil
}

// Commitment returns the sequential-hash commitment to the collection
func (n OutputNotes[T]) Commitment() crypto.Digest {
	return n.commitment
}

// Num returns the number of notes in the collection
func (n OutputNotes[T]) Num() int {
	return len(n.notes)
}

// Notes returns the collection's notes in order
func (n OutputNotes[T]) Notes() []T {
	return slices.Clone(n.notes)
}

// Envelopes returns the envelope of each note in order
func (n OutputNotes[T]) Envelopes() []note.NoteEnvelope {
	ret := make([]note.NoteEnvelope, len(n.notes))
	for i, tmpNote := range n.notes {
		ret[i] = tmpNote.Envelope()
	}
	return ret
}

// Contains returns true if the collection contains a note with the
// provided id
func (n OutputNotes[T]) Contains(id note.NoteId) bool {
	return slices.ContainsFunc(
		n.notes,
		func(tmpNote T) bool { return tmpNote.Envelope().Id == id },
	)
}

func (n OutputNotes[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(n.notes)
}

func (n *OutputNotes[T]) UnmarshalCBOR(data []byte) error {
	var tmpNotes []T
	if _, err := cbor.Decode(data, &tmpNotes); err != nil {
		return err
	}
	tmp, err := NewOutputNotes(tmpNotes)
	if err != nil {
		return err
	}
	*n = tmp
	return nil
}
