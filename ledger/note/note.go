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
	"encoding/hex"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/asset"
)

// NoteId uniquely identifies a note. It commits to the note's recipient and
// asset container, so two notes with the same id are the same note
type NoteId crypto.Digest

func (n NoteId) String() string {
	return hex.EncodeToString(n[:])
}

func (n NoteId) Bytes() []byte {
	return n[:]
}

func (n NoteId) Bech32() string {
	return crypto.Digest(n).Bech32("note")
}

func (n NoteId) MarshalCBOR() ([]byte, error) {
	return crypto.Digest(n).MarshalCBOR()
}

func (n *NoteId) UnmarshalCBOR(data []byte) error {
	return (*crypto.Digest)(n).UnmarshalCBOR(data)
}

// NoteMetadata is the public routing information of a note: the sender
// account and a tag enabling network-level filtering without revealing the
// note's content
type NoteMetadata struct {
	Sender account.AccountId
	Tag    crypto.Felt
}

// Word returns the metadata as a word: [sender, tag, 0, 0]
func (m NoteMetadata) Word() crypto.Word {
	return crypto.Word{m.Sender.Felt(), m.Tag}
}

// Note is a value-carrying, script-gated record consumable exactly once by
// whoever satisfies its script's conditions. All derived commitments are
// computed at construction; a Note is immutable thereafter
type Note struct {
	script    NoteScript
	inputs    NoteInputs
	assets    asset.NoteAssets
	serialNum crypto.Word
	metadata  NoteMetadata
	recipient crypto.Digest
	id        NoteId
	nullifier Nullifier
}

// NewNote returns a note gated by the provided script
func NewNote(
	script NoteScript,
	inputs []crypto.Felt,
	assets []asset.Asset,
	serialNum crypto.Word,
	sender account.AccountId,
	tag crypto.Felt,
) (Note, error) {
	noteInputs, err := NewNoteInputs(inputs)
	if err != nil {
		return Note{}, err
	}
	noteAssets, err := asset.NewNoteAssets(assets)
	if err != nil {
		return Note{}, err
	}
	recipient := buildRecipient(
		script.Root(),
		noteInputs.Commitment(),
		serialNum,
	)
	return Note{
		script:    script,
		inputs:    noteInputs,
		assets:    noteAssets,
		serialNum: serialNum,
		metadata:  NoteMetadata{Sender: sender, Tag: tag},
		recipient: recipient,
		id: NoteId(
			crypto.MergeDigests(recipient, noteAssets.Commitment()),
		),
		nullifier: Nullifier(
			crypto.HashWords(
				serialNum,
				script.Root().Word(),
				noteInputs.Commitment().Word(),
				noteAssets.Commitment().Word(),
			),
		),
	}, nil
}

// BuildRecipient derives the recipient digest of a note that has not been
// created yet, from the note's script root, input elements, and serial
// number. A recipient identifies who may claim a note without revealing
// the target before consumption
func BuildRecipient(
	scriptRoot crypto.Digest,
	inputs []crypto.Felt,
	serialNum crypto.Word,
) (crypto.Digest, error) {
	noteInputs, err := NewNoteInputs(inputs)
	if err != nil {
		return crypto.Digest{}, err
	}
	return buildRecipient(scriptRoot, noteInputs.Commitment(), serialNum), nil
}

func buildRecipient(
	scriptRoot crypto.Digest,
	inputsCommitment crypto.Digest,
	serialNum crypto.Word,
) crypto.Digest {
	serialHash := crypto.HashWords(serialNum)
	return crypto.MergeDigests(
		crypto.MergeDigests(serialHash, scriptRoot),
		inputsCommitment,
	)
}

// Id returns the note's unique identifier
func (n Note) Id() NoteId {
	return n.id
}

// Script returns the note's script handle
func (n Note) Script() NoteScript {
	return n.script
}

// Inputs returns the note's script input vector
func (n Note) Inputs() NoteInputs {
	return n.inputs
}

// Assets returns the note's asset container
func (n Note) Assets() asset.NoteAssets {
	return n.assets
}

// SerialNum returns the note's serial number
func (n Note) SerialNum() crypto.Word {
	return n.serialNum
}

// Metadata returns the note's public metadata
func (n Note) Metadata() NoteMetadata {
	return n.metadata
}

// RecipientDigest returns the commitment to (script, inputs, serial number)
func (n Note) RecipientDigest() crypto.Digest {
	return n.recipient
}

// Nullifier returns the unique value that marks this note as consumed once
// published
func (n Note) Nullifier() Nullifier {
	return n.nullifier
}

// Envelope returns the lightweight (id, metadata) reference to this note
func (n Note) Envelope() NoteEnvelope {
	return NoteEnvelope{Id: n.id, Metadata: n.metadata}
}

// noteWire is the CBOR wire shape of a Note
type noteWire struct {
	cbor.StructAsArray
	ScriptCode []byte
	Inputs     []uint64
	Assets     asset.NoteAssets
	SerialNum  [4]uint64
	Sender     uint64
	Tag        uint64
}

func (n Note) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(noteWire{
		ScriptCode: n.script.Code(),
		Inputs:     crypto.FeltsToUint64s(n.inputs.Elements()),
		Assets:     n.assets,
		SerialNum:  crypto.WordUint64s(n.serialNum),
		Sender:     uint64(n.metadata.Sender),
		Tag:        crypto.FeltUint64(n.metadata.Tag),
	})
}

func (n *Note) UnmarshalCBOR(data []byte) error {
	var tmp noteWire
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	inputs, err := crypto.FeltsFromUint64s(tmp.Inputs)
	if err != nil {
		return err
	}
	serialNum, err := crypto.WordFromUint64s(tmp.SerialNum)
	if err != nil {
		return err
	}
	sender, err := account.NewAccountId(tmp.Sender)
	if err != nil {
		return err
	}
	tagElements, err := crypto.FeltsFromUint64s([]uint64{tmp.Tag})
	if err != nil {
		return err
	}
	// Rebuilding through the constructor re-derives all commitments and
	// re-runs construction-time validation
	tmpNote, err := NewNote(
		NewNoteScript(tmp.ScriptCode),
		inputs,
		tmp.Assets.Assets(),
		serialNum,
		sender,
		tagElements[0],
	)
	if err != nil {
		return err
	}
	*n = tmpNote
	return nil
}
