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
	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
)

// NoteEnvelope is a lightweight reference to a note, used where only the
// note's existence and routing metadata need to travel
type NoteEnvelope struct {
	Id       NoteId
	Metadata NoteMetadata
}

// Envelope returns the envelope itself, so a bare envelope can stand in
// for a produced note in transaction output collections
func (e NoteEnvelope) Envelope() NoteEnvelope {
	return e
}

type noteEnvelopeWire struct {
	cbor.StructAsArray
	Id     NoteId
	Sender uint64
	Tag    uint64
}

func (e NoteEnvelope) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(noteEnvelopeWire{
		Id:     e.Id,
		Sender: uint64(e.Metadata.Sender),
		Tag:    crypto.FeltUint64(e.Metadata.Tag),
	})
}

func (e *NoteEnvelope) UnmarshalCBOR(data []byte) error {
	var tmp noteEnvelopeWire
	if _, err := cbor.Decode(data, &tmp); err != nil {
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
	e.Id = tmp.Id
	e.Metadata = NoteMetadata{Sender: sender, Tag: tagElements[0]}
	return nil
}
