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

// Package scripts provides the standardized note templates. Each template
// builds a note from a fixed precompiled script, a small input vector, and
// fresh serial numbers drawn from a caller-supplied randomness source.
//
// The randomness source must be cryptographically secure and must never be
// reused across note constructions.
package scripts

import (
	_ "embed"

	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/asset"
	"github.com/blinklabs-io/nocturne/ledger/note"
)

// Precompiled note script programs. The programs are opaque
// content-addressed artifacts produced by the external script compiler
var (
	//go:embed assets/p2id.mast
	p2idScriptBytes []byte

	//go:embed assets/p2idr.mast
	p2idrScriptBytes []byte

	//go:embed assets/swap.mast
	swapScriptBytes []byte
)

// P2IDScript returns the handle to the pay-to-id script
func P2IDScript() note.NoteScript {
	return note.NewNoteScript(p2idScriptBytes)
}

// P2IDRScript returns the handle to the recallable pay-to-id script
func P2IDRScript() note.NoteScript {
	return note.NewNoteScript(p2idrScriptBytes)
}

// SwapScript returns the handle to the swap script
func SwapScript() note.NoteScript {
	return note.NewNoteScript(swapScriptBytes)
}

// BuildP2IDNote builds a pay-to-id note transferring assets from sender to
// target. The assets are claimable unconditionally by target
func BuildP2IDNote(
	sender account.AccountId,
	target account.AccountId,
	assets []asset.Asset,
	rng crypto.FeltRng,
) (note.Note, error) {
	inputs := []crypto.Felt{target.Felt(), {}, {}, {}}
	return note.NewNote(
		P2IDScript(),
		inputs,
		assets,
		rng.DrawWord(),
		sender,
		target.Felt(),
	)
}

// BuildP2IDRNote builds a recallable pay-to-id note. The target's claim
// path matches BuildP2IDNote; additionally the sender may reclaim the
// assets once the ledger height reaches recallHeight. The recall window is
// enforced by the script itself, this layer only encodes the parameter
func BuildP2IDRNote(
	sender account.AccountId,
	target account.AccountId,
	assets []asset.Asset,
	recallHeight uint32,
	rng crypto.FeltRng,
) (note.Note, error) {
	inputs := []crypto.Felt{
		target.Felt(),
		crypto.NewFelt(uint64(recallHeight)),
		{},
		{},
	}
	return note.NewNote(
		P2IDRScript(),
		inputs,
		assets,
		rng.DrawWord(),
		sender,
		target.Felt(),
	)
}

// BuildSwapNote builds a swap note offering offeredAsset to any account
// willing to create a pay-to-id note returning requestedAsset to sender.
// The note's inputs embed the repayment note's recipient, the requested
// asset word, and the sender id; its tag is zero so any consumer may claim
// it.
//
// The second return value is the repayment serial number. The consumer
// derives the repayment note deterministically from the embedded recipient,
// so the sender must retain this serial number out-of-band to later prove
// entitlement to the repayment note
func BuildSwapNote(
	sender account.AccountId,
	offeredAsset asset.Asset,
	requestedAsset asset.Asset,
	rng crypto.FeltRng,
) (note.Note, crypto.Word, error) {
	repaySerialNum := rng.DrawWord()
	repayInputs := []crypto.Felt{sender.Felt(), {}, {}, {}}
	repayRecipient, err := note.BuildRecipient(
		P2IDScript().Root(),
		repayInputs,
		repaySerialNum,
	)
	if err != nil {
		return note.Note{}, crypto.Word{}, err
	}
	requestedWord := requestedAsset.Word()
	inputs := make([]crypto.Felt, 0, 12)
	inputs = append(inputs, repayRecipient.Elements()...)
	inputs = append(inputs, requestedWord.Elements()...)
	inputs = append(inputs, sender.Felt(), crypto.Felt{}, crypto.Felt{}, crypto.Felt{})
	tmpNote, err := note.NewNote(
		SwapScript(),
		inputs,
		[]asset.Asset{offeredAsset},
		rng.DrawWord(),
		sender,
		crypto.Felt{},
	)
	if err != nil {
		return note.Note{}, crypto.Word{}, err
	}
	return tmpNote, repaySerialNum, nil
}
