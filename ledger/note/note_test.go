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
	"testing"

	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNote(t *testing.T, serialNum crypto.Word) Note {
	t.Helper()
	sender, err := account.NewAccountId(uint64(1)<<61 | 0x1111)
	require.NoError(t, err)
	faucetId, err := account.NewAccountId(uint64(2)<<62 | uint64(1)<<61 | 0x1)
	require.NoError(t, err)
	tmpAsset, err := asset.NewFungibleAsset(faucetId, 100)
	require.NoError(t, err)
	tmpNote, err := NewNote(
		NewNoteScript([]byte{0xde, 0xad, 0xbe, 0xef}),
		[]crypto.Felt{crypto.NewFelt(42)},
		[]asset.Asset{tmpAsset},
		serialNum,
		sender,
		crypto.NewFelt(7),
	)
	require.NoError(t, err)
	return tmpNote
}

func TestNoteScriptContentAddressed(t *testing.T) {
	scriptA := NewNoteScript([]byte{1, 2, 3})
	scriptB := NewNoteScript([]byte{1, 2, 3})
	scriptC := NewNoteScript([]byte{1, 2, 4})
	assert.Equal(t, scriptA.Root(), scriptB.Root())
	assert.NotEqual(t, scriptA.Root(), scriptC.Root())
}

func TestNoteInputsBounds(t *testing.T) {
	inputs := make([]crypto.Felt, MaxInputsPerNote+1)
	_, err := NewNoteInputs(inputs)
	assert.ErrorAs(t, err, &TooManyInputsError{})

	noteInputs, err := NewNoteInputs(inputs[:MaxInputsPerNote])
	require.NoError(t, err)
	assert.Equal(t, MaxInputsPerNote, noteInputs.Num())
}

func TestNoteInputsCommitmentPadded(t *testing.T) {
	inputs := []crypto.Felt{crypto.NewFelt(1), crypto.NewFelt(2)}
	noteInputs, err := NewNoteInputs(inputs)
	require.NoError(t, err)
	// The commitment hashes the inputs zero-padded to the hasher rate
	padded := make([]crypto.Felt, 8)
	copy(padded, inputs)
	assert.Equal(t, crypto.HashElements(padded), noteInputs.Commitment())
}

func TestNoteDerivationsStable(t *testing.T) {
	serialNum := crypto.NewWord([4]uint64{1, 2, 3, 4})
	noteA := testNote(t, serialNum)
	noteB := testNote(t, serialNum)
	assert.Equal(t, noteA.Id(), noteB.Id())
	assert.Equal(t, noteA.RecipientDigest(), noteB.RecipientDigest())
	assert.Equal(t, noteA.Nullifier(), noteB.Nullifier())

	// A different serial number changes all derivations
	noteC := testNote(t, crypto.NewWord([4]uint64{4, 3, 2, 1}))
	assert.NotEqual(t, noteA.Id(), noteC.Id())
	assert.NotEqual(t, noteA.RecipientDigest(), noteC.RecipientDigest())
	assert.NotEqual(t, noteA.Nullifier(), noteC.Nullifier())
}

func TestNoteIdCommitsToAssets(t *testing.T) {
	tmpNote := testNote(t, crypto.NewWord([4]uint64{1, 2, 3, 4}))
	assert.Equal(
		t,
		NoteId(
			crypto.MergeDigests(
				tmpNote.RecipientDigest(),
				tmpNote.Assets().Commitment(),
			),
		),
		tmpNote.Id(),
	)
}

func TestBuildRecipientMatchesNote(t *testing.T) {
	serialNum := crypto.NewWord([4]uint64{9, 8, 7, 6})
	tmpNote := testNote(t, serialNum)
	recipient, err := BuildRecipient(
		tmpNote.Script().Root(),
		tmpNote.Inputs().Elements(),
		serialNum,
	)
	require.NoError(t, err)
	assert.Equal(t, tmpNote.RecipientDigest(), recipient)
}

func TestNoteEnvelope(t *testing.T) {
	tmpNote := testNote(t, crypto.NewWord([4]uint64{1, 2, 3, 4}))
	envelope := tmpNote.Envelope()
	assert.Equal(t, tmpNote.Id(), envelope.Id)
	assert.Equal(t, tmpNote.Metadata(), envelope.Metadata)
	// An envelope stands in for itself
	assert.Equal(t, envelope, envelope.Envelope())
}

func TestNoteIdDisplay(t *testing.T) {
	id := NoteId(crypto.DigestFromWord(crypto.NewWord([4]uint64{1, 2, 3, 4})))
	assert.Equal(
		t,
		"0100000000000000020000000000000003000000000000000400000000000000",
		id.String(),
	)
	assert.Equal(
		t,
		"note1qyqqqqqqqqqqqqsqqqqqqqqqqqpsqqqqqqqqqqqyqqqqqqqqqqqq73ekaz",
		id.Bech32(),
	)
}

func TestNoteCborRoundTrip(t *testing.T) {
	tmpNote := testNote(t, crypto.NewWord([4]uint64{5, 6, 7, 8}))
	cborData, err := tmpNote.MarshalCBOR()
	require.NoError(t, err)
	var decoded Note
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, tmpNote.Id(), decoded.Id())
	assert.Equal(t, tmpNote.Nullifier(), decoded.Nullifier())
	assert.Equal(t, tmpNote.Metadata(), decoded.Metadata())
	assert.Equal(t, tmpNote.SerialNum(), decoded.SerialNum())
}

func TestNoteEnvelopeCborRoundTrip(t *testing.T) {
	envelope := testNote(t, crypto.NewWord([4]uint64{1, 1, 2, 2})).Envelope()
	cborData, err := envelope.MarshalCBOR()
	require.NoError(t, err)
	var decoded NoteEnvelope
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, envelope, decoded)
}
