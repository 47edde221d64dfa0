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
	"testing"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/asset"
	"github.com/blinklabs-io/nocturne/ledger/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOnChainId  = uint64(1)<<61 | 0x2222
	testOffChainId = uint64(0x3333)
)

func testAccountId(t *testing.T, id uint64) account.AccountId {
	t.Helper()
	accountId, err := account.NewAccountId(id)
	require.NoError(t, err)
	return accountId
}

func testAccount(t *testing.T, id uint64, nonce uint64) account.Account {
	t.Helper()
	rng := crypto.NewSeededFeltRng(id ^ nonce)
	acct, err := account.NewAccount(
		testAccountId(t, id),
		nonce,
		testDigest(rng),
		testDigest(rng),
		testDigest(rng),
	)
	require.NoError(t, err)
	return acct
}

func testProof() ExecutionProof {
	return NewExecutionProof(96, []byte{0x01, 0x02, 0x03})
}

func testFullNote(t *testing.T, serial uint64) note.Note {
	t.Helper()
	sender := testAccountId(t, testOnChainId)
	faucetId := testAccountId(t, uint64(2)<<62|uint64(1)<<61|0x1)
	tmpAsset, err := asset.NewFungibleAsset(faucetId, 100)
	require.NoError(t, err)
	tmpNote, err := note.NewNote(
		note.NewNoteScript([]byte{0xca, 0xfe}),
		[]crypto.Felt{crypto.NewFelt(serial)},
		[]asset.Asset{tmpAsset},
		crypto.NewWord([4]uint64{serial, 0, 0, 0}),
		sender,
		crypto.NewFelt(1),
	)
	require.NoError(t, err)
	return tmpNote
}

// testBuilder returns a builder for an off-chain account with one input
// and one output note
func testBuilder(t *testing.T) *ProvenTransactionBuilder {
	t.Helper()
	rng := crypto.NewSeededFeltRng(42)
	initial := testDigest(rng)
	return NewProvenTransactionBuilder(
		testAccountId(t, testOffChainId),
		&initial,
		testDigest(rng),
		testDigest(rng),
		testProof(),
	).
		AddInputNotes(testNullifier(1)).
		AddOutputNotes(testEnvelope(t, 1))
}

func TestBuildOffChainAccount(t *testing.T) {
	tx, err := testBuilder(t).Build()
	require.NoError(t, err)
	assert.Equal(t, testAccountId(t, testOffChainId), tx.AccountId())
	assert.Nil(t, tx.AccountDetails())
	assert.Equal(t, 1, tx.InputNotes().Num())
	assert.Equal(t, 1, tx.OutputNotes().Num())
}

func TestBuildRejectsOffChainAccountWithDetails(t *testing.T) {
	_, err := testBuilder(t).
		WithAccountDetails(NewDeltaAccountDetails(account.AccountDelta{})).
		Build()
	assert.ErrorAs(t, err, &OffChainAccountWithDetailsError{})

	// The rule holds regardless of the details content
	_, err = testBuilder(t).
		WithAccountDetails(
			NewFullAccountDetails(testAccount(t, testOffChainId, 0)),
		).
		Build()
	assert.ErrorAs(t, err, &OffChainAccountWithDetailsError{})
}

func TestBuildOnChainAccountMatrix(t *testing.T) {
	rng := crypto.NewSeededFeltRng(7)
	existingHash := testDigest(rng)
	blockRef := testDigest(rng)
	newAccount := testAccount(t, testOnChainId, 0)

	testCases := []struct {
		name        string
		initialHash *crypto.Digest
		details     AccountDetails
		expectedErr any
	}{
		{
			name:        "MissingDetails",
			initialHash: &existingHash,
			details:     nil,
			expectedErr: &OnChainAccountMissingDetailsError{},
		},
		{
			name:        "NewWithDelta",
			initialHash: nil,
			details:     NewDeltaAccountDetails(account.AccountDelta{NonceIncrement: 1}),
			expectedErr: &NewAccountRequiresFullDetailsError{},
		},
		{
			name:        "NewWithFull",
			initialHash: nil,
			details:     NewFullAccountDetails(newAccount),
			expectedErr: nil,
		},
		{
			name:        "ExistingWithFull",
			initialHash: &existingHash,
			details:     NewFullAccountDetails(newAccount),
			expectedErr: &ExistingAccountRequiresDeltaDetailsError{},
		},
		{
			name:        "ExistingWithDelta",
			initialHash: &existingHash,
			details:     NewDeltaAccountDetails(account.AccountDelta{NonceIncrement: 1}),
			expectedErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			finalHash := newAccount.Hash()
			builder := NewProvenTransactionBuilder(
				testAccountId(t, testOnChainId),
				tc.initialHash,
				finalHash,
				blockRef,
				testProof(),
			)
			if tc.details != nil {
				builder.WithAccountDetails(tc.details)
			}
			tx, err := builder.Build()
			if tc.expectedErr != nil {
				assert.ErrorAs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.details, tx.AccountDetails())
			}
		})
	}
}

func TestBuildRejectsFullDetailsMismatch(t *testing.T) {
	blockRef := crypto.DigestFromWord(crypto.NewWord([4]uint64{1, 2, 3, 4}))
	newAccount := testAccount(t, testOnChainId, 0)

	// Details for a different account id
	otherAccount := testAccount(t, uint64(1)<<61|0x4444, 0)
	_, err := NewProvenTransactionBuilder(
		testAccountId(t, testOnChainId),
		nil,
		otherAccount.Hash(),
		blockRef,
		testProof(),
	).
		WithAccountDetails(NewFullAccountDetails(otherAccount)).
		Build()
	assert.ErrorAs(t, err, &AccountIdMismatchError{})

	// Details whose hash does not match the final account hash
	otherHash := crypto.DigestFromWord(crypto.NewWord([4]uint64{9, 9, 9, 9}))
	_, err = NewProvenTransactionBuilder(
		testAccountId(t, testOnChainId),
		nil,
		otherHash,
		blockRef,
		testProof(),
	).
		WithAccountDetails(NewFullAccountDetails(newAccount)).
		Build()
	assert.ErrorAs(t, err, &FinalHashMismatchError{})
}

func TestBuildOutputNoteDetails(t *testing.T) {
	disclosedNote := testFullNote(t, 1)

	// Details for a note absent from the output set fail, naming the id
	_, err := testBuilder(t).
		AddOutputNoteDetails(disclosedNote).
		Build()
	var detailsErr NoteDetailsForUnknownNotesError
	require.ErrorAs(t, err, &detailsErr)
	assert.Equal(t, []note.NoteId{disclosedNote.Id()}, detailsErr.Ids)

	// With the note's envelope in the output set, the disclosed content is
	// preserved
	tx, err := testBuilder(t).
		AddOutputNotes(disclosedNote.Envelope()).
		AddOutputNoteDetails(disclosedNote).
		Build()
	require.NoError(t, err)
	gotNote, ok := tx.OutputNoteDetails(disclosedNote.Id())
	require.True(t, ok)
	assert.Equal(t, disclosedNote.Id(), gotNote.Id())
	assert.Equal(t, disclosedNote.Nullifier(), gotNote.Nullifier())
	_, ok = tx.OutputNoteDetails(testFullNote(t, 2).Id())
	assert.False(t, ok)
}

func TestBuildRejectsDuplicateNotes(t *testing.T) {
	_, err := testBuilder(t).
		AddInputNotes(testNullifier(1)).
		Build()
	assert.ErrorAs(t, err, &DuplicateInputNoteError{})

	_, err = testBuilder(t).
		AddOutputNotes(testEnvelope(t, 1)).
		Build()
	assert.ErrorAs(t, err, &DuplicateOutputNoteError{})
}

func TestBuildRejectsZeroInitialHash(t *testing.T) {
	zero := crypto.ZeroDigest
	_, err := NewProvenTransactionBuilder(
		testAccountId(t, testOffChainId),
		&zero,
		crypto.DigestFromWord(crypto.NewWord([4]uint64{1, 0, 0, 0})),
		crypto.DigestFromWord(crypto.NewWord([4]uint64{2, 0, 0, 0})),
		testProof(),
	).Build()
	assert.ErrorIs(t, err, ErrZeroInitialAccountHash)
}

func TestExecutedAndProvenIdParity(t *testing.T) {
	inputNote := testFullNote(t, 1)
	outputNote := testFullNote(t, 2)
	initialAccount := testAccount(t, testOffChainId, 3)
	finalAccount := testAccount(t, testOffChainId, 4)
	blockRef := crypto.DigestFromWord(crypto.NewWord([4]uint64{5, 6, 7, 8}))

	inputNotes, err := NewInputNotes([]note.Note{inputNote})
	require.NoError(t, err)
	outputNotes, err := NewOutputNotes([]note.Note{outputNote})
	require.NoError(t, err)
	executedTx, err := NewExecutedTransaction(
		&initialAccount,
		finalAccount,
		inputNotes,
		outputNotes,
		nil,
		blockRef,
	)
	require.NoError(t, err)
	executedId, err := executedTx.Id()
	require.NoError(t, err)

	initialHash := initialAccount.Hash()
	provenTx, err := NewProvenTransactionBuilder(
		finalAccount.Id,
		&initialHash,
		finalAccount.Hash(),
		blockRef,
		testProof(),
	).
		AddInputNotes(inputNote.Nullifier()).
		AddOutputNotes(outputNote.Envelope()).
		Build()
	require.NoError(t, err)

	// The id derived from the execution matches the id stamped on the
	// proven transaction built from it
	assert.Equal(t, executedId, provenTx.Id())
}

func TestProvenTransactionCborRoundTrip(t *testing.T) {
	disclosedNote := testFullNote(t, 3)
	existingHash := crypto.DigestFromWord(crypto.NewWord([4]uint64{1, 2, 3, 4}))
	blockRef := crypto.DigestFromWord(crypto.NewWord([4]uint64{5, 6, 7, 8}))
	scriptRoot := crypto.DigestFromWord(crypto.NewWord([4]uint64{9, 10, 11, 12}))

	testCases := []struct {
		name    string
		buildTx func(t *testing.T) *ProvenTransaction
	}{
		{
			name: "OffChainAccount",
			buildTx: func(t *testing.T) *ProvenTransaction {
				tx, err := testBuilder(t).
					AddOutputNotes(disclosedNote.Envelope()).
					AddOutputNoteDetails(disclosedNote).
					WithTxScriptRoot(scriptRoot).
					Build()
				require.NoError(t, err)
				return tx
			},
		},
		{
			name: "NewOnChainAccountFullDetails",
			buildTx: func(t *testing.T) *ProvenTransaction {
				newAccount := testAccount(t, testOnChainId, 0)
				tx, err := NewProvenTransactionBuilder(
					newAccount.Id,
					nil,
					newAccount.Hash(),
					blockRef,
					testProof(),
				).
					WithAccountDetails(NewFullAccountDetails(newAccount)).
					AddInputNotes(testNullifier(9)).
					Build()
				require.NoError(t, err)
				return tx
			},
		},
		{
			name: "ExistingOnChainAccountDeltaDetails",
			buildTx: func(t *testing.T) *ProvenTransaction {
				tx, err := NewProvenTransactionBuilder(
					testAccountId(t, testOnChainId),
					&existingHash,
					blockRef,
					blockRef,
					testProof(),
				).
					WithAccountDetails(
						NewDeltaAccountDetails(
							account.AccountDelta{
								StorageSlots: []account.StorageSlotUpdate{
									{Slot: 3, Value: [4]uint64{1, 2, 3, 4}},
								},
								NonceIncrement: 1,
							},
						),
					).
					AddOutputNotes(testEnvelope(t, 5)).
					Build()
				require.NoError(t, err)
				return tx
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := tc.buildTx(t)
			cborData, err := tx.MarshalCBOR()
			require.NoError(t, err)
			var decoded ProvenTransaction
			require.NoError(t, decoded.UnmarshalCBOR(cborData))
			// Decoding re-runs validation and recomputes the id
			assert.Equal(t, tx.Id(), decoded.Id())
			assert.Equal(t, tx.AccountId(), decoded.AccountId())
			assert.Equal(t, tx.InitialAccountHash(), decoded.InitialAccountHash())
			assert.Equal(t, tx.FinalAccountHash(), decoded.FinalAccountHash())
			assert.Equal(t, tx.AccountDetails(), decoded.AccountDetails())
			assert.Equal(
				t,
				tx.InputNotes().Commitment(),
				decoded.InputNotes().Commitment(),
			)
			assert.Equal(
				t,
				tx.OutputNotes().Commitment(),
				decoded.OutputNotes().Commitment(),
			)
			assert.Equal(t, tx.TxScriptRoot(), decoded.TxScriptRoot())
			assert.Equal(t, tx.BlockRef(), decoded.BlockRef())
			assert.True(t, tx.Proof().Equal(decoded.Proof()))
		})
	}
}

func TestAccountDetailsUnknownDiscriminant(t *testing.T) {
	badDetails := struct {
		cbor.StructAsArray
		DetailsType uint
		Account     account.Account
	}{
		DetailsType: 7,
		Account:     testAccount(t, testOnChainId, 0),
	}
	cborData, err := cbor.Encode(&badDetails)
	require.NoError(t, err)
	var wrapper AccountDetailsWrapper
	err = wrapper.UnmarshalCBOR(cborData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account details type")
}

func TestAccountDetailsDeltaDecodeFieldValidation(t *testing.T) {
	testCases := []struct {
		name  string
		delta account.AccountDelta
	}{
		{
			name: "NonceIncrementOutOfField",
			delta: account.AccountDelta{
				NonceIncrement: crypto.FeltModulus,
			},
		},
		{
			name: "StorageSlotValueOutOfField",
			delta: account.AccountDelta{
				StorageSlots: []account.StorageSlotUpdate{
					{Slot: 1, Value: [4]uint64{0, crypto.FeltModulus, 0, 0}},
				},
				NonceIncrement: 1,
			},
		},
		{
			name: "AddedAssetWordOutOfField",
			delta: account.AccountDelta{
				AddedAssets:    [][4]uint64{{^uint64(0), 0, 0, 0}},
				NonceIncrement: 1,
			},
		},
		{
			name: "RemovedAssetWordOutOfField",
			delta: account.AccountDelta{
				RemovedAssets:  [][4]uint64{{0, 0, 0, ^uint64(0)}},
				NonceIncrement: 1,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cborData, err := cbor.Encode(NewDeltaAccountDetails(tc.delta))
			require.NoError(t, err)
			var decoded AccountDetailsWrapper
			err = decoded.UnmarshalCBOR(cborData)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid field element")
		})
	}
}

func TestAccountDetailsCborRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		details AccountDetails
	}{
		{
			name:    "Full",
			details: NewFullAccountDetails(testAccount(t, testOnChainId, 0)),
		},
		{
			name: "Delta",
			details: NewDeltaAccountDetails(account.AccountDelta{
				AddedAssets:    [][4]uint64{{100, 0, 0, 42}},
				NonceIncrement: 2,
			}),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapper := AccountDetailsWrapper{
				Type:    tc.details.Type(),
				Details: tc.details,
			}
			cborData, err := wrapper.MarshalCBOR()
			require.NoError(t, err)
			var decoded AccountDetailsWrapper
			require.NoError(t, decoded.UnmarshalCBOR(cborData))
			assert.Equal(t, tc.details.Type(), decoded.Type)
			assert.Equal(t, tc.details, decoded.Details)
		})
	}
}
