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
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/note"
)

// ProvenTransaction is the result of executing and proving a transaction:
// everything the ledger needs to verify the execution and apply the state
// change. It is immutable once built; a later change to account state is
// expressed by a subsequent, independent transaction
type ProvenTransaction struct {
	id                 TransactionId
	accountId          account.AccountId
	initialAccountHash *crypto.Digest
	finalAccountHash   crypto.Digest
	accountDetails     AccountDetails
	inputNotes         InputNotes[note.Nullifier]
	outputNotes        OutputNotes[note.NoteEnvelope]
	outputNoteDetails  map[note.NoteId]note.Note
	txScriptRoot       *crypto.Digest
	blockRef           crypto.Digest
	proof              ExecutionProof
}

// Id returns the unique identifier of this transaction
func (t *ProvenTransaction) Id() TransactionId {
	return t.id
}

// AccountId returns the id of the account the transaction was executed
// against
func (t *ProvenTransaction) AccountId() account.AccountId {
	return t.accountId
}

// InitialAccountHash returns the account state hash before execution, or
// nil if the transaction created the account
func (t *ProvenTransaction) InitialAccountHash() *crypto.Digest {
	return t.initialAccountHash
}

// FinalAccountHash returns the account state hash after execution
func (t *ProvenTransaction) FinalAccountHash() crypto.Digest {
	return t.finalAccountHash
}

// AccountDetails returns the account state disclosure, or nil for an
// off-chain account
func (t *ProvenTransaction) AccountDetails() AccountDetails {
	return t.accountDetails
}

// InputNotes returns the nullifiers of the notes consumed by the
// transaction
func (t *ProvenTransaction) InputNotes() InputNotes[note.Nullifier] {
	return t.inputNotes
}

// OutputNotes returns the envelopes of the notes produced by the
// transaction
func (t *ProvenTransaction) OutputNotes() OutputNotes[note.NoteEnvelope] {
	return t.outputNotes
}

// OutputNoteDetails returns the full note disclosed for the provided id,
// if any
func (t *ProvenTransaction) OutputNoteDetails(id note.NoteId) (note.Note, bool) {
	tmpNote, ok := t.outputNoteDetails[id]
	return tmpNote, ok
}

// TxScriptRoot returns the transaction script root, or nil if no
// transaction script was used
func (t *ProvenTransaction) TxScriptRoot() *crypto.Digest {
	return t.txScriptRoot
}

// BlockRef returns the hash of the reference block the transaction was
// executed against
func (t *ProvenTransaction) BlockRef() crypto.Digest {
	return t.blockRef
}

// Proof returns the execution proof
func (t *ProvenTransaction) Proof() ExecutionProof {
	return t.proof
}

// ProvenTransactionBuilder accumulates the components of a proven
// transaction and validates them as a whole in Build. A builder is a
// single-owner object and is not safe for concurrent mutation; independent
// builders for independent transactions may run concurrently
type ProvenTransactionBuilder struct {
	accountId          account.AccountId
	initialAccountHash *crypto.Digest
	finalAccountHash   crypto.Digest
	accountDetails     AccountDetails
	inputNotes         []note.Nullifier
	outputNotes        []note.NoteEnvelope
	outputNoteDetails  map[note.NoteId]note.Note
	txScriptRoot       *crypto.Digest
	blockRef           crypto.Digest
	proof              ExecutionProof
}

// NewProvenTransactionBuilder returns a builder for the provided account
// transition. A nil initialAccountHash means the transaction created the
// account
func NewProvenTransactionBuilder(
	accountId account.AccountId,
	initialAccountHash *crypto.Digest,
	finalAccountHash crypto.Digest,
	blockRef crypto.Digest,
	proof ExecutionProof,
) *ProvenTransactionBuilder {
	return &ProvenTransactionBuilder{
		accountId:          accountId,
		initialAccountHash: initialAccountHash,
		finalAccountHash:   finalAccountHash,
		outputNoteDetails:  make(map[note.NoteId]note.Note),
		blockRef:           blockRef,
		proof:              proof,
	}
}

// WithAccountDetails sets the account state disclosure
func (b *ProvenTransactionBuilder) WithAccountDetails(
	details AccountDetails,
) *ProvenTransactionBuilder {
	b.accountDetails = details
	return b
}

// AddInputNotes appends nullifiers of notes consumed by the transaction
func (b *ProvenTransactionBuilder) AddInputNotes(
	nullifiers ...note.Nullifier,
) *ProvenTransactionBuilder {
	b.inputNotes = append(b.inputNotes, nullifiers...)
	return b
}

// AddOutputNotes appends envelopes of notes produced by the transaction
func (b *ProvenTransactionBuilder) AddOutputNotes(
	envelopes ...note.NoteEnvelope,
) *ProvenTransactionBuilder {
	b.outputNotes = append(b.outputNotes, envelopes...)
	return b
}

// AddOutputNoteDetails discloses the full content of produced notes
func (b *ProvenTransactionBuilder) AddOutputNoteDetails(
	notes ...note.Note,
) *ProvenTransactionBuilder {
	for _, tmpNote := range notes {
		b.outputNoteDetails[tmpNote.Id()] = tmpNote
	}
	return b
}

// WithTxScriptRoot sets the transaction script root
func (b *ProvenTransactionBuilder) WithTxScriptRoot(
	root crypto.Digest,
) *ProvenTransactionBuilder {
	b.txScriptRoot = &root
	return b
}

// Build validates the accumulated components and returns the immutable
// ProvenTransaction. Validation fails fast on the first violated rule:
// disclosed note ids must name produced notes, note collections must be
// duplicate-free and within capacity, an off-chain account must not
// disclose state, and an on-chain account must disclose a full snapshot
// when new or a delta when pre-existing
func (b *ProvenTransactionBuilder) Build() (*ProvenTransaction, error) {
	var unknownIds []note.NoteId
	for id := range maps.Keys(b.outputNoteDetails) {
		if !slices.ContainsFunc(
			b.outputNotes,
			func(envelope note.NoteEnvelope) bool { return envelope.Id == id },
		) {
			unknownIds = append(unknownIds, id)
		}
	}
	if len(unknownIds) > 0 {
		slices.SortFunc(
			unknownIds,
			func(a, b note.NoteId) int { return bytes.Compare(a[:], b[:]) },
		)
		return nil, NoteDetailsForUnknownNotesError{Ids: unknownIds}
	}

	inputNotes, err := NewInputNotes(b.inputNotes)
	if err != nil {
		return nil, err
	}
	outputNotes, err := NewOutputNotes(b.outputNotes)
	if err != nil {
		return nil, err
	}

	if !b.accountId.IsOnChain() && b.accountDetails != nil {
		return nil, OffChainAccountWithDetailsError{AccountId: b.accountId}
	}
	if b.accountId.IsOnChain() {
		if b.accountDetails == nil {
			return nil, OnChainAccountMissingDetailsError{
				AccountId: b.accountId,
			}
		}
		isNewAccount := b.initialAccountHash == nil
		switch details := b.accountDetails.(type) {
		case *FullAccountDetails:
			if !isNewAccount {
				return nil, ExistingAccountRequiresDeltaDetailsError{
					AccountId: b.accountId,
				}
			}
			if details.Account.Id != b.accountId {
				return nil, AccountIdMismatchError{
					TxAccountId:      b.accountId,
					DetailsAccountId: details.Account.Id,
				}
			}
			if details.Account.Hash() != b.finalAccountHash {
				return nil, FinalHashMismatchError{
					TxFinalHash: b.finalAccountHash,
					AccountHash: details.Account.Hash(),
				}
			}
		case *DeltaAccountDetails:
			if isNewAccount {
				return nil, NewAccountRequiresFullDetailsError{
					AccountId: b.accountId,
				}
			}
			// The delta's validity against the prior account state is
			// attested by the proof
		default:
			return nil, fmt.Errorf(
				"unsupported account details type: %T",
				b.accountDetails,
			)
		}
	}

	id, err := NewTransactionId(
		b.initialAccountHash,
		b.finalAccountHash,
		inputNotes.Commitment(),
		outputNotes.Commitment(),
	)
	if err != nil {
		return nil, err
	}

	return &ProvenTransaction{
		id:                 id,
		accountId:          b.accountId,
		initialAccountHash: b.initialAccountHash,
		finalAccountHash:   b.finalAccountHash,
		accountDetails:     b.accountDetails,
		inputNotes:         inputNotes,
		outputNotes:        outputNotes,
		outputNoteDetails:  maps.Clone(b.outputNoteDetails),
		txScriptRoot:       b.txScriptRoot,
		blockRef:           b.blockRef,
		proof:              b.proof,
	}, nil
}

// outputNoteDetailPair is the wire shape of one disclosed output note
type outputNoteDetailPair struct {
	cbor.StructAsArray
	Id   note.NoteId
	Note note.Note
}

// provenTransactionWire is the CBOR wire shape of a ProvenTransaction.
// Field order is fixed and significant
type provenTransactionWire struct {
	cbor.StructAsArray
	AccountId          uint64
	InitialAccountHash *crypto.Digest
	FinalAccountHash   crypto.Digest
	AccountDetails     *AccountDetailsWrapper
	InputNotes         InputNotes[note.Nullifier]
	OutputNotes        OutputNotes[note.NoteEnvelope]
	OutputNoteDetails  []outputNoteDetailPair
	TxScriptRoot       *crypto.Digest
	BlockRef           crypto.Digest
	Proof              ExecutionProof
}

func (t *ProvenTransaction) MarshalCBOR() ([]byte, error) {
	var detailsWrapper *AccountDetailsWrapper
	if t.accountDetails != nil {
		detailsWrapper = &AccountDetailsWrapper{
			Type:    t.accountDetails.Type(),
			Details: t.accountDetails,
		}
	}
	// Disclosed notes travel sorted by id for a deterministic encoding
	detailIds := slices.SortedFunc(
		maps.Keys(t.outputNoteDetails),
		func(a, b note.NoteId) int { return bytes.Compare(a[:], b[:]) },
	)
	detailPairs := make([]outputNoteDetailPair, 0, len(detailIds))
	for _, id := range detailIds {
		detailPairs = append(detailPairs, outputNoteDetailPair{
			Id:   id,
			Note: t.outputNoteDetails[id],
		})
	}
	return cbor.Encode(provenTransactionWire{
		AccountId:          uint64(t.accountId),
		InitialAccountHash: t.initialAccountHash,
		FinalAccountHash:   t.finalAccountHash,
		AccountDetails:     detailsWrapper,
		InputNotes:         t.inputNotes,
		OutputNotes:        t.outputNotes,
		OutputNoteDetails:  detailPairs,
		TxScriptRoot:       t.txScriptRoot,
		BlockRef:           t.blockRef,
		Proof:              t.proof,
	})
}

func (t *ProvenTransaction) UnmarshalCBOR(data []byte) error {
	var tmp provenTransactionWire
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	accountId, err := account.NewAccountId(tmp.AccountId)
	if err != nil {
		return err
	}
	// Rebuild through the builder so decoding re-runs the full validation
	// sequence and recomputes the transaction id rather than trusting the
	// bytes
	builder := NewProvenTransactionBuilder(
		accountId,
		tmp.InitialAccountHash,
		tmp.FinalAccountHash,
		tmp.BlockRef,
		tmp.Proof,
	)
	builder.AddInputNotes(tmp.InputNotes.Notes()...)
	builder.AddOutputNotes(tmp.OutputNotes.Notes()...)
	for _, pair := range tmp.OutputNoteDetails {
		// The note's id was re-derived during its own decode
		if pair.Note.Id() != pair.Id {
			return fmt.Errorf(
				"output note details id %s does not match note content",
				pair.Id,
			)
		}
		builder.AddOutputNoteDetails(pair.Note)
	}
	if tmp.AccountDetails != nil {
		builder.WithAccountDetails(tmp.AccountDetails.Details)
	}
	if tmp.TxScriptRoot != nil {
		builder.WithTxScriptRoot(*tmp.TxScriptRoot)
	}
	tmpTx, err := builder.Build()
	if err != nil {
		return err
	}
	*t = *tmpTx
	return nil
}
