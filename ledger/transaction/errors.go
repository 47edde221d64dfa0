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
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/note"
)

// ErrZeroInitialAccountHash indicates an initial account hash equal to the
// all-zero sentinel, which is reserved for "no prior account state"
var ErrZeroInitialAccountHash = errors.New(
	"initial account hash must not be the zero sentinel",
)

// DuplicateInputNoteError indicates a note consumed twice by one transaction
type DuplicateInputNoteError struct {
	Nullifier note.Nullifier
}

func (e DuplicateInputNoteError) Error() string {
	return fmt.Sprintf("duplicate input note with nullifier %s", e.Nullifier)
}

// TooManyInputNotesError indicates an input note collection over capacity
type TooManyInputNotesError struct {
	Count int
}

func (e TooManyInputNotesError) Error() string {
	return fmt.Sprintf(
		"transaction consumes %d notes, maximum is %d",
		e.Count,
		MaxInputNotesPerTx,
	)
}

// DuplicateOutputNoteError indicates a note produced twice by one
// transaction
type DuplicateOutputNoteError struct {
	Id note.NoteId
}

func (e DuplicateOutputNoteError) Error() string {
	return fmt.Sprintf("duplicate output note with id %s", e.Id)
}

// TooManyOutputNotesError indicates an output note collection over capacity
type TooManyOutputNotesError struct {
	Count int
}

func (e TooManyOutputNotesError) Error() string {
	return fmt.Sprintf(
		"transaction produces %d notes, maximum is %d",
		e.Count,
		MaxOutputNotesPerTx,
	)
}

// NoteDetailsForUnknownNotesError indicates disclosed output note details
// whose ids are absent from the transaction's output note set
type NoteDetailsForUnknownNotesError struct {
	Ids []note.NoteId
}

func (e NoteDetailsForUnknownNotesError) Error() string {
	tmpIds := make([]string, len(e.Ids))
	for i, id := range e.Ids {
		tmpIds[i] = id.String()
	}
	return fmt.Sprintf(
		"note details for unknown notes: %s",
		strings.Join(tmpIds, ", "),
	)
}

// OffChainAccountWithDetailsError indicates account details attached to an
// off-chain account, whose state is never published
type OffChainAccountWithDetailsError struct {
	AccountId account.AccountId
}

func (e OffChainAccountWithDetailsError) Error() string {
	return fmt.Sprintf(
		"off-chain account %s must not carry account details",
		e.AccountId,
	)
}

// OnChainAccountMissingDetailsError indicates an on-chain account without
// the required state disclosure
type OnChainAccountMissingDetailsError struct {
	AccountId account.AccountId
}

func (e OnChainAccountMissingDetailsError) Error() string {
	return fmt.Sprintf(
		"on-chain account %s is missing account details",
		e.AccountId,
	)
}

// NewAccountRequiresFullDetailsError indicates a newly created on-chain
// account disclosed as a delta instead of a full snapshot
type NewAccountRequiresFullDetailsError struct {
	AccountId account.AccountId
}

func (e NewAccountRequiresFullDetailsError) Error() string {
	return fmt.Sprintf(
		"new on-chain account %s requires full account details",
		e.AccountId,
	)
}

// ExistingAccountRequiresDeltaDetailsError indicates a pre-existing
// on-chain account disclosed as a full snapshot instead of a delta
type ExistingAccountRequiresDeltaDetailsError struct {
	AccountId account.AccountId
}

func (e ExistingAccountRequiresDeltaDetailsError) Error() string {
	return fmt.Sprintf(
		"existing on-chain account %s requires delta account details",
		e.AccountId,
	)
}

// AccountIdMismatchError indicates disclosed full details for a different
// account than the transaction's
type AccountIdMismatchError struct {
	TxAccountId      account.AccountId
	DetailsAccountId account.AccountId
}

func (e AccountIdMismatchError) Error() string {
	return fmt.Sprintf(
		"account details id %s does not match transaction account %s",
		e.DetailsAccountId,
		e.TxAccountId,
	)
}

// FinalHashMismatchError indicates disclosed full details whose state hash
// does not match the transaction's final account hash
type FinalHashMismatchError struct {
	TxFinalHash crypto.Digest
	AccountHash crypto.Digest
}

func (e FinalHashMismatchError) Error() string {
	return fmt.Sprintf(
		"account details hash %s does not match final account hash %s",
		e.AccountHash,
		e.TxFinalHash,
	)
}
