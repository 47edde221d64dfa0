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
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/note"
)

// ExecutedTransaction is the pre-proof counterpart of a proven
// transaction: the full account transition and note content produced by
// executing a transaction, before a proof has been generated for it.
//
// Its id derivation matches ProvenTransaction exactly, which is what lets
// a prover's output be matched back to the execution that produced it
type ExecutedTransaction struct {
	initialAccount *account.Account
	finalAccount   account.Account
	inputNotes     InputNotes[note.Note]
	outputNotes    OutputNotes[note.Note]
	txScriptRoot   *crypto.Digest
	blockRef       crypto.Digest
}

// NewExecutedTransaction returns an executed transaction for the provided
// account transition. A nil initialAccount means the transaction created
// the account
func NewExecutedTransaction(
	initialAccount *account.Account,
	finalAccount account.Account,
	inputNotes InputNotes[note.Note],
	outputNotes OutputNotes[note.Note],
	txScriptRoot *crypto.Digest,
	blockRef crypto.Digest,
) (*ExecutedTransaction, error) {
	if initialAccount != nil && initialAccount.Id != finalAccount.Id {
		return nil, AccountIdMismatchError{
			TxAccountId:      finalAccount.Id,
			DetailsAccountId: initialAccount.Id,
		}
	}
	return &ExecutedTransaction{
		initialAccount: initialAccount,
		finalAccount:   finalAccount,
		inputNotes:     inputNotes,
		outputNotes:    outputNotes,
		txScriptRoot:   txScriptRoot,
		blockRef:       blockRef,
	}, nil
}

// Id derives the transaction id from the executed transaction's public
// data. It equals the id of the proven transaction built from this
// execution
func (t *ExecutedTransaction) Id() (TransactionId, error) {
	var initialHash *crypto.Digest
	if t.initialAccount != nil {
		tmpHash := t.initialAccount.Hash()
		initialHash = &tmpHash
	}
	return NewTransactionId(
		initialHash,
		t.finalAccount.Hash(),
		t.inputNotes.Commitment(),
		t.outputNotes.Commitment(),
	)
}

// AccountId returns the id of the account the transaction was executed
// against
func (t *ExecutedTransaction) AccountId() account.AccountId {
	return t.finalAccount.Id
}

// InitialAccount returns the account state before execution, or nil if
// the transaction created the account
func (t *ExecutedTransaction) InitialAccount() *account.Account {
	return t.initialAccount
}

// FinalAccount returns the account state after execution
func (t *ExecutedTransaction) FinalAccount() account.Account {
	return t.finalAccount
}

// InputNotes returns the full notes consumed by the transaction
func (t *ExecutedTransaction) InputNotes() InputNotes[note.Note] {
	return t.inputNotes
}

// OutputNotes returns the full notes produced by the transaction
func (t *ExecutedTransaction) OutputNotes() OutputNotes[note.Note] {
	return t.outputNotes
}

// TxScriptRoot returns the transaction script root, or nil if no
// transaction script was used
func (t *ExecutedTransaction) TxScriptRoot() *crypto.Digest {
	return t.txScriptRoot
}

// BlockRef returns the hash of the reference block the transaction was
// executed against
func (t *ExecutedTransaction) BlockRef() crypto.Digest {
	return t.blockRef
}
