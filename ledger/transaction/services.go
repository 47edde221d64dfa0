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
	"context"

	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
	"github.com/blinklabs-io/nocturne/ledger/note"
)

// ScriptCompiler turns note script source into a hash-addressed executable
// script handle. Compilation is owned by the external assembler
type ScriptCompiler interface {
	CompileNoteScript(ctx context.Context, source []byte) (note.NoteScript, error)
}

// Prover generates a proof for an executed transaction. Proving is a
// potentially long-running synchronous operation; its timeout and
// cancellation policy belongs to the caller via ctx
type Prover interface {
	Prove(ctx context.Context, tx *ExecutedTransaction) (*ProvenTransaction, error)
}

// Verifier checks a proven transaction's proof against its public inputs
type Verifier interface {
	Verify(ctx context.Context, tx *ProvenTransaction) error
}

// TransactionInputs is the data a transaction needs before execution: the
// account's current state, the reference block, and the concrete notes to
// consume
type TransactionInputs struct {
	Account  account.Account
	BlockRef crypto.Digest
	BlockNum uint32
	Notes    []note.Note
}

// DataStore resolves the inputs for executing a transaction against an
// account at a given block
type DataStore interface {
	TransactionInputs(
		ctx context.Context,
		accountId account.AccountId,
		blockNum uint32,
		noteIds []note.NoteId,
	) (*TransactionInputs, error)
}
