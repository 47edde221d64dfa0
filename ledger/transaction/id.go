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
	"encoding/hex"

	"github.com/blinklabs-io/nocturne/crypto"
)

// TransactionId is the unique identifier of a transaction, computed as a
// single hash over the initial account hash (or the zero sentinel for new
// accounts), the final account hash, and the input and output note
// commitments.
//
// Two transactions are identical if and only if they have the same id, and
// the id is computable from public transaction data alone. The same
// derivation applies to an executed transaction and to the proven
// transaction built from it, which is what links a prover's output back to
// the execution that produced it
type TransactionId crypto.Digest

// NewTransactionId derives a transaction id. A nil initialAccountHash
// means the transaction created its account; the all-zero digest is the
// wire-level stand-in for that case and is therefore rejected as an actual
// initial hash
func NewTransactionId(
	initialAccountHash *crypto.Digest,
	finalAccountHash crypto.Digest,
	inputNotesCommitment crypto.Digest,
	outputNotesCommitment crypto.Digest,
) (TransactionId, error) {
	initialWord := crypto.ZeroWord
	if initialAccountHash != nil {
		if initialAccountHash.IsZero() {
			return TransactionId{}, ErrZeroInitialAccountHash
		}
		initialWord = initialAccountHash.Word()
	}
	return TransactionId(
		crypto.HashWords(
			initialWord,
			finalAccountHash.Word(),
			inputNotesCommitment.Word(),
			outputNotesCommitment.Word(),
		),
	), nil
}

func (t TransactionId) String() string {
	return hex.EncodeToString(t[:])
}

func (t TransactionId) Bytes() []byte {
	return t[:]
}

func (t TransactionId) Bech32() string {
	return crypto.Digest(t).Bech32("tx")
}

// Word returns the id as a word of field elements
func (t TransactionId) Word() crypto.Word {
	return crypto.Digest(t).Word()
}

func (t TransactionId) MarshalCBOR() ([]byte, error) {
	return crypto.Digest(t).MarshalCBOR()
}

func (t *TransactionId) UnmarshalCBOR(data []byte) error {
	return (*crypto.Digest)(t).UnmarshalCBOR(data)
}
