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

package account

import (
	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
)

// Account is a full snapshot of an account's state. It is published for
// newly created on-chain accounts so the network can bootstrap replication
type Account struct {
	cbor.StructAsArray
	Id          AccountId
	Nonce       uint64
	VaultRoot   crypto.Digest
	StorageRoot crypto.Digest
	CodeRoot    crypto.Digest
}

// NewAccount returns an Account snapshot for the provided state roots
func NewAccount(
	id AccountId,
	nonce uint64,
	vaultRoot crypto.Digest,
	storageRoot crypto.Digest,
	codeRoot crypto.Digest,
) (Account, error) {
	if nonce >= crypto.FeltModulus {
		return Account{}, NonceNotFieldElementError{Nonce: nonce}
	}
	return Account{
		Id:          id,
		Nonce:       nonce,
		VaultRoot:   vaultRoot,
		StorageRoot: storageRoot,
		CodeRoot:    codeRoot,
	}, nil
}

// Hash computes the account state commitment as a single hash over
// [id, nonce, 0, 0], the vault root, the storage root, and the code root
func (a Account) Hash() crypto.Digest {
	idWord := crypto.Word{
		a.Id.Felt(),
		crypto.NewFelt(a.Nonce),
	}
	return crypto.HashWords(
		idWord,
		a.VaultRoot.Word(),
		a.StorageRoot.Word(),
		a.CodeRoot.Word(),
	)
}

// IsNew returns true if the account has not yet executed a transaction
func (a Account) IsNew() bool {
	return a.Nonce == 0
}
