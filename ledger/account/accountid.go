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
	"fmt"

	"github.com/blinklabs-io/nocturne/crypto"
)

const (
	AccountTypeRegularUpdatable  = 0
	AccountTypeRegularImmutable  = 1
	AccountTypeFungibleFaucet    = 2
	AccountTypeNonFungibleFaucet = 3
)

const (
	// The two most significant bits of an account id encode the account
	// type, the next bit encodes the storage mode (1 = on-chain)
	accountTypeShift    = 62
	accountStorageShift = 61
	accountStorageMask  = uint64(1) << accountStorageShift
)

// AccountId is a 64-bit account identifier. It must be a valid field
// element; its most significant bits encode the account type and whether
// the account's state is tracked on-chain
type AccountId uint64

// NewAccountId returns an AccountId for the provided value
func NewAccountId(id uint64) (AccountId, error) {
	if id >= crypto.FeltModulus {
		return 0, AccountIdNotFieldElementError{Id: id}
	}
	return AccountId(id), nil
}

// AccountIdFromFelt returns the AccountId encoded by the provided field
// element
func AccountIdFromFelt(f crypto.Felt) AccountId {
	return AccountId(crypto.FeltUint64(f))
}

// AccountType returns the type bits of the account id
func (a AccountId) AccountType() int {
	return int(uint64(a) >> accountTypeShift)
}

// IsOnChain returns true if the account's state is publicly tracked by the
// ledger
func (a AccountId) IsOnChain() bool {
	return uint64(a)&accountStorageMask != 0
}

// IsFaucet returns true for fungible and non-fungible faucet accounts
func (a AccountId) IsFaucet() bool {
	accountType := a.AccountType()
	return accountType == AccountTypeFungibleFaucet ||
		accountType == AccountTypeNonFungibleFaucet
}

// IsRegularAccount returns true for non-faucet accounts
func (a AccountId) IsRegularAccount() bool {
	return !a.IsFaucet()
}

// Felt returns the account id as a field element
func (a AccountId) Felt() crypto.Felt {
	return crypto.NewFelt(uint64(a))
}

func (a AccountId) String() string {
	return fmt.Sprintf("0x%016x", uint64(a))
}
