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

package asset

import (
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
)

const (
	AssetTypeFungible    = 0
	AssetTypeNonFungible = 1
)

// MaxFungibleAmount is the maximum amount of a fungible asset
const MaxFungibleAmount = uint64(1)<<63 - 1

// Asset is a single note asset, either an amount of a fungible faucet's
// token or a unique non-fungible token. Every asset has a fixed-width
// four-element word representation
type Asset interface {
	isAsset()
	Type() int
	Word() crypto.Word
	// IsSame returns true if the other asset represents the same fungible
	// faucet or the same non-fungible token
	IsSame(Asset) bool
}

// FungibleAsset is an amount of tokens issued by a fungible faucet. Its
// word representation is [amount, 0, 0, faucet_id]
type FungibleAsset struct {
	FaucetId account.AccountId
	Amount   uint64
}

// NewFungibleAsset returns a FungibleAsset for the provided faucet and
// amount
func NewFungibleAsset(
	faucetId account.AccountId,
	amount uint64,
) (FungibleAsset, error) {
	if faucetId.AccountType() != account.AccountTypeFungibleFaucet {
		return FungibleAsset{}, NotAFaucetError{
			Id:           faucetId,
			ExpectedType: account.AccountTypeFungibleFaucet,
		}
	}
	if amount > MaxFungibleAmount {
		return FungibleAsset{}, AmountTooLargeError{Amount: amount}
	}
	return FungibleAsset{FaucetId: faucetId, Amount: amount}, nil
}

func (FungibleAsset) isAsset() {}

func (FungibleAsset) Type() int {
	return AssetTypeFungible
}

func (a FungibleAsset) Word() crypto.Word {
	return crypto.Word{
		crypto.NewFelt(a.Amount),
		{},
		{},
		a.FaucetId.Felt(),
	}
}

func (a FungibleAsset) IsSame(other Asset) bool {
	tmpOther, ok := other.(FungibleAsset)
	if !ok {
		return false
	}
	return a.FaucetId == tmpOther.FaucetId
}

// NonFungibleAsset is a unique token. Its word representation carries the
// issuing faucet's id at element 1; the remaining elements commit to the
// token's data
type NonFungibleAsset crypto.Word

// NewNonFungibleAsset returns a NonFungibleAsset for the provided word
func NewNonFungibleAsset(word crypto.Word) (NonFungibleAsset, error) {
	faucetId := account.AccountIdFromFelt(word[1])
	if faucetId.AccountType() != account.AccountTypeNonFungibleFaucet {
		return NonFungibleAsset{}, NotAFaucetError{
			Id:           faucetId,
			ExpectedType: account.AccountTypeNonFungibleFaucet,
		}
	}
	return NonFungibleAsset(word), nil
}

// BuildNonFungibleAsset returns a NonFungibleAsset committing to the
// provided token data under the provided faucet
func BuildNonFungibleAsset(
	faucetId account.AccountId,
	tokenData []byte,
) (NonFungibleAsset, error) {
	dataElements := make([]crypto.Felt, 0, len(tokenData))
	for _, dataByte := range tokenData {
		dataElements = append(dataElements, crypto.NewFelt(uint64(dataByte)))
	}
	word := crypto.HashElements(dataElements).Word()
	word[1] = faucetId.Felt()
	return NewNonFungibleAsset(word)
}

func (NonFungibleAsset) isAsset() {}

func (NonFungibleAsset) Type() int {
	return AssetTypeNonFungible
}

func (a NonFungibleAsset) Word() crypto.Word {
	return crypto.Word(a)
}

// FaucetId returns the id of the faucet that issued the token
func (a NonFungibleAsset) FaucetId() account.AccountId {
	return account.AccountIdFromFelt(a[1])
}

func (a NonFungibleAsset) IsSame(other Asset) bool {
	tmpOther, ok := other.(NonFungibleAsset)
	if !ok {
		return false
	}
	return crypto.Word(a) == crypto.Word(tmpOther)
}

// AssetFromWord reconstructs an asset from its word representation,
// re-running construction-time validation
func AssetFromWord(word crypto.Word) (Asset, error) {
	// The faucet id position distinguishes the two variants: fungible
	// assets carry a fungible-faucet id at element 3, non-fungible assets
	// carry a non-fungible-faucet id at element 1
	fungibleFaucet := account.AccountIdFromFelt(word[3])
	if fungibleFaucet.AccountType() == account.AccountTypeFungibleFaucet {
		if !word[1].IsZero() || !word[2].IsZero() {
			return nil, InvalidAssetWordError{Word: crypto.WordUint64s(word)}
		}
		return NewFungibleAsset(fungibleFaucet, crypto.FeltUint64(word[0]))
	}
	nonFungibleFaucet := account.AccountIdFromFelt(word[1])
	if nonFungibleFaucet.AccountType() == account.AccountTypeNonFungibleFaucet {
		return NewNonFungibleAsset(word)
	}
	return nil, InvalidAssetWordError{Word: crypto.WordUint64s(word)}
}
