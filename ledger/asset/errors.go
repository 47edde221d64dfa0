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
	"errors"
	"fmt"

	"github.com/blinklabs-io/nocturne/ledger/account"
)

// ErrEmptyAssetList indicates a note asset container built from no assets
var ErrEmptyAssetList = errors.New("asset list is empty")

// TooManyAssetsError indicates a note asset container over its capacity
type TooManyAssetsError struct {
	Count int
}

func (e TooManyAssetsError) Error() string {
	return fmt.Sprintf(
		"asset list contains %d assets, maximum is %d",
		e.Count,
		MaxAssetsPerNote,
	)
}

// DuplicateAssetError indicates two entries representing the same asset
type DuplicateAssetError struct {
	Asset Asset
}

func (e DuplicateAssetError) Error() string {
	switch tmpAsset := e.Asset.(type) {
	case FungibleAsset:
		return fmt.Sprintf(
			"duplicate fungible asset from faucet %s",
			tmpAsset.FaucetId,
		)
	case NonFungibleAsset:
		return fmt.Sprintf(
			"duplicate non-fungible asset from faucet %s",
			tmpAsset.FaucetId(),
		)
	default:
		return "duplicate asset"
	}
}

// NotAFaucetError indicates an asset built against a non-faucet account id
type NotAFaucetError struct {
	Id           account.AccountId
	ExpectedType int
}

func (e NotAFaucetError) Error() string {
	return fmt.Sprintf(
		"account %s is not a faucet of the required type",
		e.Id,
	)
}

// AmountTooLargeError indicates a fungible amount above the field-imposed cap
type AmountTooLargeError struct {
	Amount uint64
}

func (e AmountTooLargeError) Error() string {
	return fmt.Sprintf(
		"fungible asset amount %d exceeds maximum %d",
		e.Amount,
		MaxFungibleAmount,
	)
}

// InvalidAssetWordError indicates a word that encodes neither asset variant
type InvalidAssetWordError struct {
	Word [4]uint64
}

func (e InvalidAssetWordError) Error() string {
	return fmt.Sprintf("word %v does not encode a valid asset", e.Word)
}
