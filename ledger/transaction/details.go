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
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
	"github.com/blinklabs-io/nocturne/ledger/account"
)

const (
	AccountDetailsTypeFull  = 0
	AccountDetailsTypeDelta = 1
)

// AccountDetails is the state disclosure attached to an on-chain account's
// transaction: the full snapshot for a newly created account, or the delta
// for a pre-existing one. Off-chain accounts never publish either
type AccountDetails interface {
	isAccountDetails()
	Type() uint
}

// FullAccountDetails carries the whole account state, required when the
// account was created by the transaction so the network can bootstrap
// replication
type FullAccountDetails struct {
	cbor.StructAsArray
	DetailsType uint
	Account     account.Account
}

func NewFullAccountDetails(acct account.Account) *FullAccountDetails {
	return &FullAccountDetails{
		DetailsType: AccountDetailsTypeFull,
		Account:     acct,
	}
}

func (FullAccountDetails) isAccountDetails() {}

func (d FullAccountDetails) Type() uint {
	return d.DetailsType
}

// DeltaAccountDetails carries the incremental state change of a
// pre-existing account, bounding the disclosure to what the transaction
// touched
type DeltaAccountDetails struct {
	cbor.StructAsArray
	DetailsType uint
	Delta       account.AccountDelta
}

func NewDeltaAccountDetails(delta account.AccountDelta) *DeltaAccountDetails {
	return &DeltaAccountDetails{
		DetailsType: AccountDetailsTypeDelta,
		Delta:       delta,
	}
}

func (DeltaAccountDetails) isAccountDetails() {}

func (d DeltaAccountDetails) Type() uint {
	return d.DetailsType
}

// AccountDetailsWrapper wraps the concrete details variant for CBOR
// encoding with a numeric discriminant
type AccountDetailsWrapper struct {
	Type    uint
	Details AccountDetails
}

func (w *AccountDetailsWrapper) UnmarshalCBOR(data []byte) error {
	// Determine details type
	detailsType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	switch detailsType {
	case AccountDetailsTypeFull:
		var tmpDetails FullAccountDetails
		if _, err := cbor.Decode(data, &tmpDetails); err != nil {
			return err
		}
		// Re-validate field membership of decoded account values
		if _, err := account.NewAccountId(uint64(tmpDetails.Account.Id)); err != nil {
			return err
		}
		if tmpDetails.Account.Nonce >= crypto.FeltModulus {
			return fmt.Errorf(
				"account nonce %d is not a valid field element",
				tmpDetails.Account.Nonce,
			)
		}
		w.Details = &tmpDetails
	case AccountDetailsTypeDelta:
		var tmpDetails DeltaAccountDetails
		if _, err := cbor.Decode(data, &tmpDetails); err != nil {
			return err
		}
		// Re-validate field membership of decoded delta values
		if tmpDetails.Delta.NonceIncrement >= crypto.FeltModulus {
			return fmt.Errorf(
				"delta nonce increment %d is not a valid field element",
				tmpDetails.Delta.NonceIncrement,
			)
		}
		for _, slot := range tmpDetails.Delta.StorageSlots {
			if _, err := crypto.WordFromUint64s(slot.Value); err != nil {
				return err
			}
		}
		for _, assetWord := range tmpDetails.Delta.AddedAssets {
			if _, err := crypto.WordFromUint64s(assetWord); err != nil {
				return err
			}
		}
		for _, assetWord := range tmpDetails.Delta.RemovedAssets {
			if _, err := crypto.WordFromUint64s(assetWord); err != nil {
				return err
			}
		}
		w.Details = &tmpDetails
	default:
		return fmt.Errorf("unknown account details type: %d", detailsType)
	}
	w.Type = uint(detailsType) // #nosec G115
	return nil
}

func (w *AccountDetailsWrapper) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(w.Details)
}
