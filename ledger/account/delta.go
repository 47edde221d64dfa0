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
)

// StorageSlotUpdate records a new value for a single account storage slot
type StorageSlotUpdate struct {
	cbor.StructAsArray
	Slot  uint8
	Value [4]uint64
}

// AccountDelta is the incremental state change of a pre-existing on-chain
// account: updated storage slots, asset words added to and removed from the
// vault, and the nonce increment. Its validity against the prior account
// state is attested by the transaction proof rather than re-checked by
// consumers of this type
type AccountDelta struct {
	cbor.StructAsArray
	StorageSlots   []StorageSlotUpdate
	AddedAssets    [][4]uint64
	RemovedAssets  [][4]uint64
	NonceIncrement uint64
}

// IsEmpty returns true if the delta carries no state change
func (d AccountDelta) IsEmpty() bool {
	return len(d.StorageSlots) == 0 &&
		len(d.AddedAssets) == 0 &&
		len(d.RemovedAssets) == 0 &&
		d.NonceIncrement == 0
}
