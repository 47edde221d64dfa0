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

package note

import (
	"encoding/hex"

	"github.com/blinklabs-io/nocturne/crypto"
)

// Nullifier is derived from a consumed note's serial number, script,
// inputs, and assets. Once published it proves the note was spent and
// prevents double consumption
type Nullifier crypto.Digest

func (n Nullifier) String() string {
	return hex.EncodeToString(n[:])
}

func (n Nullifier) Bytes() []byte {
	return n[:]
}

// Word returns the nullifier as a word of field elements
func (n Nullifier) Word() crypto.Word {
	return crypto.Digest(n).Word()
}

// Nullifier returns the nullifier itself, so a bare nullifier can stand in
// for a consumed note in transaction input collections
func (n Nullifier) Nullifier() Nullifier {
	return n
}

func (n Nullifier) MarshalCBOR() ([]byte, error) {
	return crypto.Digest(n).MarshalCBOR()
}

func (n *Nullifier) UnmarshalCBOR(data []byte) error {
	return (*crypto.Digest)(n).UnmarshalCBOR(data)
}
