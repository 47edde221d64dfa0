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
	"bytes"

	"github.com/blinklabs-io/gouroboros/cbor"
)

// ExecutionProof is an opaque STARK proof attesting to the correct
// execution of a transaction. It is produced and verified by the external
// proof system; this layer only carries it
type ExecutionProof struct {
	cbor.StructAsArray
	SecurityLevel uint32
	Proof         []byte
}

func NewExecutionProof(securityLevel uint32, proof []byte) ExecutionProof {
	return ExecutionProof{
		SecurityLevel: securityLevel,
		Proof:         proof,
	}
}

func (p ExecutionProof) Equal(other ExecutionProof) bool {
	return p.SecurityLevel == other.SecurityLevel &&
		bytes.Equal(p.Proof, other.Proof)
}
