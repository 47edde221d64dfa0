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

package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// FeltRng draws random field elements for note serial numbers. A source
// used for note construction must be cryptographically secure and must
// never be reused across constructions: colliding serial numbers break
// note id uniqueness and therefore double-creation detection
type FeltRng interface {
	DrawWord() Word
}

// NewFeltRng returns a FeltRng backed by crypto/rand
func NewFeltRng() FeltRng {
	return &secureFeltRng{}
}

type secureFeltRng struct{}

func (r *secureFeltRng) DrawWord() Word {
	var w Word
	var buf [8]byte
	for i := range w {
		// Rejection-sample into the field to keep draws uniform
		for {
			if _, err := rand.Read(buf[:]); err != nil {
				panic(
					fmt.Sprintf(
						"unexpected error reading from crypto/rand: %s",
						err,
					),
				)
			}
			val := binary.LittleEndian.Uint64(buf[:])
			if val < FeltModulus {
				w[i].SetUint64(val)
				break
			}
		}
	}
	return w
}

// NewSeededFeltRng returns a deterministic FeltRng seeded with the provided
// value. It is NOT cryptographically secure and exists for tests and for
// reproducing note constructions from a known seed
func NewSeededFeltRng(seed uint64) FeltRng {
	return &seededFeltRng{state: seed}
}

type seededFeltRng struct {
	state uint64
}

func (r *seededFeltRng) DrawWord() Word {
	var w Word
	for i := range w {
		for {
			val := r.next()
			if val < FeltModulus {
				w[i].SetUint64(val)
				break
			}
		}
	}
	return w
}

// splitmix64
func (r *seededFeltRng) next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
