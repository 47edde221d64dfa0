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
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

// DigestSize is the size of a commitment digest in bytes
const DigestSize = 32

// Digest is a 32-byte commitment, viewable as a word of four field elements
// (one per little-endian 8-byte chunk)
type Digest [DigestSize]byte

// ZeroDigest is the all-zero digest. On the wire it stands for "no prior
// account state"; it must never be presented as a real account hash
var ZeroDigest = Digest{}

func NewDigest(data []byte) Digest {
	d := Digest{}
	copy(d[:], data)
	return d
}

// DigestFromWord returns the digest whose byte representation encodes the
// provided word
func DigestFromWord(w Word) Digest {
	d := Digest{}
	for i, f := range w {
		binary.LittleEndian.PutUint64(d[i*8:], FeltUint64(f))
	}
	return d
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) Bytes() []byte {
	return d[:]
}

// IsZero returns true if the digest is the all-zero sentinel
func (d Digest) IsZero() bool {
	return d == ZeroDigest
}

// Word returns the digest as a word of four field elements. Each 8-byte
// chunk is reduced into the field
func (d Digest) Word() Word {
	var w Word
	for i := range w {
		w[i] = NewFelt(binary.LittleEndian.Uint64(d[i*8:]))
	}
	return w
}

// Elements returns the digest's field elements as a slice
func (d Digest) Elements() []Felt {
	return d.Word().Elements()
}

func (d Digest) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Digest) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the digest is zero-valued
	digestBytes := make([]byte, DigestSize)
	copy(digestBytes, d[:])
	return cbor.Encode(digestBytes)
}

func (d *Digest) UnmarshalCBOR(data []byte) error {
	var tmpBytes []byte
	if _, err := cbor.Decode(data, &tmpBytes); err != nil {
		return err
	}
	if len(tmpBytes) != DigestSize {
		return fmt.Errorf(
			"invalid digest length: expected %d bytes, got %d",
			DigestSize,
			len(tmpBytes),
		)
	}
	copy(d[:], tmpBytes)
	return nil
}

func (d Digest) Bech32(prefix string) string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(d[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

// HashElements computes a blake2b-256 digest over the canonical 8-byte
// little-endian encoding of each provided element. This is the sequential
// hash underlying all commitments in this module
func HashElements(elements []Felt) Digest {
	tmpHash, err := blake2b.New(DigestSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	var buf [8]byte
	for _, element := range elements {
		binary.LittleEndian.PutUint64(buf[:], FeltUint64(element))
		tmpHash.Write(buf[:])
	}
	return Digest(tmpHash.Sum(nil))
}

// HashWords computes a digest over the concatenated elements of the
// provided words
func HashWords(words ...Word) Digest {
	elements := make([]Felt, 0, len(words)*WordSize)
	for _, word := range words {
		elements = append(elements, word.Elements()...)
	}
	return HashElements(elements)
}

// MergeDigests computes a digest over the concatenated elements of two
// digests
func MergeDigests(a Digest, b Digest) Digest {
	return HashWords(a.Word(), b.Word())
}
