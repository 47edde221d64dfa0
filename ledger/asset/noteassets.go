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
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/nocturne/crypto"
)

// MaxAssetsPerNote is the maximum number of assets carried by a single note
const MaxAssetsPerNote = 255

// NoteAssets is the asset container of a note: an ordered, duplicate-free
// sequence of 1 to 255 assets reducible to a single commitment.
//
// The commitment is order-sensitive: permuting the same assets yields a
// different commitment. Callers that need a canonical identity across
// independently built notes must order the assets before construction
type NoteAssets struct {
	assets     []Asset
	commitment crypto.Digest
}

// NewNoteAssets returns a NoteAssets container for the provided assets
func NewNoteAssets(assets []Asset) (NoteAssets, error) {
	if len(assets) == 0 {
		return NoteAssets{}, ErrEmptyAssetList
	}
	if len(assets) > MaxAssetsPerNote {
		return NoteAssets{}, TooManyAssetsError{Count: len(assets)}
	}
	for i, tmpAsset := range assets {
		if slices.ContainsFunc(
			assets[i+1:],
			func(other Asset) bool { return other.IsSame(tmpAsset) },
		) {
			return NoteAssets{}, DuplicateAssetError{Asset: tmpAsset}
		}
	}
	// The commitment is a pure function of immutable content, so we compute
	// it eagerly and the container is safe for concurrent readers
	return NoteAssets{
		assets:     slices.Clone(assets),
		commitment: crypto.HashElements(paddedElements(assets)),
	}, nil
}

// Commitment returns the commitment to the container's assets
func (n NoteAssets) Commitment() crypto.Digest {
	return n.commitment
}

// Num returns the number of assets
func (n NoteAssets) Num() int {
	return len(n.assets)
}

// Assets returns the assets in order
func (n NoteAssets) Assets() []Asset {
	return slices.Clone(n.assets)
}

// PaddedElements returns all assets as field elements, padded with zeros to
// a multiple of 8 elements (the hasher rate). Hashing the returned elements
// yields the asset commitment; the proof system ingests them directly as
// advice inputs
func (n NoteAssets) PaddedElements() []crypto.Felt {
	return paddedElements(n.assets)
}

func paddedElements(assets []Asset) []crypto.Felt {
	wordCount := len(assets)
	// An odd asset count gets exactly one zero pad word so the element
	// count is a multiple of the hasher rate
	if wordCount%2 == 1 {
		wordCount++
	}
	elements := make([]crypto.Felt, 0, wordCount*crypto.WordSize)
	for _, tmpAsset := range assets {
		elements = append(elements, tmpAsset.Word().Elements()...)
	}
	if len(assets)%2 == 1 {
		elements = append(elements, crypto.ZeroWord.Elements()...)
	}
	return elements
}

func (n NoteAssets) MarshalCBOR() ([]byte, error) {
	if len(n.assets) == 0 || len(n.assets) > MaxAssetsPerNote {
		return nil, fmt.Errorf("invalid asset count: %d", len(n.assets))
	}
	// One byte holding (count - 1), then each asset's fixed-width word
	// encoding
	payload := make([]byte, 0, 1+len(n.assets)*crypto.DigestSize)
	payload = append(payload, byte(len(n.assets)-1))
	for _, tmpAsset := range n.assets {
		for _, val := range crypto.WordUint64s(tmpAsset.Word()) {
			payload = binary.LittleEndian.AppendUint64(payload, val)
		}
	}
	return cbor.Encode(payload)
}

func (n *NoteAssets) UnmarshalCBOR(data []byte) error {
	var payload []byte
	if _, err := cbor.Decode(data, &payload); err != nil {
		return err
	}
	if len(payload) < 1 {
		return fmt.Errorf("asset container payload is empty")
	}
	assetCount := int(payload[0]) + 1
	assetBytes := payload[1:]
	if len(assetBytes) != assetCount*crypto.DigestSize {
		return fmt.Errorf(
			"invalid asset container length: expected %d asset bytes, got %d",
			assetCount*crypto.DigestSize,
			len(assetBytes),
		)
	}
	assets := make([]Asset, 0, assetCount)
	for i := 0; i < assetCount; i++ {
		var vals [crypto.WordSize]uint64
		for j := range vals {
			vals[j] = binary.LittleEndian.Uint64(
				assetBytes[i*crypto.DigestSize+j*8:],
			)
		}
		word, err := crypto.WordFromUint64s(vals)
		if err != nil {
			return err
		}
		tmpAsset, err := AssetFromWord(word)
		if err != nil {
			return err
		}
		assets = append(assets, tmpAsset)
	}
	// Re-run construction-time validation rather than trusting the encoded
	// byte counts
	tmpAssets, err := NewNoteAssets(assets)
	if err != nil {
		return err
	}
	*n = tmpAssets
	return nil
}
