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
	"fmt"
	"slices"

	"github.com/blinklabs-io/nocturne/crypto"
	"golang.org/x/crypto/blake2b"
)

// NoteScript is a handle to an externally compiled, content-addressed note
// script. The script's program is opaque to this layer; only its root
// identifies it in note commitments
type NoteScript struct {
	root crypto.Digest
	code []byte
}

// NewNoteScript returns a handle to the provided compiled script program
func NewNoteScript(code []byte) NoteScript {
	tmpHash, err := blake2b.New(crypto.DigestSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(code)
	return NoteScript{
		root: crypto.Digest(tmpHash.Sum(nil)),
		code: slices.Clone(code),
	}
}

// Root returns the content-addressed root of the script
func (s NoteScript) Root() crypto.Digest {
	return s.root
}

// Code returns the compiled script program
func (s NoteScript) Code() []byte {
	return slices.Clone(s.code)
}
