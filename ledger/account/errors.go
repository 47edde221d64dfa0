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

import "fmt"

// AccountIdNotFieldElementError indicates an account id outside of the field
type AccountIdNotFieldElementError struct {
	Id uint64
}

func (e AccountIdNotFieldElementError) Error() string {
	return fmt.Sprintf(
		"account id 0x%016x is not a valid field element",
		e.Id,
	)
}

// NonceNotFieldElementError indicates an account nonce outside of the field
type NonceNotFieldElementError struct {
	Nonce uint64
}

func (e NonceNotFieldElementError) Error() string {
	return fmt.Sprintf("account nonce %d is not a valid field element", e.Nonce)
}
