/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package merbinner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bbva/merbinner/hashing"
)

func TestNodeHashersDomainSeparation(t *testing.T) {
	hasher := hashing.NewSha256Hasher()

	emptyHash := EmptyHasherF(hasher)
	leafHash := LeafHasherF(hasher)
	innerHash := InnerHasherF(hasher)

	key := make([]byte, 32)
	value := make([]byte, 32)

	// a leaf over (key, value) and an inner node over two digests with
	// the same byte content must not collide
	leaf := leafHash(key, value)
	inner := innerHash(key, value)
	empty := emptyHash()

	assert.NotEqual(t, leaf, inner, "Leaf and inner digests over identical payloads should differ")
	assert.NotEqual(t, leaf, empty, "Leaf and empty digests should differ")
	assert.NotEqual(t, inner, empty, "Inner and empty digests should differ")
}

func TestNodeHashersMatchTagConvention(t *testing.T) {
	hasher := hashing.NewSha256Hasher()

	key := []byte{0x0a}
	value := []byte{0x0b}
	left := hashing.Digest{0x0c}
	right := hashing.Digest{0x0d}

	assert.Equal(t, hasher.Do([]byte{0x00}), EmptyHasherF(hasher)())
	assert.Equal(t, hasher.Do([]byte{0x01}, key, value), LeafHasherF(hasher)(key, value))
	assert.Equal(t, hasher.Do([]byte{0x02}, left, right), InnerHasherF(hasher)(left, right))
}
