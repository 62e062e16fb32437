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

package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromHex(t *testing.T, s string) Digest {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSha256Hasher(t *testing.T) {
	hasher := NewSha256Hasher()

	assert.Equal(t, uint16(256), hasher.Len())
	assert.Equal(t,
		fromHex(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		hasher.Do(),
		"The digest of no input should match the well-known SHA256 empty digest")
	assert.Equal(t,
		fromHex(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"),
		hasher.Do([]byte("abc")),
		"The digest should match the well-known SHA256 test vector")
}

func TestBlake2bHasher(t *testing.T) {
	hasher := NewBlake2bHasher()

	assert.Equal(t, uint16(256), hasher.Len())
	assert.Equal(t,
		fromHex(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"),
		hasher.Do(),
		"The digest of no input should match the well-known BLAKE2b-256 empty digest")
}

func TestDoConcatenatesInput(t *testing.T) {
	testCases := []struct {
		hasher Hasher
	}{
		{NewSha256Hasher()},
		{NewBlake2bHasher()},
		{NewXorHasher()},
	}

	for i, c := range testCases {
		split := c.hasher.Do([]byte("ab"), []byte("c"))
		joined := c.hasher.Do([]byte("abc"))
		assert.Equalf(t, joined, split, "Do should behave as plain concatenation for test case %d", i)
	}
}

func TestXorHasher(t *testing.T) {
	hasher := NewXorHasher()

	assert.Equal(t, uint16(8), hasher.Len())
	assert.Equal(t, Digest{0x07}, hasher.Do([]byte{0x01, 0x02}, []byte{0x04}))
	assert.Equal(t, Digest{0x00}, hasher.Do())
}
