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
	"github.com/bbva/merbinner/hashing"
)

// Node tags. Distinct single bytes keep empty, leaf and inner digests in
// separate domains, so a digest of one kind can never be reinterpreted
// as another.
var (
	emptyTag = []byte{0x00}
	leafTag  = []byte{0x01}
	innerTag = []byte{0x02}
)

type EmptyHasher func() hashing.Digest
type LeafHasher func(key, value []byte) hashing.Digest
type InnerHasher func(left, right hashing.Digest) hashing.Digest

// EmptyHasherF returns the hasher for nodes with no items below them.
func EmptyHasherF(hasher hashing.Hasher) EmptyHasher {
	return func() hashing.Digest {
		return hasher.Do(emptyTag)
	}
}

// LeafHasherF returns the hasher for single-item nodes. It binds both
// key and value, so neither can change without changing the digest.
func LeafHasherF(hasher hashing.Hasher) LeafHasher {
	return func(key, value []byte) hashing.Digest {
		return hasher.Do(leafTag, key, value)
	}
}

// InnerHasherF returns the hasher that combines two subtree digests.
func InnerHasherF(hasher hashing.Hasher) InnerHasher {
	return func(left, right hashing.Digest) hashing.Digest {
		return hasher.Do(innerTag, left, right)
	}
}
