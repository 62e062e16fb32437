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

// Package merbinner computes a single collision-resistant digest that
// commits to a whole set of fixed-width key/value pairs. The digest
// depends only on the set, never on the order the items were supplied
// in: items are sorted by key and folded through a binary radix tree
// whose shape is a function of the key bits alone.
package merbinner

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bbva/merbinner/hashing"
	"github.com/bbva/merbinner/log"
	"github.com/bbva/merbinner/util"
)

var (
	// ErrDuplicateKey is returned when two items share a key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyWidth is returned when a key is not exactly as wide as the
	// tree's digest.
	ErrKeyWidth = errors.New("key width mismatch")

	// ErrValueWidth is returned when a value is not exactly as wide as
	// the tree's digest.
	ErrValueWidth = errors.New("value width mismatch")
)

// Tree computes set commitments with a fixed hashing algorithm. It
// holds no state between calls beyond the hasher itself.
type Tree struct {
	hasher   hashing.Hasher
	itemSize int

	emptyHash hashing.Digest
	leafHash  LeafHasher
	innerHash InnerHasher

	sync.Mutex
}

// NewTree returns a Tree that hashes with the hasher built by hasherF.
// Keys and values must be hasher.Len()/8 bytes wide.
func NewTree(hasherF func() hashing.Hasher) *Tree {
	hasher := hasherF()
	return &Tree{
		hasher:    hasher,
		itemSize:  int(hasher.Len() / 8),
		emptyHash: EmptyHasherF(hasher)(),
		leafHash:  LeafHasherF(hasher),
		innerHash: InnerHasherF(hasher),
	}
}

// Commit returns the digest committing to the given set of items. The
// result is deterministic and independent of the order of items. The
// caller's slice is never reordered or otherwise mutated.
func (t *Tree) Commit(items []Item) (hashing.Digest, error) {
	t.Lock()
	defer t.Unlock()

	start := time.Now()

	if err := t.validate(items); err != nil {
		CommitErrorsTotal.Inc()
		return nil, err
	}

	sorted := sortByKey(items)
	if key, ok := findDuplicate(sorted); ok {
		CommitErrorsTotal.Inc()
		return nil, fmt.Errorf("%w: %x", ErrDuplicateKey, key)
	}

	digest := t.hashRange(sorted, 0)

	CommitTotal.Inc()
	CommittedItemsTotal.Add(float64(len(items)))
	CommitDurationSeconds.Observe(time.Since(start).Seconds())
	log.Debugf("Committed %d items with root %x", len(items), digest)

	return digest, nil
}

func (t *Tree) validate(items []Item) error {
	for i, item := range items {
		if len(item.Key) != t.itemSize {
			return fmt.Errorf("%w: item %d has %d-byte key, want %d", ErrKeyWidth, i, len(item.Key), t.itemSize)
		}
		if len(item.Value) != t.itemSize {
			return fmt.Errorf("%w: item %d has %d-byte value, want %d", ErrValueWidth, i, len(item.Value), t.itemSize)
		}
	}
	return nil
}

// hashRange folds a span of the sorted sequence into a digest. Every
// key in items agrees on its first depth bits, so bit depth changes
// from 0 to 1 at a single boundary: keys with the bit clear go left,
// keys with it set go right. Keys are distinct and of fixed width,
// which bounds depth below the digest width in bits.
func (t *Tree) hashRange(items []Item, depth uint16) hashing.Digest {
	switch len(items) {
	case 0:
		return t.emptyHash
	case 1:
		return t.leafHash(items[0].Key, items[0].Value)
	}

	boundary := sort.Search(len(items), func(i int) bool {
		return util.BitIsSet(items[i].Key, depth)
	})

	left := t.hashRange(items[:boundary], depth+1)
	right := t.hashRange(items[boundary:], depth+1)

	return t.innerHash(left, right)
}
