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
	"bytes"
	"sort"
)

// Item is a key/value pair committed to by the tree. Both Key and Value
// must be exactly as wide as the tree's digest.
type Item struct {
	Key   []byte
	Value []byte
}

// sortByKey returns a copy of items sorted by key in unsigned
// big-endian lexicographic order. The caller's slice is left untouched.
func sortByKey(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})
	return sorted
}

// findDuplicate returns the first key that appears twice in a sorted
// sequence. Duplicates end up adjacent after sorting.
func findDuplicate(sorted []Item) ([]byte, bool) {
	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(sorted[i-1].Key, sorted[i].Key) {
			return sorted[i].Key, true
		}
	}
	return nil, false
}
