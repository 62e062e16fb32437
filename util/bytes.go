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

// Package util implements cross domain functions used all across the code.
package util

import "encoding/binary"

// BitIsSet returns whether bit i of bits is set, numbering bits MSB
// first: bit 0 is the most significant bit of bits[0].
func BitIsSet(bits []byte, i uint16) bool {
	return bits[i/8]&(1<<uint(7-i%8)) != 0
}

// Uint64AsPaddedBytes returns i as a big-endian byte slice zero-padded
// on the left to size bytes.
func Uint64AsPaddedBytes(i uint64, size int) []byte {
	b := make([]byte, size)
	if size >= 8 {
		binary.BigEndian.PutUint64(b[size-8:], i)
		return b
	}
	tmp := make([]byte, 8)
	binary.BigEndian.PutUint64(tmp, i)
	copy(b, tmp[8-size:])
	return b
}
