/*
 * Copyright 2019 The DigestKit Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ripemd160

import (
	"encoding/binary"
	"math/bits"
)

// Message word order and rotation amounts for the two parallel lines,
// 16 steps per round, 5 rounds each.
var (
	nl = [80]byte{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
		4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
	}
	sl = [80]byte{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
		9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
	}
	nr = [80]byte{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
		12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
	}
	sr = [80]byte{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
		8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
	}
)

// compress folds one 64-byte block into the chaining state.
func compress(h *[5]uint32, block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	aa, bb, cc, dd, ee := a, b, c, d, e

	// Left line: f, g, h, i, j.
	for j := 0; j < 80; j++ {
		var f, k uint32
		switch {
		case j < 16:
			f = b ^ c ^ d
		case j < 32:
			f, k = (b&c)|(^b&d), 0x5a827999
		case j < 48:
			f, k = (b|^c)^d, 0x6ed9eba1
		case j < 64:
			f, k = (b&d)|(c&^d), 0x8f1bbcdc
		default:
			f, k = b^(c|^d), 0xa953fd4e
		}
		t := bits.RotateLeft32(a+f+x[nl[j]]+k, int(sl[j])) + e
		a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d
	}

	// Right line: j, i, h, g, f.
	a, b, c, d, e, aa, bb, cc, dd, ee = aa, bb, cc, dd, ee, a, b, c, d, e
	for j := 0; j < 80; j++ {
		var f, k uint32
		switch {
		case j < 16:
			f, k = b^(c|^d), 0x50a28be6
		case j < 32:
			f, k = (b&d)|(c&^d), 0x5c4dd124
		case j < 48:
			f, k = (b|^c)^d, 0x6d703ef3
		case j < 64:
			f, k = (b&c)|(^b&d), 0x7a6d76e9
		default:
			f = b ^ c ^ d
		}
		t := bits.RotateLeft32(a+f+x[nr[j]]+k, int(sr[j])) + e
		a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d
	}

	// aa..ee now hold the left line result, a..e the right line.
	t := h[1] + cc + d
	h[1] = h[2] + dd + e
	h[2] = h[3] + ee + a
	h[3] = h[4] + aa + b
	h[4] = h[0] + bb + c
	h[0] = t
}
