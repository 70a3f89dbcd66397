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

// Package ripemd160 implements the RIPEMD-160 hash on top of the
// streaming engine.
package ripemd160

import (
	"encoding/binary"

	"github.com/DigestKit/DigestKit/crypto/engine"
)

// Size is the RIPEMD-160 digest length in bytes.
const Size = 20

// BlockSize is the RIPEMD-160 block length in bytes.
const BlockSize = 64

type digest struct {
	*engine.Engine
	s [5]uint32
}

// New returns a fresh RIPEMD-160 digest.
func New() engine.Digest {
	d := new(digest)
	d.Engine = engine.New(d)
	return d
}

// Sum computes the RIPEMD-160 digest of p in one shot.
func Sum(p []byte) (out [Size]byte) {
	d := New()
	d.Write(p)
	d.DigestTo(out[:])
	return
}

// Init implements the engine init hook.
func (d *digest) Init() {
	d.ResetState()
}

// ResetState implements the engine state-reset hook.
func (d *digest) ResetState() {
	d.s = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
}

// ProcessBlock implements the engine block-transform hook.
func (d *digest) ProcessBlock(block []byte) {
	compress(&d.s, block)
}

// Pad implements the engine finalization hook: a 0x80 marker, zero
// fill to 56 mod 64, then the 64-bit little-endian bit length.
func (d *digest) Pad(out []byte) {
	bitLen := (d.BlockCount()*BlockSize + uint64(d.Flush())) * 8
	d.UpdateByte(0x80)
	for d.Flush() != BlockSize-8 {
		d.UpdateByte(0x00)
	}
	var trailer [8]byte
	binary.LittleEndian.PutUint64(trailer[:], bitLen)
	d.Write(trailer[:])
	for i, v := range d.s {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
}

// DigestSize implements the engine sizing hook.
func (d *digest) DigestSize() int { return Size }

// BlockSize implements the engine sizing hook.
func (d *digest) BlockSize() int { return BlockSize }

// Copy returns an independent duplicate of the running computation.
func (d *digest) Copy() engine.Digest {
	c := new(digest)
	c.Engine = engine.New(c)
	c.s = d.s
	d.CopyStateTo(c.Engine)
	return c
}
