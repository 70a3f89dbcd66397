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

// Package keccak implements the Keccak sponge family on top of the
// streaming engine: the legacy Keccak-256/384/512 used by Ethereum-era
// systems (domain byte 0x01) and the FIPS 202 SHA3 variants (0x06).
//
// The sponge rate doubles as the engine block size, so absorption is
// plain block dispatch and finalization is one padded block.
package keccak

import (
	"encoding/binary"

	"github.com/DigestKit/DigestKit/crypto/engine"
)

// Digest sizes in bytes.
const (
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

const (
	domainKeccak byte = 0x01
	domainSHA3   byte = 0x06
)

type digest struct {
	*engine.Engine
	a      [25]uint64
	size   int
	dsbyte byte
}

func newDigest(size int, dsbyte byte) engine.Digest {
	d := &digest{size: size, dsbyte: dsbyte}
	d.Engine = engine.New(d)
	return d
}

// New256 returns a legacy Keccak-256 digest.
func New256() engine.Digest { return newDigest(Size256, domainKeccak) }

// New384 returns a legacy Keccak-384 digest.
func New384() engine.Digest { return newDigest(Size384, domainKeccak) }

// New512 returns a legacy Keccak-512 digest.
func New512() engine.Digest { return newDigest(Size512, domainKeccak) }

// NewSHA3_256 returns a FIPS 202 SHA3-256 digest.
func NewSHA3_256() engine.Digest { return newDigest(Size256, domainSHA3) }

// NewSHA3_384 returns a FIPS 202 SHA3-384 digest.
func NewSHA3_384() engine.Digest { return newDigest(Size384, domainSHA3) }

// NewSHA3_512 returns a FIPS 202 SHA3-512 digest.
func NewSHA3_512() engine.Digest { return newDigest(Size512, domainSHA3) }

// Sum256 computes the legacy Keccak-256 digest of p in one shot.
func Sum256(p []byte) (out [Size256]byte) {
	d := New256()
	d.Write(p)
	d.DigestTo(out[:])
	return
}

// Sum512 computes the legacy Keccak-512 digest of p in one shot.
func Sum512(p []byte) (out [Size512]byte) {
	d := New512()
	d.Write(p)
	d.DigestTo(out[:])
	return
}

// Init implements the engine init hook. The lane state zero value is
// the initial state.
func (d *digest) Init() {}

// ResetState implements the engine state-reset hook.
func (d *digest) ResetState() {
	d.a = [25]uint64{}
}

// ProcessBlock implements the engine block-transform hook: XOR one
// rate-sized block into the lane state, then permute.
func (d *digest) ProcessBlock(block []byte) {
	for i := 0; i < len(block)/8; i++ {
		d.a[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
	keccakF1600(&d.a)
}

// Pad implements the engine finalization hook with multi-rate padding:
// the domain byte, zero fill, and a 0x80 end marker collapse into the
// exact byte count that completes the current block, so the final
// permutation runs through the normal block dispatch.
func (d *digest) Pad(out []byte) {
	pad := make([]byte, d.BlockSize()-d.Flush())
	pad[0] = d.dsbyte
	pad[len(pad)-1] |= 0x80
	d.Write(pad)
	for i := 0; i < d.size/8; i++ {
		binary.LittleEndian.PutUint64(out[8*i:], d.a[i])
	}
}

// DigestSize implements the engine sizing hook.
func (d *digest) DigestSize() int { return d.size }

// BlockSize returns the sponge rate: (1600 - 2*bits)/8 bytes.
func (d *digest) BlockSize() int { return 200 - 2*d.size }

// Copy returns an independent duplicate of the running computation.
func (d *digest) Copy() engine.Digest {
	c := &digest{size: d.size, dsbyte: d.dsbyte}
	c.Engine = engine.New(c)
	c.a = d.a
	d.CopyStateTo(c.Engine)
	return c
}
