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

// Package hmac implements RFC 2104 keyed hashing over any digest built
// on the streaming engine.
//
// The key-mixed inner and outer states are computed once and kept as
// snapshots, so Reset and the post-digest auto-reset replay a state
// copy instead of re-absorbing the key block.
package hmac

import (
	"github.com/DigestKit/DigestKit/crypto/engine"
)

type keyed struct {
	inner engine.Digest // running inner hash
	isave engine.Digest // inner state after absorbing key XOR ipad
	osave engine.Digest // outer state after absorbing key XOR opad
	size  int
	block int
}

// New returns an HMAC digest over the hash produced by newDigest,
// keyed with key. Keys longer than the hash block size are hashed
// down first, per RFC 2104.
func New(newDigest func() engine.Digest, key []byte) engine.Digest {
	inner, outer := newDigest(), newDigest()
	bs := inner.BlockSize()
	if len(key) > bs {
		key = newDigest().DigestOf(key)
	}

	ipad := make([]byte, bs)
	opad := make([]byte, bs)
	copy(ipad, key)
	copy(opad, key)
	for i := range ipad {
		ipad[i] ^= 0x36
		opad[i] ^= 0x5c
	}
	inner.Write(ipad)
	outer.Write(opad)

	return &keyed{
		inner: inner,
		isave: inner.Copy(),
		osave: outer,
		size:  inner.Size(),
		block: bs,
	}
}

func (h *keyed) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

func (h *keyed) UpdateByte(b byte) {
	h.inner.UpdateByte(b)
}

func (h *keyed) Digest() []byte {
	out := make([]byte, h.size)
	h.DigestTo(out)
	return out
}

func (h *keyed) DigestOf(p []byte) []byte {
	h.Write(p)
	return h.Digest()
}

func (h *keyed) DigestTo(dst []byte) int {
	tag := h.inner.Digest()
	h.inner = h.isave.Copy()
	outer := h.osave.Copy()
	outer.Write(tag)
	return outer.DigestTo(dst)
}

func (h *keyed) Reset() {
	h.inner = h.isave.Copy()
}

func (h *keyed) Size() int { return h.size }

func (h *keyed) BlockSize() int { return h.block }

func (h *keyed) Copy() engine.Digest {
	return &keyed{
		inner: h.inner.Copy(),
		isave: h.isave,
		osave: h.osave,
		size:  h.size,
		block: h.block,
	}
}
