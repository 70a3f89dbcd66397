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

package engine

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// rotAlgo is a deliberately order-sensitive toy hash: each block is
// folded into the state through a rotate-and-xor, so any chunking or
// ordering bug in the engine changes the digest.
type rotAlgo struct {
	*Engine
	state [8]byte
}

func newRot() *rotAlgo {
	a := new(rotAlgo)
	a.Engine = New(a)
	return a
}

func (a *rotAlgo) Init() {}

func (a *rotAlgo) ResetState() {
	a.state = [8]byte{}
}

func (a *rotAlgo) ProcessBlock(block []byte) {
	for i := range a.state {
		a.state[i] = (a.state[i]<<1 | a.state[i]>>7) ^ block[i]
	}
}

func (a *rotAlgo) Pad(out []byte) {
	if a.Flush() > 0 {
		for a.Flush() != 0 {
			a.UpdateByte(0)
		}
	}
	copy(out[:8], a.state[:])
}

func (a *rotAlgo) DigestSize() int { return 8 }

func (a *rotAlgo) BlockSize() int { return 8 }

func (a *rotAlgo) Copy() Digest {
	c := new(rotAlgo)
	c.Engine = New(c)
	c.state = a.state
	a.CopyStateTo(c.Engine)
	return c
}

// countAlgo records every transform invocation so block dispatch can be
// asserted exactly.
type countAlgo struct {
	*Engine
	blockLens []int
	blocks    [][]byte
}

func newCount() *countAlgo {
	a := new(countAlgo)
	a.Engine = New(a)
	return a
}

func (a *countAlgo) Init() {}

func (a *countAlgo) ResetState() {
	a.blockLens = nil
	a.blocks = nil
}

func (a *countAlgo) ProcessBlock(block []byte) {
	a.blockLens = append(a.blockLens, len(block))
	a.blocks = append(a.blocks, append([]byte(nil), block...))
}

func (a *countAlgo) Pad(out []byte) {
	for a.Flush() != 0 {
		a.UpdateByte(0)
	}
	out[0] = byte(len(a.blockLens))
}

func (a *countAlgo) DigestSize() int { return 1 }

func (a *countAlgo) BlockSize() int { return 16 }

// narrowAlgo advertises a 16-byte block but buffers 4 bytes at a time.
type narrowAlgo struct {
	*Engine
	sum byte
}

func newNarrow() *narrowAlgo {
	a := new(narrowAlgo)
	a.Engine = New(a)
	return a
}

func (a *narrowAlgo) Init() {}

func (a *narrowAlgo) ResetState() { a.sum = 0 }

func (a *narrowAlgo) ProcessBlock(block []byte) {
	for _, b := range block {
		a.sum ^= b
	}
}

func (a *narrowAlgo) Pad(out []byte) {
	for a.Flush() != 0 {
		a.UpdateByte(0)
	}
	out[0] = a.sum
}

func (a *narrowAlgo) DigestSize() int { return 1 }

func (a *narrowAlgo) BlockSize() int { return 16 }

func (a *narrowAlgo) InternalBlockLen() int { return 4 }

// lateAlgo reports a zero digest size until its state reset runs,
// exercising the lazy output-buffer sizing path.
type lateAlgo struct {
	*Engine
	sized bool
}

func newLate() *lateAlgo {
	a := new(lateAlgo)
	a.Engine = New(a)
	return a
}

func (a *lateAlgo) Init() {}

func (a *lateAlgo) ResetState() { a.sized = true }

func (a *lateAlgo) ProcessBlock(block []byte) {}

func (a *lateAlgo) Pad(out []byte) {
	for a.Flush() != 0 {
		a.UpdateByte(0)
	}
	out[0], out[1] = 0xca, 0xfe
}

func (a *lateAlgo) DigestSize() int {
	if !a.sized {
		return 0
	}
	return 2
}

func (a *lateAlgo) BlockSize() int { return 8 }

func TestChunkInvariance(t *testing.T) {
	Convey("any slicing of the input yields the same digest", t, func() {
		input := []byte("The quick brown fox jumps over the lazy dog, twice over")

		bulk := newRot()
		bulk.Write(input)
		want := bulk.Digest()

		byByte := newRot()
		for _, b := range input {
			byByte.UpdateByte(b)
		}
		So(byByte.Digest(), ShouldResemble, want)

		for _, split := range []int{1, 3, 7, 8, 9, 31, len(input) - 1} {
			chunked := newRot()
			chunked.Write(input[:split])
			chunked.Write(input[split:])
			So(chunked.Digest(), ShouldResemble, want)
		}
	})
}

func TestBlockDispatch(t *testing.T) {
	Convey("the transform sees exactly one full block per fill", t, func() {
		a := newCount()
		a.Write(bytes.Repeat([]byte{0xaa}, 16*3+5))
		So(a.blockLens, ShouldResemble, []int{16, 16, 16})
		So(a.BlockCount(), ShouldEqual, 3)
		So(a.Flush(), ShouldEqual, 5)
	})

	Convey("an exact block multiple does not trigger finalization", t, func() {
		a := newCount()
		a.Write(bytes.Repeat([]byte{0xbb}, 16))
		// The fill path already dispatched the block; padding starts
		// from an empty window.
		So(a.BlockCount(), ShouldEqual, 1)
		So(a.Flush(), ShouldEqual, 0)
		var out [1]byte
		So(a.DigestTo(out[:]), ShouldEqual, 1)
		So(out[0], ShouldEqual, 1)
	})
}

func TestDigestExtraction(t *testing.T) {
	Convey("digest forms agree and reset the engine", t, func() {
		input := []byte("engine extraction input")

		d := newRot()
		d.Write(input)
		full := d.Digest()
		So(full, ShouldHaveLength, 8)

		Convey("DigestOf fuses the final update", func() {
			So(newRot().DigestOf(input), ShouldResemble, full)
		})

		Convey("truncated extraction returns the digest prefix", func() {
			short := make([]byte, 3)
			d2 := newRot()
			d2.Write(input)
			So(d2.DigestTo(short), ShouldEqual, 3)
			So(short, ShouldResemble, full[:3])

			// Truncation resets like a full extraction.
			So(d2.DigestOf(input), ShouldResemble, full)
		})

		Convey("an oversized target reports the digest size", func() {
			wide := make([]byte, 13)
			d2 := newRot()
			d2.Write(input)
			So(d2.DigestTo(wide), ShouldEqual, 8)
			So(wide[:8], ShouldResemble, full)
		})

		Convey("extraction leaves the engine freshly reset", func() {
			d2 := newRot()
			d2.Write([]byte("unrelated earlier input"))
			d2.Digest()
			So(d2.DigestOf(input), ShouldResemble, full)
			So(d2.BlockCount(), ShouldEqual, 0)
			So(d2.Flush(), ShouldEqual, 0)
		})
	})
}

func TestResetIdempotence(t *testing.T) {
	Convey("reset then re-feed equals a fresh engine", t, func() {
		input := []byte("reset probe")
		d := newRot()
		d.Write([]byte("garbage to discard"))
		d.Reset()
		d.Write(input)
		So(d.Digest(), ShouldResemble, newRot().DigestOf(input))
	})

	Convey("empty input has a well-defined digest", t, func() {
		So(newRot().Digest(), ShouldResemble, newRot().Digest())
		So(newRot().BlockCount(), ShouldEqual, 0)
	})
}

func TestCopyStateIndependence(t *testing.T) {
	Convey("a copied engine continues independently", t, func() {
		prefix := []byte("shared prefix longer than one block")
		sfxA := []byte("suffix A")
		sfxB := []byte("completely different suffix B")

		src := newRot()
		src.Write(prefix)
		dup := src.Copy()

		src.Write(sfxA)
		dup.Write(sfxB)

		wantA := newRot().DigestOf(append(append([]byte(nil), prefix...), sfxA...))
		wantB := newRot().DigestOf(append(append([]byte(nil), prefix...), sfxB...))
		So(src.Digest(), ShouldResemble, wantA)
		So(dup.Digest(), ShouldResemble, wantB)
	})

	Convey("copying never mutates the source", t, func() {
		src := newRot()
		src.Write([]byte("0123456789"))
		fill, count := src.Flush(), src.BlockCount()
		dup := src.Copy()
		So(src.Flush(), ShouldEqual, fill)
		So(src.BlockCount(), ShouldEqual, count)

		dup.Write([]byte("diverge"))
		So(src.Flush(), ShouldEqual, fill)
		So(src.BlockCount(), ShouldEqual, count)
	})
}

func TestInternalBlockLen(t *testing.T) {
	Convey("the internal block length overrides buffering granularity", t, func() {
		a := newNarrow()
		So(a.BlockSize(), ShouldEqual, 16)
		So(a.InternalBlockSize(), ShouldEqual, 4)

		a.Write([]byte{1, 2, 3, 4, 5})
		So(a.BlockCount(), ShouldEqual, 1)
		So(a.Flush(), ShouldEqual, 1)
	})

	Convey("plain algorithms buffer the advertised block size", t, func() {
		a := newCount()
		So(a.InternalBlockSize(), ShouldEqual, 16)
	})
}

func TestLazyOutputSizing(t *testing.T) {
	Convey("a late-reported digest size resolves before extraction", t, func() {
		a := newLate()
		a.Reset() // size becomes known here
		So(a.Size(), ShouldEqual, 2)
		So(a.Digest(), ShouldResemble, []byte{0xca, 0xfe})

		Convey("and resolves on both sides of a state copy", func() {
			b := newLate()
			b.Reset()
			src := newLate()
			src.Reset()
			src.Write([]byte{1, 2, 3})
			src.CopyStateTo(b.Engine)
			So(b.Flush(), ShouldEqual, 3)
		})
	})
}
