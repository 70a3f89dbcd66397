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

import "io"

// Algorithm is the hook set a concrete hash plugs into the engine.
//
// The hook methods are invoked by the engine only; they are exported so
// that hashes can live in their own packages, not for direct use.
type Algorithm interface {
	// Init performs one-time setup. It runs before the engine queries
	// any size, so an implementation must not touch the engine from it.
	Init()

	// ResetState restores the algorithm-internal chaining state to its
	// initial value. Buffer bookkeeping is the engine's job.
	ResetState()

	// ProcessBlock folds exactly one full internal block into the
	// chaining state. The slice is the engine's own buffer; it must not
	// be retained.
	ProcessBlock(block []byte)

	// Pad finalizes the computation and writes the digest value at
	// out[:DigestSize()]. An implementation learns how many tail bytes
	// remain via Flush, then pushes its padding through Write/UpdateByte
	// so the final block(s) dispatch through ProcessBlock as usual.
	Pad(out []byte)

	// DigestSize returns the digest length in bytes.
	DigestSize() int

	// BlockSize returns the advertised block length in bytes.
	BlockSize() int
}

// InternalBlockSizer is implemented by algorithms whose buffering
// granularity differs from the advertised block size (keyed
// constructions mostly). When absent, the engine buffers BlockSize
// bytes at a time.
//
// The hook is named InternalBlockLen, not InternalBlockSize, so that
// the engine's own accessor promoted onto embedding hashes never
// satisfies this interface by accident.
type InternalBlockSizer interface {
	InternalBlockLen() int
}

// Digest is the incremental hash contract implemented by every
// algorithm package in this repository.
type Digest interface {
	io.Writer

	// UpdateByte feeds a single input byte.
	UpdateByte(b byte)

	// Digest finalizes and returns the digest in a fresh slice, then
	// resets.
	Digest() []byte

	// DigestOf fuses a final Write of p into Digest.
	DigestOf(p []byte) []byte

	// DigestTo finalizes into dst, truncating to len(dst) when dst is
	// shorter than the digest, and returns the number of bytes written.
	// The receiver is reset either way.
	DigestTo(dst []byte) int

	// Reset discards all buffered input and chaining state.
	Reset()

	// Size returns the digest length in bytes.
	Size() int

	// BlockSize returns the advertised block length in bytes.
	BlockSize() int

	// Copy returns an independent duplicate of the running computation.
	Copy() Digest
}

// Engine drives an Algorithm over arbitrarily sliced input. Concrete
// hashes embed *Engine so the Digest surface is promoted onto them.
//
// An Engine is not safe for concurrent use; independent copies are.
type Engine struct {
	algo       Algorithm
	buf        []byte // unprocessed tail, fill valid bytes
	fill       int
	blockCount uint64
	size       int    // cached digest size, 0 until known
	out        []byte // scratch for truncated extraction, sized lazily
}

// New runs the algorithm's init hook, then sizes the block buffer to the
// internal block length and the scratch output buffer to the digest
// length. The output buffer is deferred while the algorithm still
// reports a zero digest size.
func New(algo Algorithm) *Engine {
	algo.Init()
	e := &Engine{algo: algo}
	n := algo.BlockSize()
	if s, ok := algo.(InternalBlockSizer); ok {
		n = s.InternalBlockLen()
	}
	e.buf = make([]byte, n)
	e.adjustOut()
	return e
}

func (e *Engine) adjustOut() {
	if e.size == 0 {
		e.size = e.algo.DigestSize()
	}
	if e.out == nil && e.size > 0 {
		e.out = make([]byte, e.size)
	}
}

// UpdateByte appends one byte to the block buffer, dispatching the
// block transform on exact fill.
func (e *Engine) UpdateByte(b byte) {
	e.buf[e.fill] = b
	e.fill++
	if e.fill == len(e.buf) {
		e.algo.ProcessBlock(e.buf)
		e.blockCount++
		e.fill = 0
	}
}

// Write feeds p into the hash. It never fails and always reports
// len(p); the signature exists so an Engine slots in wherever an
// io.Writer is expected.
func (e *Engine) Write(p []byte) (n int, err error) {
	n = len(p)
	for len(p) > 0 {
		c := copy(e.buf[e.fill:], p)
		e.fill += c
		p = p[c:]
		if e.fill == len(e.buf) {
			e.algo.ProcessBlock(e.buf)
			e.blockCount++
			e.fill = 0
		}
	}
	return
}

// Flush returns the number of buffered bytes not yet handed to the
// block transform. Padding rules call this to size their trailer.
func (e *Engine) Flush() int {
	return e.fill
}

// BlockCount returns the number of completed block-transform
// invocations since the last reset. Length-encoding padding rules
// reconstruct the total message length as
// BlockCount()*InternalBlockSize() + Flush().
func (e *Engine) BlockCount() uint64 {
	return e.blockCount
}

// Digest finalizes into a fresh slice of exactly Size() bytes and
// resets the engine.
func (e *Engine) Digest() []byte {
	e.adjustOut()
	out := make([]byte, e.size)
	e.DigestTo(out)
	return out
}

// DigestOf performs a final Write of p, then behaves as Digest.
func (e *Engine) DigestOf(p []byte) []byte {
	e.Write(p)
	return e.Digest()
}

// DigestTo finalizes into dst and returns the byte count written. When
// dst holds the full digest the padding rule writes straight into it;
// a shorter dst receives the leading len(dst) bytes of the digest via
// the engine's scratch buffer. Truncation is deliberate, not an error.
// The engine is reset in both cases.
func (e *Engine) DigestTo(dst []byte) (n int) {
	e.adjustOut()
	if len(dst) >= e.size {
		e.algo.Pad(dst)
		n = e.size
	} else {
		e.algo.Pad(e.out)
		n = copy(dst, e.out)
	}
	e.Reset()
	return
}

// Reset restores the freshly-constructed state. Buffers are kept.
func (e *Engine) Reset() {
	e.algo.ResetState()
	e.fill = 0
	e.blockCount = 0
}

// CopyStateTo duplicates the engine-level state (buffered tail, fill
// counter, block count, scratch output) into dst and returns dst. The
// source is never mutated; afterwards the two engines share nothing.
// Chaining state lives in the algorithm and is copied by the concrete
// hash's Copy.
func (e *Engine) CopyStateTo(dst *Engine) *Engine {
	e.adjustOut()
	dst.adjustOut()
	dst.fill = e.fill
	dst.blockCount = e.blockCount
	copy(dst.buf, e.buf)
	copy(dst.out, e.out)
	return dst
}

// Size returns the digest length in bytes.
func (e *Engine) Size() int {
	e.adjustOut()
	return e.size
}

// BlockSize returns the advertised block length in bytes.
func (e *Engine) BlockSize() int {
	return e.algo.BlockSize()
}

// InternalBlockSize returns the engine's buffering granularity. It
// equals BlockSize unless the algorithm overrides it.
func (e *Engine) InternalBlockSize() int {
	return len(e.buf)
}
