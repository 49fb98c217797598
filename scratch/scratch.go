// Copyright (c) 2021 Oasis Labs Inc. All rights reserved.
// Copyright (c) 2021 Yawning Angel. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS
// IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED
// TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
// PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
// TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
// PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF
// LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package scratch provides a fixed-capacity, caller-owned accumulator
// of (scalar, point) pairs for multi-scalar batch verification. Batch
// verifiers (schnorr.VerifyBatch, eddsa.VerifyBatch) stream pairs in as
// they process each entry, flush through the curve's MultiScalarMultVar
// whenever the buffer fills, and fold the partial result into a running
// sum, so memory use stays bounded regardless of how many entries are
// in the batch.
package scratch

// MaxPairs is the largest number of (scalar, point) pairs a Buffer
// holds before it must be flushed.
const MaxPairs = 64

// Buffer accumulates up to MaxPairs (scalar, point) pairs. The zero
// value is ready to use. A Buffer is exclusively owned by its caller
// for the duration of one multi-scalar verification; it is not safe
// for concurrent use.
type Buffer[S any, P any] struct {
	scalars [MaxPairs]S
	points  [MaxPairs]P
	n       int
}

// New returns an empty Buffer.
func New[S any, P any]() *Buffer[S, P] {
	return &Buffer[S, P]{}
}

// Len reports how many pairs are currently held.
func (b *Buffer[S, P]) Len() int {
	return b.n
}

// Full reports whether the next Push would exceed MaxPairs.
func (b *Buffer[S, P]) Full() bool {
	return b.n == MaxPairs
}

// Reset discards all held pairs, making the Buffer ready for reuse
// after a flush.
func (b *Buffer[S, P]) Reset() {
	b.n = 0
}

// Push appends a pair and reports whether the buffer has just reached
// capacity. A true result is the caller's signal to flush the buffer
// through its multi-scalar multiplier before pushing again.
func (b *Buffer[S, P]) Push(s S, p P) bool {
	b.scalars[b.n] = s
	b.points[b.n] = p
	b.n++
	return b.n == MaxPairs
}

// Scalars returns the scalars of the currently held pairs, in push
// order. The returned slice aliases the Buffer's internal storage and
// is invalidated by the next Push or Reset.
func (b *Buffer[S, P]) Scalars() []S {
	return b.scalars[:b.n]
}

// Points returns the points of the currently held pairs, in push
// order, aligned index-for-index with Scalars.
func (b *Buffer[S, P]) Points() []P {
	return b.points[:b.n]
}
