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

// Package dbg holds small helpers shared by every layer of the curve
// engine for scrubbing secret-carrying buffers on function exit.
package dbg

// Zero overwrites b with zero bytes. Callers defer this on every
// function-scope buffer that ever holds a secret scalar or an
// intermediate point derived from one.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroWords overwrites w with zero words.
func ZeroWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}

// CondSelectUint32 returns a if cond == 1, b if cond == 0. cond must be
// exactly 0 or 1; behavior is otherwise undefined. Branch-free by
// construction so it is safe to use on secret-dependent conditions.
func CondSelectUint32(cond, a, b uint32) uint32 {
	mask := -cond
	return (a & mask) | (b &^ mask)
}

// CondSwapUint32 conditionally swaps *a and *b when cond == 1.
func CondSwapUint32(cond uint32, a, b *uint32) {
	mask := -cond
	t := mask & (*a ^ *b)
	*a ^= t
	*b ^= t
}
