/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package bitboard implements a fixed-width 256 bit set, large enough to
// cover every square of a 16x16 board (index = y*16+x, 0..255). It backs
// every occupancy and attack mask used by the piece, position and move
// generator packages.
//
// The set is stored as four uint64 limbs, least significant limb first
// (limb 0 holds squares 0..63). All bitwise operators work per-limb; shifts
// carry across limb boundaries by construction.
package bitboard

import "math/bits"

// Limbs is the number of 64 bit words backing a Bitboard.
const Limbs = 4

// NumSquares is the number of squares addressable by a Bitboard (16x16).
const NumSquares = 256

// Bitboard is a 256 bit set of board squares.
type Bitboard [Limbs]uint64

// Empty is the zero-value Bitboard (no squares set).
var Empty = Bitboard{}

// Universe is a Bitboard with every square set.
var Universe = Bitboard{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

// FromSquare returns a Bitboard with only the given square set.
func FromSquare(sq int) Bitboard {
	var b Bitboard
	b.SetBit(sq)
	return b
}

// IsZero reports whether no square is set.
func (b Bitboard) IsZero() bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

// Or returns the bitwise union (a | b).
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b[0] | o[0], b[1] | o[1], b[2] | o[2], b[3] | o[3]}
}

// And returns the bitwise intersection (a & b).
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b[0] & o[0], b[1] & o[1], b[2] & o[2], b[3] & o[3]}
}

// Xor returns the bitwise symmetric difference (a ^ b).
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b[0] ^ o[0], b[1] ^ o[1], b[2] ^ o[2], b[3] ^ o[3]}
}

// Not returns the bitwise complement (~a).
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b[0], ^b[1], ^b[2], ^b[3]}
}

// AndNot returns a &^ o (squares set in a but not in o).
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b[0] &^ o[0], b[1] &^ o[1], b[2] &^ o[2], b[3] &^ o[3]}
}

// GetBit reports whether square sq is set.
func (b Bitboard) GetBit(sq int) bool {
	return b[sq>>6]&(uint64(1)<<(uint(sq)&63)) != 0
}

// SetBit sets square sq.
func (b *Bitboard) SetBit(sq int) {
	b[sq>>6] |= uint64(1) << (uint(sq) & 63)
}

// ClearBit clears square sq.
func (b *Bitboard) ClearBit(sq int) {
	b[sq>>6] &^= uint64(1) << (uint(sq) & 63)
}

// PopCount returns the number of set squares ("population count").
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) + bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// LowestSetIndex returns the index of the least significant set square and
// true, or (-1, false) if the Bitboard is empty.
func (b Bitboard) LowestSetIndex() (int, bool) {
	for limb := 0; limb < Limbs; limb++ {
		if b[limb] != 0 {
			return limb*64 + bits.TrailingZeros64(b[limb]), true
		}
	}
	return -1, false
}

// HighestSetIndex returns the index of the most significant set square and
// true, or (-1, false) if the Bitboard is empty.
func (b Bitboard) HighestSetIndex() (int, bool) {
	for limb := Limbs - 1; limb >= 0; limb-- {
		if b[limb] != 0 {
			return limb*64 + 63 - bits.LeadingZeros64(b[limb]), true
		}
	}
	return -1, false
}

// PopLSB clears and returns the index of the least significant set square,
// or -1 if the Bitboard was already empty. Used to iterate set bits:
//
//	for bb := occ; ; {
//	    sq := bb.PopLSB()
//	    if sq < 0 { break }
//	    ...
//	}
func (b *Bitboard) PopLSB() int {
	sq, ok := b.LowestSetIndex()
	if !ok {
		return -1
	}
	b.ClearBit(sq)
	return sq
}

// ForEach calls fn once for every set square, lowest index first.
func (b Bitboard) ForEach(fn func(sq int)) {
	bb := b
	for {
		sq := bb.PopLSB()
		if sq < 0 {
			return
		}
		fn(sq)
	}
}

// ShiftLeft shifts every bit left (towards higher indices) by n, carrying
// across limb boundaries. Bits shifted past index 255 are lost.
func ShiftLeft(b Bitboard, n uint) Bitboard {
	if n == 0 {
		return b
	}
	if n >= NumSquares {
		return Empty
	}
	limbShift := int(n / 64)
	bitShift := uint(n % 64)
	var r Bitboard
	for i := Limbs - 1; i >= 0; i-- {
		src := i - limbShift
		if src < 0 {
			continue
		}
		v := b[src] << bitShift
		if bitShift > 0 && src-1 >= 0 {
			v |= b[src-1] >> (64 - bitShift)
		}
		r[i] = v
	}
	return r
}

// ShiftRight shifts every bit right (towards lower indices) by n, carrying
// across limb boundaries. Bits shifted past index 0 are lost.
func ShiftRight(b Bitboard, n uint) Bitboard {
	if n == 0 {
		return b
	}
	if n >= NumSquares {
		return Empty
	}
	limbShift := int(n / 64)
	bitShift := uint(n % 64)
	var r Bitboard
	for i := 0; i < Limbs; i++ {
		src := i + limbShift
		if src >= Limbs {
			continue
		}
		v := b[src] >> bitShift
		if bitShift > 0 && src+1 < Limbs {
			v |= b[src+1] << (64 - bitShift)
		}
		r[i] = v
	}
	return r
}

// ShiftRow shifts by whole rows (16 squares each); n may be negative to
// shift towards lower indices.
func ShiftRow(b Bitboard, n int) Bitboard {
	if n >= 0 {
		return ShiftLeft(b, uint(n)*16)
	}
	return ShiftRight(b, uint(-n)*16)
}

// String renders the Bitboard as a 16x16 grid, rank 15 (top) to rank 0
// (bottom), for debugging.
func (b Bitboard) String() string {
	out := make([]byte, 0, 16*33)
	for y := 15; y >= 0; y-- {
		for x := 0; x < 16; x++ {
			if b.GetBit(y*16 + x) {
				out = append(out, '1', ' ')
			} else {
				out = append(out, '.', ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
