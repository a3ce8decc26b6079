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

package piece

import "github.com/arborian/protochess/internal/bitboard"

// Set is one player's collection of pieces: the six standard slots
// (King/Queen/Rook/Bishop/Knight/Pawn, indexed by their reserved IDs) plus
// any custom, variant-defined pieces, and the union of every piece's
// occupancy.
type Set struct {
	Player   int
	Standard [CustomIDStart]*Piece
	Custom   []*Piece
	Occupied bitboard.Bitboard
}

// NewSet creates an empty piece set for player.
func NewSet(player int) *Set {
	return &Set{Player: player}
}

// Put registers p (indexed by its definition ID) into the set, replacing any
// existing piece of the same ID.
func (s *Set) Put(p *Piece) {
	if p.Def.ID < CustomIDStart {
		s.Standard[p.Def.ID] = p
		return
	}
	for i, c := range s.Custom {
		if c.Def.ID == p.Def.ID {
			s.Custom[i] = p
			return
		}
	}
	s.Custom = append(s.Custom, p)
}

// Get returns the piece with the given definition ID, or nil.
func (s *Set) Get(id int) *Piece {
	if id < CustomIDStart {
		return s.Standard[id]
	}
	for _, c := range s.Custom {
		if c.Def.ID == id {
			return c
		}
	}
	return nil
}

// All returns every non-empty piece in the set, standard slots first in
// fixed ID order, then custom pieces in registration order.
func (s *Set) All() []*Piece {
	out := make([]*Piece, 0, len(s.Standard)+len(s.Custom))
	for _, p := range s.Standard {
		if p != nil {
			out = append(out, p)
		}
	}
	out = append(out, s.Custom...)
	return out
}

// Leaders returns every piece kind in the set marked IsLeader (the king in
// standard chess; variants may designate others or several).
func (s *Set) Leaders() []*Piece {
	var out []*Piece
	for _, p := range s.All() {
		if p.Def.IsLeader {
			out = append(out, p)
		}
	}
	return out
}

// LeaderCount returns the total number of leader pieces still on the board.
func (s *Set) LeaderCount() int {
	n := 0
	for _, p := range s.Leaders() {
		n += p.Count()
	}
	return n
}

// Clone returns an independent copy of s: every contained Piece is itself
// cloned, so mutating the copy's bitboards (via a move make/unmake) never
// touches s. Used by Position.Clone to hand each Lazy-SMP worker its own
// piece sets.
func (s *Set) Clone() *Set {
	ns := &Set{Player: s.Player, Occupied: s.Occupied}
	for i, p := range s.Standard {
		if p != nil {
			ns.Standard[i] = p.Clone()
		}
	}
	if len(s.Custom) > 0 {
		ns.Custom = make([]*Piece, len(s.Custom))
		for i, p := range s.Custom {
			ns.Custom[i] = p.Clone()
		}
	}
	return ns
}

// RecomputeOccupied recomputes Occupied as the union of every piece's
// bitboard. Called after any piece bitboard is mutated in place.
func (s *Set) RecomputeOccupied() {
	var occ bitboard.Bitboard
	for _, p := range s.All() {
		occ = occ.Or(p.Bitboard)
	}
	s.Occupied = occ
}

// PieceAt returns the piece occupying sq, or nil if none of this set's
// pieces sit there.
func (s *Set) PieceAt(sq int) *Piece {
	for _, p := range s.All() {
		if p.Bitboard.GetBit(sq) {
			return p
		}
	}
	return nil
}
