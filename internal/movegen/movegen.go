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

// Package movegen turns a Position's piece placement into pseudo-legal and
// legal moves (spec.md §4.E): flattening piece.OutputMoves/OutputCaptures,
// assembling the discrete special moves (castling, en-passant, pawn double
// push) that need board-level context beyond any one Piece, and the
// attacked-square query used by both legality checking and castling's
// extra restrictions. It depends on position and piece but sits above both,
// mirroring protochess-engine-rs's move generation living alongside
// (rather than inside) Position.
package movegen

import (
	"github.com/arborian/protochess/internal/bitboard"
	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/position"
)

// PseudoMoves enumerates every pseudo-legal move for the side to move,
// per spec.md §4.E: §4.C's ranged/discrete outputs for every owned piece,
// flattened, plus the board-level special moves piece.OutputMoves leaves to
// this layer.
func PseudoMoves(pos *position.Position) []move.Move {
	return pseudoMovesForPlayer(pos, pos.WhosTurn)
}

func pseudoMovesForPlayer(pos *position.Position, player int) []move.Move {
	enemies := enemyOccupancy(pos, player)
	occOrOOB := pos.Occupied.Or(pos.Bounds.Not())
	empty := pos.Bounds.AndNot(pos.Occupied)

	moves := make([]move.Move, 0, 32)
	for _, p := range pos.Pieces[player].All() {
		var ranged []piece.RangedMove
		var discrete []move.Move
		p.OutputMoves(enemies, occOrOOB, empty, &ranged, &discrete)
		moves = append(moves, discrete...)
		moves = flattenRanged(moves, ranged)
	}

	moves = append(moves, doublePushMoves(pos, player)...)
	moves = append(moves, enPassantMoves(pos, player)...)
	moves = append(moves, castleMoves(pos, player)...)
	return moves
}

// Captures enumerates only capturing pseudo-legal moves for the side to
// move — the quiescence-search counterpart of PseudoMoves.
func Captures(pos *position.Position) []move.Move {
	player := pos.WhosTurn
	enemies := enemyOccupancy(pos, player)
	occOrOOB := pos.Occupied.Or(pos.Bounds.Not())

	moves := make([]move.Move, 0, 16)
	for _, p := range pos.Pieces[player].All() {
		var ranged []piece.RangedMove
		var discrete []move.Move
		p.OutputCaptures(enemies, occOrOOB, &ranged, &discrete)
		moves = append(moves, discrete...)
		for _, rm := range ranged {
			rm.AttackMask.ForEach(func(to int) {
				moves = append(moves, move.Move{From: rm.From, To: to, Target: to, Type: move.Capture})
			})
		}
	}
	moves = append(moves, enPassantMoves(pos, player)...)
	return moves
}

func flattenRanged(moves []move.Move, ranged []piece.RangedMove) []move.Move {
	for _, rm := range ranged {
		rm.AttackMask.ForEach(func(to int) {
			moves = append(moves, move.Move{From: rm.From, To: to, Target: to, Type: move.Capture})
		})
		rm.TranslateMask.ForEach(func(to int) {
			moves = append(moves, move.Move{From: rm.From, To: to, Target: to, Type: move.Quiet})
		})
	}
	return moves
}

func enemyOccupancy(pos *position.Position, player int) bitboard.Bitboard {
	var out bitboard.Bitboard
	for p, ps := range pos.Pieces {
		if p != player {
			out = out.Or(ps.Occupied)
		}
	}
	return out
}

// doublePushMoves generates the pawn two-square advance from its home rank,
// requiring both the passed-over and destination squares to be empty.
func doublePushMoves(pos *position.Position, player int) []move.Move {
	pawn := pos.Pieces[player].Get(piece.Pawn)
	if pawn == nil || !pawn.Def.CanDoubleMove {
		return nil
	}
	dir := 1
	homeRank := board.Coord(1)
	if player%2 != 0 {
		dir = -1
		homeRank = pos.Dimensions.Height - 2
	}
	var out []move.Move
	pawn.Bitboard.ForEach(func(from int) {
		x, y := board.FromIndex(board.Index(from))
		if y != homeRank {
			return
		}
		y1 := int(y) + dir
		y2 := int(y) + 2*dir
		if y2 < 0 || y2 >= int(pos.Dimensions.Height) {
			return
		}
		sq1 := int(board.ToIndex(x, board.Coord(y1)))
		sq2 := int(board.ToIndex(x, board.Coord(y2)))
		if pos.Occupied.GetBit(sq1) || pos.Occupied.GetBit(sq2) {
			return
		}
		out = append(out, move.Move{From: from, To: sq2, Target: sq2, Type: move.Quiet})
	})
	return out
}

// enPassantMoves generates the pawn diagonal capture onto the current
// en-passant target square, whose Target is the victim pawn's square (which
// differs from To, the landing square) per spec.md §4.C.
func enPassantMoves(pos *position.Position, player int) []move.Move {
	epSq, epVictim, ok := pos.EPSquare()
	if !ok {
		return nil
	}
	pawn := pos.Pieces[player].Get(piece.Pawn)
	if pawn == nil {
		return nil
	}
	ex, ey := board.FromIndex(board.Index(epSq))
	var out []move.Move
	pawn.Bitboard.ForEach(func(from int) {
		x, y := board.FromIndex(board.Index(from))
		for _, d := range pawn.Def.AttackJumpDeltas {
			if int(x)+d.DX == int(ex) && int(y)+d.DY == int(ey) {
				out = append(out, move.Move{From: from, To: epSq, Target: epVictim, Type: move.Capture})
			}
		}
	})
	return out
}

// castleMoves generates kingside/queenside castling moves for player,
// assuming the classic layout (one king, a same-rank corner rook). Path
// emptiness between king and rook is checked here; check/attacked-step-over
// restrictions are checked by IsLegal, since they need the attacked-square
// query this package also owns.
func castleMoves(pos *position.Position, player int) []move.Move {
	king := pos.Pieces[player].Get(piece.King)
	if king == nil {
		return nil
	}
	kingSq, ok := king.Bitboard.LowestSetIndex()
	if !ok {
		return nil
	}
	kx, ky := board.FromIndex(board.Index(kingSq))

	var out []move.Move
	for side := 0; side < 2; side++ {
		if !pos.CanCastle(player, side) {
			continue
		}
		rookFile := board.Coord(0)
		if side == 0 {
			rookFile = pos.Dimensions.Width - 1
		}
		rookSq := int(board.ToIndex(rookFile, ky))
		rook, owner := pos.PieceAt(rookSq)
		if rook == nil || owner != player || rook.Def.ID != piece.Rook {
			continue
		}
		var kingTo board.Coord
		if side == 0 {
			kingTo = kx + 2
		} else {
			kingTo = kx - 2
		}
		if !pos.Dimensions.InBounds(kingTo, ky) {
			continue
		}
		if !squaresEmptyBetween(pos, kx, rookFile, ky) {
			continue
		}
		typ := move.KingsideCastle
		if side == 1 {
			typ = move.QueensideCastle
		}
		out = append(out, move.Move{From: kingSq, To: int(board.ToIndex(kingTo, ky)), Target: rookSq, Type: typ})
	}
	return out
}

func squaresEmptyBetween(pos *position.Position, a, b, y board.Coord) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for x := lo + 1; x < hi; x++ {
		if pos.Occupied.GetBit(int(board.ToIndex(x, y))) {
			return false
		}
	}
	return true
}
