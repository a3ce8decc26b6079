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

import (
	"github.com/arborian/protochess/internal/attacks"
	"github.com/arborian/protochess/internal/bitboard"
	"github.com/arborian/protochess/internal/board"
)

// orientation returns +1 for "plays up the board" players (even index) and
// -1 for "plays down the board" players (odd index). spec.md generalizes to
// num_players >= 2 but most game modes use exactly two opposing ends; this
// even/odd convention is the natural extension.
func orientation(player int) int {
	if player%2 == 0 {
		return 1
	}
	return -1
}

func charFor(player int, upper, lower rune) rune {
	if player%2 == 0 {
		return upper
	}
	return lower
}

// MakeKing builds a standard king: one-square jump in all eight directions,
// a leader, and castling-capable.
func MakeKing(id, player int) *Piece {
	deltas := eightNeighbours()
	return New(Definition{
		ID: id, CharRep: charFor(player, 'K', 'k'),
		IsLeader: true, CanCastle: true, AttackingIsLegal: true,
		AttackJumpDeltas:    deltas,
		TranslateJumpDeltas: deltas,
	}, player)
}

// MakeQueen builds a standard queen: slides in all eight directions.
func MakeQueen(id, player int) *Piece {
	return New(Definition{
		ID: id, CharRep: charFor(player, 'Q', 'q'), AttackingIsLegal: true,
		AttackDirs: attacks.AllCompass, TranslateDirs: attacks.AllCompass,
	}, player)
}

// MakeRook builds a standard rook: slides orthogonally, castling-capable.
func MakeRook(id, player int) *Piece {
	return New(Definition{
		ID: id, CharRep: charFor(player, 'R', 'r'),
		CanCastle: true, AttackingIsLegal: true,
		AttackDirs: attacks.Orthogonal, TranslateDirs: attacks.Orthogonal,
	}, player)
}

// MakeBishop builds a standard bishop: slides diagonally.
func MakeBishop(id, player int) *Piece {
	return New(Definition{
		ID: id, CharRep: charFor(player, 'B', 'b'), AttackingIsLegal: true,
		AttackDirs: attacks.Diagonal, TranslateDirs: attacks.Diagonal,
	}, player)
}

// MakeKnight builds a standard knight: L-shaped jumps.
func MakeKnight(id, player int) *Piece {
	deltas := []attacks.Delta{
		{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: 2, DY: -1}, {DX: 1, DY: -2},
		{DX: -1, DY: -2}, {DX: -2, DY: -1}, {DX: -2, DY: 1}, {DX: -1, DY: 2},
	}
	return New(Definition{
		ID: id, CharRep: charFor(player, 'N', 'n'), AttackingIsLegal: true,
		AttackJumpDeltas: deltas, TranslateJumpDeltas: deltas,
	}, player)
}

// MakePawn builds a standard pawn oriented for player: forward translate
// jump, diagonal attack jumps, a double-move from the back rank, and
// promotion on the far rank into promotions. Directly grounded on
// protochess-engine-rs's piece_factory.rs make_pawn (move_dir / promotion
// rank computation).
func MakePawn(id, player int, dims board.Dimensions, promotions []int) *Piece {
	dir := orientation(player)
	var promotionRank board.Coord
	if dir > 0 {
		promotionRank = dims.Height - 1
	} else {
		promotionRank = 0
	}
	var promotionSquares = promotionRankBitboard(dims, promotionRank)
	return New(Definition{
		ID: id, CharRep: charFor(player, 'P', 'p'),
		CanDoubleMove:       true,
		AttackingIsLegal:    true,
		PromotionSquares:    promotionSquares,
		PromoVals:           promotions,
		AttackJumpDeltas:    []attacks.Delta{{DX: -1, DY: dir}, {DX: 1, DY: dir}},
		TranslateJumpDeltas: []attacks.Delta{{DX: 0, DY: dir}},
	}, player)
}

// MakeCustom wraps an already fully-specified, player-oriented Definition —
// used for variant-defined fairy pieces (spec's "user-defined piece
// movements"), directly grounded on piece_factory.rs's make_custom (which
// likewise takes a fully-formed PieceDefinition as-is).
func MakeCustom(def Definition, player int) *Piece {
	return New(def, player)
}

func eightNeighbours() []attacks.Delta {
	return []attacks.Delta{
		{DX: 0, DY: 1}, {DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: -1, DY: 0},
		{DX: 1, DY: 1}, {DX: 1, DY: -1}, {DX: -1, DY: 1}, {DX: -1, DY: -1},
	}
}

func promotionRankBitboard(dims board.Dimensions, rank board.Coord) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for x := board.Coord(0); x < dims.Width; x++ {
		bb.SetBit(int(board.ToIndex(x, rank)))
	}
	return bb
}
