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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/variant"
)

func newTestPosition(dims board.Dimensions, numPlayers int) *Position {
	pos := New(dims, numPlayers, variant.NewRules(numPlayers))
	for p := 0; p < numPlayers; p++ {
		pos.SetPieceType(piece.MakeKing(piece.King, p))
		pos.SetPieceType(piece.MakeQueen(piece.Queen, p))
		pos.SetPieceType(piece.MakeRook(piece.Rook, p))
		pos.SetPieceType(piece.MakeBishop(piece.Bishop, p))
		pos.SetPieceType(piece.MakeKnight(piece.Knight, p))
		pos.SetPieceType(piece.MakePawn(piece.Pawn, p, dims, []int{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}))
	}
	return pos
}

func TestMakeUnmakeQuietMoveRestoresState(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2)
	from := int(board.ToIndex(0, 0))
	to := int(board.ToIndex(0, 3))
	pos.PublicAddPiece(0, piece.Rook, from)

	keyBefore := pos.Zobrist()
	occBefore := pos.Occupied

	pos.MakeMove(move.Move{From: from, To: to, Target: to, Type: move.Quiet})
	assert.NotEqual(t, keyBefore, pos.Zobrist())
	p, owner := pos.PieceAt(to)
	assert.NotNil(t, p)
	assert.Equal(t, 0, owner)

	pos.UnmakeMove()
	assert.Equal(t, keyBefore, pos.Zobrist())
	assert.Equal(t, occBefore, pos.Occupied)
	p, _ = pos.PieceAt(from)
	assert.NotNil(t, p)
}

func TestMakeUnmakeCaptureRestoresVictim(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2)
	from := int(board.ToIndex(0, 0))
	to := int(board.ToIndex(0, 5))
	pos.PublicAddPiece(0, piece.Rook, from)
	pos.PublicAddPiece(1, piece.Pawn, to)

	keyBefore := pos.Zobrist()

	pos.MakeMove(move.Move{From: from, To: to, Target: to, Type: move.Capture})
	p, owner := pos.PieceAt(to)
	assert.NotNil(t, p)
	assert.Equal(t, 0, owner)
	assert.Equal(t, piece.Rook, p.Def.ID)

	pos.UnmakeMove()
	assert.Equal(t, keyBefore, pos.Zobrist())
	p, owner = pos.PieceAt(to)
	assert.NotNil(t, p)
	assert.Equal(t, 1, owner)
	assert.Equal(t, piece.Pawn, p.Def.ID)
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2)
	kingFrom := int(board.ToIndex(4, 0))
	rookFrom := int(board.ToIndex(7, 0))
	kingTo := int(board.ToIndex(6, 0))
	rookTo := int(board.ToIndex(5, 0))

	pos.PublicAddPiece(0, piece.King, kingFrom)
	pos.PublicAddPiece(0, piece.Rook, rookFrom)
	pos.SetCastlingRights(0, 0, true)

	keyBefore := pos.Zobrist()

	pos.MakeMove(move.Move{From: kingFrom, To: kingTo, Target: rookFrom, Type: move.KingsideCastle})
	assert.False(t, pos.CanCastle(0, 0))
	rookPiece, _ := pos.PieceAt(rookTo)
	assert.NotNil(t, rookPiece)
	assert.Equal(t, piece.Rook, rookPiece.Def.ID)

	pos.UnmakeMove()
	assert.Equal(t, keyBefore, pos.Zobrist())
	assert.True(t, pos.CanCastle(0, 0))
	kingPiece, _ := pos.PieceAt(kingFrom)
	assert.NotNil(t, kingPiece)
	rookPiece, _ = pos.PieceAt(rookFrom)
	assert.NotNil(t, rookPiece)
}

func TestDoublePawnPushSetsEnPassantSquare(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2)
	from := int(board.ToIndex(3, 1))
	to := int(board.ToIndex(3, 3))
	pos.PublicAddPiece(0, piece.Pawn, from)

	pos.MakeMove(move.Move{From: from, To: to, Target: to, Type: move.Quiet})
	sq, victim, ok := pos.EPSquare()
	assert.True(t, ok)
	assert.Equal(t, int(board.ToIndex(3, 2)), sq)
	assert.Equal(t, to, victim)

	pos.UnmakeMove()
	_, _, ok = pos.EPSquare()
	assert.False(t, ok)
}

func TestAtomicExplosionRemovesAdjacentNonPawnsAndRestoresOnUnmake(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := New(dims, 2, variant.ForGameMode(variant.Atomic, 2))
	for p := 0; p < 2; p++ {
		pos.SetPieceType(piece.MakeKing(piece.King, p))
		pos.SetPieceType(piece.MakeRook(piece.Rook, p))
		pos.SetPieceType(piece.MakePawn(piece.Pawn, p, dims, nil))
	}

	from := int(board.ToIndex(0, 0))
	to := int(board.ToIndex(0, 3))
	king0 := int(board.ToIndex(1, 3)) // adjacent to `to`
	king1 := int(board.ToIndex(5, 5)) // far away, survives

	pos.PublicAddPiece(0, piece.Rook, from)
	pos.PublicAddPiece(0, piece.King, king0)
	pos.PublicAddPiece(1, piece.King, king1)
	pos.PublicAddPiece(1, piece.Pawn, to)

	keyBefore := pos.Zobrist()
	assert.Equal(t, 1, pos.LeaderCount(0))

	pos.MakeMove(move.Move{From: from, To: to, Target: to, Type: move.Capture})

	assert.Equal(t, 0, pos.LeaderCount(0), "capturer's own adjacent king should have exploded")
	assert.Equal(t, 1, pos.LeaderCount(1))
	rookAtTo, _ := pos.PieceAt(to)
	assert.Nil(t, rookAtTo, "the capturing rook itself should have detonated rather than landing on `to`")

	pos.UnmakeMove()
	assert.Equal(t, keyBefore, pos.Zobrist())
	assert.Equal(t, 1, pos.LeaderCount(0))
	rookAtFrom, _ := pos.PieceAt(from)
	assert.NotNil(t, rookAtFrom)
}

func TestRepetitionCount(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2)
	a := int(board.ToIndex(0, 0))
	b := int(board.ToIndex(0, 7))
	pos.PublicAddPiece(0, piece.Knight, a)

	assert.Equal(t, 1, pos.RepetitionCount())
	pos.MakeMove(move.Move{From: a, To: b, Target: b, Type: move.Quiet})
	pos.MakeMove(move.Move{From: b, To: a, Target: a, Type: move.Quiet})
	assert.Equal(t, 2, pos.RepetitionCount(), "returning to the starting square/turn should match the initial key")
}
