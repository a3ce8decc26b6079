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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/fen"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/protoerr"
	"github.com/arborian/protochess/internal/variant"
)

func newTestPosition(dims board.Dimensions, numPlayers int, rules variant.Rules) *position.Position {
	pos := position.New(dims, numPlayers, rules)
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

func TestPseudoMovesKnightFromCorner(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(0, piece.Knight, int(board.ToIndex(0, 0)))

	moves := PseudoMoves(pos)
	require.Len(t, moves, 2)
	for _, mv := range moves {
		assert.Equal(t, move.Quiet, mv.Type)
	}
}

func TestPseudoMovesIncludeDoublePushFromHomeRank(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(0, piece.Pawn, int(board.ToIndex(3, 1)))

	moves := PseudoMoves(pos)
	var sawDouble bool
	for _, mv := range moves {
		if mv.To == int(board.ToIndex(3, 3)) {
			sawDouble = true
		}
	}
	assert.True(t, sawDouble, "expected a double push from the pawn's home rank")
}

func TestIsAttackedByDetectsRookOnOpenFile(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(1, piece.Rook, int(board.ToIndex(3, 7)))

	assert.True(t, IsAttackedBy(pos, int(board.ToIndex(3, 0)), 1))
	assert.False(t, IsAttackedBy(pos, int(board.ToIndex(4, 0)), 1))
}

func TestCastlingIllegalWhileInCheck(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(0, piece.King, int(board.ToIndex(4, 0)))
	pos.PublicAddPiece(0, piece.Rook, int(board.ToIndex(7, 0)))
	pos.PublicAddPiece(1, piece.Rook, int(board.ToIndex(4, 7)))
	pos.SetCastlingRights(0, 0, true)

	mv := move.Move{From: int(board.ToIndex(4, 0)), To: int(board.ToIndex(6, 0)), Target: int(board.ToIndex(7, 0)), Type: move.KingsideCastle}
	assert.False(t, IsLegal(pos, mv), "king on the file of an enemy rook is in check, castling must be illegal")
}

func TestCastlingLegalWithClearPathAndSafety(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(0, piece.King, int(board.ToIndex(4, 0)))
	pos.PublicAddPiece(0, piece.Rook, int(board.ToIndex(7, 0)))
	pos.PublicAddPiece(1, piece.King, int(board.ToIndex(4, 7)))
	pos.SetCastlingRights(0, 0, true)

	moves := castleMoves(pos, 0)
	require.Len(t, moves, 1)
	assert.True(t, IsLegal(pos, moves[0]))
}

func TestEnPassantMoveGenerated(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(0, piece.Pawn, int(board.ToIndex(4, 4)))
	pos.SetEPSquare(int(board.ToIndex(3, 5)), int(board.ToIndex(3, 4)))

	moves := enPassantMoves(pos, 0)
	require.Len(t, moves, 1)
	assert.Equal(t, move.Capture, moves[0].Type)
	assert.Equal(t, int(board.ToIndex(3, 5)), moves[0].To)
	assert.Equal(t, int(board.ToIndex(3, 4)), moves[0].Target)
}

func TestForcedCaptureInAntichess(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.ForGameMode(variant.Antichess, 2))
	pos.PublicAddPiece(0, piece.Rook, int(board.ToIndex(0, 0)))
	pos.PublicAddPiece(1, piece.Pawn, int(board.ToIndex(0, 3)))
	pos.PublicAddPiece(1, piece.Pawn, int(board.ToIndex(5, 5)))

	legal := Legal(pos)
	require.NotEmpty(t, legal)
	for _, mv := range legal {
		assert.True(t, mv.IsCapture(), "antichess must only offer captures when one exists")
	}
}

func TestLeaderCaptureRulePermitsSelfExplosionThatAlsoWins(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := position.New(dims, 2, variant.ForGameMode(variant.Atomic, 2))
	for p := 0; p < 2; p++ {
		pos.SetPieceType(piece.MakeKing(piece.King, p))
		pos.SetPieceType(piece.MakeRook(piece.Rook, p))
	}
	from := int(board.ToIndex(0, 0))
	to := int(board.ToIndex(0, 3))
	pos.PublicAddPiece(0, piece.Rook, from)
	pos.PublicAddPiece(0, piece.King, int(board.ToIndex(1, 3))) // explodes alongside the capture
	pos.PublicAddPiece(1, piece.King, to)                       // the only enemy leader, captured directly

	mv := move.Move{From: from, To: to, Target: to, Type: move.Capture}
	assert.True(t, IsLegal(pos, mv), "capturing the last enemy leader wins even though the mover's own king explodes")
}

func TestParsedStartingPositionHasTwentyLegalMoves(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	legal := Legal(pos)
	assert.Len(t, legal, 20, "16 pawn moves (single+double) + 4 knight moves from the back rank")
}

func TestApplyIfLegalPlaysAKnownGoodMove(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	from := int(board.ToIndex(4, 1))
	to := int(board.ToIndex(4, 3))
	mv := move.Move{From: from, To: to, Target: to, Type: move.Quiet}

	err = ApplyIfLegal(pos, mv)

	require.NoError(t, err)
	assert.Equal(t, 1, pos.WhosTurn, "a successful ApplyIfLegal hands the turn to the other player")
}

func TestApplyIfLegalRejectsAMoveNotAmongLegalMoves(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	from := int(board.ToIndex(4, 1))
	to := int(board.ToIndex(4, 4))
	mv := move.Move{From: from, To: to, Target: -1, Type: move.Quiet}

	err = ApplyIfLegal(pos, mv)

	var illegal protoerr.IllegalMove
	assert.ErrorAs(t, err, &illegal)
	assert.Equal(t, mv, illegal.Move)
}

func TestApplyIfLegalReportsGameOverWhenNoMovesRemain(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	pos := newTestPosition(dims, 2, variant.NewRules(2))
	pos.PublicAddPiece(0, piece.King, int(board.ToIndex(0, 0)))
	pos.PublicAddPiece(1, piece.King, int(board.ToIndex(7, 7)))
	pos.PublicAddPiece(1, piece.Queen, int(board.ToIndex(1, 7)))
	pos.PublicAddPiece(1, piece.Rook, int(board.ToIndex(7, 1)))
	pos.SetTurn(0)

	mv := move.Move{From: int(board.ToIndex(0, 0)), To: int(board.ToIndex(0, 1)), Target: -1, Type: move.Quiet}

	err := ApplyIfLegal(pos, mv)

	assert.ErrorIs(t, err, protoerr.ErrGameOver)
}
