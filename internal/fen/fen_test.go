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

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/protoerr"
)

func TestParseStartingPositionPlacesAllPieces(t *testing.T) {
	pos, err := Parse(StartingPosition)
	require.NoError(t, err)

	assert.Equal(t, 32, pos.Occupied.PopCount())
	assert.Equal(t, 0, pos.WhosTurn)

	king, owner := pos.PieceAt(int(board.ToIndex(4, 0)))
	require.NotNil(t, king)
	assert.Equal(t, 0, owner)
	assert.Equal(t, piece.King, king.Def.ID)

	blackKnight, owner := pos.PieceAt(int(board.ToIndex(1, 7)))
	require.NotNil(t, blackKnight)
	assert.Equal(t, 1, owner)
	assert.Equal(t, piece.Knight, blackKnight.Def.ID)

	assert.True(t, pos.CanCastle(0, 0))
	assert.True(t, pos.CanCastle(0, 1))
	assert.True(t, pos.CanCastle(1, 0))
	assert.True(t, pos.CanCastle(1, 1))
}

func TestParseRespectsMultiDigitEmptyRunOnWideBoard(t *testing.T) {
	dims := board.NewDimensions(16, 16)
	fenStr := "16/16/16/16/16/16/16/16/16/16/16/16/16/16/16/k15 w - - 0 1"
	pos, err := ParseSized(fenStr, dims, 2)
	require.NoError(t, err)

	p, owner := pos.PieceAt(int(board.ToIndex(0, 0)))
	require.NotNil(t, p)
	assert.Equal(t, 1, owner)
	assert.Equal(t, piece.King, p.Def.ID)
	assert.Equal(t, 1, pos.Occupied.PopCount())
}

func TestParseVariantSuffixSetsGlobalRules(t *testing.T) {
	pos, err := Parse("8/8/8/8/8/8/8/K6k w - - 0 1 atomic")
	require.NoError(t, err)
	assert.True(t, pos.Rules.ExplosionOnCapture)
}

func TestParseKingOfTheHillPopulatesWinSquares(t *testing.T) {
	pos, err := Parse("8/8/8/8/8/8/8/K6k w - - 0 1 kingofthehill")
	require.NoError(t, err)
	center := pos.Rules.PieceOnSquareWins[0]
	assert.Equal(t, 4, center.PopCount())
	assert.True(t, center.GetBit(int(board.ToIndex(3, 3))))
	assert.True(t, center.GetBit(int(board.ToIndex(4, 4))))
}

func TestParseEnPassantField(t *testing.T) {
	pos, err := Parse("8/8/8/8/4pP2/8/8/8 w - e3 0 1")
	require.NoError(t, err)
	sq, victim, ok := pos.EPSquare()
	require.True(t, ok)
	assert.Equal(t, int(board.ToIndex(4, 2)), sq)
	assert.Equal(t, int(board.ToIndex(4, 3)), victim)
}

func TestParseRejectsMalformedBoardField(t *testing.T) {
	_, err := Parse("this-is-not-a-board w - - 0 1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, protoerr.ErrInvalidFEN)
}

func TestParseRejectsShortRank(t *testing.T) {
	_, err := Parse("rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, protoerr.ErrInvalidFEN)
}

func TestParseUCIMoveBareAndEqualsFormsAgree(t *testing.T) {
	bare, err := ParseUCIMove("e7e8q")
	require.NoError(t, err)
	withEquals, err := ParseUCIMove("e7e8=Q")
	require.NoError(t, err)
	assert.Equal(t, bare, withEquals)
	assert.True(t, bare.HasPromotion)
	assert.Equal(t, piece.Queen, bare.Promotion)
	assert.Equal(t, board.Coord(4), bare.FromX)
	assert.Equal(t, board.Coord(6), bare.FromY)
	assert.Equal(t, board.Coord(4), bare.ToX)
	assert.Equal(t, board.Coord(7), bare.ToY)
}

func TestParseUCIMoveWithoutPromotion(t *testing.T) {
	mv, err := ParseUCIMove("e2e4")
	require.NoError(t, err)
	assert.False(t, mv.HasPromotion)
}
