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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/fen"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/piece"
)

func init() {
	config.Setup()
}

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Zero(t, e.Evaluate(pos), "a symmetric starting position should evaluate to 0 for the side to move")
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Positive(t, e.Evaluate(pos), "the side with an extra queen should score better")
}

func TestMaterialValueMatchesConfiguredScores(t *testing.T) {
	dims := board.NewDimensions(8, 8)
	assert.EqualValues(t, config.Settings.Eval.QueenScore, MaterialValue(piece.MakeQueen(piece.Queen, 0).Def))
	assert.EqualValues(t, config.Settings.Eval.PawnScore, MaterialValue(piece.MakePawn(piece.Pawn, 0, dims, nil).Def))
}

func TestScoreMoveRanksCapturesAboveQuietMoves(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/8/3p4/8/2Q5/4K3 w - - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	var killers [2]move.Move
	queenSq := int(board.ToIndex(2, 1)) // c2
	pawnSq := int(board.ToIndex(3, 3))  // d4
	capture := move.Move{From: queenSq, To: pawnSq, Target: pawnSq, Type: move.Capture}
	quiet := move.Move{Type: move.Quiet}

	captureScore := e.ScoreMove(pos, capture, killers, 0)
	quietScore := e.ScoreMove(pos, quiet, killers, 0)
	assert.Greater(t, captureScore, quietScore)
}

func TestCanDoNullMoveFalseWithOnlyKingLeft(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, CanDoNullMove(pos))
}
