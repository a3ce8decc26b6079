//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the tunable knobs of the material + PST evaluator.
type evalConfiguration struct {
	// Material score (centipawns) per reserved piece kind
	KingScore   int32
	QueenScore  int32
	RookScore   int32
	BishopScore int32
	KnightScore int32
	PawnScore   int32

	// Combined non-leader material threshold for the endgame. The evaluator
	// does not read it: it blends middlegame and endgame tables by a
	// continuous phase fraction (eval.gamePhaseFraction) instead.
	EndgameThreshold int32

	// Penalty applied per recorded check against a player (Position.TimesInCheck),
	// in every game mode
	CheckPenalty int32

	// Move-ordering scores
	CaptureBaseScore int32
	KillerMoveScore  int32
	PromotionScore   int32
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.KingScore = 0 // leaders are priceless; never summed into material trades
	Settings.Eval.QueenScore = 900
	Settings.Eval.RookScore = 500
	Settings.Eval.BishopScore = 300
	Settings.Eval.KnightScore = 300
	Settings.Eval.PawnScore = 100

	Settings.Eval.EndgameThreshold = 3000

	Settings.Eval.CheckPenalty = 512

	Settings.Eval.CaptureBaseScore = 10000
	Settings.Eval.KillerMoveScore = 9000
	Settings.Eval.PromotionScore = 1000
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
