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

// Package eval scores a Position for the alpha-beta searcher: material plus
// a generalized, board-size-independent piece-square table, interpolated
// between midgame and endgame values by the position's current game phase,
// mirroring frankkopp-FrankyGo's Score/PsqMidValue/PsqEndValue split
// (internal/evaluator/evaluator.go, internal/position/position.go) but
// keyed off piece.Definition's movement shape rather than FrankyGo's fixed
// 8x8 PieceType tables, since boards here range up to 16x16 and pieces are
// data rather than a closed enum. The move-ordering heuristics and the
// check penalty are grounded on protochess-engine-rs's searcher/eval.rs.
package eval

// Score carries a value for the middlegame and a value for the endgame; the
// two are blended by the position's game-phase fraction before use, the same
// split frankkopp-FrankyGo's Score type (internal/evaluator) keeps.
type Score struct {
	Mid int
	End int
}

// Add accumulates o into s in place.
func (s *Score) Add(o Score) {
	s.Mid += o.Mid
	s.End += o.End
}

// Sub subtracts o from s in place.
func (s *Score) Sub(o Score) {
	s.Mid -= o.Mid
	s.End -= o.End
}

// Interpolate blends Mid and End by phaseFrac, 1.0 meaning "fully opening",
// 0.0 meaning "fully endgame".
func (s Score) Interpolate(phaseFrac float64) int {
	return int(float64(s.Mid)*phaseFrac + float64(s.End)*(1-phaseFrac))
}
