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

// Package protoerr holds the engine's sentinel error values. Kept deliberately
// small, the same way the teacher's internal/position and internal/search
// lean on plain errors.New/fmt.Errorf rather than a dedicated errors package:
// these exist for the external-interface boundary (FEN parsing, applying a
// candidate move) rather than the hot search path, which returns plain
// values (see internal/search's timedOut/Result handling) instead of
// propagating errors through recursion.
package protoerr

import (
	"errors"
	"fmt"

	"github.com/arborian/protochess/internal/move"
)

// ErrInvalidFEN is wrapped by internal/fen's parse errors.
var ErrInvalidFEN = errors.New("protoerr: invalid fen")

// ErrGameOver is returned by an operation that requires a move to still be
// possible (e.g. applying a candidate move) when the position already has
// none.
var ErrGameOver = errors.New("protoerr: game is already over")

// ErrInvariantViolation marks a debug-build assertion failure (see
// internal/assert), surfaced as an error rather than a panic so a caller
// running with assertions enabled can choose how to react.
var ErrInvariantViolation = errors.New("protoerr: invariant violation")

// IllegalMove reports that Move is not among the position's legal moves at
// the time it was attempted.
type IllegalMove struct {
	Move move.Move
}

func (e IllegalMove) Error() string {
	return fmt.Sprintf("protoerr: illegal move %+v", e.Move)
}
