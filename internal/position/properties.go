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
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/zobrist"
)

// capturedPiece names one piece removed from the board by a move, either as
// the move's direct target or as atomic-explosion collateral.
type capturedPiece struct {
	id, owner, index int
}

// properties is one ply's worth of hard-to-recompute Position state:
// everything make_move touches that unmake_move must restore exactly.
// Instances form a single-linked, single-owner stack (prev), mirroring
// protochess-engine-rs's Arc<PositionProperties> chain rather than the
// fixed-size ring-buffer history arrays frankkopp-FrankyGo's Position uses —
// spec.md is explicit that this state is "a stack... single-owner chain,
// never a cycle", so the linked-record design is followed here in place of
// the teacher's array, even though the array is the teacher's normal idiom
// for undo history.
type properties struct {
	zobristKey zobrist.Key
	movePlayed move.Move

	hasCapture    bool
	capturedPiece capturedPiece

	hasPromoteFrom bool
	promoteFrom    int

	hasEPSquare bool
	epSquare    int
	epVictim    int

	// castlingRights[player][side]; side 0 = kingside, 1 = queenside.
	castlingRights [zobrist.MaxPlayers][2]bool
	movedPieceCastle bool

	timesInCheck [zobrist.MaxPlayers]int

	explodedPieces []capturedPiece

	prev *properties
}

// clone copies the scalar/array fields of p into a fresh record ready to
// become the new top of the stack. explodedPieces and hasCapture/
// hasPromoteFrom reset: those only apply to the move about to be made, not
// the one that produced p.
func (p *properties) clone() *properties {
	np := *p
	np.explodedPieces = nil
	np.hasCapture = false
	np.hasPromoteFrom = false
	np.movedPieceCastle = false
	np.prev = nil
	return &np
}
