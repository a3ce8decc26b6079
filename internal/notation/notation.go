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

// Package notation renders moves as long-algebraic (UCI) and standard
// algebraic (SAN) strings for PGN output. Square naming mirrors
// internal/fen's parser in reverse: file letters 'a'.., ranks 1-indexed.
package notation

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/position"
)

// SquareName renders a packed square index as a file letter plus a
// 1-indexed rank, e.g. index 4 (x=4, y=0) as "e1".
func SquareName(sq int) string {
	x, y := board.FromIndex(board.Index(sq))
	return string(rune('a'+int(x))) + strconv.Itoa(int(y)+1)
}

// UCI renders mv as a long-algebraic move string: from-square, to-square,
// and for promotions a lowercase promoted-piece letter, e.g. "e2e4" or
// "e7e8q". pos must be the position before mv is applied, so the promoted
// piece's definition (and its CharRep) can be looked up for the mover.
func UCI(pos *position.Position, mv move.Move) string {
	var b strings.Builder
	b.WriteString(SquareName(mv.From))
	b.WriteString(SquareName(mv.To))
	if mv.IsPromotion() {
		if def := pos.Pieces[pos.WhosTurn].Get(mv.PromotionPiece); def != nil {
			b.WriteRune(unicode.ToLower(def.Def.CharRep))
		}
	}
	return b.String()
}

// SAN renders mv as standard algebraic notation: optional piece letter,
// optional disambiguation, capture marker, destination square, promotion
// suffix, or "O-O"/"O-O-O" for castling. pos must be the position before mv
// is applied; legal is the full set of legal moves in that position (used
// for disambiguation against same-kind pieces that could reach the same
// destination).
//
// Per protochess-engine-rs's main.rs comment, a generalized piece's pawn
// capture is not special-cased here and so omits the customary file
// prefix ("xe5" rather than "dxe5"); FixPawnCapture repairs that afterward,
// the same two-step split the original implementation uses.
func SAN(pos *position.Position, mv move.Move, legal []move.Move) string {
	if mv.IsCastle() {
		if mv.Type == move.KingsideCastle {
			return "O-O"
		}
		return "O-O-O"
	}

	mover, owner := pos.PieceAt(mv.From)
	if mover == nil {
		return SquareName(mv.From) + SquareName(mv.To)
	}

	pieceLetter := ""
	if mover.Def.ID != piece.Pawn {
		pieceLetter = string(unicode.ToUpper(mover.Def.CharRep))
	}

	captureMark := ""
	if mv.IsCapture() {
		captureMark = "x"
	}

	var b strings.Builder
	b.WriteString(pieceLetter)
	b.WriteString(disambiguate(pos, mv, legal, mover, owner))
	b.WriteString(captureMark)
	b.WriteString(SquareName(mv.To))

	if mv.IsPromotion() {
		if def := pos.Pieces[owner].Get(mv.PromotionPiece); def != nil {
			b.WriteString("=")
			b.WriteRune(unicode.ToUpper(def.Def.CharRep))
		}
	}

	return b.String()
}

// disambiguate returns the file letter, rank digit, or full square needed
// to distinguish mv from any other legal move in legal that brings a piece
// of the same kind, owned by the same player, to the same destination
// square — empty if no such move exists.
func disambiguate(pos *position.Position, mv move.Move, legal []move.Move, mover *piece.Piece, owner int) string {
	fromX, fromY := board.FromIndex(board.Index(mv.From))
	ambiguous, sameFile, sameRank := false, false, false

	for _, other := range legal {
		if other == mv || other.To != mv.To || other.From == mv.From || other.IsCastle() {
			continue
		}
		otherPiece, otherOwner := pos.PieceAt(other.From)
		if otherPiece == nil || otherOwner != owner || otherPiece.Def.ID != mover.Def.ID {
			continue
		}
		ambiguous = true
		otherX, otherY := board.FromIndex(board.Index(other.From))
		if otherX == fromX {
			sameFile = true
		}
		if otherY == fromY {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(rune('a' + int(fromX)))
	case !sameRank:
		return strconv.Itoa(int(fromY) + 1)
	default:
		return SquareName(mv.From)
	}
}

// FixPawnCapture prepends the capturing pawn's file letter to san if SAN
// omitted it (see SAN's doc comment), matching protochess-engine-rs's
// fix_notation exactly: a pawn capture's generalized notation starts with
// "x" whenever the file prefix was left out, so that is the repair trigger.
func FixPawnCapture(mv move.Move, san string) string {
	if !strings.HasPrefix(san, "x") {
		return san
	}
	x, _ := board.FromIndex(board.Index(mv.From))
	return string(rune('a'+int(x))) + san
}
