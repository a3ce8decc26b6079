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

// Package position holds the full mutable board state — piece placement,
// occupancy, castling/en-passant/check-count bookkeeping and the Zobrist
// key — together with reversible make/unmake of a move. It depends on
// piece, board, bitboard, move, variant and zobrist, but never on movegen
// or search, so that those higher layers can both depend on position
// without an import cycle.
package position

import (
	"fmt"

	"github.com/arborian/protochess/internal/assert"
	"github.com/arborian/protochess/internal/bitboard"
	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/variant"
	"github.com/arborian/protochess/internal/zobrist"
)

// Position is the aggregate board state for all players.
type Position struct {
	Dimensions board.Dimensions
	Bounds     bitboard.Bitboard
	NumPlayers int
	WhosTurn   int
	Pieces     []*piece.Set
	Occupied   bitboard.Bitboard
	Rules      variant.Rules

	top *properties
}

// New builds an empty Position for numPlayers over the given dimensions,
// with no castling rights or pieces placed, and an initialized (but
// piece-free) Zobrist key. Callers populate it via PublicAddPiece or via
// internal/fen.
func New(dims board.Dimensions, numPlayers int, rules variant.Rules) *Position {
	pos := &Position{
		Dimensions: dims,
		Bounds:     dims.Bounds,
		NumPlayers: numPlayers,
		WhosTurn:   0,
		Pieces:     make([]*piece.Set, numPlayers),
		Rules:      rules,
		top:        &properties{},
	}
	for p := 0; p < numPlayers; p++ {
		pos.Pieces[p] = piece.NewSet(p)
	}
	pos.top.zobristKey ^= zobrist.TurnKey(0)
	return pos
}

// RegisterPieceType adds a fresh, empty instance of def to every player's
// piece set. Unlike internal/piece.Registry (used by FEN parsing, which
// mirrors odd-numbered players' templates vertically), this mirrors
// protochess-engine-rs's register_piecetype: a custom Definition is wired
// in verbatim for every player, on the assumption that its direction/delta
// fields are already absolute rather than "facing the player's forward".
func (pos *Position) RegisterPieceType(def piece.Definition) {
	for p := 0; p < pos.NumPlayers; p++ {
		pos.Pieces[p].Put(piece.New(def, p))
	}
}

// SetPieceType installs an already player-oriented Piece template (from
// piece.MakeKing/MakeRook/MakePawn or piece.Registry.Instantiate) into its
// owner's set, with no squares occupied yet. Used by the FEN parser and by
// tests that need per-player orientation (pawns, in particular) rather than
// RegisterPieceType's same-definition-for-every-player custom-piece
// semantics.
func (pos *Position) SetPieceType(p *piece.Piece) {
	pos.Pieces[p.Player].Put(p)
}

// Zobrist returns the current position's Zobrist key.
func (pos *Position) Zobrist() zobrist.Key {
	return pos.top.zobristKey
}

// Clone returns an independent copy of pos: every player's piece set is
// deep-copied so its bitboards can be mutated (by make/unmake) without
// affecting pos, while the properties stack pointed to by top is shared —
// safe because UnmakeMove only ever walks that stack's prev links back
// toward the root and never mutates a node it did not itself push, so two
// clones popping back past their shared fork point read the same immutable
// history without racing. Used to give each Lazy-SMP worker its own board
// to search while still sharing one transposition table.
func (pos *Position) Clone() *Position {
	np := &Position{
		Dimensions: pos.Dimensions,
		Bounds:     pos.Bounds,
		NumPlayers: pos.NumPlayers,
		WhosTurn:   pos.WhosTurn,
		Pieces:     make([]*piece.Set, pos.NumPlayers),
		Occupied:   pos.Occupied,
		Rules:      pos.Rules,
		top:        pos.top,
	}
	for p, ps := range pos.Pieces {
		np.Pieces[p] = ps.Clone()
	}
	return np
}

// InBounds reports whether (x, y) is a playable square.
func (pos *Position) InBounds(x, y board.Coord) bool {
	return pos.Dimensions.InBounds(x, y)
}

// PieceAt returns the piece occupying sq and its owner, or (nil, -1) if the
// square is empty.
func (pos *Position) PieceAt(sq int) (*piece.Piece, int) {
	for _, ps := range pos.Pieces {
		if p := ps.PieceAt(sq); p != nil {
			return p, ps.Player
		}
	}
	return nil, -1
}

// LeaderCount returns how many leader pieces (kings, typically) the given
// player still has on the board.
func (pos *Position) LeaderCount(player int) int {
	return pos.Pieces[player].LeaderCount()
}

// EPSquare returns the current en-passant target square and victim square,
// and whether one is set.
func (pos *Position) EPSquare() (sq, victim int, ok bool) {
	return pos.top.epSquare, pos.top.epVictim, pos.top.hasEPSquare
}

// CanCastle reports whether player still holds the castling right on the
// given side (0 = kingside, 1 = queenside).
func (pos *Position) CanCastle(player, side int) bool {
	return pos.top.castlingRights[player][side]
}

// SetCastlingRights seeds the initial castling rights, typically called
// once by the FEN parser before any move is made.
func (pos *Position) SetCastlingRights(player, side int, allowed bool) {
	if pos.top.castlingRights[player][side] != allowed {
		pos.top.zobristKey ^= zobrist.CastlingKey(player, side)
	}
	pos.top.castlingRights[player][side] = allowed
}

// SetTurn sets WhosTurn directly, keeping the Zobrist key's side-to-move
// component in sync. Only meant for board setup (internal/fen) before any
// move has been made; mid-game turn changes belong to MakeMove/UnmakeMove.
func (pos *Position) SetTurn(player int) {
	if pos.WhosTurn == player {
		return
	}
	pos.top.zobristKey ^= zobrist.TurnKey(pos.WhosTurn)
	pos.WhosTurn = player
	pos.top.zobristKey ^= zobrist.TurnKey(pos.WhosTurn)
}

// SetEPSquare seeds an initial en-passant target. Setup-only, like
// SetTurn/SetCastlingRights; MakeMove/UnmakeMove maintain it thereafter.
func (pos *Position) SetEPSquare(sq, victim int) {
	pos.top.hasEPSquare = true
	pos.top.epSquare = sq
	pos.top.epVictim = victim
}

// ClearEPSquare removes any initial en-passant target.
func (pos *Position) ClearEPSquare() {
	pos.top.hasEPSquare = false
}

// RecomputeZobristFromScratch rebuilds the current properties record's
// Zobrist key from the board's actual piece placement, side to move,
// castling rights and en-passant square (spec.md's invariant that the key is
// always re-derivable from visible state). internal/fen calls this once
// after placing every piece by direct bitboard mutation, since pushing one
// properties record per piece via PublicAddPiece during setup would be both
// wasteful and would pollute RepetitionCount/UnmakeMove with meaningless
// pre-game history.
func (pos *Position) RecomputeZobristFromScratch() {
	var key zobrist.Key
	for _, ps := range pos.Pieces {
		for _, p := range ps.All() {
			bb := p.Bitboard
			bb.ForEach(func(sq int) {
				key ^= zobrist.PieceSquareKey(p.Def.ID, ps.Player, sq)
			})
		}
	}
	key ^= zobrist.TurnKey(pos.WhosTurn)
	for player := 0; player < pos.NumPlayers; player++ {
		for side := 0; side < 2; side++ {
			if pos.top.castlingRights[player][side] {
				key ^= zobrist.CastlingKey(player, side)
			}
		}
	}
	if pos.top.hasEPSquare {
		epx, _ := board.FromIndex(board.Index(pos.top.epSquare))
		key ^= zobrist.EnPassantFileKey(int(epx))
	}
	pos.top.zobristKey = key
	pos.updateOccupied()
}

// TimesInCheck returns the running count of checks delivered against
// player, used by check-limit variants.
func (pos *Position) TimesInCheck(player int) int {
	return pos.top.timesInCheck[player]
}

// NoteCheck increments player's check counter. Called by the move generator
// immediately after MakeMove, since determining "is the mover's opponent
// now in check" requires the attacked-square query that lives in
// internal/movegen (position itself has no legality/attack logic, to avoid
// an import cycle between position and movegen).
func (pos *Position) NoteCheck(player int) {
	pos.top.timesInCheck[player]++
}

// RepetitionCount returns how many records in the properties stack
// (including the current one) share the current Zobrist key.
func (pos *Position) RepetitionCount() int {
	n := 0
	key := pos.top.zobristKey
	for p := pos.top; p != nil; p = p.prev {
		if p.zobristKey == key {
			n++
		}
	}
	return n
}

// addPiece sets the bit for a piece of kind pieceID, owned by owner, at
// index, assuming that kind is already registered for that player. No-op if
// it is not (mirrors protochess-engine-rs's add_piece, which silently drops
// unregistered custom kinds rather than erroring in the hot path).
func (pos *Position) addPiece(owner, pieceID, index int) {
	p := pos.Pieces[owner].Get(pieceID)
	if p == nil {
		return
	}
	p.Bitboard.SetBit(index)
}

// removePiece clears whichever piece occupies index. The caller must know
// a piece is actually there.
func (pos *Position) removePiece(index int) {
	p, _ := pos.PieceAt(index)
	assert.Assert(p != nil, "position: removePiece called on empty square %d", index)
	if p != nil {
		p.Bitboard.ClearBit(index)
	}
}

// movePiece relocates whichever piece occupies from to to, in place.
func (pos *Position) movePiece(from, to int) {
	p, _ := pos.PieceAt(from)
	assert.Assert(p != nil, "position: movePiece called with nothing on square %d", from)
	if p == nil {
		return
	}
	p.Bitboard.ClearBit(from)
	p.Bitboard.SetBit(to)
}

// updateOccupied recomputes every player's and the position's combined
// occupancy bitboard. Must be called after any direct piece mutation.
func (pos *Position) updateOccupied() {
	pos.Occupied = bitboard.Empty
	for _, ps := range pos.Pieces {
		ps.RecomputeOccupied()
		pos.Occupied = pos.Occupied.Or(ps.Occupied)
	}
}

// PublicAddPiece adds a piece outside of move-making (board setup, FEN
// parsing, UI edits): it is recorded as its own properties entry so it can
// be undone like any other change, but it carries no Move.
func (pos *Position) PublicAddPiece(owner, pieceID, index int) {
	newProps := pos.top.clone()
	newProps.zobristKey ^= zobrist.PieceSquareKey(pieceID, owner, index)
	pos.addPiece(owner, pieceID, index)
	pos.updateOccupied()
	newProps.prev = pos.top
	pos.top = newProps
}

// PublicRemovePiece removes whatever piece sits at index outside of
// move-making.
func (pos *Position) PublicRemovePiece(index int) {
	p, owner := pos.PieceAt(index)
	if p == nil {
		return
	}
	newProps := pos.top.clone()
	newProps.zobristKey ^= zobrist.PieceSquareKey(p.Def.ID, owner, index)
	pos.removePiece(index)
	pos.updateOccupied()
	newProps.prev = pos.top
	pos.top = newProps
}

// MakeMove applies mv, pushing a new properties record. Runs in O(moved
// pieces) time; see spec.md §4.D for the numbered steps this follows.
func (pos *Position) MakeMove(mv move.Move) {
	myPlayer := pos.WhosTurn
	newProps := pos.top.clone()

	// 1. side-to-move zobrist swap.
	newProps.zobristKey ^= zobrist.TurnKey(pos.WhosTurn)
	pos.WhosTurn = (pos.WhosTurn + 1) % pos.NumPlayers
	newProps.zobristKey ^= zobrist.TurnKey(pos.WhosTurn)

	if mv.Type == move.Null {
		if pos.top.hasEPSquare {
			epx, _ := board.FromIndex(board.Index(pos.top.epSquare))
			newProps.zobristKey ^= zobrist.EnPassantFileKey(int(epx))
		}
		newProps.hasEPSquare = false
		newProps.movePlayed = mv
		newProps.prev = pos.top
		pos.top = newProps
		return
	}

	// Looked up before any removal so it still resolves even when the
	// attacker itself is about to be blown up by an atomic explosion.
	fromPiece, _ := pos.PieceAt(mv.From)
	assert.Assert(fromPiece != nil, "position: move from empty square %d", mv.From)
	fromPieceType := fromPiece.Def.ID

	explodedAttacker := false

	// 3. dispatch on type.
	switch mv.Type {
	case move.Capture, move.PromotionCapture:
		captured, owner := pos.PieceAt(mv.Target)
		assert.Assert(captured != nil, "position: capture move with no piece on target square %d", mv.Target)
		newProps.zobristKey ^= zobrist.PieceSquareKey(captured.Def.ID, owner, mv.Target)
		newProps.hasCapture = true
		newProps.capturedPiece = capturedPiece{id: captured.Def.ID, owner: owner, index: mv.Target}
		pos.removePiece(mv.Target)
		pos.revokeRookCastlingOnCorner(captured, owner, mv.Target, newProps)

		if pos.Rules.ExplosionOnCapture {
			explodedAttacker = pos.explode(mv.From, mv.To, myPlayer, newProps)
		}
	case move.KingsideCastle:
		rookFrom := mv.Target
		x, y := board.FromIndex(board.Index(mv.To))
		rookTo := int(board.ToIndex(x-1, y))
		newProps.zobristKey ^= zobrist.PieceSquareKey(piece.Rook, myPlayer, rookFrom)
		newProps.zobristKey ^= zobrist.PieceSquareKey(piece.Rook, myPlayer, rookTo)
		pos.movePiece(rookFrom, rookTo)
		newProps.movedPieceCastle = true
		pos.disableCastling(myPlayer, 0, newProps)
		pos.disableCastling(myPlayer, 1, newProps)
	case move.QueensideCastle:
		rookFrom := mv.Target
		x, y := board.FromIndex(board.Index(mv.To))
		rookTo := int(board.ToIndex(x+1, y))
		newProps.zobristKey ^= zobrist.PieceSquareKey(piece.Rook, myPlayer, rookFrom)
		newProps.zobristKey ^= zobrist.PieceSquareKey(piece.Rook, myPlayer, rookTo)
		pos.movePiece(rookFrom, rookTo)
		newProps.movedPieceCastle = true
		pos.disableCastling(myPlayer, 0, newProps)
		pos.disableCastling(myPlayer, 1, newProps)
	}

	if !explodedAttacker {
		// 4. move the main piece from -> to.
		newProps.zobristKey ^= zobrist.PieceSquareKey(fromPieceType, myPlayer, mv.From)
		newProps.zobristKey ^= zobrist.PieceSquareKey(fromPieceType, myPlayer, mv.To)
		pos.movePiece(mv.From, mv.To)

		// 5. promotion.
		if mv.IsPromotion() {
			newProps.zobristKey ^= zobrist.PieceSquareKey(fromPieceType, myPlayer, mv.To)
			newProps.hasPromoteFrom = true
			newProps.promoteFrom = fromPieceType
			pos.removePiece(mv.To)
			newProps.zobristKey ^= zobrist.PieceSquareKey(mv.PromotionPiece, myPlayer, mv.To)
			pos.addPiece(myPlayer, mv.PromotionPiece, mv.To)
		}
	}
	// When explodedAttacker is true, explode() already removed the mover
	// from mv.From and XORed its key out; there is no square to place it on.

	// 6. en-passant tracking.
	if pos.top.hasEPSquare {
		epx, _ := board.FromIndex(board.Index(pos.top.epSquare))
		newProps.zobristKey ^= zobrist.EnPassantFileKey(int(epx))
	}
	x1, y1 := board.FromIndex(board.Index(mv.From))
	x2, y2 := board.FromIndex(board.Index(mv.To))
	dy := int(y2) - int(y1)
	if dy < 0 {
		dy = -dy
	}
	if fromPieceType == piece.Pawn && dy == 2 && x1 == x2 {
		var epRank board.Coord
		if y2 > y1 {
			epRank = y2 - 1
		} else {
			epRank = y2 + 1
		}
		newProps.hasEPSquare = true
		newProps.epSquare = int(board.ToIndex(x1, epRank))
		newProps.epVictim = mv.To
		newProps.zobristKey ^= zobrist.EnPassantFileKey(int(x1))
	} else {
		newProps.hasEPSquare = false
	}

	// 7. castling-rights maintenance for the moving piece.
	if newProps.castlingRights[myPlayer][0] || newProps.castlingRights[myPlayer][1] {
		switch {
		case fromPieceType == piece.King:
			pos.disableCastling(myPlayer, 0, newProps)
			pos.disableCastling(myPlayer, 1, newProps)
		case fromPieceType == piece.Rook:
			if x1 >= pos.Dimensions.Width/2 {
				pos.disableCastling(myPlayer, 0, newProps)
			} else {
				pos.disableCastling(myPlayer, 1, newProps)
			}
		}
	}

	newProps.movePlayed = mv
	newProps.prev = pos.top
	pos.top = newProps

	// 9. recompute occupancy. (Check-count, step 8, is applied by the move
	// generator via NoteCheck once it has computed whether this move left
	// the opponent in check.)
	pos.updateOccupied()
}

// disableCastling clears player's castling right on side, XORing its
// Zobrist key out if it was set.
func (pos *Position) disableCastling(player, side int, newProps *properties) {
	if newProps.castlingRights[player][side] {
		newProps.zobristKey ^= zobrist.CastlingKey(player, side)
		newProps.castlingRights[player][side] = false
	}
}

// revokeRookCastlingOnCorner revokes owner's castling right on the side
// matching a captured rook's file, when that rook sat on the board's edge
// file and still held the right — a captured corner rook can no longer
// castle, even though it was never the mover's own piece.
func (pos *Position) revokeRookCastlingOnCorner(captured *piece.Piece, owner, index int, newProps *properties) {
	if captured.Def.ID != piece.Rook {
		return
	}
	x, _ := board.FromIndex(board.Index(index))
	if x == 0 {
		pos.disableCastling(owner, 1, newProps)
	} else if x == pos.Dimensions.Width-1 {
		pos.disableCastling(owner, 0, newProps)
	}
}

// explode implements atomic chess's capture semantics: the capturing piece
// itself and every non-pawn piece within one square of capturedAt are
// removed unconditionally, regardless of how far the capturer traveled to
// get there. Returns true (the attacker always detonates), signaling that
// MakeMove must not go on to place it at its destination square.
func (pos *Position) explode(attackerFrom, capturedAt, myPlayer int, newProps *properties) bool {
	attacker, attackerOwner := pos.PieceAt(attackerFrom)
	assert.Assert(attacker != nil, "position: explode called with no attacker on square %d", attackerFrom)
	newProps.zobristKey ^= zobrist.PieceSquareKey(attacker.Def.ID, attackerOwner, attackerFrom)
	newProps.explodedPieces = append(newProps.explodedPieces, capturedPiece{id: attacker.Def.ID, owner: attackerOwner, index: attackerFrom})
	pos.removePiece(attackerFrom)

	cx, cy := board.FromIndex(board.Index(capturedAt))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := int(cx)+dx, int(cy)+dy
			if nx < 0 || nx > 15 || ny < 0 || ny > 15 {
				continue
			}
			sq := int(board.ToIndex(board.Coord(nx), board.Coord(ny)))
			p, owner := pos.PieceAt(sq)
			if p == nil || p.Def.ID == piece.Pawn {
				continue
			}
			newProps.zobristKey ^= zobrist.PieceSquareKey(p.Def.ID, owner, sq)
			newProps.explodedPieces = append(newProps.explodedPieces, capturedPiece{id: p.Def.ID, owner: owner, index: sq})
			pos.removePiece(sq)
		}
	}
	return true
}

// UnmakeMove reverses the most recent MakeMove, popping its properties
// record. Panics (via assert, debug builds only) if called with no move to
// undo.
func (pos *Position) UnmakeMove() {
	assert.Assert(pos.top.prev != nil, "position: UnmakeMove called with empty properties stack")

	if pos.WhosTurn == 0 {
		pos.WhosTurn = pos.NumPlayers - 1
	} else {
		pos.WhosTurn--
	}
	myPlayer := pos.WhosTurn
	mv := pos.top.movePlayed

	if mv.Type == move.Null {
		pos.top = pos.top.prev
		return
	}

	explodedAttacker := pos.Rules.ExplosionOnCapture && mv.IsCapture()

	if !explodedAttacker {
		if mv.IsPromotion() {
			pos.removePiece(mv.To)
			pos.addPiece(myPlayer, pos.top.promoteFrom, mv.To)
		}
		pos.movePiece(mv.To, mv.From)
	}

	if pos.Rules.ExplosionOnCapture && mv.IsCapture() {
		// restore explosion casualties before the direct capture victim, so
		// a captured rook and its neighbors both land back before anything
		// re-derives castling state from board contents.
		for i := len(pos.top.explodedPieces) - 1; i >= 0; i-- {
			ep := pos.top.explodedPieces[i]
			pos.addPiece(ep.owner, ep.id, ep.index)
		}
	}

	switch mv.Type {
	case move.Capture, move.PromotionCapture:
		if pos.top.hasCapture {
			cp := pos.top.capturedPiece
			pos.addPiece(cp.owner, cp.id, cp.index)
		}
	case move.KingsideCastle:
		rookFrom := mv.Target
		x, y := board.FromIndex(board.Index(mv.To))
		rookTo := int(board.ToIndex(x-1, y))
		pos.movePiece(rookTo, rookFrom)
	case move.QueensideCastle:
		rookFrom := mv.Target
		x, y := board.FromIndex(board.Index(mv.To))
		rookTo := int(board.ToIndex(x+1, y))
		pos.movePiece(rookTo, rookFrom)
	}

	pos.top = pos.top.prev
	pos.updateOccupied()
}

// String renders an ASCII board for debugging, bottom rank first, following
// frankkopp-FrankyGo's StringBoard convention of rank/file labels around the
// edges.
func (pos *Position) String() string {
	out := ""
	for y := int(pos.Dimensions.Height) - 1; y >= 0; y-- {
		out += fmt.Sprintf("%2d ", y)
		for x := board.Coord(0); x < pos.Dimensions.Width; x++ {
			sq := int(board.ToIndex(x, board.Coord(y)))
			if p, _ := pos.PieceAt(sq); p != nil {
				out += fmt.Sprintf("%c ", p.Def.CharRep)
			} else if pos.InBounds(x, board.Coord(y)) {
				out += ". "
			} else {
				out += "  "
			}
		}
		out += "\n"
	}
	out += "   "
	for x := board.Coord(0); x < pos.Dimensions.Width; x++ {
		out += fmt.Sprintf("%d ", x)
	}
	return out
}
