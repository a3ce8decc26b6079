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

// Package fen is an external collaborator (spec.md §6): it builds a
// position.Position from Extended FEN text and has no callers inside the
// core move-generation/search packages. Board-field scanning is grounded on
// frankkopp-FrankyGo's internal/position setupBoard — space-separated
// fields, rank-by-rank scan with '/' separators and digit-run empty
// squares, regex-validated fields, explicit errors rather than panics for
// malformed input — generalized to boards up to 16x16 (multi-digit empty
// runs, a trailing variant-name suffix word) and to more than two players.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/arborian/protochess/internal/bitboard"
	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/piece"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/protoerr"
	"github.com/arborian/protochess/internal/variant"
)

// StartingPosition is the standard chess starting position in Extended FEN.
const StartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	regexBoard     = regexp.MustCompile(`^[0-9A-Za-z/]+$`)
	regexTurn      = regexp.MustCompile(`(?i)^([wb]|[0-9]+)$`)
	regexCastling  = regexp.MustCompile(`^(-|[A-Za-z]+)$`)
	regexEnPassant = regexp.MustCompile(`(?i)^(-|[a-p][0-9]{1,2})$`)
)

// Parse parses an Extended FEN string into a ready-to-play *position.Position
// sized for a standard 8x8, two-player board.
func Parse(fenStr string) (*position.Position, error) {
	return ParseSized(fenStr, board.NewDimensions(8, 8), 2)
}

// ParseSized generalizes Parse to arbitrary board Dimensions and player
// counts, per spec.md §6's `parse_fen(str) -> Position`. Unknown rank
// characters are treated as custom piece kinds and must already be
// registered; this entry point only has the six standard kinds available,
// so use ParseWithRegistry for variant/fairy setups.
func ParseSized(fenStr string, dims board.Dimensions, numPlayers int) (*position.Position, error) {
	return ParseWithRegistry(fenStr, dims, numPlayers, piece.NewRegistry())
}

// ParseWithRegistry is ParseSized with an explicit piece Registry, letting
// callers pre-register custom piece kinds (via Registry.Register) before
// parsing a FEN whose rank strings name them.
func ParseWithRegistry(fenStr string, dims board.Dimensions, numPlayers int, reg *piece.Registry) (*position.Position, error) {
	fenStr = strings.TrimSpace(fenStr)
	if fenStr == "" {
		return nil, fmt.Errorf("%w: empty string", protoerr.ErrInvalidFEN)
	}
	fields := strings.Fields(fenStr)

	mode := variant.Standard
	if len(fields) >= 7 {
		m, err := variant.ParseGameMode(fields[6])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", protoerr.ErrInvalidFEN, err)
		}
		mode = m
	}
	rules := variant.ForGameMode(mode, numPlayers)
	rules.PieceOnSquareWins = WinSquaresFor(mode, dims, numPlayers)

	pos := position.New(dims, numPlayers, rules)

	if !regexBoard.MatchString(fields[0]) {
		return nil, fmt.Errorf("%w: malformed board field %q", protoerr.ErrInvalidFEN, fields[0])
	}
	if err := parseRanks(pos, reg, fields[0], dims); err != nil {
		return nil, fmt.Errorf("%w: %v", protoerr.ErrInvalidFEN, err)
	}
	// Pawns promote into Queen/Rook/Bishop/Knight, so those kinds are
	// installed (empty) for every player even when the board field names
	// none of them; MakeMove can only place a kind the player already has.
	for player := 0; player < numPlayers; player++ {
		for _, ch := range "QRBN" {
			inst, err := reg.Instantiate(ch, player)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", protoerr.ErrInvalidFEN, err)
			}
			if pos.Pieces[player].Get(inst.Def.ID) == nil {
				pos.SetPieceType(inst)
			}
		}
	}

	turn := 0
	if len(fields) >= 2 {
		t, err := parseTurn(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", protoerr.ErrInvalidFEN, err)
		}
		turn = t
	}
	if turn >= numPlayers {
		return nil, fmt.Errorf("%w: turn field %q names a player beyond num_players=%d", protoerr.ErrInvalidFEN, fields[1], numPlayers)
	}
	pos.SetTurn(turn)

	if len(fields) >= 3 {
		if err := parseCastling(pos, fields[2], numPlayers); err != nil {
			return nil, fmt.Errorf("%w: %v", protoerr.ErrInvalidFEN, err)
		}
	}

	if len(fields) >= 4 {
		if err := parseEnPassant(pos, fields[3], dims); err != nil {
			return nil, fmt.Errorf("%w: %v", protoerr.ErrInvalidFEN, err)
		}
	}

	// Fields 5 (half-move clock) and 6 (full-move number) are accepted for
	// FEN-compatibility but not carried: the fifty-move/threefold-by-clock
	// draw machinery they'd feed is explicitly dropped (spec.md covers
	// Zobrist-based repetition only), so there is nowhere in Position for
	// either counter to do useful work.

	pos.RecomputeZobristFromScratch()
	return pos, nil
}

func parseTurn(s string) (int, error) {
	if !regexTurn.MatchString(s) {
		return 0, fmt.Errorf("fen: malformed turn field %q", s)
	}
	switch strings.ToLower(s) {
	case "w":
		return 0, nil
	case "b":
		return 1, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("fen: malformed turn field %q", s)
		}
		return n, nil
	}
}

// parseRanks scans the board field rank-by-rank from the top (highest y)
// down, per the standard FEN convention, handling '/' rank separators and
// contiguous digit runs as empty-square counts (unbounded width, unlike
// single-chess-digit FEN, since boards go up to 16 wide).
func parseRanks(pos *position.Position, reg *piece.Registry, boardField string, dims board.Dimensions) error {
	rows := strings.Split(boardField, "/")
	if len(rows) != int(dims.Height) {
		return fmt.Errorf("fen: board field has %d ranks, want %d", len(rows), dims.Height)
	}
	b := newBuilder(pos, reg, dims)
	for i, row := range rows {
		y := dims.Height - 1 - board.Coord(i)
		x := board.Coord(0)
		digits := 0
		flushDigits := func() {
			x += board.Coord(digits)
			digits = 0
		}
		for _, ch := range row {
			if unicode.IsDigit(ch) {
				digits = digits*10 + int(ch-'0')
				continue
			}
			flushDigits()
			if x >= dims.Width {
				return fmt.Errorf("fen: rank %d overflows board width %d", i, dims.Width)
			}
			player := 0
			if unicode.IsLower(ch) {
				player = 1
			}
			if player >= pos.NumPlayers {
				return fmt.Errorf("fen: rank %d names player %d beyond num_players=%d", i, player, pos.NumPlayers)
			}
			if err := b.place(ch, player, int(board.ToIndex(x, y))); err != nil {
				return err
			}
			x++
		}
		flushDigits()
		if x != dims.Width {
			return fmt.Errorf("fen: rank %d covers %d files, want %d", i, x, dims.Width)
		}
	}
	return nil
}

func parseCastling(pos *position.Position, field string, numPlayers int) error {
	if !regexCastling.MatchString(field) {
		return fmt.Errorf("fen: malformed castling field %q", field)
	}
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			pos.SetCastlingRights(0, 0, true)
		case 'Q':
			pos.SetCastlingRights(0, 1, true)
		case 'k', 'q':
			if numPlayers < 2 {
				return fmt.Errorf("fen: castling field %q names player 1 beyond num_players=%d", field, numPlayers)
			}
			if ch == 'k' {
				pos.SetCastlingRights(1, 0, true)
			} else {
				pos.SetCastlingRights(1, 1, true)
			}
		default:
			return fmt.Errorf("fen: castling field %q has unsupported letter %q; only the classic KQkq pairing is addressable from FEN, use Position.SetCastlingRights directly for more than two players", field, ch)
		}
	}
	return nil
}

func parseEnPassant(pos *position.Position, field string, dims board.Dimensions) error {
	if !regexEnPassant.MatchString(field) {
		return fmt.Errorf("fen: malformed en-passant field %q", field)
	}
	if field == "-" {
		return nil
	}
	sq, err := parseSquare(field, dims)
	if err != nil {
		return err
	}
	x, y := board.FromIndex(board.Index(sq))
	// The victim pawn sits one rank beyond the target square, toward the
	// middle of the board — the same ±1 relationship MakeMove derives from
	// an actual double push.
	var victimY board.Coord
	if y < dims.Height/2 {
		victimY = y + 1
	} else {
		victimY = y - 1
	}
	pos.SetEPSquare(sq, int(board.ToIndex(x, victimY)))
	return nil
}

func parseSquare(s string, dims board.Dimensions) (int, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("fen: malformed square %q", s)
	}
	file := board.Coord(unicode.ToLower(rune(s[0])) - 'a')
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("fen: malformed square %q", s)
	}
	y := board.Coord(rank - 1)
	if !dims.InBounds(file, y) {
		return 0, fmt.Errorf("fen: square %q is outside the board", s)
	}
	return int(board.ToIndex(file, y)), nil
}

// WinSquaresFor computes the Rules.PieceOnSquareWins bitboards a GameMode
// implies, once board Dimensions are known — variant.ForGameMode leaves
// these empty since it has no Dimensions to work with. King-of-the-Hill's
// targets are the four center squares (shared by every player, since any
// player reaching the center wins for themselves); Racing Kings' target is
// the board's far rank (also shared — both sides race for the same rank,
// per the real variant's rule rather than mirrored halves).
func WinSquaresFor(mode variant.GameMode, dims board.Dimensions, numPlayers int) []bitboard.Bitboard {
	out := make([]bitboard.Bitboard, numPlayers)
	switch mode {
	case variant.KingOfTheHill:
		var center bitboard.Bitboard
		for _, x := range [2]board.Coord{dims.Width/2 - 1, dims.Width / 2} {
			for _, y := range [2]board.Coord{dims.Height/2 - 1, dims.Height / 2} {
				center.SetBit(int(board.ToIndex(x, y)))
			}
		}
		for p := range out {
			out[p] = center
		}
	case variant.RacingKings:
		var farRank bitboard.Bitboard
		for x := board.Coord(0); x < dims.Width; x++ {
			farRank.SetBit(int(board.ToIndex(x, dims.Height-1)))
		}
		for p := range out {
			out[p] = farRank
		}
	}
	return out
}

// builder tracks the Piece instance created for each (player, rank
// character) pair encountered so far while scanning a FEN board field, so
// that a second occurrence of the same character adds another bit to the
// same piece rather than replacing it outright (Position.SetPieceType
// installs a fresh, empty bitboard each time it's called).
type builder struct {
	pos       *position.Position
	reg       *piece.Registry
	dims      board.Dimensions
	instances map[int]map[rune]*piece.Piece
}

func newBuilder(pos *position.Position, reg *piece.Registry, dims board.Dimensions) *builder {
	return &builder{pos: pos, reg: reg, dims: dims, instances: make(map[int]map[rune]*piece.Piece)}
}

func (b *builder) place(ch rune, player, index int) error {
	byChar, ok := b.instances[player]
	if !ok {
		byChar = make(map[rune]*piece.Piece)
		b.instances[player] = byChar
	}
	p, ok := byChar[ch]
	if !ok {
		inst, err := b.instantiate(ch, player)
		if err != nil {
			return err
		}
		p = inst
		byChar[ch] = p
		b.pos.SetPieceType(p)
	}
	p.Bitboard.SetBit(index)
	return nil
}

func (b *builder) instantiate(ch rune, player int) (*piece.Piece, error) {
	if unicode.ToUpper(ch) == 'P' {
		return piece.MakePawn(piece.Pawn, player, b.dims, []int{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}), nil
	}
	return b.reg.Instantiate(ch, player)
}
