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
	"fmt"
	"strings"
	"unicode"

	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/piece"
)

// UCIMove is a raw, position-independent decoding of a long-algebraic move
// string: from/to squares plus an optional promotion piece kind. It carries
// no judgment about legality — matching it against a position's generated
// moves (to recover the Type and Target fields a move.Move needs) is the
// move generator/CLI driver's job.
type UCIMove struct {
	FromX, FromY board.Coord
	ToX, ToY     board.Coord
	HasPromotion bool
	Promotion    int
}

// ParseUCIMove decodes a long-algebraic move string. Both the bare-letter
// form ("e7e8q") and the "=Q"-suffixed form ("e7e8=Q") are accepted and
// canonicalize to the same UCIMove, per spec.md §9's open question on
// promotion-suffix syntax.
func ParseUCIMove(s string) (UCIMove, error) {
	s = strings.TrimSpace(s)
	s = strings.Replace(s, "=", "", 1)
	if len(s) < 4 {
		return UCIMove{}, fmt.Errorf("fen: malformed move %q", s)
	}
	fromX, fromY, err := parseFileRank(s[0:2])
	if err != nil {
		return UCIMove{}, err
	}
	toX, toY, err := parseFileRank(s[2:4])
	if err != nil {
		return UCIMove{}, err
	}
	mv := UCIMove{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY}
	if len(s) > 4 {
		promo, err := promotionPieceID(rune(s[4]))
		if err != nil {
			return UCIMove{}, err
		}
		mv.HasPromotion = true
		mv.Promotion = promo
	}
	return mv, nil
}

func parseFileRank(s string) (board.Coord, board.Coord, error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("fen: malformed square %q", s)
	}
	fileCh := unicode.ToLower(rune(s[0]))
	if fileCh < 'a' || fileCh > 'a'+board.Width-1 {
		return 0, 0, fmt.Errorf("fen: malformed square %q", s)
	}
	rank := 0
	for _, d := range s[1:] {
		if d < '0' || d > '9' {
			return 0, 0, fmt.Errorf("fen: malformed square %q", s)
		}
		rank = rank*10 + int(d-'0')
	}
	if rank < 1 {
		return 0, 0, fmt.Errorf("fen: malformed square %q", s)
	}
	return board.Coord(fileCh - 'a'), board.Coord(rank - 1), nil
}

func promotionPieceID(ch rune) (int, error) {
	switch unicode.ToUpper(ch) {
	case 'Q':
		return piece.Queen, nil
	case 'R':
		return piece.Rook, nil
	case 'B':
		return piece.Bishop, nil
	case 'N':
		return piece.Knight, nil
	default:
		return 0, fmt.Errorf("fen: unknown promotion piece %q", ch)
	}
}
