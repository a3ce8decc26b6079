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

package piece

import (
	"fmt"
	"unicode"

	"github.com/arborian/protochess/internal/attacks"
)

// Registry maps a piece kind's uppercase display character to the
// Definition template that defines it (oriented for player 0, "plays up the
// board"). Custom pieces named in a FEN rank string must have been
// registered here first; see spec.md §6.
type Registry struct {
	byChar map[rune]Definition
}

// NewRegistry creates a Registry pre-populated with the six standard piece
// kinds under their conventional uppercase letters.
func NewRegistry() *Registry {
	r := &Registry{byChar: make(map[rune]Definition)}
	r.byChar['K'] = MakeKing(King, 0).Def
	r.byChar['Q'] = MakeQueen(Queen, 0).Def
	r.byChar['R'] = MakeRook(Rook, 0).Def
	r.byChar['B'] = MakeBishop(Bishop, 0).Def
	r.byChar['N'] = MakeKnight(Knight, 0).Def
	// pawn promotion squares/dims-dependent fields are filled in by the
	// caller (via internal/fen, which knows the board's Dimensions) rather
	// than by the registry; register a dims-independent placeholder here
	// purely so IsRegistered/char lookups succeed.
	r.byChar['P'] = Definition{ID: Pawn, CharRep: 'P', CanDoubleMove: true, AttackingIsLegal: true}
	return r
}

// Register adds a custom piece kind, keyed by its uppercase display
// character, described by a player-0-oriented Definition.
func (r *Registry) Register(def Definition) {
	r.byChar[unicode.ToUpper(def.CharRep)] = def
}

// IsRegistered reports whether ch (either case) names a known piece kind.
func (r *Registry) IsRegistered(ch rune) bool {
	_, ok := r.byChar[unicode.ToUpper(ch)]
	return ok
}

// Lookup returns the player-0-oriented template Definition for ch.
func (r *Registry) Lookup(ch rune) (Definition, error) {
	def, ok := r.byChar[unicode.ToUpper(ch)]
	if !ok {
		return Definition{}, fmt.Errorf("piece: unregistered character %q", ch)
	}
	return def, nil
}

// Instantiate builds a Piece for the given player from the Definition
// registered under ch. Player 0 gets the template as registered; every
// odd-numbered player gets it mirrored vertically (North/South swapped)
// with its display character lower-cased, matching the orientation
// convention used throughout this package (see factory.go's orientation).
func (r *Registry) Instantiate(ch rune, player int) (*Piece, error) {
	def, err := r.Lookup(ch)
	if err != nil {
		return nil, err
	}
	if player%2 != 0 {
		def = mirrorForOddPlayer(def)
	}
	return New(def, player), nil
}

func mirrorForOddPlayer(def Definition) Definition {
	out := def
	out.CharRep = unicode.ToLower(def.CharRep)
	out.AttackDirs = attacks.MirrorVerticalDirections(def.AttackDirs)
	out.TranslateDirs = attacks.MirrorVerticalDirections(def.TranslateDirs)
	out.AttackJumpDeltas = mirrorDeltas(def.AttackJumpDeltas)
	out.TranslateJumpDeltas = mirrorDeltas(def.TranslateJumpDeltas)
	out.AttackSlidingRuns = mirrorRuns(def.AttackSlidingRuns)
	out.TranslateSlidingRuns = mirrorRuns(def.TranslateSlidingRuns)
	return out
}

func mirrorDeltas(ds []attacks.Delta) []attacks.Delta {
	if ds == nil {
		return nil
	}
	out := make([]attacks.Delta, len(ds))
	for i, d := range ds {
		out[i] = d.MirrorVertical()
	}
	return out
}

func mirrorRuns(runs []Run) []Run {
	if runs == nil {
		return nil
	}
	out := make([]Run, len(runs))
	for i, run := range runs {
		nr := make(Run, len(run))
		for j, d := range run {
			nr[j] = d.MirrorVertical()
		}
		out[i] = nr
	}
	return out
}
