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

// Package variant holds the GameMode enumeration and the GlobalRules toggles
// that let a single move generator/search implementation serve standard
// chess and every supported variant (Atomic, Horde, Antichess,
// King-of-the-Hill, Racing Kings) without per-variant branches elsewhere in
// the engine.
package variant

import (
	"fmt"
	"strings"

	"github.com/arborian/protochess/internal/bitboard"
)

// GameMode names a supported ruleset. Directly grounded on
// protochess-engine-rs's types/mod.rs GameMode enum.
type GameMode int

const (
	Standard GameMode = iota
	Atomic
	Horde
	Antichess
	KingOfTheHill
	RacingKings
)

// ParseGameMode parses the FEN variant suffix word (case-insensitive) into a
// GameMode. Unknown names return an error rather than panicking, per this
// module's SearchTimeout-aside error handling convention (spec.md §7: no
// exceptions for control flow outside SearchTimeout).
func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(s) {
	case "standard", "":
		return Standard, nil
	case "atomic":
		return Atomic, nil
	case "horde":
		return Horde, nil
	case "antichess":
		return Antichess, nil
	case "kingofthehill":
		return KingOfTheHill, nil
	case "racingkings":
		return RacingKings, nil
	default:
		return Standard, fmt.Errorf("variant: unknown game mode %q", s)
	}
}

func (g GameMode) String() string {
	switch g {
	case Standard:
		return "standard"
	case Atomic:
		return "atomic"
	case Horde:
		return "horde"
	case Antichess:
		return "antichess"
	case KingOfTheHill:
		return "kingofthehill"
	case RacingKings:
		return "racingkings"
	default:
		return "unknown"
	}
}

// Rules is the full set of variant-specific toggles a Position carries, per
// spec.md §3's global_rules.
type Rules struct {
	// ChecksToLose is 0 for unlimited checks; otherwise the player who
	// delivers the N-th check to their opponent wins (checks_to_lose).
	ChecksToLose int
	// InvertWinConditions negates the evaluator's score and move-ordering
	// scores (antichess), and the CLI's game-over report names a checkmated
	// side to move as the winner. The search does not read it when scoring
	// a node with no legal moves; that score follows check status and
	// StalematedPlayerLoses.
	InvertWinConditions bool
	// CapturingIsForced means that whenever any pseudo-legal capture
	// exists, only captures are legal moves (antichess).
	CapturingIsForced bool
	// StalematedPlayerLoses is an explicit flag (spec.md §9 Open Question)
	// rather than inferring stalemate-as-win from InvertWinConditions.
	StalematedPlayerLoses bool
	// PieceOnSquareWins, indexed by player, marks squares that immediately
	// win the game for that player if any of their pieces occupies one
	// (king-of-the-hill's center squares, racing-kings' finish rank).
	PieceOnSquareWins []bitboard.Bitboard
	// ExplosionOnCapture enables atomic-chess capture semantics: the
	// capturing piece and every non-pawn within king-distance 1 of the
	// target square are removed.
	ExplosionOnCapture bool
}

// NewRules returns the "no variant rules apply" zero value, sized for
// numPlayers players.
func NewRules(numPlayers int) Rules {
	return Rules{PieceOnSquareWins: make([]bitboard.Bitboard, numPlayers)}
}

// ForGameMode returns the Rules a given GameMode implies. dims-dependent
// fields (PieceOnSquareWins) are left empty here; callers building a
// Position from a GameMode must fill them in once board Dimensions are
// known (see internal/fen, which calls WinSquaresFor).
func ForGameMode(mode GameMode, numPlayers int) Rules {
	r := NewRules(numPlayers)
	switch mode {
	case Atomic:
		r.ExplosionOnCapture = true
	case Horde:
		// Horde's asymmetry (one side is all-pawns with no leader) is
		// expressed entirely through the starting position / piece set,
		// not through an additional Rules toggle.
	case Antichess:
		r.InvertWinConditions = true
		r.CapturingIsForced = true
		r.StalematedPlayerLoses = false
	case KingOfTheHill, RacingKings:
		// PieceOnSquareWins is populated by the caller once Dimensions are
		// known; see fen.WinSquaresFor.
	}
	return r
}
