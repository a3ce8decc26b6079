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

package config

// searchConfiguration holds the tunable knobs of the alpha-beta searcher
// and the Lazy SMP driver.
type searchConfiguration struct {
	// Lazy SMP
	NumWorkers int

	// Transposition table
	TTSizeMb int

	// Null move pruning
	UseNullMove    bool
	NmpMinDepth    int
	NmpReduction   int
	NmpMaterialMin int32 // own non-leader material must exceed this (centipawns)

	// Late move reductions
	UseLmr           bool
	LmrMinLegalMoves int
	LmrMinDepth      int
	LmrLateMoveCount int // moves searched beyond which the reduction grows
	LmrReduction     int
	LmrLateReduction int

	// Move ordering
	UseKiller  bool
	UseHistory bool

	// Node accounting
	NodesPerTimeCheck uint64

	// Defaults used by the CLI when not overridden
	DefaultDepth int8
	DefaultPly   int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.NumWorkers = 4

	Settings.Search.TTSizeMb = 128

	Settings.Search.UseNullMove = true
	Settings.Search.NmpMinDepth = 3
	Settings.Search.NmpReduction = 3
	Settings.Search.NmpMaterialMin = 500

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinLegalMoves = 4
	Settings.Search.LmrMinDepth = 5
	Settings.Search.LmrLateMoveCount = 10
	Settings.Search.LmrReduction = 2
	Settings.Search.LmrLateReduction = 3

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.NodesPerTimeCheck = 1 << 19

	Settings.Search.DefaultDepth = 12
	Settings.Search.DefaultPly = 500
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.NumWorkers <= 0 {
		Settings.Search.NumWorkers = 4
	}
	if Settings.Search.TTSizeMb <= 0 {
		Settings.Search.TTSizeMb = 128
	}
}
