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

package movegen

import (
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/protoerr"
)

// ApplyIfLegal is the external-facing counterpart to Apply: it is the entry
// point a UCI-style frontend or scripted client calls with a candidate move
// of unknown legality, rather than a search node that only ever re-applies
// moves it generated itself. It reports protoerr.ErrGameOver if the position
// already has no legal moves, protoerr.IllegalMove if mv isn't among them,
// and otherwise plays mv via Apply.
func ApplyIfLegal(pos *position.Position, mv move.Move) error {
	legal := Legal(pos)
	if len(legal) == 0 {
		return protoerr.ErrGameOver
	}
	found := false
	for _, candidate := range legal {
		if candidate == mv {
			found = true
			break
		}
	}
	if !found {
		return protoerr.IllegalMove{Move: mv}
	}
	Apply(pos, mv)
	return nil
}
