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

// Package tt implements the shared transposition table used by the
// Lazy-SMP search driver. It is a fixed-size, power-of-two-sized array of
// Entry addressed by key modulo the table size. Probe and Put deliberately
// take no lock: every worker goroutine may read or write any slot at any
// time, and a torn read (part of one writer's entry mixed with part of
// another's) is made harmless by always validating the full stored Key
// against the probed key before trusting the rest of the slot — a torn
// entry just looks like a miss. Only Resize and Clear, which replace the
// whole backing array, take the structural lock; callers must not call
// them while workers are searching the table they're about to swap out.
package tt

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/arborian/protochess/internal/logging"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/util"
	"github.com/arborian/protochess/internal/zobrist"
)

var out = message.NewPrinter(language.English)

// MaxSizeMb bounds how large a table callers may request.
const MaxSizeMb = 65_536

const bytesPerMb = 1024 * 1024

// Stats counts table traffic for diagnostics and tuning.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is the shared transposition table.
type Table struct {
	log         *logging.Logger
	mu          sync.Mutex // guards only Resize/Clear swapping data
	data        []Entry
	mask        uint64
	entryCount  uint64
	sizeInBytes uint64
	Stats       Stats
}

// NewTable creates a Table sized to the largest power-of-two entry count
// that fits in sizeInMb megabytes.
func NewTable(sizeInMb int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMb)
	return t
}

// Resize replaces the backing array; all prior entries are lost. Not safe
// to call while other goroutines are probing or storing into this table.
func (t *Table) Resize(sizeInMb int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sizeInMb > MaxSizeMb {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMb, MaxSizeMb))
		sizeInMb = MaxSizeMb
	}
	if sizeInMb < 0 {
		sizeInMb = 0
	}

	entrySize := uint64(unsafe.Sizeof(Entry{}))
	totalBytes := uint64(sizeInMb) * bytesPerMb
	var count uint64
	if entrySize > 0 && totalBytes >= entrySize {
		count = 1 << uint64(math.Floor(math.Log2(float64(totalBytes/entrySize))))
	}

	t.mask = 0
	if count > 0 {
		t.mask = count - 1
	}
	t.entryCount = count
	t.sizeInBytes = count * entrySize
	t.data = make([]Entry, count)

	t.log.Info(out.Sprintf("TT size %d MB, capacity %d entries of %d bytes (requested %d MB)",
		t.sizeInBytes/bytesPerMb, t.entryCount, entrySize, sizeInMb))
	t.log.Debug(util.MemStat())
}

// Clear empties every slot without changing the table's size.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = make([]Entry, t.entryCount)
	t.Stats = Stats{}
}

func (t *Table) index(key zobrist.Key) uint64 {
	// mask is entryCount-1 with entryCount a power of two, so key&mask is
	// exactly key mod entryCount.
	return uint64(key) & t.mask
}

// Probe returns the stored entry for key and true if present, or the zero
// Entry and false on a miss (including a key collision or a torn read).
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	atomic.AddUint64(&t.Stats.Probes, 1)
	if t.entryCount == 0 {
		atomic.AddUint64(&t.Stats.Misses, 1)
		return Entry{}, false
	}
	e := t.data[t.index(key)]
	if e.empty() || e.Key != key {
		atomic.AddUint64(&t.Stats.Misses, 1)
		return Entry{}, false
	}
	atomic.AddUint64(&t.Stats.Hits, 1)
	return e, true
}

// Put stores an entry for key, replacing whatever currently occupies that
// slot whenever the slot is empty, holds the same key, or holds a search
// no deeper than the incoming one (stored depth <= incoming depth) — so a
// different position's deeper result is never evicted by a shallower one.
func (t *Table) Put(key zobrist.Key, depth int8, flag Flag, value int, mv move.Move) {
	if t.entryCount == 0 {
		return
	}
	atomic.AddUint64(&t.Stats.Puts, 1)
	slot := &t.data[t.index(key)]

	switch {
	case slot.empty():
		*slot = Entry{Key: key, Depth: depth, Flag: flag, Value: value, Move: mv}
	case slot.Key != key:
		atomic.AddUint64(&t.Stats.Collisions, 1)
		if depth >= slot.Depth {
			atomic.AddUint64(&t.Stats.Overwrites, 1)
			*slot = Entry{Key: key, Depth: depth, Flag: flag, Value: value, Move: mv}
		}
	default: // same key: always refresh
		atomic.AddUint64(&t.Stats.Updates, 1)
		*slot = Entry{Key: key, Depth: depth, Flag: flag, Value: value, Move: mv}
	}
}

// Hashfull reports how full the table is, in permille, as UCI expects.
func (t *Table) Hashfull() int {
	if t.entryCount == 0 {
		return 0
	}
	used := uint64(0)
	for i := range t.data {
		if !t.data[i].empty() {
			used++
		}
	}
	return int(1000 * used / t.entryCount)
}

// Len returns the table's capacity in entries.
func (t *Table) Len() uint64 {
	return t.entryCount
}

// String renders a human-readable summary of size and traffic.
func (t *Table) String() string {
	probes := atomic.LoadUint64(&t.Stats.Probes)
	hits := atomic.LoadUint64(&t.Stats.Hits)
	misses := atomic.LoadUint64(&t.Stats.Misses)
	return out.Sprintf("TT: %d MB, %d entries, puts=%d updates=%d collisions=%d overwrites=%d probes=%d hits=%d (%d%%) misses=%d (%d%%)",
		t.sizeInBytes/bytesPerMb, t.entryCount,
		atomic.LoadUint64(&t.Stats.Puts), atomic.LoadUint64(&t.Stats.Updates),
		atomic.LoadUint64(&t.Stats.Collisions), atomic.LoadUint64(&t.Stats.Overwrites),
		probes, hits, (hits*100)/(1+probes), misses, (misses*100)/(1+probes))
}

// DepthBucket narrows a signed search depth into the int8 range Entry
// stores it in, for callers building a Put from an int-typed ply counter.
func DepthBucket(depth int) int8 {
	if depth > math.MaxInt8 {
		return math.MaxInt8
	}
	if depth < math.MinInt8 {
		return math.MinInt8
	}
	return int8(depth)
}
