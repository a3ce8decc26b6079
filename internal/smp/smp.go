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

// Package smp drives the Lazy-SMP search: N worker goroutines, each with
// its own cloned Position and Evaluator, run iterative deepening against a
// transposition table shared by every worker, staggering the depth each
// one searches next so the pool as a whole covers more of the tree than
// any single worker searching the same depth sequence would. Grounded on
// protochess-engine-rs's searcher/lazy_smp.rs, translating its
// thread::spawn/AtomicU32 pair into goroutines and sync/atomic.
package smp

import (
	"context"
	"math/bits"
	"sync"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/arborian/protochess/internal/eval"
	myLogging "github.com/arborian/protochess/internal/logging"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/search"
	"github.com/arborian/protochess/internal/tt"
)

// Driver owns the resources every Lazy-SMP worker shares: the
// transposition table and the count of workers to run. Per-worker state
// (Position, Evaluator, killer/history tables) lives only inside each
// worker's own goroutine.
type Driver struct {
	log        *logging.Logger
	table      *tt.Table
	numWorkers int

	// isRunning is held for the duration of Search, letting a caller on
	// another goroutine (e.g. a UCI "stop"/"isready" handler, or a CLI
	// wanting to resize the table between moves) block until the current
	// Lazy-SMP round finishes by acquiring and immediately releasing it.
	isRunning *semaphore.Weighted
}

// NewDriver creates a Driver that runs numWorkers goroutines against
// table. A non-positive numWorkers is treated as 1.
func NewDriver(table *tt.Table, numWorkers int) *Driver {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Driver{
		log:        myLogging.GetLog(),
		table:      table,
		numWorkers: numWorkers,
		isRunning:  semaphore.NewWeighted(1),
	}
}

// Search runs the Lazy-SMP driver against pos for at most maxDepth plies or
// until deadline, whichever comes first, and returns the best result found:
// the worker that reached the greatest depth, ties broken by score. pos
// itself is never mutated — every worker searches its own Position.Clone.
func (d *Driver) Search(pos *position.Position, maxDepth int, deadline time.Time) search.Result {
	if maxDepth < 1 {
		maxDepth = 1
	}

	_ = d.isRunning.Acquire(context.Background(), 1)
	defer d.isRunning.Release(1)

	var globalDepth int64
	var searchID int64

	results := make([]search.Result, d.numWorkers)
	var wg sync.WaitGroup
	wg.Add(d.numWorkers)

	for w := 0; w < d.numWorkers; w++ {
		go func(threadID int) {
			defer wg.Done()
			results[threadID] = d.runWorker(threadID, pos.Clone(), maxDepth, deadline, &globalDepth, &searchID)
		}(w)
	}
	wg.Wait()

	return bestOf(results)
}

// WaitWhileSearching blocks until no Search call is in flight on d. A
// caller wanting to resize or inspect the shared transposition table
// between moves (rather than mid-search) uses this to wait for a quiet
// point first.
func (d *Driver) WaitWhileSearching() {
	_ = d.isRunning.Acquire(context.Background(), 1)
	d.isRunning.Release(1)
}

// runWorker is one Lazy-SMP thread's iterative-deepening loop, per spec.md
// §4.I: its first depth is (threadID mod maxDepth) + 1; after each depth it
// completes (without timing out), it publishes its depth into globalDepth
// and schedules its next depth from the published maximum plus a
// trailing-zero-distributed increment, so half the workers step forward by
// one ply, a quarter by two, and so on.
func (d *Driver) runWorker(threadID int, pos *position.Position, maxDepth int, deadline time.Time, globalDepth, searchID *int64) search.Result {
	searcher := search.NewSearcher(d.table, eval.NewEvaluator())

	localDepth := (threadID % maxDepth) + 1
	var best search.Result

	for {
		result := searcher.Search(pos, localDepth, deadline)
		if result.TimedOut {
			break
		}
		best = result

		oldGlobal := atomicFetchMax(globalDepth, int64(localDepth))

		deadlinePassed := !deadline.IsZero() && time.Now().After(deadline)
		if deadlinePassed || localDepth == maxDepth || oldGlobal == int64(maxDepth) {
			atomic.StoreInt64(globalDepth, int64(maxDepth))
			break
		}

		id := atomic.AddInt64(searchID, 1) - 1
		increment := 1 + bits.TrailingZeros64(uint64(id))
		localDepth = int(atomic.LoadInt64(globalDepth)) + increment
		if localDepth > maxDepth {
			localDepth = maxDepth
		}
	}

	return best
}

// atomicFetchMax stores max(*addr, val) into *addr and returns *addr's
// value from before the update, matching Rust's AtomicU32::fetch_max.
// sync/atomic has no native fetch-max, so this loops a compare-and-swap —
// the same pattern the standard library's own atomic.Value helpers use for
// operations it doesn't provide directly.
func atomicFetchMax(addr *int64, val int64) int64 {
	for {
		old := atomic.LoadInt64(addr)
		if val <= old {
			return old
		}
		if atomic.CompareAndSwapInt64(addr, old, val) {
			return old
		}
	}
}

// bestOf picks the worker result with the greatest completed depth, ties
// broken by score, per spec.md §4.I. Workers that never completed a depth
// (an immediate deadline) return their zero search.Result, which loses
// every comparison since a real completed depth is always >= 1.
func bestOf(results []search.Result) search.Result {
	best := results[0]
	for _, r := range results[1:] {
		if r.Depth > best.Depth || (r.Depth == best.Depth && r.Score > best.Score) {
			best = r
		}
	}
	return best
}
