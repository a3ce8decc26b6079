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

// Command protochess plays an engine-vs-engine game from the command line:
// `protochess <depth>[t] <fen|"default"> <max_ply>`, writing a PGN file of
// the game and printing the board after every ply, the way
// protochess-engine-rs's own main.rs drives its engine. A fixed-depth run
// (bare digits, e.g. "12") searches exactly that many plies every move; a
// "t"-suffixed depth (e.g. "12t") treats the number as a per-move time
// budget in seconds instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	golog "github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/fen"
	"github.com/arborian/protochess/internal/logging"
	"github.com/arborian/protochess/internal/movegen"
	"github.com/arborian/protochess/internal/notation"
	"github.com/arborian/protochess/internal/perft"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/smp"
	"github.com/arborian/protochess/internal/tt"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	profileRun := flag.Bool("profile", false, "wraps the run in a CPU profile (pprof), written to the working directory")
	perftDepth := flag.Int("perft", 0, "run perft (and divide) on the given position to the given depth and exit")
	perftBench := flag.Int("perftbench", 0, "benchmark perft from depth 1 to the given depth and exit")
	versionInfo := flag.Bool("version", false, "prints environment info and exits")
	flag.Parse()

	if *profileRun {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	if *versionInfo {
		printVersionInfo()
		return
	}

	depthArg, fenArg, maxPlyArg := "", "default", ""
	args := flag.Args()
	if len(args) > 0 {
		depthArg = args[0]
	}
	if len(args) > 1 {
		fenArg = args[1]
	}
	if len(args) > 2 {
		maxPlyArg = args[2]
	}

	pos, err := startingPosition(fenArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "incorrect fen:", err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		runPerft(pos, *perftDepth)
		return
	}
	if *perftBench > 0 {
		runBench(pos, *perftBench)
		return
	}

	fixedDepth, depth, moveSeconds := parseDepthArg(depthArg)
	maxPly := config.Settings.Search.DefaultPly
	if maxPlyArg != "" {
		if n, err := strconv.Atoi(maxPlyArg); err == nil {
			maxPly = n
		}
	}

	table := tt.NewTable(config.Settings.Search.TTSizeMb)
	driver := smp.NewDriver(table, config.Settings.Search.NumWorkers)
	watchForResizeSignal(driver, table, log)

	pgnFile, err := os.Create("pgn.txt")
	if err != nil {
		log.Errorf("could not create pgn.txt: %v", err)
	} else {
		defer pgnFile.Close()
		writePGNHeader(pgnFile, fenArg)
	}

	out.Println("Start Position:")
	fmt.Println(pos.String())
	out.Println(strings.Repeat("-", 40))

	start := time.Now()
	for ply := 0; ply < maxPly; ply++ {
		legal := movegen.Legal(pos)
		if len(legal) == 0 {
			reportGameOver(pos)
			break
		}

		deadline := time.Time{}
		if !fixedDepth {
			deadline = time.Now().Add(moveSeconds)
		}
		result := driver.Search(pos, depth, deadline)

		san := notation.FixPawnCapture(result.Move, notation.SAN(pos, result.Move, legal))
		out.Printf("\n(elapsed %s) ply %d plays %s\n", time.Since(start).Round(time.Millisecond), ply, san)

		if err := movegen.ApplyIfLegal(pos, result.Move); err != nil {
			log.Errorf("search returned a move rejected by ApplyIfLegal: %v", err)
			break
		}
		fmt.Println(pos.String())

		if pgnFile != nil {
			writePGNMove(pgnFile, ply, san)
		}

		if pos.LeaderCount(pos.WhosTurn) == 0 {
			out.Printf("LEADER CAPTURED! player %d wins!\n", 1-pos.WhosTurn)
			break
		}
		if pieceOnWinningSquare(pos) {
			out.Println("A PIECE REACHED THE WINNING SQUARE!")
			break
		}
		if pos.Rules.ChecksToLose != 0 && pos.TimesInCheck(pos.WhosTurn) >= pos.Rules.ChecksToLose {
			out.Printf("CHECK LIMIT REACHED! player %d wins!\n", 1-pos.WhosTurn)
			break
		}
		if pos.RepetitionCount() >= 3 {
			out.Println("DRAW BY REPETITION!")
			break
		}
	}
}

// startingPosition builds the initial Position from the CLI's fen
// argument: the literal word "default" means the standard chess starting
// position, anything else is parsed as Extended FEN (optionally carrying
// the variant-name suffix field fen.Parse already understands).
func startingPosition(fenArg string) (*position.Position, error) {
	if fenArg == "" || fenArg == "default" {
		return fen.Parse(fen.StartingPosition)
	}
	return fen.Parse(fenArg)
}

// parseDepthArg mirrors protochess-engine-rs's main.rs argument handling:
// a depth string containing 't' (e.g. "12t") requests a per-move time
// budget of that many seconds instead of a fixed ply depth.
func parseDepthArg(s string) (fixedDepth bool, depth int, moveSeconds time.Duration) {
	depth = int(config.Settings.Search.DefaultDepth)
	if s == "" {
		return true, depth, 0
	}
	if strings.ContainsRune(s, 't') {
		n, err := strconv.Atoi(strings.ReplaceAll(s, "t", ""))
		if err != nil || n <= 0 {
			return true, depth, 0
		}
		return false, config.Settings.Search.DefaultPly, time.Duration(n) * time.Second
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return true, depth, 0
	}
	return true, n, 0
}

func pieceOnWinningSquare(pos *position.Position) bool {
	for p, ps := range pos.Pieces {
		win := pos.Rules.PieceOnSquareWins[p]
		if win.IsZero() {
			continue
		}
		for _, leader := range ps.Leaders() {
			if !leader.Bitboard.And(win).IsZero() {
				return true
			}
		}
	}
	return false
}

func reportGameOver(pos *position.Position) {
	inCheck := movegen.InCheck(pos, pos.WhosTurn)
	switch {
	case inCheck && pos.Rules.InvertWinConditions:
		out.Printf("CHECKMATE! player %d wins!\n", pos.WhosTurn)
	case inCheck:
		out.Printf("CHECKMATE! player %d wins!\n", 1-pos.WhosTurn)
	case pos.Rules.StalematedPlayerLoses && !pos.Rules.InvertWinConditions:
		out.Printf("STALEMATE! player %d wins!\n", 1-pos.WhosTurn)
	case pos.Rules.StalematedPlayerLoses:
		out.Printf("STALEMATE! player %d wins!\n", pos.WhosTurn)
	default:
		out.Println("DRAW BY STALEMATE!")
	}
}

// watchForResizeSignal lets an operator reallocate the transposition table
// mid-run (SIGHUP) at the already configured TTSizeMb (the config file is
// not re-read), dropping every stored entry, without racing a search in
// flight: it
// waits on driver.WaitWhileSearching for the current ply's search to finish
// before resizing table, the same quiet-point-first discipline the
// teacher's own search handler uses its isRunning semaphore for.
func watchForResizeSignal(driver *smp.Driver, table *tt.Table, log *golog.Logger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP)
	go func() {
		for range sig {
			driver.WaitWhileSearching()
			table.Resize(config.Settings.Search.TTSizeMb)
			log.Infof("transposition table resized to %d MB after SIGHUP", config.Settings.Search.TTSizeMb)
		}
	}()
}

func runPerft(pos *position.Position, depth int) {
	for d := 1; d <= depth; d++ {
		total, divides := perft.PerftDivide(pos, d)
		for _, div := range divides {
			out.Printf("%s: %d\n", div.Move, div.Nodes)
		}
		out.Printf("depth %d: %d nodes\n\n", d, total)
	}
}

func runBench(pos *position.Position, depth int) {
	for _, r := range perft.Bench(pos, depth) {
		out.Printf("depth %-2d  nodes %-12d  time %-10s  nps %.0f\n", r.Depth, r.Nodes, r.Elapsed, r.NodesSec)
	}
}

// writePGNHeader mirrors protochess-engine-rs's main.rs print_pgn_header:
// a [Variant "..."] tag when the position isn't standard chess, then a
// mandatory [FEN "..."] tag, then a blank line before the movetext.
func writePGNHeader(w *os.File, fenArg string) {
	if fenArg != "" && fenArg != "default" {
		fields := strings.Fields(fenArg)
		if len(fields) >= 7 {
			fmt.Fprintf(w, "[Variant %q]\n", fields[6])
		}
		fmt.Fprintf(w, "[FEN %q]\n\n", fenArg)
	} else {
		fmt.Fprintf(w, "[FEN %q]\n\n", fen.StartingPosition)
	}
}

// writePGNMove mirrors print_pgn: a "N. " move-number prefix on White's
// move (ply even), then the move text and a trailing space.
func writePGNMove(w *os.File, ply int, moveText string) {
	if ply%2 == 0 {
		fmt.Fprintf(w, "%d. ", ply/2+1)
	}
	fmt.Fprintf(w, "%s ", moveText)
}

func printVersionInfo() {
	out.Println("protochess")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
