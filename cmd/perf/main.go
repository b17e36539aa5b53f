package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	. "github.com/cricklet/chessrules/internal/fen"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
)

type divideEntry struct {
	move  string
	count int
}

// perf prints the perft divide of fen at depth and returns the leaf count.
func perf(fen string, depth int) (int, Error) {
	p, player, err := PositionFromFen(fen)
	if !IsNil(err) {
		return 0, err
	}

	bar := CreateProgressBar(os.Stderr, MaxInt(1, len(LegalMoves(&p, player))), fmt.Sprint("depth ", depth))
	entries := []divideEntry{}
	seen := map[string]bool{}

	start := time.Now()
	total := Divide(p, player, depth, func(move string, count int) {
		entries = append(entries, divideEntry{move, count})
		if !seen[move[:4]] {
			seen[move[:4]] = true
			bar.Add(1)
		}
	})
	elapsed := time.Since(start)
	bar.Close()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].move < entries[j].move
	})
	for _, e := range entries {
		fmt.Printf("%v: %v\n", e.move, humanize.Comma(int64(e.count)))
	}
	fmt.Printf("\nnodes: %v (%v)\n", humanize.Comma(int64(total)), FormatRate(total, elapsed))
	return total, NilError
}

func main() {
	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath(RootDir() + "/data/CmdPerf"))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	depth := 4
	if len(args) > 0 {
		if parsed, err := strconv.Atoi(args[0]); err == nil {
			depth = parsed
			args = args[1:]
		}
	}

	fen := StartFen
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	if _, err := perf(fen, depth); !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
