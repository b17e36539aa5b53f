package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/render"
	"github.com/cricklet/chessrules/internal/runner"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

// promptPromoter asks on the same scanner the game reads commands from and
// asks again until the answer names a promotion piece.
func promptPromoter(scanner *bufio.Scanner, w io.Writer) Promoter {
	return PromoterFunc(func(color Color, move Move) PieceType {
		for {
			fmt.Fprintf(w, "promote %v to (q, r, b, n): ", move)
			if !scanner.Scan() {
				return Queen
			}
			pt := PieceTypeFromString(strings.TrimSpace(scanner.Text()))
			if pt.IsPromotion() {
				return pt
			}
			fmt.Fprintln(w, "invalid promotion choice")
		}
	})
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath(RootDir() + "/data/CmdPlay"))
		defer p.Stop()
	}

	plain := Contains(args, "plain") || !term.IsTerminal(int(os.Stdout.Fd()))
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile" && arg != "plain"
	})

	scanner := bufio.NewScanner(os.Stdin)

	opts := []runner.Option{
		runner.WithLogger(FuncLogger(func(s string) {
			fmt.Print(s)
		})),
		runner.WithPromoter(promptPromoter(scanner, os.Stdout)),
	}
	if len(args) > 0 {
		opts = append(opts, runner.WithStartFen(strings.Join(args, " ")))
	}

	r, err := runner.NewGameRunner(opts...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	commands := runner.CommandRunner{Runner: r}

	var draw = func(highlight Bitboard) {
		p := r.Position()
		if plain {
			fmt.Println(render.Plain(&p, highlight))
		} else {
			fmt.Println(render.Unicode(&p, highlight))
		}
	}

	draw(0)
	fmt.Print("> ")
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" {
			break
		}

		highlight := AllZeros
		if square, err := BitboardFromString(input); IsNil(err) {
			// A bare square selects a piece and shows where it can go.
			p := r.Position()
			highlight = square | LegalDestinations(&p, square)
			input = "moves " + input
		}

		result, err := commands.HandleInput(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		} else if input != "board" {
			draw(highlight)
		}
		for _, v := range result {
			fmt.Println(v)
		}
		fmt.Print("> ")
	}
}
