package render

import (
	"strings"

	"github.com/acarl005/stripansi"
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
)

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _lightBackground = "\033[48;5;244m"
const _darkBackground = "\033[48;5;243m"
const _highlightBackground = "\033[48;5;108m"
const _resetColors = "\x1b[0m"

func board(p *Position, highlight Bitboard, glyph func(Piece) string) string {
	squares := p.Board()

	result := "  "
	for file := 0; file < 8; file++ {
		result += _hintForeground + " " + File(file).String() + " " + _resetColors
	}
	result += "\n"

	for rank := 7; rank >= 0; rank-- {
		result += _hintForeground + Rank(rank).String() + " " + _resetColors
		for file := 0; file < 8; file++ {
			index := IndexFromFileRank(FileRank{File(file), Rank(rank)})
			piece := squares[index]

			if highlight.Has(SingleBitboard(index)) {
				result += _highlightBackground
			} else if DarkSquares.Has(SingleBitboard(index)) {
				result += _darkBackground
			} else {
				result += _lightBackground
			}
			if piece.Color == White {
				result += _whiteForeground
			} else {
				result += _blackForeground
			}

			result += " " + glyph(piece) + " "
			result += _resetColors
		}
		if rank != 0 {
			result += "\n"
		}
	}

	return result
}

// Unicode draws the board for a 256-color terminal. Squares in highlight get
// a distinct background.
func Unicode(p *Position, highlight Bitboard) string {
	return board(p, highlight, func(piece Piece) string {
		return piece.Unicode()
	})
}

// Plain draws the same grid with FEN letters and no escape codes. Empty
// squares are dots and highlighted empty squares are asterisks.
func Plain(p *Position, highlight Bitboard) string {
	marked := board(p, 0, func(piece Piece) string {
		if piece.IsEmpty() {
			return "."
		}
		return piece.String()
	})

	lines := strings.Split(stripansi.Strip(marked), "\n")
	for rank := 0; rank < 8; rank++ {
		row := []rune(lines[8-rank])
		for file := 0; file < 8; file++ {
			square := SingleBitboard(IndexFromFileRank(FileRank{File(file), Rank(rank)}))
			column := 2 + file*3 + 1
			if highlight.Has(square) && row[column] == '.' {
				row[column] = '*'
			}
		}
		lines[8-rank] = string(row)
	}
	return strings.Join(lines, "\n")
}
