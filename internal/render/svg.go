package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
)

const SquareSize = 48

const (
	_lightFill     = "fill:#eeeed2"
	_darkFill      = "fill:#769656"
	_highlightFill = "fill:#baca44"
	_whitePiece    = "fill:#ffffff;stroke:#000000;stroke-width:1"
	_blackPiece    = "fill:#000000"
	_hintText      = "fill:#555555"
)

// SVG draws the board with a one square margin for coordinates. a1 is at the
// bottom left.
func SVG(w io.Writer, p *Position, highlight Bitboard) {
	squares := p.Board()
	size := SquareSize * 9
	half := SquareSize / 2

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Title(fmt.Sprintf("%d pieces", p.Occupied().OnesCount()))

	for rank := 7; rank >= 0; rank-- {
		y := (7 - rank) * SquareSize
		canvas.Text(half/2, y+half+6, Rank(rank).String(), _hintText)

		for file := 0; file < 8; file++ {
			x := half + file*SquareSize
			index := IndexFromFileRank(FileRank{File(file), Rank(rank)})
			square := SingleBitboard(index)

			fill := _lightFill
			if highlight.Has(square) {
				fill = _highlightFill
			} else if DarkSquares.Has(square) {
				fill = _darkFill
			}
			canvas.Rect(x, y, SquareSize, SquareSize, fill)

			piece := squares[index]
			if piece.IsEmpty() {
				continue
			}
			style := _blackPiece
			if piece.Color == White {
				style = _whitePiece
			}
			canvas.Text(x+half, y+SquareSize-10, piece.Unicode(),
				"text-anchor:middle;font-size:36px;"+style)
		}
	}

	for file := 0; file < 8; file++ {
		x := half + file*SquareSize + half
		canvas.Text(x, 8*SquareSize+half, File(file).String(), "text-anchor:middle;"+_hintText)
	}

	canvas.End()
}
