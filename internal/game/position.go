package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// Position is the complete rules state: one Side per color. The struct is
// plain data and copies by value.
type Position struct {
	White Side
	Black Side
}

func InitStandardPosition() Position {
	return Position{
		White: standardSide(White),
		Black: standardSide(Black),
	}
}

// InitEmptyPosition has no pieces and marks every castling right as
// forfeited, so hand-placed kings and rooks never castle by accident.
func InitEmptyPosition() Position {
	return Position{
		White: Side{Color: White, Castle: AllRightsForfeited},
		Black: Side{Color: Black, Castle: AllRightsForfeited},
	}
}

func (p *Position) Side(color Color) *Side {
	if color == Black {
		return &p.Black
	}
	return &p.White
}

// Sides returns the mover and its opponent.
func (p *Position) Sides(color Color) (*Side, *Side) {
	return p.Side(color), p.Side(color.Other())
}

func (p *Position) Occupied() Bitboard {
	return p.White.Occupied() | p.Black.Occupied()
}

func (p *Position) PieceAt(square Bitboard) Piece {
	if pt := p.White.PieceAt(square); pt != NoPiece {
		return Piece{Type: pt, Color: White}
	}
	if pt := p.Black.PieceAt(square); pt != NoPiece {
		return Piece{Type: pt, Color: Black}
	}
	return NoColoredPiece
}

// Board lists the pieces by square index, a1 first.
func (p *Position) Board() [64]Piece {
	result := [64]Piece{}
	for _, color := range []Color{White, Black} {
		side := p.Side(color)
		for _, pt := range AllPieceTypes {
			side.Pieces[pt].EachIndexOfOneCallback(func(i int) {
				result[i] = Piece{Type: pt, Color: color}
			})
		}
	}
	return result
}

// Place puts a piece on an empty square. It is used for building positions
// by hand and by the FEN reader.
func (p *Position) Place(piece Piece, square Bitboard) Error {
	if !piece.Type.IsValid() || !piece.Color.IsValid() {
		return Errorf("invalid piece %v", piece)
	}
	if square.OnesCount() != 1 {
		return Errorf("expected a single square, got %v", square.Square())
	}
	if p.Occupied().Has(square) {
		return Errorf("%v is already occupied by %v", square.Square(), p.PieceAt(square))
	}
	p.Side(piece.Color).Pieces[piece.Type] |= square
	return NilError
}

// Validate reports broken structural invariants: overlapping piece sets,
// wrong side colors, or a king count other than one.
func (p *Position) Validate() Error {
	errs := []Error{}
	if p.White.Color != White || p.Black.Color != Black {
		errs = append(errs, Errorf("side colors are %v and %v", p.White.Color, p.Black.Color))
	}

	seen := AllZeros
	for _, color := range []Color{White, Black} {
		side := p.Side(color)
		if side.Pieces[NoPiece] != 0 {
			errs = append(errs, Errorf("%v has pieces without a type", color))
		}
		for _, pt := range AllPieceTypes {
			if seen.Has(side.Pieces[pt]) {
				errs = append(errs, Errorf("%v %v overlaps another piece set", color, pt.Name()))
			}
			seen |= side.Pieces[pt]
		}
		if side.King().OnesCount() != 1 {
			errs = append(errs, Errorf("%v has %v kings", color, side.King().OnesCount()))
		}
	}
	return Join(errs...)
}

// Commit applies a move for color with no legality checks and records it as
// the mover's last ply. The opponent's last ply is cleared so an en passant
// window only survives for the reply to the double push.
func (p *Position) Commit(color Color, move Move, promoter Promoter) {
	mover, opponent := p.Sides(color)
	pt := mover.PieceAt(move.From)
	Apply(mover, pt, opponent, opponent.PieceAt(move.To), move, promoter)
	mover.Last = Ply{Move: move, Piece: pt}
	opponent.Last = Ply{}
}
