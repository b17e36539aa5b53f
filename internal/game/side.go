package game

import (
	"fmt"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// CastlingRights records which castling prerequisites have been forfeited.
// A zero value means every right is still intact.
type CastlingRights uint8

const (
	KingMoved CastlingRights = 1 << iota
	KingsideRookMoved
	QueensideRookMoved

	AllRightsForfeited = KingMoved | KingsideRookMoved | QueensideRookMoved
)

func (c CastlingRights) Has(flag CastlingRights) bool {
	return c&flag != 0
}

// CanCastle only checks the recorded flags, not the board.
func (c CastlingRights) CanCastle(side CastlingSide) bool {
	return !c.Has(KingMoved) && !c.Has(RookRightFor(side))
}

func RookRightFor(side CastlingSide) CastlingRights {
	if side == Kingside {
		return KingsideRookMoved
	}
	return QueensideRookMoved
}

// Ply is the most recent move a side made together with the piece type that
// moved. The zero value means "no history".
type Ply struct {
	Move  Move
	Piece PieceType
}

func (p Ply) IsEmpty() bool {
	return p.Piece == NoPiece
}

// Side is one color's share of the position. Pieces is indexed by PieceType;
// Pieces[NoPiece] is always empty.
type Side struct {
	Pieces [NumPieceTypes]Bitboard
	Color  Color
	Castle CastlingRights
	Last   Ply
}

func (s *Side) Occupied() Bitboard {
	result := AllZeros
	for _, pt := range AllPieceTypes {
		result |= s.Pieces[pt]
	}
	return result
}

func (s *Side) King() Bitboard {
	return s.Pieces[King]
}

func (s *Side) PieceAt(square Bitboard) PieceType {
	for _, pt := range AllPieceTypes {
		if s.Pieces[pt].Has(square) {
			return pt
		}
	}
	return NoPiece
}

func (s *Side) String() string {
	return fmt.Sprintf("%v{pnbrqk: %#x %#x %#x %#x %#x %#x, castle: %03b, last: %v %v}",
		s.Color,
		uint64(s.Pieces[Pawn]), uint64(s.Pieces[Knight]), uint64(s.Pieces[Bishop]),
		uint64(s.Pieces[Rook]), uint64(s.Pieces[Queen]), uint64(s.Pieces[King]),
		s.Castle, s.Last.Piece, s.Last.Move)
}

func standardSide(color Color) Side {
	side := Side{Color: color}
	back := HomeRank[color][0]
	side.Pieces[Pawn] = HomeRank[color][1]
	side.Pieces[Knight] = back & (FileB | FileG)
	side.Pieces[Bishop] = back & (FileC | FileF)
	side.Pieces[Rook] = back & (FileA | FileH)
	side.Pieces[Queen] = back & FileD
	side.Pieces[King] = back & FileE
	return side
}
