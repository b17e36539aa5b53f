package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// AttackedSquares is every square side could move to or capture on, with
// pawns contributing their diagonals and the king its plain adjacency.
// Piece moves skip squares holding side's own pieces. Pawn diagonals are
// included whatever stands on them.
func AttackedSquares(side, opponent *Side) Bitboard {
	result := PawnAttacks(side.Pieces[Pawn], side.Color)
	result |= KnightMoves(side, opponent)
	result |= BishopMoves(side, opponent)
	result |= RookMoves(side, opponent)
	result |= QueenMoves(side, opponent)
	result |= KingMovesFast(side, opponent)
	return result
}

// IsKingAttacked reports whether side's king stands on a square opponent
// attacks.
func IsKingAttacked(side, opponent *Side) bool {
	return AttackedSquares(opponent, side).Has(side.King())
}

func IsInCheck(p *Position, color Color) bool {
	if !color.IsValid() {
		return false
	}
	mover, opponent := p.Sides(color)
	return IsKingAttacked(mover, opponent)
}

type castlingRequirements struct {
	Side   CastlingSide
	King   Bitboard
	KingTo Bitboard
	Rook   Bitboard
	RookTo Bitboard
	Empty  Bitboard
	Safe   Bitboard
}

var AllCastlingRequirements = [2][2]castlingRequirements{
	{
		{Kingside, E1, G1, H1, F1, F1 | G1, F1 | G1},
		{Queenside, E1, C1, A1, D1, B1 | C1 | D1, D1 | C1},
	},
	{
		{Kingside, E8, G8, H8, F8, F8 | G8, F8 | G8},
		{Queenside, E8, C8, A8, D8, B8 | C8 | D8, D8 | C8},
	},
}

func castlingMoves(mover, opponent *Side, king Bitboard, attacked Bitboard) Bitboard {
	if mover.Castle.Has(KingMoved) || king.Has(attacked) {
		return 0
	}

	occupied := mover.Occupied() | opponent.Occupied()
	result := AllZeros
	for _, req := range AllCastlingRequirements[mover.Color] {
		if !mover.Castle.CanCastle(req.Side) || king != req.King {
			continue
		}
		if !mover.Pieces[Rook].Has(req.Rook) {
			continue
		}
		if occupied.Has(req.Empty) || attacked.Has(req.Safe) {
			continue
		}
		result |= req.KingTo
	}
	return result
}

// corner returns the castling side whose rook starts on square, if any.
func corner(color Color, square Bitboard) Optional[CastlingSide] {
	for _, req := range AllCastlingRequirements[color] {
		if req.Rook == square {
			return Some(req.Side)
		}
	}
	return Empty[CastlingSide]()
}
