package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// Move is a pair of single-square boards. It carries no piece type; the
// board decides what stands on From.
type Move struct {
	From Bitboard
	To   Bitboard
}

func NewMove(from, to Bitboard) Move {
	return Move{From: from, To: to}
}

func (m Move) IsWellFormed() bool {
	return m.From.OnesCount() == 1 && m.To.OnesCount() == 1 && m.From != m.To
}

func (m Move) String() string {
	if m.From == 0 && m.To == 0 {
		return "0000"
	}
	return m.From.Square() + m.To.Square()
}

// MoveFromString parses coordinate notation such as "e2e4". A trailing
// promotion letter ("e7e8n") is returned separately.
func MoveFromString(s string) (Move, PieceType, Error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, NoPiece, Errorf("invalid move %q", s)
	}
	from, fromErr := BitboardFromString(s[0:2])
	to, toErr := BitboardFromString(s[2:4])
	if !IsNil(fromErr) || !IsNil(toErr) {
		return Move{}, NoPiece, Join(Errorf("invalid move %q", s), fromErr, toErr)
	}

	promotion := NoPiece
	if len(s) == 5 {
		promotion = PieceTypeFromString(s[4:5])
		if !promotion.IsPromotion() {
			return Move{}, NoPiece, Errorf("invalid promotion in %q", s)
		}
	}
	return NewMove(from, to), promotion, NilError
}
