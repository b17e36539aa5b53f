package game

import (
	"testing"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

var pp = spew.Sdump

type pieceSet map[PieceType]Bitboard

func sideWith(color Color, ps pieceSet) Side {
	side := Side{Color: color, Castle: AllRightsForfeited}
	for pt, b := range ps {
		side.Pieces[pt] = b
	}
	return side
}

func assertBitboard(t *testing.T, expected Bitboard, actual Bitboard) {
	t.Helper()
	assert.Equal(t, expected, actual, "expected\n%v\nactual\n%v", expected, actual)
}

func TestPawnsFirstMove(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: Rank2})
	black := sideWith(Black, pieceSet{})
	assertBitboard(t, Rank3|Rank4, PawnMoves(&white, &black))

	black = sideWith(Black, pieceSet{Pawn: Rank7})
	white = sideWith(White, pieceSet{})
	assertBitboard(t, Rank6|Rank5, PawnMoves(&black, &white))
}

func TestPawnsBlocked(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: Rank2})
	black := sideWith(Black, pieceSet{Pawn: 0x0F000000})
	assertBitboard(t, Rank3|(Rank4&0xF0000000), PawnMoves(&white, &black))
}

func TestPawnMiddleGame(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: D3 | E4 | F5})
	black := sideWith(Black, pieceSet{Pawn: D5 | E5 | E6})
	assertBitboard(t, 0x300808000000, PawnMoves(&white, &black))
}

func TestPawnCapturesDoNotWrap(t *testing.T) {
	black := sideWith(Black, pieceSet{Pawn: H5})
	white := sideWith(White, pieceSet{Pawn: G4 | A4 | B4 | A5})
	assertBitboard(t, 0xC0000000, PawnMoves(&black, &white))
}

func TestEnPassant(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: E5})
	black := sideWith(Black, pieceSet{Pawn: D5})
	black.Last = Ply{Move: NewMove(D7, D5), Piece: Pawn}
	assertBitboard(t, 0x180000000000, PawnMoves(&white, &black))

	white = sideWith(White, pieceSet{Pawn: F4})
	black = sideWith(Black, pieceSet{Pawn: E4})
	white.Last = Ply{Move: NewMove(F2, F4), Piece: Pawn}
	assertBitboard(t, 0x300000, PawnMoves(&black, &white))
}

func TestEnPassantNeedsDoublePush(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: E5})
	black := sideWith(Black, pieceSet{Pawn: D5})

	black.Last = Ply{Move: NewMove(D6, D5), Piece: Pawn}
	assertBitboard(t, E6, PawnMoves(&white, &black))

	black.Last = Ply{Move: NewMove(D7, D5), Piece: Rook}
	assertBitboard(t, E6, PawnMoves(&white, &black))

	black.Last = Ply{}
	assertBitboard(t, E6, PawnMoves(&white, &black))
}

func TestKnights(t *testing.T) {
	empty := sideWith(Black, pieceSet{})

	white := sideWith(White, pieceSet{Knight: C5})
	assertBitboard(t, 0xA1100110A0000, KnightMoves(&white, &empty))

	white = sideWith(White, pieceSet{Knight: A1 | E4 | H8})
	assertBitboard(t, 0x20684400462C00, KnightMoves(&white, &empty))

	white = sideWith(White, pieceSet{Knight: C5, Pawn: D7 | E6})
	assertBitboard(t, Bitboard(0xA1100110A0000).Without(D7|E6), KnightMoves(&white, &empty))
}

func TestRooks(t *testing.T) {
	empty := sideWith(Black, pieceSet{})

	white := sideWith(White, pieceSet{Rook: D4})
	assertBitboard(t, 0x8080808F7080808, RookMoves(&white, &empty))

	white = sideWith(White, pieceSet{Rook: A1 | H1})
	assertBitboard(t, 0x818181818181817E, RookMoves(&white, &empty))
}

func TestRookCapture(t *testing.T) {
	white := sideWith(White, pieceSet{Rook: D4, Pawn: D1 | D6 | H4 | B4})
	black := sideWith(Black, pieceSet{Pawn: D2 | D7 | G4 | A4})
	assertBitboard(t, 0x874080800, RookMoves(&white, &black))
}

func TestRookMiddleGame(t *testing.T) {
	white := sideWith(White, pieceSet{Rook: E1 | E4 | E8})
	black := sideWith(Black, pieceSet{Pawn: E3 | H7 | B4})
	assertBitboard(t, 0xEF101010EE1010EF, RookMoves(&white, &black))
}

func TestRookHorizontal(t *testing.T) {
	black := sideWith(Black, pieceSet{Rook: F7, Pawn: D7 | C7 | B7})
	white := sideWith(White, pieceSet{})
	assertBitboard(t, 0x20D0202020202020, RookMoves(&black, &white))
}

func TestBishops(t *testing.T) {
	empty := sideWith(Black, pieceSet{})

	white := sideWith(White, pieceSet{Bishop: D4})
	assertBitboard(t, 0x8041221400142241, BishopMoves(&white, &empty))

	white = sideWith(White, pieceSet{Bishop: D4, Pawn: F6 | C3})
	black := sideWith(Black, pieceSet{Pawn: B6})
	assertBitboard(t, 0x21400102040, BishopMoves(&white, &black))

	white = sideWith(White, pieceSet{Bishop: A1 | B2 | C3 | D4 | E5 | F6 | G7 | H8})
	assertBitboard(t, 0x2A158A45A251A854, BishopMoves(&white, &empty))
}

func TestQueens(t *testing.T) {
	empty := sideWith(Black, pieceSet{})

	white := sideWith(White, pieceSet{Queen: D4})
	assertBitboard(t, 0x88492A1CF71C2A49, QueenMoves(&white, &empty))

	white = sideWith(White, pieceSet{Queen: D4 | E4})
	assertBitboard(t, 0x99DB7E3CE73C7EDB, QueenMoves(&white, &empty))
}

func TestQueenMultipleCapture(t *testing.T) {
	white := sideWith(White, pieceSet{Queen: A2})
	black := sideWith(Black, pieceSet{Queen: G2 | B1 | F7 | A7})
	assertBitboard(t, 0x21110905037E03, QueenMoves(&white, &black))
}

func TestKing(t *testing.T) {
	white := sideWith(White, pieceSet{King: D4, Bishop: D5})
	black := sideWith(Black, pieceSet{})
	assertBitboard(t, 0x14141C0000, KingMoves(&white, &black))
}

func TestKingAvoidsAttackedSquares(t *testing.T) {
	white := sideWith(White, pieceSet{King: D4})
	black := sideWith(Black, pieceSet{Rook: A5, King: H8})
	assertBitboard(t, C3|D3|E3|C4|E4, KingMoves(&white, &black))
}

func TestKingCastle(t *testing.T) {
	white := sideWith(White, pieceSet{King: E1, Rook: A1 | H1})
	white.Castle = 0
	black := sideWith(Black, pieceSet{})
	assertBitboard(t, 0x386C, KingMoves(&white, &black))

	white.Castle = KingsideRookMoved
	assertBitboard(t, 0x382C, KingMoves(&white, &black))

	white.Castle = KingMoved
	assertBitboard(t, 0x3828, KingMoves(&white, &black))
}

func TestCastlingBlocked(t *testing.T) {
	white := sideWith(White, pieceSet{King: E1, Rook: A1 | H1, Knight: B1})
	white.Castle = 0
	black := sideWith(Black, pieceSet{})
	assertBitboard(t, 0x3868, KingMoves(&white, &black))

	// f1 attacked
	white = sideWith(White, pieceSet{King: E1, Rook: A1 | H1})
	white.Castle = 0
	black = sideWith(Black, pieceSet{Rook: F8})
	assertBitboard(t, D1|D2|E2|C1, KingMoves(&white, &black))

	// in check
	black = sideWith(Black, pieceSet{Rook: E8})
	assertBitboard(t, D1|D2|F2|F1, KingMoves(&white, &black))

	// rook missing
	white = sideWith(White, pieceSet{King: E1, Rook: A1})
	white.Castle = 0
	black = sideWith(Black, pieceSet{})
	assertBitboard(t, 0x382C, KingMoves(&white, &black))

	// b1 attacked does not matter
	white = sideWith(White, pieceSet{King: E1, Rook: A1})
	white.Castle = 0
	black = sideWith(Black, pieceSet{Rook: B8})
	assertBitboard(t, 0x382C, KingMoves(&white, &black))
}

func TestGenerateFromIsolatesOrigins(t *testing.T) {
	white := sideWith(White, pieceSet{Rook: A1 | H1})
	black := sideWith(Black, pieceSet{})

	fromA1 := GenerateFrom(&white, &black, Rook, A1)
	assertBitboard(t, (FileA | Rank1).Without(A1|H1), fromA1)
	assert.False(t, fromA1.Has(H1))

	fromH1 := GenerateFrom(&white, &black, Rook, H1)
	assertBitboard(t, (FileH | Rank1).Without(A1|H1), fromH1)

	assertBitboard(t, fromA1|fromH1, Generate(&white, &black, Rook))
	assertBitboard(t, 0, GenerateFrom(&white, &black, Rook, B1))
	assertBitboard(t, 0, GenerateFrom(&white, &black, NoPiece, AllOnes))
}

func TestGenerateDispatchesEveryPieceType(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: E2, Knight: B1, Bishop: C1, Rook: A1, Queen: D1, King: E1})
	black := sideWith(Black, pieceSet{King: E8})

	assertBitboard(t, E3|E4, Generate(&white, &black, Pawn))
	assertBitboard(t, A3|C3|D2, Generate(&white, &black, Knight))
	assertBitboard(t, B2|A3|D2|E3|F4|G5|H6, Generate(&white, &black, Bishop))
	assertBitboard(t, FileA.Without(A1), Generate(&white, &black, Rook))
	assertBitboard(t, FileD.Without(D1)|C2|B3|A4, Generate(&white, &black, Queen))
	assertBitboard(t, D2|F1|F2, Generate(&white, &black, King))
}

func TestAttackedSquares(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: E4, King: A1})
	black := sideWith(Black, pieceSet{King: H8})

	attacked := AttackedSquares(&white, &black)
	assert.True(t, attacked.Has(D5|F5), pp(attacked))
	assert.False(t, attacked.Has(E5))
	assert.True(t, attacked.Has(A2|B2|B1))
}

func TestAttackedSquaresKeepPawnGuardedPieces(t *testing.T) {
	white := sideWith(White, pieceSet{Pawn: E4, Knight: D5, Rook: B2, King: A1})
	black := sideWith(Black, pieceSet{King: H8})

	attacked := AttackedSquares(&white, &black)
	assert.True(t, attacked.Has(D5), pp(attacked))
	assert.False(t, attacked.Has(B2), pp(attacked))
	assert.False(t, attacked.Has(A1), pp(attacked))
}

func TestGeneratorsAreSymmetric(t *testing.T) {
	white := sideWith(White, pieceSet{
		Pawn:   A2 | C4 | F5 | H3,
		Knight: B1 | E5,
		Bishop: C1 | D3,
		Rook:   A1 | F1,
		Queen:  D1,
		King:   G1,
	})
	black := sideWith(Black, pieceSet{
		Pawn:   A7 | D6 | G6 | H7,
		Knight: C6,
		Bishop: B7 | G7,
		Rook:   A8 | E8,
		Queen:  E7,
		King:   G8,
	})

	rotate := func(s Side) Side {
		result := Side{Color: s.Color.Other(), Castle: s.Castle}
		for _, pt := range AllPieceTypes {
			result.Pieces[pt] = s.Pieces[pt].Rotate180()
		}
		return result
	}
	rotatedWhite := rotate(black)
	rotatedBlack := rotate(white)

	for _, pt := range AllPieceTypes {
		for _, color := range []Color{White, Black} {
			mover, opponent := &white, &black
			rotatedMover, rotatedOpponent := &rotatedBlack, &rotatedWhite
			if color == Black {
				mover, opponent = &black, &white
				rotatedMover, rotatedOpponent = &rotatedWhite, &rotatedBlack
			}
			assertBitboard(t,
				Generate(mover, opponent, pt).Rotate180(),
				Generate(rotatedMover, rotatedOpponent, pt))
		}
	}
}
