package fen

import (
	"testing"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStartFen(t *testing.T) {
	p, player, err := PositionFromFen(StartFen)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, White, player)

	expected := InitStandardPosition()
	assert.Empty(t, cmp.Diff(expected, p))
	assert.Equal(t, StartFen, FenForPosition(&expected, White))
}

func TestNotationDecoding(t *testing.T) {
	s := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	p, player, err := PositionFromFen(s)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, Black, player)
	assert.Equal(t, Piece{Pawn, White}, p.PieceAt(E4))
	assert.Equal(t, NoColoredPiece, p.PieceAt(E2))
	assert.Equal(t, Ply{Move: NewMove(E2, E4), Piece: Pawn}, p.White.Last)
	assert.True(t, p.Black.Last.IsEmpty())
	assert.Equal(t, E3, EnPassantTarget(&p.Black, &p.White))

	assert.Equal(t, s, FenForPosition(&p, player))
}

func TestNotationDecodingEndgame(t *testing.T) {
	s := "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8 w - - 99 50"
	p, player, err := PositionFromFen(s)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, White, player)
	assert.Equal(t, AllRightsForfeited, p.White.Castle)
	assert.Equal(t, AllRightsForfeited, p.Black.Castle)
	assert.Equal(t, H3, p.White.King())
	assert.Equal(t, F7, p.Black.King())
	assert.Equal(t, A3|B4|D5|E4|F3|H4, p.White.Pieces[Pawn])
	assert.Equal(t, "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8 w - - 0 1", FenForPosition(&p, player))
}

func TestCastlingRights(t *testing.T) {
	s := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, player, err := PositionFromFen(s)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, CastlingRights(0), p.White.Castle)
	assert.Equal(t, CastlingRights(0), p.Black.Castle)

	assert.True(t, AttemptMove(&p, NewMove(E1, C1), player, true))
	assert.Equal(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/2KR3R b kq - 0 1", FenForPosition(&p, Black))

	p, _, err = PositionFromFen("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, QueensideRookMoved, p.White.Castle)
	assert.Equal(t, KingsideRookMoved, p.Black.Castle)
	assert.Equal(t, G1|D1|D2|E2|F2|F1, LegalDestinations(&p, E1))
}

func TestEnPassantRoundTrip(t *testing.T) {
	s := "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"
	p, player, err := PositionFromFen(s)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Ply{Move: NewMove(F7, F5), Piece: Pawn}, p.Black.Last)
	assert.Equal(t, E6|F6, LegalDestinations(&p, E5))
	assert.Equal(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 1", FenForPosition(&p, player))
}

func TestInvalidFens(t *testing.T) {
	for _, s := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkz - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - a 1",
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	} {
		_, _, err := PositionFromFen(s)
		assert.False(t, IsNil(err), s)
	}
}

func TestFenWithoutClocks(t *testing.T) {
	p, player, err := PositionFromFen("4k3/8/8/8/8/8/8/4K3 b - -")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Black, player)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1", FenForPosition(&p, player))
}
