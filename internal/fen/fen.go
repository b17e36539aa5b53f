package fen

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
)

const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func FenStringForPlayer(p Color) string {
	if p == White {
		return "w"
	} else {
		return "b"
	}
}

var fenStringForCastling = [2][2]string{
	{"K", "Q"},
	{"k", "q"},
}

// castlingAllowed requires both the recorded rights and the king and rook on
// their starting squares.
func castlingAllowed(p *Position, color Color, side CastlingSide) bool {
	s := p.Side(color)
	req := AllCastlingRequirements[color][side]
	return s.Castle.CanCastle(side) && s.King() == req.King && s.Pieces[Rook].Has(req.Rook)
}

func fenStringForCastlingAllowed(p *Position) string {
	s := ""
	for _, color := range []Color{White, Black} {
		for _, side := range AllCastlingSides {
			if castlingAllowed(p, color, side) {
				s += fenStringForCastling[color][side]
			}
		}
	}
	if len(s) == 0 {
		s += "-"
	}
	return s
}

func fenStringForEnPassant(p *Position, player Color) string {
	mover, opponent := p.Sides(player)
	target := EnPassantTarget(mover, opponent)
	if target == 0 {
		return "-"
	}
	return target.Square()
}

func fenStringForBoard(p *Position) string {
	board := p.Board()
	s := ""
	for rank := 7; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < 8; file++ {
			index := IndexFromFileRank(FileRank{File: File(file), Rank: Rank(rank)})
			piece := board[index]
			if piece.IsEmpty() {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += piece.String()
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

// FenForPosition writes p with player to move. Clocks are not tracked and
// are always written as "0 1".
func FenForPosition(p *Position, player Color) string {
	return fmt.Sprintf("%v %v %v %v 0 1",
		fenStringForBoard(p),
		FenStringForPlayer(player),
		fenStringForCastlingAllowed(p),
		fenStringForEnPassant(p, player))
}

// PositionFromFen reads a FEN record. The castling field becomes the sides'
// rights flags and the en passant field becomes the last ply of the side
// that just moved. Clock fields are optional and ignored.
func PositionFromFen(s string) (Position, Color, Error) {
	ss := strings.Fields(s)
	if len(ss) != 4 && len(ss) != 6 {
		return Position{}, White, Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	position := InitEmptyPosition()

	boardStr, playerString, castlingRightsString, enPassantTargetString := ss[0], ss[1], ss[2], ss[3]

	var rankIndex Rank = 7
	var fileIndex File = 0
	for _, c := range boardStr {
		if c == '/' {
			if fileIndex != 8 || rankIndex == 0 {
				return Position{}, White, Errorf("wrong number of squares in rank %v, '%v'", rankIndex+1, s)
			}
			rankIndex--
			fileIndex = 0
		} else if indicesToSkip, err := strconv.ParseInt(string(c), 10, 0); err == nil {
			fileIndex += File(indicesToSkip)
			if fileIndex > 8 {
				return Position{}, White, Errorf("too many squares in rank %v, '%v'", rankIndex+1, s)
			}
		} else if piece, err := PieceFromRune(c); IsNil(err) {
			if fileIndex >= 8 {
				return Position{}, White, Errorf("too many squares in rank %v, '%v'", rankIndex+1, s)
			}
			square := SingleBitboard(IndexFromFileRank(FileRank{File: fileIndex, Rank: rankIndex}))
			err = position.Place(piece, square)
			if !IsNil(err) {
				return Position{}, White, err
			}
			fileIndex++
		} else {
			return Position{}, White, Errorf("unknown character '%c' in '%v'", c, s)
		}
	}
	if rankIndex != 0 || fileIndex != 8 {
		return Position{}, White, Errorf("incomplete board in '%v'", s)
	}

	player, err := ColorFromString(playerString)
	if !IsNil(err) {
		return Position{}, White, Join(Errorf("invalid player '%v' in '%v'", playerString, s), err)
	}

	for _, c := range castlingRightsString {
		switch c {
		case '-':
			continue
		case 'K':
			position.White.Castle &^= KingMoved | KingsideRookMoved
		case 'Q':
			position.White.Castle &^= KingMoved | QueensideRookMoved
		case 'k':
			position.Black.Castle &^= KingMoved | KingsideRookMoved
		case 'q':
			position.Black.Castle &^= KingMoved | QueensideRookMoved
		default:
			return Position{}, White, Errorf("invalid castling rights '%v' in '%v'", castlingRightsString, s)
		}
	}

	if enPassantTargetString != "-" {
		target, err := BitboardFromString(enPassantTargetString)
		if !IsNil(err) {
			return Position{}, White, Join(Errorf("invalid en-passant target '%v' in '%v'", enPassantTargetString, s), err)
		}
		pusher := position.Side(player.Other())
		if !target.Has(HomeRank[pusher.Color][2]) {
			return Position{}, White, Errorf("en-passant target '%v' is on the wrong rank in '%v'", enPassantTargetString, s)
		}
		to := ShiftTowardsIndex64(target, 8)
		from := ShiftTowardIndex0(target, 8)
		if pusher.Color == Black {
			to, from = from, to
		}
		if !pusher.Pieces[Pawn].Has(to) {
			return Position{}, White, Errorf("no pawn behind en-passant target '%v' in '%v'", enPassantTargetString, s)
		}
		pusher.Last = Ply{Move: NewMove(from, to), Piece: Pawn}
	}

	if len(ss) == 6 {
		for _, clock := range ss[4:] {
			if _, err := strconv.ParseInt(clock, 10, 0); err != nil {
				return Position{}, White, Errorf("invalid clock '%v' in '%v'", clock, s)
			}
		}
	}

	err = position.Validate()
	if !IsNil(err) {
		return Position{}, White, Join(Errorf("invalid position '%v'", s), err)
	}

	return position, player, NilError
}
