package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// Promoter chooses the piece a pawn becomes on the last rank. Any answer
// other than knight, bishop, rook or queen is treated as queen.
type Promoter interface {
	Promote(color Color, move Move) PieceType
}

type PromoterFunc func(color Color, move Move) PieceType

func (f PromoterFunc) Promote(color Color, move Move) PieceType {
	return f(color, move)
}

var QueenPromoter Promoter = PromoterFunc(func(Color, Move) PieceType {
	return Queen
})

// FixedPromoter always answers pt.
func FixedPromoter(pt PieceType) Promoter {
	return PromoterFunc(func(Color, Move) PieceType {
		return pt
	})
}

// Apply mutates both sides to reflect move. It assumes the move is
// pseudo-legal for moverType and that opponentType is whatever stands on the
// destination. It does not touch either side's Last ply.
func Apply(mover *Side, moverType PieceType, opponent *Side, opponentType PieceType, move Move, promoter Promoter) {
	switch moverType {
	case Pawn:
		if isEnPassant(mover, opponent, opponentType, move) {
			movePiece(mover, Pawn, move)
			opponent.Pieces[Pawn] &^= pushBackward(move.To, mover.Color)
			return
		}
		if move.To.Has(HomeRank[mover.Color][7]) {
			promoted := Queen
			if promoter != nil {
				promoted = promoter.Promote(mover.Color, move)
			}
			if !promoted.IsPromotion() {
				promoted = Queen
			}
			mover.Pieces[Pawn] &^= move.From
			mover.Pieces[promoted] |= move.To
		} else {
			movePiece(mover, Pawn, move)
		}
	case Rook:
		movePiece(mover, Rook, move)
		if side := corner(mover.Color, move.From); side.HasValue() {
			mover.Castle |= RookRightFor(side.Value())
		}
	case King:
		if castled, ok := castlingFor(mover, move); ok {
			mover.Pieces[Rook] = mover.Pieces[Rook].Without(castled.Rook) | castled.RookTo
			mover.Castle |= RookRightFor(castled.Side)
		}
		movePiece(mover, King, move)
		mover.Castle |= KingMoved
	default:
		movePiece(mover, moverType, move)
	}

	if opponentType.IsValid() {
		opponent.Pieces[opponentType] &^= move.To
		if opponentType == Rook {
			if side := corner(opponent.Color, move.To); side.HasValue() {
				opponent.Castle |= RookRightFor(side.Value())
			}
		}
	}
}

func movePiece(side *Side, pt PieceType, move Move) {
	side.Pieces[pt] = side.Pieces[pt].Without(move.From) | move.To
}

func isEnPassant(mover, opponent *Side, opponentType PieceType, move Move) bool {
	if opponentType != NoPiece || move.From.FileOf() == move.To.FileOf() {
		return false
	}
	target := EnPassantTarget(mover, opponent)
	return target != 0 && target == move.To
}

func castlingFor(mover *Side, move Move) (castlingRequirements, bool) {
	for _, req := range AllCastlingRequirements[mover.Color] {
		if move.From == req.King && move.To == req.KingTo &&
			mover.Castle.CanCastle(req.Side) && mover.Pieces[Rook].Has(req.Rook) {
			return req, true
		}
	}
	return castlingRequirements{}, false
}
