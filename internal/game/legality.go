package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// Rejection explains why a move was refused. Accepted is the zero value.
type Rejection int

const (
	Accepted Rejection = iota
	UnknownColor
	NoPieceAtOrigin
	Unreachable
	LeavesKingInCheck
)

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case UnknownColor:
		return "unknown color"
	case NoPieceAtOrigin:
		return "no piece at origin"
	case Unreachable:
		return "destination unreachable"
	case LeavesKingInCheck:
		return "leaves king in check"
	default:
		return "unknown rejection"
	}
}

// AsError converts a rejection into the helpers error type, NilError when
// accepted.
func (r Rejection) AsError(move Move, color Color) Error {
	if r == Accepted {
		return NilError
	}
	return Errorf("%v %v: %v", color, move, r)
}

// IsLegal reports whether moverType on move.From may legally go to move.To.
// Both sides are taken by value so the check never changes the caller's
// position.
func IsLegal(mover, opponent Side, moverType PieceType, move Move) bool {
	return checkMove(mover, opponent, moverType, move) == Accepted
}

func checkMove(mover, opponent Side, moverType PieceType, move Move) Rejection {
	if move.From.OnesCount() != 1 || !moverType.IsValid() || !mover.Pieces[moverType].Has(move.From) {
		return NoPieceAtOrigin
	}
	if !move.IsWellFormed() {
		return Unreachable
	}
	if !GenerateFrom(&mover, &opponent, moverType, move.From).Has(move.To) {
		return Unreachable
	}

	Apply(&mover, moverType, &opponent, opponent.PieceAt(move.To), move, QueenPromoter)
	if IsKingAttacked(&mover, &opponent) {
		return LeavesKingInCheck
	}
	return Accepted
}

// ValidateMove looks up what stands on move.From and checks the move for
// color without changing the position.
func ValidateMove(p *Position, move Move, color Color) Rejection {
	if !color.IsValid() {
		return UnknownColor
	}
	mover, opponent := p.Sides(color)
	pt := mover.PieceAt(move.From)
	if pt == NoPiece || move.From.OnesCount() != 1 {
		return NoPieceAtOrigin
	}
	return checkMove(*mover, *opponent, pt, move)
}

// AttemptMove validates move and, when commit is set and the move is legal,
// plays it with queen promotion. A rejected move leaves p untouched.
func AttemptMove(p *Position, move Move, color Color, commit bool) bool {
	if !commit {
		return ValidateMove(p, move, color) == Accepted
	}
	return CommitMove(p, move, color, QueenPromoter) == Accepted
}

// CommitMove is AttemptMove with a caller-chosen promoter. The move is only
// written to p when it is accepted.
func CommitMove(p *Position, move Move, color Color, promoter Promoter) Rejection {
	rejection := ValidateMove(p, move, color)
	if rejection != Accepted {
		return rejection
	}
	p.Commit(color, move, promoter)
	return Accepted
}

// LegalDestinations lists every square the piece on from can legally reach.
func LegalDestinations(p *Position, from Bitboard) Bitboard {
	piece := p.PieceAt(from)
	if piece.IsEmpty() || from.OnesCount() != 1 {
		return 0
	}
	mover, opponent := p.Sides(piece.Color)
	result := AllZeros
	targets := GenerateFrom(mover, opponent, piece.Type, from)
	for targets != 0 {
		to := AllZeros
		to, targets = targets.NextOne()
		if IsLegal(*mover, *opponent, piece.Type, NewMove(from, to)) {
			result |= to
		}
	}
	return result
}
