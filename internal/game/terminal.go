package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// _searchOrder walks the defender's pieces king first; king moves are the
// most common escape.
var _searchOrder = [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

// hasLegalMove stops at the first move that leaves defender's king safe.
// Each piece is tried only against its own destinations.
func hasLegalMove(defender, attacker *Side) bool {
	for _, pt := range _searchOrder {
		pieces := defender.Pieces[pt]
		for pieces != 0 {
			piece := AllZeros
			piece, pieces = pieces.NextOne()

			targets := GenerateFrom(defender, attacker, pt, piece)
			for targets != 0 {
				to := AllZeros
				to, targets = targets.NextOne()

				d, a := *defender, *attacker
				Apply(&d, pt, &a, a.PieceAt(to), NewMove(piece, to), QueenPromoter)
				if !IsKingAttacked(&d, &a) {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmated reports whether defender is in check with no move that gets
// its king out of check.
func IsCheckmated(attacker, defender *Side) bool {
	if !IsKingAttacked(defender, attacker) {
		return false
	}
	return !hasLegalMove(defender, attacker)
}

// IsStalemated reports whether defender is not in check yet has no legal
// move.
func IsStalemated(attacker, defender *Side) bool {
	if IsKingAttacked(defender, attacker) {
		return false
	}
	return !hasLegalMove(defender, attacker)
}

// IsMaterialDraw reports positions where neither side can force mate: no
// pawns, rooks or queens anywhere, and each side holds at most one minor
// piece or only bishops that all stand on one square color.
func IsMaterialDraw(a, b *Side) bool {
	return hasInsufficientMaterial(a) && hasInsufficientMaterial(b)
}

func hasInsufficientMaterial(s *Side) bool {
	if s.Pieces[Pawn] != 0 || s.Pieces[Rook] != 0 || s.Pieces[Queen] != 0 {
		return false
	}
	minors := s.Pieces[Knight] | s.Pieces[Bishop]
	if minors.OnesCount() <= 1 {
		return true
	}
	if s.Pieces[Knight] != 0 {
		return false
	}
	bishops := s.Pieces[Bishop]
	return bishops&LightSquares == bishops || bishops&DarkSquares == bishops
}
