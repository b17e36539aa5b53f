package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// ForEachLegalMove calls f for every legal move of color until f returns
// false. Promotions are reported once; the promoter decides the piece.
func ForEachLegalMove(p *Position, color Color, f func(pt PieceType, move Move) bool) {
	if !color.IsValid() {
		return
	}
	mover, opponent := p.Sides(color)
	for _, pt := range AllPieceTypes {
		pieces := mover.Pieces[pt]
		for pieces != 0 {
			piece := AllZeros
			piece, pieces = pieces.NextOne()

			targets := GenerateFrom(mover, opponent, pt, piece)
			for targets != 0 {
				to := AllZeros
				to, targets = targets.NextOne()

				move := NewMove(piece, to)
				if !IsLegal(*mover, *opponent, pt, move) {
					continue
				}
				if !f(pt, move) {
					return
				}
			}
		}
	}
}

func LegalMoves(p *Position, color Color) []Move {
	result := []Move{}
	ForEachLegalMove(p, color, func(pt PieceType, move Move) bool {
		result = append(result, move)
		return true
	})
	return result
}

// IsPromotionMove reports whether a pawn on move.From would promote.
func IsPromotionMove(p *Position, move Move, color Color) bool {
	if !color.IsValid() {
		return false
	}
	return p.Side(color).Pieces[Pawn].Has(move.From) && move.To.Has(HomeRank[color][7])
}

// Perft counts leaf nodes of the legal move tree, expanding each promotion
// into its four choices.
func Perft(p Position, color Color, depth int) int {
	if depth <= 0 {
		return 1
	}

	count := 0
	ForEachLegalMove(&p, color, func(pt PieceType, move Move) bool {
		promotions := []PieceType{NoPiece}
		if pt == Pawn && move.To.Has(HomeRank[color][7]) {
			promotions = PromotionPieceTypes[:]
		}
		for _, promotion := range promotions {
			if depth == 1 {
				count++
				continue
			}
			next := p
			next.Commit(color, move, FixedPromoter(promotion))
			count += Perft(next, color.Other(), depth-1)
		}
		return true
	})
	return count
}

// Divide calls f with the perft count below each root move and returns the
// total. Promotions are reported per piece, e.g. "b7b8n".
func Divide(p Position, color Color, depth int, f func(move string, count int)) int {
	if depth <= 0 {
		return 1
	}

	total := 0
	ForEachLegalMove(&p, color, func(pt PieceType, move Move) bool {
		promotions := []PieceType{NoPiece}
		if pt == Pawn && move.To.Has(HomeRank[color][7]) {
			promotions = PromotionPieceTypes[:]
		}
		for _, promotion := range promotions {
			next := p
			next.Commit(color, move, FixedPromoter(promotion))
			count := Perft(next, color.Other(), depth-1)

			name := move.String()
			if promotion.IsPromotion() {
				name += promotion.String()
			}
			f(name, count)
			total += count
		}
		return true
	})
	return total
}
