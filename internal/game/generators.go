package game

import (
	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/helpers"
)

// generate produces the pseudo-legal destinations of a single piece.
func generate(mover, opponent *Side, pt PieceType, piece Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnMoves(mover, opponent, piece)
	case Knight:
		return knightMoves(mover, opponent, piece)
	case Bishop:
		return bishopMoves(mover, opponent, piece)
	case Rook:
		return rookMoves(mover, opponent, piece)
	case Queen:
		return queenMoves(mover, opponent, piece)
	case King:
		return kingMoves(mover, opponent, piece)
	}
	return 0
}

// Generate unions the destinations of every mover piece of type pt.
func Generate(mover, opponent *Side, pt PieceType) Bitboard {
	return GenerateFrom(mover, opponent, pt, AllOnes)
}

// GenerateFrom only considers pieces of type pt standing inside origins.
// Pieces outside origins still block as ordinary occupancy.
func GenerateFrom(mover, opponent *Side, pt PieceType, origins Bitboard) Bitboard {
	if !pt.IsValid() {
		return 0
	}
	result := AllZeros
	pieces := mover.Pieces[pt] & origins
	for pieces != 0 {
		piece := AllZeros
		piece, pieces = pieces.NextOne()
		result |= generate(mover, opponent, pt, piece)
	}
	return result
}

func PawnMoves(mover, opponent *Side) Bitboard {
	return Generate(mover, opponent, Pawn)
}

func KnightMoves(mover, opponent *Side) Bitboard {
	return Generate(mover, opponent, Knight)
}

func BishopMoves(mover, opponent *Side) Bitboard {
	return Generate(mover, opponent, Bishop)
}

func RookMoves(mover, opponent *Side) Bitboard {
	return Generate(mover, opponent, Rook)
}

func QueenMoves(mover, opponent *Side) Bitboard {
	return Generate(mover, opponent, Queen)
}

func KingMoves(mover, opponent *Side) Bitboard {
	return Generate(mover, opponent, King)
}

// KingMovesFast is plain adjacency minus own pieces. It ignores attacks and
// castling and is what the attack aggregator uses for kings.
func KingMovesFast(mover, opponent *Side) Bitboard {
	return kingAdjacency(mover.King()).Without(mover.Occupied())
}

func pushForward(b Bitboard, color Color) Bitboard {
	if color == White {
		return ShiftTowardsIndex64(b, 8)
	}
	return ShiftTowardIndex0(b, 8)
}

func pushBackward(b Bitboard, color Color) Bitboard {
	return pushForward(b, color.Other())
}

// PawnAttacks is the diagonal capture pattern of pawns regardless of what
// stands on the target squares.
func PawnAttacks(pawns Bitboard, color Color) Bitboard {
	if color == White {
		return ShiftTowardsIndex64(pawns, 9).Without(FileA) |
			ShiftTowardsIndex64(pawns, 7).Without(FileH)
	}
	return ShiftTowardIndex0(pawns, 9).Without(FileH) |
		ShiftTowardIndex0(pawns, 7).Without(FileA)
}

// EnPassantTarget is the square a mover pawn may capture onto because the
// opponent's last ply was a double pawn push, or zero.
func EnPassantTarget(mover, opponent *Side) Bitboard {
	last := opponent.Last
	if last.Piece != Pawn {
		return 0
	}
	if !last.Move.From.Has(HomeRank[opponent.Color][1]) || !last.Move.To.Has(HomeRank[opponent.Color][3]) {
		return 0
	}
	if !opponent.Pieces[Pawn].Has(last.Move.To) {
		return 0
	}
	return pushForward(last.Move.To, mover.Color)
}

func pawnMoves(mover, opponent *Side, pawn Bitboard) Bitboard {
	color := mover.Color
	empty := ^(mover.Occupied() | opponent.Occupied())

	single := pushForward(pawn, color) & empty
	double := AllZeros
	if pawn.Has(HomeRank[color][1]) {
		double = pushForward(single, color) & empty
	}

	attacks := PawnAttacks(pawn, color)
	captures := attacks & opponent.Occupied()
	enPassant := attacks & EnPassantTarget(mover, opponent) & empty

	return single | double | captures | enPassant
}

func knightJumps(knights Bitboard) Bitboard {
	notA := ^FileA
	notAB := ^(FileA | FileB)
	notH := ^FileH
	notGH := ^(FileG | FileH)

	return ShiftTowardsIndex64(knights, 17)&notA |
		ShiftTowardsIndex64(knights, 15)&notH |
		ShiftTowardsIndex64(knights, 10)&notAB |
		ShiftTowardsIndex64(knights, 6)&notGH |
		ShiftTowardIndex0(knights, 17)&notH |
		ShiftTowardIndex0(knights, 15)&notA |
		ShiftTowardIndex0(knights, 10)&notGH |
		ShiftTowardIndex0(knights, 6)&notAB
}

func knightMoves(mover, opponent *Side, knight Bitboard) Bitboard {
	return knightJumps(knight).Without(mover.Occupied())
}

type diagonal struct {
	shift int
	edge  Bitboard
}

// Positive shifts move toward h8, negative toward a1. A ray stops before it
// would leave the board through edge.
var _diagonals = [4]diagonal{
	{9, FileH | Rank8},
	{7, FileA | Rank8},
	{-7, FileH | Rank1},
	{-9, FileA | Rank1},
}

func diagonalRays(piece, own, enemy Bitboard) Bitboard {
	result := AllZeros
	for _, d := range _diagonals {
		square := piece
		for !square.Has(d.edge) {
			if d.shift > 0 {
				square = ShiftTowardsIndex64(square, d.shift)
			} else {
				square = ShiftTowardIndex0(square, -d.shift)
			}
			if square.Has(own) {
				break
			}
			result |= square
			if square.Has(enemy) {
				break
			}
		}
	}
	return result
}

// lineRays finds, for each rank and file through piece, the closest blocker
// above (lowest set bit) and below (highest set bit). Squares between piece
// and those blockers are reachable; the blocker itself only when it is an
// enemy.
func lineRays(piece, own, enemy Bitboard) Bitboard {
	index := piece.FirstIndexOfOne()
	upper := AllOnes << (index + 1)
	lower := piece - 1
	blockers := own | enemy

	result := AllZeros
	for _, line := range [2]Bitboard{piece.RankOf(), piece.FileOf()} {
		line = line.Without(piece)

		above := line & upper
		if b := (blockers & above).LeastSignificantOne(); b != 0 {
			above &= (b << 1) - 1
		}
		below := line & lower
		if b := (blockers & below).MostSignificantOne(); b != 0 {
			below &= ^(b - 1)
		}

		result |= above | below
	}
	return result.Without(own)
}

func bishopMoves(mover, opponent *Side, bishop Bitboard) Bitboard {
	return diagonalRays(bishop, mover.Occupied(), opponent.Occupied())
}

func rookMoves(mover, opponent *Side, rook Bitboard) Bitboard {
	return lineRays(rook, mover.Occupied(), opponent.Occupied())
}

func queenMoves(mover, opponent *Side, queen Bitboard) Bitboard {
	own, enemy := mover.Occupied(), opponent.Occupied()
	return diagonalRays(queen, own, enemy) | lineRays(queen, own, enemy)
}

func kingAdjacency(king Bitboard) Bitboard {
	sideways := ShiftTowardIndex0(king, 1).Without(FileH) |
		ShiftTowardsIndex64(king, 1).Without(FileA)
	row := king | sideways
	return sideways | ShiftTowardsIndex64(row, 8) | ShiftTowardIndex0(row, 8)
}

func kingMoves(mover, opponent *Side, king Bitboard) Bitboard {
	attacked := AttackedSquares(opponent, mover)
	moves := kingAdjacency(king).Without(mover.Occupied()).Without(attacked)
	return moves | castlingMoves(mover, opponent, king, attacked)
}
