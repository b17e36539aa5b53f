package bitboards

import (
	"fmt"
	"math/bits"
	"strings"

	. "github.com/cricklet/chessrules/internal/helpers"
)

// Bitboard is a square set: bit i is square i, a1 = 0, b1 = 1, ... h8 = 63.
type Bitboard uint64

const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileC Bitboard = 0x0404040404040404
	FileD Bitboard = 0x0808080808080808
	FileE Bitboard = 0x1010101010101010
	FileF Bitboard = 0x2020202020202020
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080

	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000

	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares  Bitboard = 0xAA55AA55AA55AA55

	AllZeros Bitboard = 0
	AllOnes  Bitboard = ^AllZeros
)

var RankMasks = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
var FileMasks = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// Rank indexed from each color's own side: HomeRank[c][0] is the back rank.
var HomeRank = [2][8]Bitboard{
	{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8},
	{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1},
}

var SingleBitboards [64]Bitboard = func() [64]Bitboard {
	result := [64]Bitboard{}
	for i := 0; i < 64; i++ {
		result[i] = ShiftTowardsIndex64(1, i)
	}
	return result
}()

func SingleBitboard(index int) Bitboard {
	return SingleBitboards[index]
}

func ShiftTowardIndex0(b Bitboard, n int) Bitboard {
	return b >> n
}

func ShiftTowardsIndex64(b Bitboard, n int) Bitboard {
	return b << n
}

// Without excludes every square of mask from b.
func (b Bitboard) Without(mask Bitboard) Bitboard {
	return b & ^mask
}

func (b Bitboard) Has(mask Bitboard) bool {
	return b&mask != 0
}

func (b Bitboard) IsEmpty() bool {
	return b == 0
}

func (b Bitboard) LeastSignificantOne() Bitboard {
	return b & -b
}

func (b Bitboard) MostSignificantOne() Bitboard {
	if b == 0 {
		return 0
	}
	return SingleBitboard(63 - bits.LeadingZeros64(uint64(b)))
}

func (b Bitboard) FirstIndexOfOne() int {
	return bits.TrailingZeros64(uint64(b))
}

func (b Bitboard) LastIndexOfOne() int {
	return 63 - bits.LeadingZeros64(uint64(b))
}

// NextIndexOfOne pops the lowest set bit and returns its index.
func (b Bitboard) NextIndexOfOne() (int, Bitboard) {
	ls1 := b.LeastSignificantOne()
	return ls1.FirstIndexOfOne(), b ^ ls1
}

// NextOne pops the lowest set bit as a single-square board.
func (b Bitboard) NextOne() (Bitboard, Bitboard) {
	ls1 := b.LeastSignificantOne()
	return ls1, b ^ ls1
}

func (b Bitboard) EachIndexOfOneCallback(callback func(int)) {
	temp := b
	for temp != 0 {
		index := 0
		index, temp = temp.NextIndexOfOne()
		callback(index)
	}
}

func (b Bitboard) OnesCount() int {
	return bits.OnesCount64(uint64(b))
}

// RankOf and FileOf expect b to hold exactly one square.
func (b Bitboard) RankOf() Bitboard {
	return RankMasks[b.FirstIndexOfOne()>>3]
}

func (b Bitboard) FileOf() Bitboard {
	return FileMasks[b.FirstIndexOfOne()&0b111]
}

func (b Bitboard) RankIndex() int {
	return b.FirstIndexOfOne() >> 3
}

func (b Bitboard) FileIndex() int {
	return b.FirstIndexOfOne() & 0b111
}

// Rotate180 maps square i onto square 63-i.
func (b Bitboard) Rotate180() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

func (b Bitboard) Square() string {
	if b.OnesCount() != 1 {
		return fmt.Sprintf("%#x", uint64(b))
	}
	return StringFromBoardIndex(b.FirstIndexOfOne())
}

func (b Bitboard) String() string {
	ranks := [8]string{}
	for rank := 0; rank < 8; rank++ {
		row := ""
		for file := 0; file < 8; file++ {
			if b&SingleBitboard(rank*8+file) != 0 {
				row += "1"
			} else {
				row += "0"
			}
		}
		ranks[7-rank] = row
	}
	return strings.Join(ranks[0:], "\n")
}

// BitboardFromStrings reads a board drawn with rank 8 first and file a on the
// left, the same layout String prints.
func BitboardFromStrings(strings [8]string) Bitboard {
	b := Bitboard(0)
	for inverseRank, line := range strings {
		for file, c := range line {
			if c == '1' {
				index := IndexFromFileRank(FileRank{File: File(file), Rank: Rank(7 - inverseRank)})
				b |= SingleBitboard(index)
			}
		}
	}
	return b
}

func BitboardWithAllLocationsSet(locations []string) Bitboard {
	return ReduceSlice(
		MapSlice(locations, BoardIndexFromString),
		0,
		func(result Bitboard, index int) Bitboard {
			return result | SingleBitboard(index)
		},
	)
}

func BitboardFromString(location string) (Bitboard, Error) {
	fileRank, err := FileRankFromString(location)
	if !IsNil(err) {
		return 0, err
	}
	return SingleBitboard(IndexFromFileRank(fileRank)), NilError
}
