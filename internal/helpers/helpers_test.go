package helpers

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	assert.Equal(t, []string{"1", "2", "3", "4"}, MapSlice(xs, func(x int) string { return fmt.Sprint(x) }))
	assert.Equal(t, []int{2, 4}, FilterSlice(xs, func(x int) bool { return x%2 == 0 }))
	assert.Equal(t, 10, ReduceSlice(xs, 0, func(sum int, x int) int { return sum + x }))
	assert.Equal(t, 3, FindInSlice(xs, func(x int) bool { return x > 2 }).Value())
	assert.True(t, FindInSlice(xs, func(x int) bool { return x > 4 }).IsEmpty())
	assert.True(t, Contains(xs, 4))
	assert.False(t, Contains(xs, 5))
	assert.Equal(t, []int{}, FilterSlice([]int{}, func(int) bool { return true }))
}

func TestOptional(t *testing.T) {
	assert.True(t, Some(0).HasValue())
	assert.True(t, Empty[int]().IsEmpty())
	assert.Equal(t, 7, Empty[int]().ValueOr(7))
	assert.Equal(t, 3, Some(3).ValueOr(7))
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, uint(3), AbsDiff(uint(2), uint(5)))
	assert.Equal(t, 3, AbsDiff(5, 2))
	assert.Equal(t, -1, MinInt(-1, 4))
	assert.Equal(t, 4, MaxInt(-1, 4))
}

func TestColor(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
	assert.Equal(t, "white", White.String())
	assert.Equal(t, "unknown", Color(5).String())
	assert.False(t, Color(5).IsValid())

	c, err := ColorFromString("b")
	assert.True(t, IsNil(err))
	assert.Equal(t, Black, c)
	_, err = ColorFromString("x")
	assert.False(t, IsNil(err))
}

func TestPieceTypes(t *testing.T) {
	for _, pt := range AllPieceTypes {
		assert.True(t, pt.IsValid(), pt.Name())
		assert.Equal(t, pt, PieceTypeFromString(pt.String()))
		assert.Equal(t, pt, PieceTypeFromString(strings.ToUpper(pt.String())))
	}
	for _, pt := range PromotionPieceTypes {
		assert.True(t, pt.IsPromotion(), pt.Name())
	}
	assert.False(t, Pawn.IsPromotion())
	assert.False(t, King.IsPromotion())
	assert.False(t, NoPiece.IsValid())
	assert.Equal(t, NoPiece, PieceTypeFromString("x"))
	assert.Equal(t, "?", NumPieceTypes.String())
}

func TestPieces(t *testing.T) {
	for _, c := range "PNBRQKpnbrqk" {
		piece, err := PieceFromRune(c)
		assert.True(t, IsNil(err))
		assert.Equal(t, string(c), piece.String())
	}
	_, err := PieceFromRune('x')
	assert.False(t, IsNil(err))

	assert.True(t, NoColoredPiece.IsEmpty())
	assert.Equal(t, "♞", Piece{Knight, Black}.Unicode())
}

func TestFileRank(t *testing.T) {
	for i := 0; i < 64; i++ {
		s := StringFromBoardIndex(i)
		assert.Equal(t, i, BoardIndexFromString(s), s)
	}
	assert.Equal(t, "e4", StringFromBoardIndex(28))

	for _, s := range []string{"", "e", "e9", "i1", "e44"} {
		_, err := FileRankFromString(s)
		assert.False(t, IsNil(err), s)
	}
	assert.Panics(t, func() { BoardIndexFromString("z0") })
}

func TestErrors(t *testing.T) {
	assert.True(t, IsNil(NilError))
	assert.True(t, IsNil(Wrap(nil)))
	assert.True(t, IsNil(Join(NilError, NilError)))

	first := Errorf("first %v", 1)
	assert.True(t, first.HasError())
	assert.Equal(t, "first 1", first.Error())
	assert.Equal(t, first, Wrap(first))

	joined := Join(first, NilError, Errorf("second"))
	assert.Equal(t, 2, joined.NumErrors())
	assert.Equal(t, "first 1; second", joined.Error())
	assert.Contains(t, joined.String(), "second")
	assert.Equal(t, 2, len(joined.Unwrap()))

	wrapped := Wrap(fmt.Errorf("plain"))
	assert.Equal(t, "plain", wrapped.Error())

	_, err := WrapReturn(3, nil)
	assert.True(t, IsNil(err))
}

func TestFuncLogger(t *testing.T) {
	lines := []string{}
	var logger Logger = FuncLogger(func(s string) {
		lines = append(lines, s)
	})
	logger.Println("a", 1)
	logger.Printf("%v-%v", "b", 2)
	logger.Print("c")
	assert.Equal(t, []string{"a 1\n", "b-2", "c"}, lines)

	var silent Logger = &SilentLogger
	silent.Println("nothing")
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "2s @ 5,000/s", FormatRate(10000, 2*time.Second))
	assert.Equal(t, "0s @ 0/s", FormatRate(10, 0))
}

func TestProgressBar(t *testing.T) {
	buf := bytes.Buffer{}
	bar := CreateProgressBar(&buf, 4, "depth 1")
	bar.Add(1)
	bar.Set(3)
	bar.Close()
	assert.Contains(t, buf.String(), "depth 1")
	assert.Contains(t, buf.String(), "4/4")
}
