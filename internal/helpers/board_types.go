package helpers

type File uint
type Rank uint

type FileRank struct {
	File File
	Rank Rank
}

type Color uint

const (
	White Color = iota
	Black
)

var _colorStrings = [2]string{
	"white", "black",
}

func (c Color) IsValid() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	if !c.IsValid() {
		return "unknown"
	}
	return _colorStrings[c]
}

func (c Color) Other() Color {
	return 1 - c
}

func ColorFromString(s string) (Color, Error) {
	switch s {
	case "w", "white":
		return White, NilError
	case "b", "black":
		return Black, NilError
	default:
		return White, Errorf("invalid color %q", s)
	}
}

// PieceType is ordered pawn..king; the terminal search walks it downwards.
type PieceType uint

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NumPieceTypes
)

var AllPieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

var PromotionPieceTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

func (p PieceType) IsValid() bool {
	return p >= Pawn && p <= King
}

func (p PieceType) IsPromotion() bool {
	return p >= Knight && p <= Queen
}

func (p PieceType) String() string {
	if p >= NumPieceTypes {
		return "?"
	}
	return [NumPieceTypes]string{
		" ", "p", "n", "b", "r", "q", "k",
	}[p]
}

func (p PieceType) Name() string {
	if p >= NumPieceTypes {
		return "unknown"
	}
	return [NumPieceTypes]string{
		"none", "pawn", "knight", "bishop", "rook", "queen", "king",
	}[p]
}

func PieceTypeFromString(s string) PieceType {
	switch s {
	case "p", "P":
		return Pawn
	case "n", "N":
		return Knight
	case "b", "B":
		return Bishop
	case "r", "R":
		return Rook
	case "q", "Q":
		return Queen
	case "k", "K":
		return King
	default:
		return NoPiece
	}
}

// Piece is a colored piece type, used by the rendering and FEN collaborators.
type Piece struct {
	Type  PieceType
	Color Color
}

var NoColoredPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

func (p Piece) String() string {
	if p.Color == White {
		return [NumPieceTypes]string{
			" ", "P", "N", "B", "R", "Q", "K",
		}[p.Type]
	}
	return p.Type.String()
}

func (p Piece) Unicode() string {
	return [NumPieceTypes]string{
		" ", "♟", "♞", "♝", "♜", "♛", "♚",
	}[p.Type]
}

func PieceFromRune(c rune) (Piece, Error) {
	switch c {
	case 'P':
		return Piece{Pawn, White}, NilError
	case 'N':
		return Piece{Knight, White}, NilError
	case 'B':
		return Piece{Bishop, White}, NilError
	case 'R':
		return Piece{Rook, White}, NilError
	case 'Q':
		return Piece{Queen, White}, NilError
	case 'K':
		return Piece{King, White}, NilError
	case 'p':
		return Piece{Pawn, Black}, NilError
	case 'n':
		return Piece{Knight, Black}, NilError
	case 'b':
		return Piece{Bishop, Black}, NilError
	case 'r':
		return Piece{Rook, Black}, NilError
	case 'q':
		return Piece{Queen, Black}, NilError
	case 'k':
		return Piece{King, Black}, NilError
	default:
		return NoColoredPiece, Errorf("invalid piece %q", c)
	}
}

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}
func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c) - '1'
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %q", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c) - 'a'
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %q", c)
	}
	return File(file), NilError
}

func (v FileRank) String() string {
	return v.File.String() + v.Rank.String()
}

func FileRankFromString(s string) (FileRank, Error) {
	if len(s) != 2 {
		return FileRank{}, Errorf("invalid location %q", s)
	}

	file, fileErr := FileFromChar(s[0])
	rank, rankErr := RankFromChar(s[1])

	if !IsNil(fileErr) || !IsNil(rankErr) {
		return FileRank{}, Join(Errorf("invalid location %q", s), fileErr, rankErr)
	}

	return FileRank{file, rank}, NilError
}

func IndexFromFileRank(location FileRank) int {
	return int(location.Rank)*8 + int(location.File)
}

func FileRankFromIndex(index int) FileRank {
	f := File(index & 0b111)
	r := Rank(index >> 3)
	return FileRank{f, r}
}

func StringFromBoardIndex(index int) string {
	return FileRankFromIndex(index).String()
}

func BoardIndexFromString(s string) int {
	location, err := FileRankFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return IndexFromFileRank(location)
}

type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

var AllCastlingSides = [2]CastlingSide{Kingside, Queenside}

func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}
