package helpers

// GameSetup is a starting FEN plus the coordinate moves played from it.
type GameSetup struct {
	Fen   string
	Moves []string
}

type Runner interface {
	PerformMoveFromString(s string) Error
	SetupPosition(setup GameSetup) Error
	PerformMoves(startFen string, moves []string) Error
	MovesForSelection(s string) ([]string, Error)
	Rewind(num int) Error
	Reset()
	IsNew() bool
	FenString() string
}
