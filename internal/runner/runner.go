package runner

import (
	"strings"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/fen"
	. "github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
)

type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	MaterialDraw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case MaterialDraw:
		return "draw by insufficient material"
	}
	return "unknown"
}

func (s Status) IsOver() bool {
	return s != InProgress
}

// GameRunner is the commit path for collaborators: it owns one position, the
// side to move and a snapshot per played move so moves can be rewound.
// The game status is searched once whenever the position changes.
type GameRunner struct {
	Logger   Logger
	Promoter Promoter

	StartFen string

	position Position
	player   Color
	started  bool
	status   Status
	searches int
	history  []HistoryValue
}

var _ Runner = (*GameRunner)(nil)

type HistoryValue struct {
	move Move
	// notation is the move as played, with the promotion letter if any.
	notation string
	before   Position
}

type Option func(*GameRunner)

func WithLogger(logger Logger) Option {
	return func(r *GameRunner) {
		r.Logger = logger
	}
}

func WithPromoter(promoter Promoter) Option {
	return func(r *GameRunner) {
		r.Promoter = promoter
	}
}

func WithStartFen(fen string) Option {
	return func(r *GameRunner) {
		r.StartFen = fen
	}
}

// NewGameRunner sets up StartFen (the standard position by default) so the
// runner is immediately playable.
func NewGameRunner(opts ...Option) (*GameRunner, Error) {
	r := &GameRunner{
		Logger:   &DefaultLogger,
		Promoter: QueenPromoter,
		StartFen: StartFen,
	}
	for _, opt := range opts {
		opt(r)
	}

	err := r.SetupPosition(GameSetup{Fen: r.StartFen})
	if !IsNil(err) {
		return nil, err
	}
	return r, NilError
}

func (r *GameRunner) Reset() {
	r.position = Position{}
	r.player = White
	r.started = false
	r.status = InProgress
	r.history = []HistoryValue{}
}

func (r *GameRunner) IsNew() bool {
	return !r.started
}

func (r *GameRunner) SetupPosition(setup GameSetup) Error {
	if r.Logger == nil {
		r.Logger = &DefaultLogger
	}
	if r.Promoter == nil {
		r.Promoter = QueenPromoter
	}
	if !r.IsNew() {
		return Errorf("runner already has a game, reset it first")
	}

	position, player, err := PositionFromFen(setup.Fen)
	if !IsNil(err) {
		return Join(Errorf("couldn't create game from %v", setup.Fen), err)
	}
	r.position = position
	r.player = player
	r.StartFen = setup.Fen
	r.started = true
	r.history = []HistoryValue{}
	r.status = r.searchStatus()

	for _, m := range setup.Moves {
		err := r.PerformMoveFromString(m)
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (r *GameRunner) LastMove() Optional[Move] {
	if len(r.history) > 0 {
		return Some(r.history[len(r.history)-1].move)
	}
	return Empty[Move]()
}

func (r *GameRunner) Rewind(num int) Error {
	if num < 0 {
		return Errorf("Rewind: negative count %v", num)
	}
	n := MinInt(num, len(r.history))
	if n == 0 {
		return NilError
	}
	for i := 0; i < n; i++ {
		h := r.history[len(r.history)-1]
		r.position = h.before
		r.player = r.player.Other()
		r.history = r.history[:len(r.history)-1]
		r.Logger.Printf("undo %v\n", h.notation)
	}
	// Moves are only played from unfinished games.
	r.status = InProgress
	return NilError
}

// PerformMove commits move for the side to move. promotion overrides the
// runner's promoter when it names a promotion piece.
func (r *GameRunner) PerformMove(move Move, promotion PieceType) Error {
	if r.IsNew() {
		return Errorf("PerformMove: no game set up")
	}
	if r.status.IsOver() {
		return Errorf("PerformMove: game is over (%v)", r.status)
	}

	promoter := r.Promoter
	if promotion.IsPromotion() {
		promoter = FixedPromoter(promotion)
	}

	before := r.position
	rejection := CommitMove(&r.position, move, r.player, promoter)
	if rejection != Accepted {
		return Join(Errorf("PerformMove: illegal move"), rejection.AsError(move, r.player))
	}

	notation := move.String()
	if IsPromotionMove(&before, move, r.player) {
		notation += r.position.PieceAt(move.To).Type.String()
	}

	r.history = append(r.history, HistoryValue{move: move, notation: notation, before: before})
	r.Logger.Printf("%v played %v\n", r.player, notation)
	r.player = r.player.Other()

	r.status = r.searchStatus()
	if r.status.IsOver() {
		r.Logger.Printf("%v\n", r.status)
	}
	return NilError
}

func (r *GameRunner) PerformMoveFromString(s string) Error {
	move, promotion, err := MoveFromString(s)
	if !IsNil(err) {
		return err
	}
	return r.PerformMove(move, promotion)
}

func firstIndexNotMatching[A any, B any](a []A, b []B, matches func(A, B) bool) int {
	for i := 0; i < MinInt(len(a), len(b)); i++ {
		if !matches(a[i], b[i]) {
			return i
		}
	}
	return MinInt(len(a), len(b))
}

// PerformMoves brings the runner to startFen followed by moves, reusing the
// shared prefix of the current history.
func (r *GameRunner) PerformMoves(startFen string, moves []string) Error {
	if r.StartFen != startFen {
		return Errorf("positions don't match: %v != %v", r.StartFen, startFen)
	}

	startIndex := firstIndexNotMatching(r.history, moves, func(a HistoryValue, b string) bool {
		return a.notation == strings.ToLower(b)
	})

	err := r.Rewind(len(r.history) - startIndex)
	if !IsNil(err) {
		return err
	}

	for i := startIndex; i < len(moves); i++ {
		err := r.PerformMoveFromString(moves[i])
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

// MovesForSelection lists the legal moves of the piece on the selected
// square, which must belong to the side to move.
func (r *GameRunner) MovesForSelection(selection string) ([]string, Error) {
	square, err := BitboardFromString(selection)
	if !IsNil(err) {
		return nil, Join(Errorf("failed to parse selection %v", selection), err)
	}

	piece := r.position.PieceAt(square)
	if piece.IsEmpty() || piece.Color != r.player {
		return []string{}, NilError
	}

	result := []string{}
	destinations := LegalDestinations(&r.position, square)
	destinations.EachIndexOfOneCallback(func(i int) {
		result = append(result, NewMove(square, SingleBitboard(i)).String())
	})
	return result, NilError
}

func (r *GameRunner) LegalMoves() []string {
	return MapSlice(LegalMoves(&r.position, r.player), Move.String)
}

func (r *GameRunner) NeedsPromotion(s string) bool {
	move, _, err := MoveFromString(s)
	if !IsNil(err) {
		return false
	}
	return IsPromotionMove(&r.position, move, r.player)
}

// Status is the result of the last search, taken when the position last
// changed.
func (r *GameRunner) Status() Status {
	return r.status
}

func (r *GameRunner) searchStatus() Status {
	if r.IsNew() {
		return InProgress
	}
	r.searches++
	mover, opponent := r.position.Sides(r.player)
	if IsCheckmated(opponent, mover) {
		return Checkmate
	}
	if IsStalemated(opponent, mover) {
		return Stalemate
	}
	if IsMaterialDraw(mover, opponent) {
		return MaterialDraw
	}
	return InProgress
}

// Winner is only set after checkmate.
func (r *GameRunner) Winner() Optional[Color] {
	if r.status == Checkmate {
		return Some(r.player.Other())
	}
	return Empty[Color]()
}

func (r *GameRunner) InCheck() bool {
	return IsInCheck(&r.position, r.player)
}

func (r *GameRunner) FenString() string {
	return FenForPosition(&r.position, r.player)
}

func (r *GameRunner) MoveHistory() []string {
	return MapSlice(r.history, func(h HistoryValue) string {
		return h.notation
	})
}

func (r *GameRunner) Player() Color {
	return r.player
}

// Position returns a copy of the current position.
func (r *GameRunner) Position() Position {
	return r.position
}
