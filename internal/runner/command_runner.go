package runner

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessrules/internal/fen"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/render"
)

// CommandRunner drives a GameRunner from single-line text commands. It is
// shared by the terminal player and the websocket server.
type CommandRunner struct {
	Runner *GameRunner
}

func parseFen(input string) (string, Error) {
	s := strings.TrimPrefix(input, "position ")

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.Split(s, " moves ")[0], NilError
	} else if strings.HasPrefix(s, "startpos") {
		return StartFen, NilError
	}

	return "", Errorf("couldn't parse '%v'", s)
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

func parsePosition(input string) (GameSetup, Error) {
	fen, err := parseFen(input)
	if !IsNil(err) {
		return GameSetup{}, err
	}
	return GameSetup{Fen: fen, Moves: parseMoves(input)}, NilError
}

const _help = `commands:
  position startpos|fen <fen> [moves <m1> <m2> ...]
  move <e2e4|e7e8n>   (or just the move)
  moves <square>      legal moves of the piece on square
  legal               every legal move
  undo [n]
  new
  fen
  status
  board
  history`

func (u *CommandRunner) HandleInput(input string) ([]string, Error) {
	input = strings.TrimSpace(input)
	fields := strings.Fields(input)
	result := []string{}
	if len(fields) == 0 {
		return result, NilError
	}

	switch {
	case input == "help":
		result = append(result, _help)
	case input == "new":
		u.Runner.Reset()
		err := u.Runner.SetupPosition(GameSetup{Fen: StartFen})
		if !IsNil(err) {
			return result, err
		}
	case strings.HasPrefix(input, "position "):
		setup, err := parsePosition(input)
		if !IsNil(err) {
			return result, err
		}
		if u.Runner.IsNew() || u.Runner.StartFen != setup.Fen {
			u.Runner.Reset()
			err = u.Runner.SetupPosition(setup)
		} else {
			err = u.Runner.PerformMoves(setup.Fen, setup.Moves)
		}
		if !IsNil(err) {
			return result, err
		}
	case fields[0] == "moves" && len(fields) == 2:
		moves, err := u.Runner.MovesForSelection(fields[1])
		if !IsNil(err) {
			return result, err
		}
		result = append(result, strings.Join(moves, " "))
	case input == "legal":
		result = append(result, strings.Join(u.Runner.LegalMoves(), " "))
	case fields[0] == "undo":
		num := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return result, Wrap(err)
			}
			num = n
		}
		err := u.Runner.Rewind(num)
		if !IsNil(err) {
			return result, err
		}
	case input == "fen":
		result = append(result, u.Runner.FenString())
	case input == "status":
		result = append(result, u.statusLine())
	case input == "board":
		p := u.Runner.Position()
		result = append(result, render.Plain(&p, 0))
	case input == "history":
		result = append(result, strings.Join(u.Runner.MoveHistory(), " "))
	case fields[0] == "move" && len(fields) == 2:
		return u.move(fields[1])
	case len(fields) == 1:
		return u.move(fields[0])
	default:
		return result, Errorf("unknown command '%v'", input)
	}
	return result, NilError
}

func (u *CommandRunner) move(s string) ([]string, Error) {
	err := u.Runner.PerformMoveFromString(s)
	if !IsNil(err) {
		return []string{}, err
	}
	return []string{u.statusLine()}, NilError
}

func (u *CommandRunner) statusLine() string {
	status := u.Runner.Status()
	switch {
	case status == Checkmate:
		return fmt.Sprintf("checkmate, %v wins", u.Runner.Winner().Value())
	case status.IsOver():
		return status.String()
	case u.Runner.InCheck():
		return fmt.Sprintf("%v to move, in check", u.Runner.Player())
	default:
		return fmt.Sprintf("%v to move", u.Runner.Player())
	}
}
