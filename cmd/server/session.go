package main

import (
	"fmt"
	"strings"

	. "github.com/cricklet/chessrules/internal/helpers"
	. "github.com/cricklet/chessrules/internal/runner"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Status        string   `json:"status"`
	InCheck       bool     `json:"inCheck"`
	Output        []string `json:"output,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves, ", ", u.Status)
}

type MessageFromWeb struct {
	NewFen    *string `json:"newFen"`
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
	Rewind    *int    `json:"rewind"`
	Command   *string `json:"command"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	if u.Command != nil {
		return fmt.Sprint("MessageFromWeb Command: ", *u.Command)
	}
	return "MessageFromWeb unknown"
}

// session is one websocket client's game.
type session struct {
	runner   *GameRunner
	commands CommandRunner
	logger   Logger
}

func newSession(logger Logger) (*session, Error) {
	r, err := NewGameRunner(WithLogger(logger))
	if !IsNil(err) {
		return nil, err
	}
	return &session{
		runner:   r,
		commands: CommandRunner{Runner: r},
		logger:   logger,
	}, NilError
}

func (s *session) handle(message MessageFromWeb) UpdateToWeb {
	s.logger.Println("received", message)

	var update UpdateToWeb
	var err Error

	if message.NewFen != nil {
		s.runner.Reset()
		err = s.runner.SetupPosition(GameSetup{Fen: *message.NewFen})
		if !IsNil(err) {
			s.runner.Reset()
			if fallbackErr := s.runner.SetupPosition(GameSetup{Fen: s.runner.StartFen}); !IsNil(fallbackErr) {
				s.logger.Println("fallback setup:", fallbackErr)
			}
		}
	} else if message.Selection != nil {
		if *message.Selection != "" {
			update.Selection = *message.Selection
			update.PossibleMoves, err = s.runner.MovesForSelection(*message.Selection)
		}
	} else if message.Move != nil {
		err = s.runner.PerformMoveFromString(*message.Move)
	} else if message.Rewind != nil {
		err = s.runner.Rewind(*message.Rewind)
	} else if message.Command != nil {
		update.Output, err = s.commands.HandleInput(*message.Command)
	} else {
		err = Errorf("empty message")
	}

	if !IsNil(err) {
		s.logger.Println("error:", err)
		update.Error = strings.TrimSpace(err.Error())
	}

	return s.finalize(update)
}

func (s *session) finalize(update UpdateToWeb) UpdateToWeb {
	update.FenString = s.runner.FenString()
	update.Player = s.runner.Player().String()
	update.Status = s.runner.Status().String()
	update.InCheck = s.runner.InCheck()
	if lastMove := s.runner.LastMove(); lastMove.HasValue() {
		update.LastMove = lastMove.Value().String()
	}
	if update.PossibleMoves == nil {
		update.PossibleMoves = []string{}
	}
	return update
}
