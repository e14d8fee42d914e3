package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

const (
	OutcomeInProgress Outcome = "in progress"
	OutcomeWonByX     Outcome = "won by X"
	OutcomeWonByO     Outcome = "won by O"
	OutcomeDraw       Outcome = "draw"
)

// Outcome is the derived state of a game: in progress or one of the terminal results.
type Outcome string

type Game struct {
	Board       Board      `json:"board"`
	Turn        Mark       `json:"player_turn"`
	Winner      string     `json:"winner"`
	Status      string     `json:"status"`
	MoveCount   int        `json:"move_count"`
	WinningLine []Position `json:"winning_line,omitempty"`
}

// NewGame - returns an empty ongoing game with X to move.
func NewGame() Game {
	return Game{
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// Outcome - maps status and winner onto the game state machine.
func (that Game) Outcome() Outcome {
	if !that.IsFinished() {
		return OutcomeInProgress
	}

	switch that.Winner {
	case string(PlayerX):
		return OutcomeWonByX
	case string(PlayerO):
		return OutcomeWonByO
	default:
		return OutcomeDraw
	}
}

// ConfirmOngoingState - returns an error unless moves may still be made.
func (that Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
