package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	promptRow    = "Enter Row (0, 1, 2): "
	promptColumn = "Enter Column (0, 1, 2): "
)

type renderer interface {
	Render(board entity.Board)
	AddMove(row, col int, mark entity.Mark)
	ShowPrompt(message string)
	ShowError(message string)
	ShowResult(game entity.Game, message string)
}

type inputSource interface {
	ReadLine(prompt string) (string, error)
}

type GameUseCase struct {
	logger *slog.Logger

	renderer renderer
	input    inputSource
}

func NewGameUseCase(logger *slog.Logger, renderer renderer, input inputSource) *GameUseCase {
	return &GameUseCase{
		logger: logger.With("component", "game"),

		renderer: renderer,
		input:    input,
	}
}

// Play - runs one game from an empty board until a player wins or the board is full.
// It returns the final state, or the state reached so far together with an input or context error.
func (that *GameUseCase) Play(ctx context.Context) (entity.Game, error) {
	game := entity.NewGame()
	if err := ctx.Err(); err != nil {
		return game, err
	}

	that.logger.Info("game started", "first_player", game.Turn)

	// the renderer redraws the board itself on every AddMove
	that.renderer.Render(game.Board)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, err
		}

		that.renderer.ShowPrompt(fmt.Sprintf("Player %s, make your move!", game.Turn))

		pos, err := that.readMove(ctx, game)
		if err != nil {
			return game, err
		}

		mark := game.Turn
		game, err = tictactoe.ApplyMove(game, entity.Move{Position: pos, Mark: mark})
		if err != nil {
			return game, fmt.Errorf("failed apply move: %w", err)
		}

		that.renderer.AddMove(pos.Row, pos.Col, mark)
		that.logger.Debug("move applied", "player", mark, "row", pos.Row, "col", pos.Col, "move", game.MoveCount)
	}

	message := ResultMessage(game)
	that.renderer.ShowResult(game, message)
	that.logger.Info("game finished", "outcome", game.Outcome(), "moves", game.MoveCount)

	return game, nil
}

// readMove - asks for row and column until they name an empty cell.
// A row that is not a number is rejected before the column is asked for.
func (that *GameUseCase) readMove(ctx context.Context, game entity.Game) (entity.Position, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Position{}, err
		}

		rawRow, err := that.input.ReadLine(promptRow)
		if err != nil {
			return entity.Position{}, fmt.Errorf("failed read row: %w", err)
		}

		if _, err = tictactoe.ParseCoordinate("row", rawRow); err != nil {
			that.rejectMove(game, err)
			continue
		}

		rawCol, err := that.input.ReadLine(promptColumn)
		if err != nil {
			return entity.Position{}, fmt.Errorf("failed read column: %w", err)
		}

		pos, err := tictactoe.ParseMove(rawRow, rawCol)
		if err == nil {
			err = tictactoe.ValidateTarget(game.Board, pos.Row, pos.Col)
		}

		if err == nil {
			return pos, nil
		}

		if !apperror.IsMoveRejection(err) {
			return entity.Position{}, err
		}

		that.rejectMove(game, err)
	}
}

func (that *GameUseCase) rejectMove(game entity.Game, err error) {
	that.logger.Debug("move rejected", "player", game.Turn, "error", err)
	that.renderer.ShowError(apperror.UserMessage(err))
}

// ResultMessage - returns the announcement for a finished game.
func ResultMessage(game entity.Game) string {
	switch game.Outcome() {
	case entity.OutcomeWonByX, entity.OutcomeWonByO:
		return fmt.Sprintf("Player %s wins!", game.Winner)
	case entity.OutcomeDraw:
		return "The game is a draw!"
	default:
		return ""
	}
}
