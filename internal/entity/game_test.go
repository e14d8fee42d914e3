package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	game := NewGame()

	// Then: the board is empty, X moves first and the game is ongoing
	expectedGame := Game{
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, OutcomeInProgress, game.Outcome())
	assert.Equal(t, 0, game.Board.Count(PlayerX))
	assert.False(t, game.Board.IsFull())
}

func TestBoard_Place(t *testing.T) {
	t.Run("Writes the mark into an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: X is placed in the center
		err := board.Place(1, 1, PlayerX)

		// Then: only the center cell is marked
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board.At(1, 1))
		assert.Equal(t, 1, board.Count(PlayerX))
		assert.Equal(t, 8, board.Count(EmptyCell))
	})

	t.Run("Rejects a second placement on the same cell", func(t *testing.T) {
		// Given: a board where (0, 2) is taken by X
		board := Board{}
		require.NoError(t, board.Place(0, 2, PlayerX))

		// When: O and then X try the same cell
		errO := board.Place(0, 2, PlayerO)
		errX := board.Place(0, 2, PlayerX)

		// Then: both fail with ErrCellOccupied and the cell keeps X
		require.ErrorIs(t, errO, apperror.ErrCellOccupied)
		require.ErrorIs(t, errX, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerX, board.At(0, 2))
	})

	t.Run("Rejects coordinates outside the board", func(t *testing.T) {
		positions := []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {100, 1}}

		for _, pos := range positions {
			// Given: an empty board
			board := Board{}

			// When: placing outside the grid
			err := board.Place(pos.Row, pos.Col, PlayerO)

			// Then: ErrOutOfRange is returned and the board is untouched
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "position %s", pos)
			assert.Equal(t, Board{}, board)
		}
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		}

		assert.True(t, board.IsFull())
	})

	t.Run("One empty cell left", func(t *testing.T) {
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, EmptyCell, PlayerO},
			{PlayerO, PlayerX, PlayerO},
		}

		assert.False(t, board.IsFull())
	})
}

func TestBoard_At(t *testing.T) {
	// Given: a board with O in the bottom-left corner
	board := Board{}
	require.NoError(t, board.Place(2, 0, PlayerO))

	// Then: At reads cells and reports outside positions as empty
	assert.Equal(t, PlayerO, board.At(2, 0))
	assert.Equal(t, EmptyCell, board.At(0, 0))
	assert.Equal(t, EmptyCell, board.At(-1, 5))
}

func TestGame_Outcome(t *testing.T) {
	tests := []struct {
		name     string
		game     Game
		expected Outcome
	}{
		{name: "ongoing", game: Game{Status: StatusOngoing}, expected: OutcomeInProgress},
		{name: "won by X", game: Game{Status: StatusFinished, Winner: "X"}, expected: OutcomeWonByX},
		{name: "won by O", game: Game{Status: StatusFinished, Winner: "O"}, expected: OutcomeWonByO},
		{name: "draw", game: Game{Status: StatusFinished, Winner: PlayerTie}, expected: OutcomeDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.game.Outcome())
			assert.Equal(t, tt.expected == OutcomeDraw, tt.game.IsDraw())
		})
	}
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := Game{Status: StatusOngoing}

		// Then: it should return nil error
		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := Game{Status: StatusFinished}

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}
