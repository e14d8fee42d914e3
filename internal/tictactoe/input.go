package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ParseMove - converts the raw row and column answers into a board position.
// Non-numeric input fails with apperror.ErrInvalidInput, values outside [0,2] with apperror.ErrOutOfRange.
func ParseMove(rawRow, rawCol string) (entity.Position, error) {
	row, err := ParseCoordinate("row", rawRow)
	if err != nil {
		return entity.Position{}, err
	}

	col, err := ParseCoordinate("column", rawCol)
	if err != nil {
		return entity.Position{}, err
	}

	// both values are numbers at this point, range is checked afterwards
	pos := entity.Position{Row: row, Col: col}
	if !pos.InRange() {
		return entity.Position{}, fmt.Errorf("%w: cell %s", apperror.ErrOutOfRange, pos)
	}

	return pos, nil
}

// ParseCoordinate - converts a single answer into a number without checking the board range.
func ParseCoordinate(name, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", apperror.ErrInvalidInput, name, raw)
	}

	return value, nil
}

// ValidateTarget - checks that (row, col) is on the board and still empty.
func ValidateTarget(board entity.Board, row, col int) error {
	pos := entity.Position{Row: row, Col: col}
	if !pos.InRange() {
		return fmt.Errorf("%w: cell %s", apperror.ErrOutOfRange, pos)
	}

	if board[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, pos)
	}

	return nil
}
