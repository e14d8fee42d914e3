package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 3

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Mark is the content of a single cell: empty, X or O.
type Mark string

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	return string(that)
}

// Position identifies a cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

type Move struct {
	Position
	Mark Mark `json:"mark"`
}

// Board is the 3x3 grid indexed by [row][col].
type Board [BoardSize][BoardSize]Mark

// Place - writes mark into the cell at (row, col).
func (that *Board) Place(row, col int, mark Mark) error {
	pos := Position{Row: row, Col: col}
	if !pos.InRange() {
		return fmt.Errorf("%w: cell %s", apperror.ErrOutOfRange, pos)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, pos)
	}

	that[row][col] = mark

	return nil
}

// At - returns the cell content, EmptyCell for positions outside the board.
func (that *Board) At(row, col int) Mark {
	if !(Position{Row: row, Col: col}).InRange() {
		return EmptyCell
	}

	return that[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}
