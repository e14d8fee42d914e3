package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const lastIndex = entity.BoardSize - 1

// ApplyMove - returns the game that results from move. The passed game is not modified.
func ApplyMove(game entity.Game, move entity.Move) (entity.Game, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err := validateMove(game, move); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	next := game
	if err := next.Board.Place(move.Row, move.Col, move.Mark); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}
	next.MoveCount++

	updateGameStatus(&next, move)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(game entity.Game, move entity.Move) error {
	if game.Turn != move.Mark {
		return apperror.ErrNotYourTurn
	}

	return ValidateTarget(game.Board, move.Row, move.Col)
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, move entity.Move) {
	if line, ok := WinningLine(game.Board, move.Row, move.Col, move.Mark); ok {
		game.Winner = move.Mark.String()
		game.Status = entity.StatusFinished
		game.WinningLine = line[:]

		return
	}

	if CheckDraw(game.Board) {
		game.Winner = entity.PlayerTie
		game.Status = entity.StatusFinished

		return
	}

	game.Turn = toggleMark(move.Mark)
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// CheckWin - reports whether mark holds a full line through (lastRow, lastCol).
func CheckWin(board entity.Board, lastRow, lastCol int, mark entity.Mark) bool {
	_, ok := WinningLine(board, lastRow, lastCol, mark)
	return ok
}

// WinningLine - returns the line through (lastRow, lastCol) fully held by mark.
// Only the row, the column and the diagonals that contain the last move are evaluated.
func WinningLine(board entity.Board, lastRow, lastCol int, mark entity.Mark) ([entity.BoardSize]entity.Position, bool) {
	var none [entity.BoardSize]entity.Position

	if !mark.IsPlayer() || !(entity.Position{Row: lastRow, Col: lastCol}).InRange() {
		return none, false
	}

	for _, line := range linesThrough(lastRow, lastCol) {
		if holdsLine(board, line, mark) {
			return line, true
		}
	}

	return none, false
}

// CheckDraw - reports a full board on which neither player holds a line.
func CheckDraw(board entity.Board) bool {
	if !board.IsFull() {
		return false
	}

	for _, line := range allLines() {
		if holdsLine(board, line, entity.PlayerX) || holdsLine(board, line, entity.PlayerO) {
			return false
		}
	}

	return true
}

func holdsLine(board entity.Board, line [entity.BoardSize]entity.Position, mark entity.Mark) bool {
	for _, pos := range line {
		if board[pos.Row][pos.Col] != mark {
			return false
		}
	}

	return true
}

func linesThrough(row, col int) [][entity.BoardSize]entity.Position {
	lines := [][entity.BoardSize]entity.Position{rowLine(row), colLine(col)}

	if row == col {
		lines = append(lines, mainDiagonal())
	}

	if row+col == lastIndex {
		lines = append(lines, antiDiagonal())
	}

	return lines
}

func allLines() [][entity.BoardSize]entity.Position {
	lines := make([][entity.BoardSize]entity.Position, 0, 2*entity.BoardSize+2)
	for i := 0; i < entity.BoardSize; i++ {
		lines = append(lines, rowLine(i), colLine(i))
	}

	return append(lines, mainDiagonal(), antiDiagonal())
}

func rowLine(row int) [entity.BoardSize]entity.Position {
	var line [entity.BoardSize]entity.Position
	for col := range line {
		line[col] = entity.Position{Row: row, Col: col}
	}
	return line
}

func colLine(col int) [entity.BoardSize]entity.Position {
	var line [entity.BoardSize]entity.Position
	for row := range line {
		line[row] = entity.Position{Row: row, Col: col}
	}
	return line
}

func mainDiagonal() [entity.BoardSize]entity.Position {
	var line [entity.BoardSize]entity.Position
	for i := range line {
		line[i] = entity.Position{Row: i, Col: i}
	}
	return line
}

func antiDiagonal() [entity.BoardSize]entity.Position {
	var line [entity.BoardSize]entity.Position
	for i := range line {
		line[i] = entity.Position{Row: i, Col: lastIndex - i}
	}
	return line
}
