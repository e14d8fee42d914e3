package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const clearScreen = "\033[H\033[2J"

type Options struct {
	Color       bool
	ClearScreen bool
}

// Renderer draws the board and game messages on a text terminal.
type Renderer struct {
	out  io.Writer
	opts Options

	board entity.Board

	markX     *color.Color
	markO     *color.Color
	highlight *color.Color
	errText   *color.Color
	result    *color.Color
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	that := &Renderer{
		out:  out,
		opts: opts,

		markX:     color.New(color.FgHiRed, color.Bold),
		markO:     color.New(color.FgHiCyan, color.Bold),
		highlight: color.New(color.FgHiYellow, color.Bold, color.Underline),
		errText:   color.New(color.FgRed),
		result:    color.New(color.FgHiGreen, color.Bold),
	}

	// color.NoColor is set when stdout is not a terminal or NO_COLOR is present
	enabled := opts.Color && !color.NoColor
	for _, c := range []*color.Color{that.markX, that.markO, that.highlight, that.errText, that.result} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return that
}

// Render - draws board.
func (that *Renderer) Render(board entity.Board) {
	that.board = board
	that.draw(nil)
}

// AddMove - writes mark into the drawn board and redraws it.
func (that *Renderer) AddMove(row, col int, mark entity.Mark) {
	if !(entity.Position{Row: row, Col: col}).InRange() {
		return
	}

	that.board[row][col] = mark
	that.draw(nil)
}

func (that *Renderer) ShowPrompt(message string) {
	fmt.Fprintf(that.out, "\n  %s\n", message)
}

func (that *Renderer) ShowError(message string) {
	fmt.Fprintf(that.out, "  %s\n", that.errText.Sprint(message))
}

// ShowResult - prints message below the board. A won board is drawn once more with the winning line highlighted.
func (that *Renderer) ShowResult(game entity.Game, message string) {
	if len(game.WinningLine) > 0 {
		that.board = game.Board
		that.draw(game.WinningLine)
	}

	fmt.Fprintf(that.out, "\n  %s\n", that.result.Sprint(message))
}

func (that *Renderer) draw(line []entity.Position) {
	if that.opts.ClearScreen {
		fmt.Fprint(that.out, clearScreen)
	}

	highlighted := make(map[entity.Position]bool, len(line))
	for _, pos := range line {
		highlighted[pos] = true
	}

	var sb strings.Builder
	sb.WriteString("\n     0   1   2\n")

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintf(&sb, "  %d ", row)
		for col := 0; col < entity.BoardSize; col++ {
			pos := entity.Position{Row: row, Col: col}
			sb.WriteString(" " + that.cell(pos, highlighted[pos]) + " ")
			if col < entity.BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString("    ---+---+---\n")
		}
	}

	fmt.Fprint(that.out, sb.String())
}

func (that *Renderer) cell(pos entity.Position, highlighted bool) string {
	mark := that.board[pos.Row][pos.Col]

	switch {
	case mark == entity.EmptyCell:
		return " "
	case highlighted:
		return that.highlight.Sprint(mark.String())
	case mark == entity.PlayerX:
		return that.markX.Sprint(mark.String())
	default:
		return that.markO.Sprint(mark.String())
	}
}
