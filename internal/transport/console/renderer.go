package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	Player1Glyph = "⚈"
	Player2Glyph = "⚉"
	emptyCell    = "   "
)

// ANSI palette indexes for the two players
const (
	player1Color = "1"
	player2Color = "3"
)

// Renderer draws the board and game messages on a terminal.
type Renderer struct {
	out         *termenv.Output
	clearScreen bool
}

// NewRenderer writes to w. With color off the output is plain text; with it
// on termenv picks the color profile w supports, which is plain text too
// when w is not a terminal.
func NewRenderer(w io.Writer, color, clearScreen bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{
		out:         termenv.NewOutput(w, opts...),
		clearScreen: clearScreen,
	}
}

func (r *Renderer) glyph(p domain.PlayerID) string {
	var glyph, color string
	switch p {
	case domain.Player1:
		glyph, color = Player1Glyph, player1Color
	case domain.Player2:
		glyph, color = Player2Glyph, player2Color
	default:
		return " "
	}

	if r.out.Profile == termenv.Ascii {
		return glyph
	}
	return r.out.String(glyph).Foreground(r.out.Color(color)).Bold().String()
}

func (r *Renderer) Intro() {
	fmt.Fprint(r.out, introText(r.glyph(domain.Player1), r.glyph(domain.Player2)))
}

// Board clears the screen when enabled and prints the grid under its
// column numbers.
func (r *Renderer) Board(s domain.GameState) {
	if r.clearScreen {
		r.out.ClearScreen()
	}

	var b strings.Builder
	b.WriteString("\n\t ")
	for c := 1; c <= domain.Columns; c++ {
		fmt.Fprintf(&b, " %d  ", c)
	}
	b.WriteString("\n\n")

	for row := 0; row < domain.Rows; row++ {
		b.WriteString("\t|")
		for col := 0; col < domain.Columns; col++ {
			if cell := s.Grid[row][col]; cell == domain.Empty {
				b.WriteString(emptyCell)
			} else {
				b.WriteString(" " + r.glyph(cell) + " ")
			}
			b.WriteString("|")
		}
		b.WriteString("\n")
	}

	fmt.Fprint(r.out, b.String())
}

func (r *Renderer) Prompt(p domain.PlayerID) {
	fmt.Fprintf(r.out, "\nMake a move Player %d >> ", p)
}

func (r *Renderer) InvalidMove() {
	fmt.Fprintf(r.out, "Invalid move. Please input a number between 1 and %d\n", domain.Columns)
}

func (r *Renderer) Winner(p domain.PlayerID) {
	fmt.Fprintf(r.out, "\nCongratulations Player %d! You win!\n", p)
}

func (r *Renderer) Draw() {
	fmt.Fprint(r.out, "\nThe board is full. It's a draw!\n")
}
