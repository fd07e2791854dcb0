package console

import "fmt"

const introTemplate = `WELCOME TO "CONNECT 4!"

This is a two player game in which you will drop your pieces down a 7-column, 6-row grid with the
objective of being the first to form a horizontal, vertical, or diagonal line of four of your own
pieces.

Player 1 pieces will be represented by %s
Player 2 pieces will be represented by %s

INSTRUCTIONS:
  * On your turn, select one of the columns of the grid to drop your piece.
  * Columns are numbered from 1 to 7, and the column number is indicated at the top of each column.

[Press Enter to start the game]
`

func introText(player1, player2 string) string {
	return fmt.Sprintf(introTemplate, player1, player2)
}
