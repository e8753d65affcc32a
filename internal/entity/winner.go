package entity

// Lines holds every triple that wins the game: rows, then columns, then diagonals.
var Lines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate scans the lines in order and returns the owner of the first complete one.
// Cross is checked before Nought on each line. The cursor plays no part.
// An earlier line wins regardless of player: with rows OOO and XXX, Nought wins.
func Evaluate(board Board) Winner {
	for _, line := range Lines {
		for _, player := range [2]Player{Cross, Nought} {
			if board.owns(line, player) {
				return winnerOf(player)
			}
		}
	}

	return WinnerNone
}

// CompletesLine reports whether marking pos for player would finish a line.
// pos itself is treated as already marked regardless of its current content.
func (that Board) CompletesLine(pos Position, player Player) bool {
	for _, line := range Lines {
		onLine := false
		count := 0
		for _, cell := range line {
			if cell == pos {
				onLine = true
				count++
				continue
			}
			if that.Mark(cell) == player.Mark() {
				count++
			}
		}

		if onLine && count == len(line) {
			return true
		}
	}

	return false
}

func (that Board) owns(line [3]Position, player Player) bool {
	for _, cell := range line {
		if that.Mark(cell) != player.Mark() {
			return false
		}
	}
	return true
}
