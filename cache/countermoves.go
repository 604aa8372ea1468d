package cache

import "github.com/Tearth/Inanis-sub001/board"

// CounterMovesTable remembers, per side, the quiet reply that refuted each previous move.
type CounterMovesTable struct {
	moves [2][64][64]board.Move
}

// Add records m as the reply of color to previous. A null previous move is ignored.
func (t *CounterMovesTable) Add(color board.Color, previous, m board.Move) {
	if previous == board.NoMove {
		return
	}
	t.moves[color][previous.From()][previous.To()] = m
}

func (t *CounterMovesTable) Get(color board.Color, previous board.Move) board.Move {
	if previous == board.NoMove {
		return board.NoMove
	}
	return t.moves[color][previous.From()][previous.To()]
}

func (t *CounterMovesTable) Clear() {
	t.moves = [2][64][64]board.Move{}
}
