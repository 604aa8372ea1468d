package engine

import "github.com/Tearth/Inanis-sub001/board"

// SortNextMove performs one selection-sort step over [start, count): the highest
// scored move is swapped, together with its score, into start and returned.
// Sorting lazily pays off because most nodes cut before reaching the later moves.
func SortNextMove(moves []board.Move, scores []int16, start, count int) (board.Move, int16) {
	bestIndex := start
	bestScore := scores[start]

	for i := start + 1; i < count; i++ {
		if scores[i] > bestScore {
			bestIndex = i
			bestScore = scores[i]
		}
	}

	moves[start], moves[bestIndex] = moves[bestIndex], moves[start]
	scores[start], scores[bestIndex] = scores[bestIndex], scores[start]
	return moves[start], scores[start]
}
