package engine

import (
	"math/bits"

	"github.com/Tearth/Inanis-sub001/board"
)

// Piece-square bonuses from white's point of view (a1 = index 0). Black pieces read
// the table through the vertical flip sq^56.
var pawnPST = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, -10, -10, 0, 0, 0,
	2, 0, 5, 5, 5, 5, 0, 2,
	0, 0, 10, 20, 20, 10, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	40, 40, 40, 40, 40, 40, 40, 40,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// centerPST rewards minor and major pieces for standing near the centre.
var centerPST = [64]int16{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 10, 10, 5, 0, -5,
	-5, 0, 5, 10, 10, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingOpeningPST = [64]int16{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndingPST = [64]int16{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// Centipawns per reachable square
var mobilityWeights = [6]int16{0, 4, 4, 2, 1, 0}

// Evaluate returns the static score of the position from the side to move's point of view.
func (e *Engine) Evaluate(b *board.Board) int16 {
	score := e.evaluateWhite(b)
	if b.ActiveColor() == board.Black {
		return -score
	}
	return score
}

// evaluateWhite scores the position from white's point of view.
func (e *Engine) evaluateWhite(b *board.Board) int16 {
	phase := b.GamePhase()

	score := b.Material(board.White) - b.Material(board.Black)
	score += evaluatePST(b, board.White, phase) - evaluatePST(b, board.Black, phase)
	score += evaluateMobility(b, board.White) - evaluateMobility(b, board.Black)
	score += e.pawnStructure(b)

	return score
}

func evaluatePST(b *board.Board, c board.Color, phase int) int16 {
	flip := 0
	if c == board.Black {
		flip = 56
	}

	var score int16
	for pawns := b.Pieces(c, board.Pawn); pawns != 0; pawns &= pawns - 1 {
		score += pawnPST[bits.TrailingZeros64(pawns)^flip]
	}
	for p := board.Knight; p <= board.Queen; p++ {
		for pieces := b.Pieces(c, p); pieces != 0; pieces &= pieces - 1 {
			score += centerPST[bits.TrailingZeros64(pieces)^flip]
		}
	}

	if b.HasKing(c) {
		sq := b.KingSquare(c) ^ flip
		score += taper(kingOpeningPST[sq], kingEndingPST[sq], phase)
	}
	return score
}

func evaluateMobility(b *board.Board, c board.Color) int16 {
	t := b.Tables()
	occupancy := b.Occupancy()
	own := b.ColorOccupancy(c)

	var score int16
	for p := board.Knight; p <= board.Queen; p++ {
		for pieces := b.Pieces(c, p); pieces != 0; pieces &= pieces - 1 {
			sq := bits.TrailingZeros64(pieces)

			var moves uint64
			switch p {
			case board.Knight:
				moves = t.KnightMoves(sq)
			case board.Bishop:
				moves = t.BishopMoves(occupancy, sq)
			case board.Rook:
				moves = t.RookMoves(occupancy, sq)
			case board.Queen:
				moves = t.QueenMoves(occupancy, sq)
			}
			score += int16(bits.OnesCount64(moves&^own)) * mobilityWeights[p]
		}
	}
	return score
}

// taper blends an opening and an ending value by game phase.
func taper(opening, ending int16, phase int) int16 {
	return int16((int(opening)*phase + int(ending)*(board.MaxGamePhase-phase)) / board.MaxGamePhase)
}
