package engine

import (
	"math/bits"

	"github.com/Tearth/Inanis-sub001/board"
)

const (
	doubledPawnPenalty  int16 = 20
	isolatedPawnPenalty int16 = 15
)

// Bonus for a passed pawn by relative rank
var passedPawnBonus = [8]int16{0, 5, 10, 20, 35, 60, 100, 0}

// pawnStructure returns the white-relative pawn structure term, served from the pawn
// table when the pawn hash was seen before.
func (e *Engine) pawnStructure(b *board.Board) int16 {
	if score, ok := e.pawns.Get(b.PawnHash()); ok {
		e.stats.PawnHits++
		return score
	}

	score := evaluatePawns(b, board.White) - evaluatePawns(b, board.Black)
	e.pawns.Add(b.PawnHash(), score)
	return score
}

func evaluatePawns(b *board.Board, c board.Color) int16 {
	own := b.Pieces(c, board.Pawn)
	enemy := b.Pieces(c.Opponent(), board.Pawn)
	var score int16
	for file := 0; file < 8; file++ {
		fileMask := board.FileA << uint(file)
		count := bits.OnesCount64(own & fileMask)
		if count == 0 {
			continue
		}
		if count > 1 {
			score -= doubledPawnPenalty * int16(count-1)
		}
		if own&adjacentFiles(file) == 0 {
			score -= isolatedPawnPenalty * int16(count)
		}
	}

	for pawns := own; pawns != 0; pawns &= pawns - 1 {
		sq := bits.TrailingZeros64(pawns)
		if enemy&passedPawnMask(c, sq) == 0 {
			rank := sq / 8
			if c == board.Black {
				rank = 7 - rank
			}
			score += passedPawnBonus[rank]
		}
	}
	return score
}

func adjacentFiles(file int) uint64 {
	var mask uint64
	if file > 0 {
		mask |= board.FileA << uint(file-1)
	}
	if file < 7 {
		mask |= board.FileA << uint(file+1)
	}
	return mask
}

// passedPawnMask covers the pawn's file and both neighbours on every rank in front of it.
func passedPawnMask(c board.Color, sq int) uint64 {
	files := board.FileA<<uint(sq%8) | adjacentFiles(sq%8)
	rank := sq / 8
	if c == board.White {
		if rank == 7 {
			return 0
		}
		return files &^ (1<<(uint(rank+1)*8) - 1)
	}
	return files & (1<<(uint(rank)*8) - 1)
}
