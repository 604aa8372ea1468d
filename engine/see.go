package engine

import (
	"fmt"
	"math/bits"

	"github.com/Tearth/Inanis-sub001/board"
)

// SEE evaluates capture sequences from 8-bit attacker slot masks, as produced by
// board.GetAttackingPieces: bit 0 pawn, bits 1-3 knights and bishops, bits 4-5 rooks,
// bit 6 queen, bit 7 king. Every (target, attackers, defenders) triple is precomputed.
// Attackers revealed behind a capturing piece of another kind are not modelled.
type SEE struct {
	table [6][256][256]int16
}

var seeValues = [8]int16{
	board.PieceValue[board.Pawn],
	board.PieceValue[board.Bishop],
	board.PieceValue[board.Bishop],
	board.PieceValue[board.Bishop],
	board.PieceValue[board.Rook],
	board.PieceValue[board.Rook],
	board.PieceValue[board.Queen],
	board.PieceValue[board.King],
}

// NewSEE builds the lookup table. It is immutable afterwards and safe to share.
func NewSEE() *SEE {
	s := &SEE{}
	for target := board.Pawn; target <= board.King; target++ {
		for attackers := 0; attackers < 256; attackers++ {
			for defenders := 0; defenders < 256; defenders++ {
				s.table[target][attackers][defenders] = evaluateExchange(target, uint8(attackers), uint8(defenders))
			}
		}
	}
	return s
}

// Get returns the expected material balance for the side capturing target with
// attacking, given the slot masks of all its attackers and of the defenders.
func (s *SEE) Get(attacking, target board.Piece, attackers, defenders uint8) int16 {
	remaining := attackers &^ (1 << seeIndex(attacking))
	return seeValues[seeIndex(target)] - s.table[attacking][defenders][remaining]
}

// SEEValue returns the exchange value of a slot, which is shared by knights and bishops.
func SEEValue(p board.Piece) int16 { return seeValues[seeIndex(p)] }

func seeIndex(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 0
	case board.Knight, board.Bishop:
		return 1
	case board.Rook:
		return 4
	case board.Queen:
		return 6
	case board.King:
		return 7
	}
	panic(fmt.Sprintf("invalid piece %d", p))
}

// evaluateExchange is the gain of the side owning attackers when it starts capturing
// target with its cheapest piece.
func evaluateExchange(target board.Piece, attackers, defenders uint8) int16 {
	if attackers == 0 {
		return 0
	}
	return exchange(bits.TrailingZeros8(attackers), seeIndex(target), attackers, defenders)
}

func exchange(attacking, target int, attackers, defenders uint8) int16 {
	if attackers == 0 {
		return 0
	}
	remaining := attackers &^ (1 << uint(attacking))
	next := 0
	if defenders != 0 {
		next = bits.TrailingZeros8(defenders)
	}
	// The side to move may stop capturing, so the result never drops below zero.
	return Max(0, seeValues[target]-exchange(next, attacking, defenders, remaining))
}
