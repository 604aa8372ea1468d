package cache

import "github.com/Tearth/Inanis-sub001/board"

// MaxPly bounds the search ply tracked by ply-indexed tables.
const MaxPly = 64

const killerSlots = 2

// KillersTable keeps the two most recent quiet cutoff moves per ply.
type KillersTable struct {
	moves [MaxPly][killerSlots]board.Move
}

func (k *KillersTable) Add(ply int, m board.Move) {
	if ply >= MaxPly || k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *KillersTable) Get(ply int) [killerSlots]board.Move {
	if ply >= MaxPly {
		return [killerSlots]board.Move{}
	}
	return k.moves[ply]
}

func (k *KillersTable) Clear() {
	k.moves = [MaxPly][killerSlots]board.Move{}
}
