package board

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// zobristKeys are the random constants XOR-ed into position hashes.
type zobristKeys struct {
	pieces    [2][6][64]uint64
	castling  [4]uint64
	enPassant [8]uint64
	side      uint64
}

// newZobristKeys draws every key from a ChaCha stream seeded with seed, so the same
// seed always yields the same hashes.
func newZobristKeys(seed uint64) zobristKeys {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	rng := frand.NewCustom(key[:], 1024, 12)

	var buf [8]byte
	next := func() uint64 {
		rng.Read(buf[:])
		return binary.LittleEndian.Uint64(buf[:])
	}

	var z zobristKeys
	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				z.pieces[c][p][sq] = next()
			}
		}
	}
	for i := range z.castling {
		z.castling[i] = next()
	}
	for i := range z.enPassant {
		z.enPassant[i] = next()
	}
	z.side = next()
	return z
}

// castlingHash folds every set right of cr into a single XOR mask.
func (z *zobristKeys) castlingHash(cr CastlingRights) uint64 {
	var h uint64
	for i := 0; i < 4; i++ {
		if cr&(1<<uint(i)) != 0 {
			h ^= z.castling[i]
		}
	}
	return h
}
