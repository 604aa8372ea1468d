package board

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// RecalculateHash computes the position hash and pawn hash from scratch.
func (b *Board) RecalculateHash() (hash, pawnHash uint64) {
	z := &b.tables.zobrist
	for c := White; c <= Black; c++ {
		for p := Pawn; p <= King; p++ {
			pieces := b.pieces[c][p]
			for pieces != 0 {
				key := z.pieces[c][p][popLSB(&pieces)]
				hash ^= key
				if p == Pawn || p == King {
					pawnHash ^= key
				}
			}
		}
	}
	hash ^= z.castlingHash(b.castlingRights)
	if b.enPassant != 0 {
		hash ^= z.enPassant[bits.TrailingZeros64(b.enPassant)%8]
	}
	if b.activeColor == Black {
		hash ^= z.side
	}
	return hash, pawnHash
}

// RecalculateMaterial sums the piece values of color from scratch.
func (b *Board) RecalculateMaterial(c Color) int16 {
	var material int16
	for p := Pawn; p <= King; p++ {
		material += int16(bits.OnesCount64(b.pieces[c][p])) * PieceValue[p]
	}
	return material
}

// Validate compares every incrementally maintained field with its recomputed value
// and returns a description of the first mismatch, or nil.
func (b *Board) Validate() error {
	var occupancy [2]uint64
	for c := White; c <= Black; c++ {
		for p := Pawn; p <= King; p++ {
			occupancy[c] |= b.pieces[c][p]
		}
	}
	if occupancy != b.occupancy {
		return errors.Errorf("occupancy mismatch: %#x != %#x", b.occupancy, occupancy)
	}
	for sq := 0; sq < 64; sq++ {
		want := NoPiece
		for c := White; c <= Black; c++ {
			for p := Pawn; p <= King; p++ {
				if b.pieces[c][p]&(1<<uint(sq)) != 0 {
					want = p
				}
			}
		}
		if b.pieceTable[sq] != want {
			return errors.Errorf("piece table mismatch on %s: %d != %d", SquareName(sq), b.pieceTable[sq], want)
		}
	}
	hash, pawnHash := b.RecalculateHash()
	if hash != b.hash {
		return errors.Errorf("hash mismatch: %#x != %#x", b.hash, hash)
	}
	if pawnHash != b.pawnHash {
		return errors.Errorf("pawn hash mismatch: %#x != %#x", b.pawnHash, pawnHash)
	}
	for c := White; c <= Black; c++ {
		if m := b.RecalculateMaterial(c); m != b.material[c] {
			return errors.Errorf("%s material mismatch: %d != %d", c, b.material[c], m)
		}
	}
	return nil
}

// CheckIntegrity panics when Validate finds a mismatch. Used by verification
// harnesses only.
func (b *Board) CheckIntegrity() {
	if err := b.Validate(); err != nil {
		panic(fmt.Sprintf("integrity check failed (fen %s): %v", b.ToFEN(), err))
	}
}
