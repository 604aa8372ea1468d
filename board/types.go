package board

import "math/bits"

// Color identifies a side. It doubles as an index into per-side arrays.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Piece is a colorless piece kind used as an index into per-kind arrays.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// NoPiece marks an empty square in the piece table.
	NoPiece
)

var pieceSymbols = [7]byte{'p', 'n', 'b', 'r', 'q', 'k', '.'}

// Symbol returns the lowercase FEN letter of the piece.
func (p Piece) Symbol() byte { return pieceSymbols[p] }

// PieceValue holds the material value of every piece kind. The king carries a large
// value so that material sums stay positive and exchanges involving it are never favourable.
var PieceValue = [6]int16{100, 337, 365, 477, 1025, 10000}

// CastlingRights is a 4-bit set of the remaining castling options.
type CastlingRights uint8

const (
	WhiteShortCastling CastlingRights = 1 << iota
	WhiteLongCastling
	BlackShortCastling
	BlackLongCastling

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = 15
)

// Bitboard layout: bit 0 is a1, bit 7 is h1, bit 63 is h8.
const (
	FileA uint64 = 0x0101010101010101
	FileB uint64 = FileA << 1
	FileG uint64 = FileA << 6
	FileH uint64 = FileA << 7
	Rank1 uint64 = 0x00000000000000FF
	Rank2 uint64 = Rank1 << 8
	Rank4 uint64 = Rank1 << 24
	Rank5 uint64 = Rank1 << 32
	Rank7 uint64 = Rank1 << 48
	Rank8 uint64 = Rank1 << 56
	Edge         = FileA | FileH | Rank1 | Rank8

	LightSquares uint64 = 0x55AA55AA55AA55AA
	DarkSquares  uint64 = ^LightSquares
)

// MaxMovesCount is the largest number of legal moves any chess position can have.
const MaxMovesCount = 218

// popLSB removes and returns the index of the least significant set bit.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// Popcount returns the number of set bits of the bitboard.
func Popcount(bb uint64) int { return bits.OnesCount64(bb) }

// LSB returns the index of the least significant set bit, or 64 for an empty bitboard.
func LSB(bb uint64) int { return bits.TrailingZeros64(bb) }

// SquareName formats a square index in algebraic form, e.g. 12 -> "e2".
func SquareName(sq int) string {
	return string([]byte{byte('a' + sq%8), byte('1' + sq/8)})
}

// ParseSquare converts algebraic square text to an index, returning -1 for anything else.
func ParseSquare(s string) int {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return -1
	}
	return int(s[1]-'1')*8 + int(s[0]-'a')
}
