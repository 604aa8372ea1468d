package board

import "math/bits"

// undoState is pushed by every MakeMove/MakeNullMove and popped by the matching undo.
type undoState struct {
	halfmoveClock  uint16
	castlingRights CastlingRights
	enPassant      uint64
	hash           uint64
	pawnHash       uint64
	captured       Piece
}

// Board represents the chess board state, including piece placement and game state.
type Board struct {
	// Piece bitboards for each color and piece kind
	pieces [2][6]uint64

	// Occupancy bitboards for each side, always the union of pieces[c][*]
	occupancy [2]uint64

	// Piece kind on every square, NoPiece when empty
	pieceTable [64]Piece

	castlingRights CastlingRights

	// En passant target square as a single-bit bitboard, 0 if none
	enPassant uint64

	halfmoveClock  uint16
	fullmoveNumber uint16
	activeColor    Color

	// Zobrist keys of the whole position and of the pawn structure alone
	hash     uint64
	pawnHash uint64

	material  [2]int16
	nullMoves int

	stack  []undoState
	tables *Tables
}

// New returns an empty board with white to move.
func New(t *Tables) *Board {
	b := &Board{
		tables:         t,
		fullmoveNumber: 1,
		stack:          make([]undoState, 0, 64),
	}
	for sq := range b.pieceTable {
		b.pieceTable[sq] = NoPiece
	}
	return b
}

// NewStartPos returns the standard initial position.
func NewStartPos(t *Tables) *Board {
	b, err := ParseFEN(t, StartPosFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// Clone returns a deep copy sharing only the immutable tables.
func (b *Board) Clone() *Board {
	c := *b
	c.stack = make([]undoState, len(b.stack), cap(b.stack))
	copy(c.stack, b.stack)
	return &c
}

func (b *Board) Tables() *Tables { return b.tables }

// Pieces returns the bitboard of one color's pieces of the given kind.
func (b *Board) Pieces(c Color, p Piece) uint64 { return b.pieces[c][p] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// Occupancy returns a bitboard of all occupied squares.
func (b *Board) Occupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// PieceAt returns the piece kind on a square, NoPiece when empty.
func (b *Board) PieceAt(sq int) Piece { return b.pieceTable[sq] }

// ColorAt returns the owner of the piece on sq. Only meaningful for occupied squares.
func (b *Board) ColorAt(sq int) Color {
	if b.occupancy[Black]&(1<<uint(sq)) != 0 {
		return Black
	}
	return White
}

func (b *Board) ActiveColor() Color             { return b.activeColor }
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }
func (b *Board) EnPassant() uint64              { return b.enPassant }
func (b *Board) HalfmoveClock() int             { return int(b.halfmoveClock) }
func (b *Board) FullmoveNumber() int            { return int(b.fullmoveNumber) }
func (b *Board) Hash() uint64                   { return b.hash }
func (b *Board) PawnHash() uint64               { return b.pawnHash }
func (b *Board) Material(c Color) int16         { return b.material[c] }
func (b *Board) Ply() int                       { return len(b.stack) }
func (b *Board) KingSquare(c Color) int         { return bits.TrailingZeros64(b.pieces[c][King]) }
func (b *Board) HasKing(c Color) bool           { return b.pieces[c][King] != 0 }
func (b *Board) NullMoveActive() bool           { return b.nullMoves > 0 }
func (b *Board) PawnsAndKingsOnly(c Color) bool {
	return b.occupancy[c] == b.pieces[c][Pawn]|b.pieces[c][King]
}

// MaxGamePhase is the phase of a position with all minor and major pieces on board.
const MaxGamePhase = 24

var phaseWeights = [6]int{0, 1, 1, 2, 4, 0}

// GamePhase returns a value from 0 (bare kings and pawns) to MaxGamePhase (opening).
func (b *Board) GamePhase() int {
	phase := 0
	for p := Knight; p <= Queen; p++ {
		phase += phaseWeights[p] * bits.OnesCount64(b.pieces[White][p]|b.pieces[Black][p])
	}
	if phase > MaxGamePhase {
		phase = MaxGamePhase
	}
	return phase
}

// addPiece places a piece on an empty square and updates bitboards, material and hashes.
func (b *Board) addPiece(c Color, p Piece, sq int) {
	bit := uint64(1) << uint(sq)
	b.pieces[c][p] |= bit
	b.occupancy[c] |= bit
	b.pieceTable[sq] = p
	b.material[c] += PieceValue[p]

	key := b.tables.zobrist.pieces[c][p][sq]
	b.hash ^= key
	if p == Pawn || p == King {
		b.pawnHash ^= key
	}
}

// removePiece clears a piece from a square and updates bitboards, material and hashes.
func (b *Board) removePiece(c Color, p Piece, sq int) {
	bit := uint64(1) << uint(sq)
	b.pieces[c][p] &^= bit
	b.occupancy[c] &^= bit
	b.pieceTable[sq] = NoPiece
	b.material[c] -= PieceValue[p]

	key := b.tables.zobrist.pieces[c][p][sq]
	b.hash ^= key
	if p == Pawn || p == King {
		b.pawnHash ^= key
	}
}

func (b *Board) movePiece(c Color, p Piece, from, to int) {
	mask := uint64(1)<<uint(from) | uint64(1)<<uint(to)
	b.pieces[c][p] ^= mask
	b.occupancy[c] ^= mask
	b.pieceTable[from] = NoPiece
	b.pieceTable[to] = p

	key := b.tables.zobrist.pieces[c][p][from] ^ b.tables.zobrist.pieces[c][p][to]
	b.hash ^= key
	if p == Pawn || p == King {
		b.pawnHash ^= key
	}
}

// setCastlingRights replaces the rights and toggles the hash for every changed bit.
func (b *Board) setCastlingRights(cr CastlingRights) {
	if changed := b.castlingRights ^ cr; changed != 0 {
		b.hash ^= b.tables.zobrist.castlingHash(changed)
		b.castlingRights = cr
	}
}

func (b *Board) setEnPassant(ep uint64) {
	if b.enPassant != 0 {
		b.hash ^= b.tables.zobrist.enPassant[bits.TrailingZeros64(b.enPassant)%8]
	}
	b.enPassant = ep
	if ep != 0 {
		b.hash ^= b.tables.zobrist.enPassant[bits.TrailingZeros64(ep)%8]
	}
}
