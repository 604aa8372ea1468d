package board

// Move encodes a chess move in 16 bits.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift  = 0  // 6 bits
	moveToShift    = 6  // 6 bits
	moveFlagsShift = 12 // 4 bits
)

// MoveFlags enumerates the kind of a move.
type MoveFlags uint8

const (
	Quiet         MoveFlags = 0
	DoublePush    MoveFlags = 1
	ShortCastling MoveFlags = 2
	LongCastling  MoveFlags = 3
	Capture       MoveFlags = 4
	EnPassant     MoveFlags = 5

	KnightPromotion MoveFlags = 8
	BishopPromotion MoveFlags = 9
	RookPromotion   MoveFlags = 10
	QueenPromotion  MoveFlags = 11

	KnightPromotionCapture MoveFlags = 12
	BishopPromotionCapture MoveFlags = 13
	RookPromotionCapture   MoveFlags = 14
	QueenPromotionCapture  MoveFlags = 15

	promotionBit MoveFlags = 8
	captureBit   MoveFlags = 4
)

// NoMove is the zero move (a1a1), never produced by the generator.
const NoMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to int, flags MoveFlags) Move {
	return Move(uint16(from&0x3F) | uint16(to&0x3F)<<moveToShift | uint16(flags)<<moveFlagsShift)
}

// From returns the source square of the move.
func (m Move) From() int { return int(m>>moveFromShift) & 0x3F }

// To returns the destination square of the move.
func (m Move) To() int { return int(m>>moveToShift) & 0x3F }

func (m Move) Flags() MoveFlags { return MoveFlags(m >> moveFlagsShift) }

// IsQuiet reports whether the move neither captures nor promotes.
func (m Move) IsQuiet() bool { return m.Flags()&(captureBit|promotionBit) == 0 }

// IsCapture reports captures, en passant and promotion-captures included.
func (m Move) IsCapture() bool { return m.Flags()&captureBit != 0 }

func (m Move) IsEnPassant() bool { return m.Flags() == EnPassant }

func (m Move) IsCastling() bool {
	f := m.Flags()
	return f == ShortCastling || f == LongCastling
}

func (m Move) IsPromotion() bool { return m.Flags()&promotionBit != 0 }

// PromotionPiece returns the piece a pawn turns into, or NoPiece.
func (m Move) PromotionPiece() Piece {
	if !m.IsPromotion() {
		return NoPiece
	}
	return Knight + Piece(m.Flags()&3)
}

// String produces the coordinate notation of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := SquareName(m.From()) + SquareName(m.To())
	if p := m.PromotionPiece(); p != NoPiece {
		s += string(p.Symbol())
	}
	return s
}
