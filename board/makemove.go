package board

import "fmt"

// castlingKeep[sq] holds the rights that survive a move touching sq.
var castlingKeep = func() [64]CastlingRights {
	var keep [64]CastlingRights
	for sq := range keep {
		keep[sq] = AllCastling
	}
	keep[0] &^= WhiteLongCastling
	keep[4] &^= WhiteShortCastling | WhiteLongCastling
	keep[7] &^= WhiteShortCastling
	keep[56] &^= BlackLongCastling
	keep[60] &^= BlackShortCastling | BlackLongCastling
	keep[63] &^= BlackShortCastling
	return keep
}()

// MakeMove applies m, which must be pseudo-legal in the current position.
// Every change is recorded so that UndoMove(m) restores the exact previous state.
func (b *Board) MakeMove(m Move) {
	color := b.activeColor
	enemy := color ^ 1
	from, to, flags := m.From(), m.To(), m.Flags()
	piece := b.pieceTable[from]

	b.stack = append(b.stack, undoState{
		halfmoveClock:  b.halfmoveClock,
		castlingRights: b.castlingRights,
		enPassant:      b.enPassant,
		hash:           b.hash,
		pawnHash:       b.pawnHash,
		captured:       NoPiece,
	})
	top := &b.stack[len(b.stack)-1]

	b.setEnPassant(0)
	if piece == Pawn || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	switch flags {
	case Quiet:
		b.movePiece(color, piece, from, to)
	case DoublePush:
		b.movePiece(color, piece, from, to)
		b.setEnPassant(1 << uint((from+to)/2))
	case Capture:
		captured := b.pieceTable[to]
		top.captured = captured
		b.removePiece(enemy, captured, to)
		b.movePiece(color, piece, from, to)
	case ShortCastling:
		b.movePiece(color, King, from, to)
		b.movePiece(color, Rook, from+3, from+1)
	case LongCastling:
		b.movePiece(color, King, from, to)
		b.movePiece(color, Rook, from-4, from-1)
	case EnPassant:
		target := enPassantVictim(color, to)
		top.captured = Pawn
		b.removePiece(enemy, Pawn, target)
		b.movePiece(color, Pawn, from, to)
	default:
		if !m.IsPromotion() {
			panic(fmt.Sprintf("invalid move flags %d in %s", flags, m))
		}
		if m.IsCapture() {
			captured := b.pieceTable[to]
			top.captured = captured
			b.removePiece(enemy, captured, to)
		}
		b.removePiece(color, Pawn, from)
		b.addPiece(color, m.PromotionPiece(), to)
	}

	if b.castlingRights != NoCastling {
		b.setCastlingRights(b.castlingRights & castlingKeep[from] & castlingKeep[to])
	}
	if color == Black {
		b.fullmoveNumber++
	}
	b.activeColor = enemy
	b.hash ^= b.tables.zobrist.side
}

// UndoMove reverts the last move made, which must be m.
func (b *Board) UndoMove(m Move) {
	top := b.pop()
	b.activeColor ^= 1
	color := b.activeColor
	enemy := color ^ 1
	from, to, flags := m.From(), m.To(), m.Flags()

	switch flags {
	case Quiet, DoublePush:
		b.movePiece(color, b.pieceTable[to], to, from)
	case Capture:
		b.movePiece(color, b.pieceTable[to], to, from)
		b.addPiece(enemy, top.captured, to)
	case ShortCastling:
		b.movePiece(color, King, to, from)
		b.movePiece(color, Rook, from+1, from+3)
	case LongCastling:
		b.movePiece(color, King, to, from)
		b.movePiece(color, Rook, from-1, from-4)
	case EnPassant:
		b.movePiece(color, Pawn, to, from)
		b.addPiece(enemy, Pawn, enPassantVictim(color, to))
	default:
		b.removePiece(color, m.PromotionPiece(), to)
		b.addPiece(color, Pawn, from)
		if m.IsCapture() {
			b.addPiece(enemy, top.captured, to)
		}
	}

	if color == Black {
		b.fullmoveNumber--
	}
	b.restore(top)
}

// MakeNullMove passes the turn. Only the side to move and the en passant square change.
func (b *Board) MakeNullMove() {
	b.stack = append(b.stack, undoState{
		halfmoveClock:  b.halfmoveClock,
		castlingRights: b.castlingRights,
		enPassant:      b.enPassant,
		hash:           b.hash,
		pawnHash:       b.pawnHash,
		captured:       NoPiece,
	})
	b.setEnPassant(0)
	b.activeColor ^= 1
	b.hash ^= b.tables.zobrist.side
	b.nullMoves++
}

// UndoNullMove reverts MakeNullMove.
func (b *Board) UndoNullMove() {
	top := b.pop()
	b.activeColor ^= 1
	b.nullMoves--
	b.restore(top)
}

func (b *Board) pop() undoState {
	n := len(b.stack)
	if n == 0 {
		panic(fmt.Sprintf("undo stack underflow (fen %s)", b.ToFEN()))
	}
	top := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return top
}

func (b *Board) restore(s undoState) {
	b.halfmoveClock = s.halfmoveClock
	b.castlingRights = s.castlingRights
	b.enPassant = s.enPassant
	b.hash = s.hash
	b.pawnHash = s.pawnHash
}

// enPassantVictim returns the square of the pawn removed by an en passant capture to sq.
func enPassantVictim(color Color, sq int) int {
	if color == White {
		return sq - 8
	}
	return sq + 8
}
