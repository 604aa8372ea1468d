package board

import (
	"fmt"
	"math/bits"
)

type moveList struct {
	moves *[MaxMovesCount]Move
	n     int
}

func (l *moveList) add(from, to int, flags MoveFlags) {
	if l.n >= MaxMovesCount {
		panic(fmt.Sprintf("move buffer overflow: more than %d moves", MaxMovesCount))
	}
	l.moves[l.n] = NewMove(from, to, flags)
	l.n++
}

func (l *moveList) addPromotions(from, to int, capture bool) {
	base := KnightPromotion
	if capture {
		base = KnightPromotionCapture
	}
	for f := base + 3; f >= base; f-- {
		l.add(from, to, f)
	}
}

// GetMoves writes every pseudo-legal move of the side to move into moves and returns
// their count. Moves leaving the own king in check are included; callers filter them
// by making the move and testing IsKingChecked.
func (b *Board) GetMoves(moves *[MaxMovesCount]Move) int {
	return b.generate(moves, false)
}

// GetCaptures is GetMoves restricted to captures, en passant and promotion-captures.
func (b *Board) GetCaptures(moves *[MaxMovesCount]Move) int {
	return b.generate(moves, true)
}

func (b *Board) generate(moves *[MaxMovesCount]Move, capturesOnly bool) int {
	list := moveList{moves: moves}
	color := b.activeColor
	enemy := color ^ 1
	occupancy := b.Occupancy()

	b.generatePawnMoves(&list, color, occupancy, capturesOnly)

	targetsMask := ^b.occupancy[color]
	if capturesOnly {
		targetsMask = b.occupancy[enemy]
	}
	t := b.tables
	for p := Knight; p <= King; p++ {
		pieces := b.pieces[color][p]
		for pieces != 0 {
			from := popLSB(&pieces)
			var attacks uint64
			switch p {
			case Knight:
				attacks = t.KnightMoves(from)
			case Bishop:
				attacks = t.BishopMoves(occupancy, from)
			case Rook:
				attacks = t.RookMoves(occupancy, from)
			case Queen:
				attacks = t.QueenMoves(occupancy, from)
			case King:
				attacks = t.KingMoves(from)
			}
			attacks &= targetsMask
			for attacks != 0 {
				to := popLSB(&attacks)
				if b.occupancy[enemy]&(1<<uint(to)) != 0 {
					list.add(from, to, Capture)
				} else {
					list.add(from, to, Quiet)
				}
			}
		}
	}

	if !capturesOnly {
		b.generateCastling(&list, color, occupancy)
	}
	return list.n
}

func (b *Board) generatePawnMoves(list *moveList, color Color, occupancy uint64, capturesOnly bool) {
	forward, startRank, lastRank := 8, Rank2, Rank8
	if color == Black {
		forward, startRank, lastRank = -8, Rank7, Rank1
	}
	enemyOccupancy := b.occupancy[color^1]

	pawns := b.pieces[color][Pawn]
	for pawns != 0 {
		from := popLSB(&pawns)
		to := from + forward
		promotes := lastRank&(1<<uint(to)) != 0

		if !capturesOnly && occupancy&(1<<uint(to)) == 0 {
			if promotes {
				list.addPromotions(from, to, false)
			} else {
				list.add(from, to, Quiet)
				double := to + forward
				if startRank&(1<<uint(from)) != 0 && occupancy&(1<<uint(double)) == 0 {
					list.add(from, double, DoublePush)
				}
			}
		}

		attacks := b.tables.patterns.pawnAttacks[color][from]
		captures := attacks & enemyOccupancy
		for captures != 0 {
			target := popLSB(&captures)
			if promotes {
				list.addPromotions(from, target, true)
			} else {
				list.add(from, target, Capture)
			}
		}
		if attacks&b.enPassant != 0 {
			list.add(from, bits.TrailingZeros64(b.enPassant), EnPassant)
		}
	}
}

func (b *Board) generateCastling(list *moveList, color Color, occupancy uint64) {
	short, long, base := WhiteShortCastling, WhiteLongCastling, 0
	if color == Black {
		short, long, base = BlackShortCastling, BlackLongCastling, 56
	}
	king := base + 4
	if b.castlingRights&(short|long) == 0 || b.pieces[color][King]&(1<<uint(king)) == 0 {
		return
	}
	rooks := b.pieces[color][Rook]

	if b.castlingRights&short != 0 && rooks&(1<<uint(base+7)) != 0 &&
		occupancy&(uint64(0x60)<<uint(base)) == 0 &&
		!b.IsFieldAttacked(color, king) && !b.IsFieldAttacked(color, king+1) && !b.IsFieldAttacked(color, king+2) {
		list.add(king, king+2, ShortCastling)
	}
	if b.castlingRights&long != 0 && rooks&(1<<uint(base)) != 0 &&
		occupancy&(uint64(0x0E)<<uint(base)) == 0 &&
		!b.IsFieldAttacked(color, king) && !b.IsFieldAttacked(color, king-1) && !b.IsFieldAttacked(color, king-2) {
		list.add(king, king-2, LongCastling)
	}
}

// IsFieldAttacked reports whether any piece of color's opponent attacks sq.
func (b *Board) IsFieldAttacked(color Color, sq int) bool {
	enemy := color ^ 1
	t := b.tables
	occupancy := b.Occupancy()
	enemyPieces := &b.pieces[enemy]

	if t.patterns.pawnAttacks[color][sq]&enemyPieces[Pawn] != 0 {
		return true
	}
	if t.KnightMoves(sq)&enemyPieces[Knight] != 0 {
		return true
	}
	if t.KingMoves(sq)&enemyPieces[King] != 0 {
		return true
	}
	if t.RookMoves(occupancy, sq)&(enemyPieces[Rook]|enemyPieces[Queen]) != 0 {
		return true
	}
	return t.BishopMoves(occupancy, sq)&(enemyPieces[Bishop]|enemyPieces[Queen]) != 0
}

// IsKingChecked reports whether the king of color is attacked. A side without a
// king is never in check.
func (b *Board) IsKingChecked(color Color) bool {
	if b.pieces[color][King] == 0 {
		return false
	}
	return b.IsFieldAttacked(color, b.KingSquare(color))
}

// AttackMask returns every square attacked by at least one piece of color.
func (b *Board) AttackMask(color Color) uint64 {
	t := b.tables
	occupancy := b.Occupancy()
	var mask uint64

	pawns := b.pieces[color][Pawn]
	for pawns != 0 {
		mask |= t.patterns.pawnAttacks[color][popLSB(&pawns)]
	}
	for p := Knight; p <= King; p++ {
		pieces := b.pieces[color][p]
		for pieces != 0 {
			sq := popLSB(&pieces)
			switch p {
			case Knight:
				mask |= t.KnightMoves(sq)
			case Bishop:
				mask |= t.BishopMoves(occupancy, sq)
			case Rook:
				mask |= t.RookMoves(occupancy, sq)
			case Queen:
				mask |= t.QueenMoves(occupancy, sq)
			case King:
				mask |= t.KingMoves(sq)
			}
		}
	}
	return mask
}

// GetAttackingPieces returns the exchange slot mask of the opponent's pieces attacking
// sq: bit 0 a pawn, bits 1-3 up to three knights or bishops, bits 4-5 up to two rooks,
// bit 6 a queen and bit 7 the king. Sliders of the same kind are removed from the
// occupancy first so that doubled rooks or a bishop behind a queen are both counted.
func (b *Board) GetAttackingPieces(color Color, sq int) uint8 {
	enemy := color ^ 1
	t := b.tables
	occupancy := b.Occupancy()
	enemyPieces := &b.pieces[enemy]
	var result uint8

	if t.KingMoves(sq)&enemyPieces[King] != 0 {
		result |= 1 << 7
	}

	rooksQueens := enemyPieces[Rook] | enemyPieces[Queen]
	rookAttacks := t.RookMoves(occupancy&^rooksQueens, sq)
	switch bits.OnesCount64(rookAttacks & enemyPieces[Rook]) {
	case 0:
	case 1:
		result |= 1 << 4
	default:
		result |= 3 << 4
	}
	if rookAttacks&enemyPieces[Queen] != 0 {
		result |= 1 << 6
	}

	bishopsQueens := enemyPieces[Bishop] | enemyPieces[Queen]
	bishopAttacks := t.BishopMoves(occupancy&^bishopsQueens, sq)
	minors := bits.OnesCount64(t.KnightMoves(sq)&enemyPieces[Knight]) + bits.OnesCount64(bishopAttacks&enemyPieces[Bishop])
	switch minors {
	case 0:
	case 1:
		result |= 1 << 1
	case 2:
		result |= 3 << 1
	default:
		result |= 7 << 1
	}
	if bishopAttacks&enemyPieces[Queen] != 0 {
		result |= 1 << 6
	}

	if t.patterns.pawnAttacks[color][sq]&enemyPieces[Pawn] != 0 {
		result |= 1
	}
	return result
}

// GetLegalMoves returns the legal moves of the side to move.
func (b *Board) GetLegalMoves() []Move {
	var buf [MaxMovesCount]Move
	n := b.GetMoves(&buf)
	legal := make([]Move, 0, n)
	color := b.activeColor
	for _, m := range buf[:n] {
		b.MakeMove(m)
		if !b.IsKingChecked(color) {
			legal = append(legal, m)
		}
		b.UndoMove(m)
	}
	return legal
}
