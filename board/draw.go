package board

// IsRepetitionDraw reports whether the current position occurred at least threshold
// times, counting itself, since the last irreversible move. Positions reached under
// a null move are never draws.
func (b *Board) IsRepetitionDraw(threshold int) bool {
	n := len(b.stack)
	if n < 4 || b.nullMoves > 0 {
		return false
	}
	from := n - int(b.halfmoveClock)
	if from < 0 {
		from = 0
	}

	count := 1
	// Only positions with the same side to move can match: step back two plies.
	for i := n - 2; i >= from; i -= 2 {
		if b.stack[i].hash == b.hash {
			count++
			if count >= threshold {
				return true
			}
		}
	}
	return false
}

// IsThreefoldRepetitionDraw reports whether the current hash occurs at least twice
// more in the move history.
func (b *Board) IsThreefoldRepetitionDraw() bool { return b.IsRepetitionDraw(3) }

// IsFiftyMoveRuleDraw reports whether 50 full moves passed without a pawn move or capture.
func (b *Board) IsFiftyMoveRuleDraw() bool {
	return b.nullMoves == 0 && b.halfmoveClock >= 100
}

// IsInsufficientMaterialDraw detects positions no sequence of legal moves can win:
// bare kings, a single minor piece, or bishops of one square color on both sides.
func (b *Board) IsInsufficientMaterialDraw() bool {
	if b.pieces[White][Pawn]|b.pieces[Black][Pawn] != 0 {
		return false
	}
	for c := White; c <= Black; c++ {
		if b.pieces[c][Rook]|b.pieces[c][Queen] != 0 {
			return false
		}
		if Popcount(b.pieces[c][Knight]|b.pieces[c][Bishop]) > 1 {
			return false
		}
	}

	minors := b.pieces[White][Knight] | b.pieces[White][Bishop] | b.pieces[Black][Knight] | b.pieces[Black][Bishop]
	switch Popcount(minors) {
	case 0, 1:
		return true
	case 2:
		bishops := b.pieces[White][Bishop] | b.pieces[Black][Bishop]
		if b.pieces[White][Bishop] != 0 && b.pieces[Black][Bishop] != 0 {
			return bishops&LightSquares == bishops || bishops&DarkSquares == bishops
		}
	}
	return false
}
