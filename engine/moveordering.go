package engine

import "github.com/Tearth/Inanis-sub001/board"

// Ordering scores. Captures are placed above or below the quiet band depending on the
// sign of their exchange, quiets are spread over [-historyBonusRange/2, historyBonusRange/2].
const (
	hashMoveScore        int16 = 10000
	winningCaptureBonus  int16 = 100
	losingCapturePenalty int16 = 100
	enPassantScore       int16 = 100
	castlingScore        int16 = 91
	historyBonusRange          = 180
)

var killerScores = [2]int16{99, 98}

const counterMoveScore int16 = 97

var promotionScores = [6]int16{
	board.Knight: 92,
	board.Bishop: 93,
	board.Rook:   94,
	board.Queen:  95,
}

// assignMoveScores fills scores with the ordering score of every move.
func (e *Engine) assignMoveScores(b *board.Board, moves []board.Move, scores []int16, hashMove, previous board.Move, ply int) {
	killers := e.killers.Get(ply)
	counter := e.counters.Get(b.ActiveColor(), previous)

	for i, m := range moves {
		switch {
		case m == hashMove:
			scores[i] = hashMoveScore
		case m.IsEnPassant():
			scores[i] = enPassantScore
		case m.IsCapture():
			see := e.seeCapture(b, m)
			if see >= 0 {
				scores[i] = see + winningCaptureBonus
			} else {
				scores[i] = see - losingCapturePenalty
			}
		case m.IsPromotion():
			scores[i] = promotionScores[m.PromotionPiece()]
		case m == killers[0]:
			scores[i] = killerScores[0]
		case m == killers[1]:
			scores[i] = killerScores[1]
		case m == counter:
			scores[i] = counterMoveScore
		case m.IsCastling():
			scores[i] = castlingScore
		default:
			scores[i] = int16(e.history.Get(m.From(), m.To(), historyBonusRange)) - historyBonusRange/2
		}
	}
}

// assignCaptureScores scores the quiescence moves by exchange outcome only.
func (e *Engine) assignCaptureScores(b *board.Board, moves []board.Move, scores []int16) {
	for i, m := range moves {
		scores[i] = e.seeCapture(b, m)
		if m.IsPromotion() {
			scores[i] += board.PieceValue[m.PromotionPiece()] - board.PieceValue[board.Pawn]
		}
	}
}

// seeCapture runs the exchange evaluator for a capture of the side to move.
func (e *Engine) seeCapture(b *board.Board, m board.Move) int16 {
	color := b.ActiveColor()
	from, to := m.From(), m.To()

	target := b.PieceAt(to)
	if m.IsEnPassant() {
		target = board.Pawn
	}

	attackers := b.GetAttackingPieces(color.Opponent(), to)
	defenders := b.GetAttackingPieces(color, to)
	return e.see.Get(b.PieceAt(from), target, attackers, defenders)
}
