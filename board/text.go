package board

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidMoveText is returned for text that is not coordinate notation.
	ErrInvalidMoveText = errors.New("invalid move text")
	// ErrIllegalMove is returned when well-formed move text matches no legal move.
	ErrIllegalMove = errors.New("illegal move")
)

// ParseMove converts coordinate notation (e2e4, e7e8q) into the matching legal move
// of the current position.
func (b *Board) ParseMove(text string) (Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 4 && len(text) != 5 {
		return NoMove, errors.Wrapf(ErrInvalidMoveText, "%q", text)
	}
	from, to := ParseSquare(text[0:2]), ParseSquare(text[2:4])
	if from < 0 || to < 0 {
		return NoMove, errors.Wrapf(ErrInvalidMoveText, "%q", text)
	}
	promotion := NoPiece
	if len(text) == 5 {
		_, p, ok := pieceFromSymbol(text[4])
		if !ok || p == Pawn || p == King {
			return NoMove, errors.Wrapf(ErrInvalidMoveText, "%q: bad promotion piece", text)
		}
		promotion = p
	}

	for _, m := range b.GetLegalMoves() {
		if m.From() == from && m.To() == to && m.PromotionPiece() == promotion {
			return m, nil
		}
	}
	return NoMove, errors.Wrapf(ErrIllegalMove, "%s in %s", text, b.ToFEN())
}

// NewFromMoves sets up fen and plays the given coordinate-notation moves on it.
func NewFromMoves(t *Tables, fen string, moves []string) (*Board, error) {
	b, err := ParseFEN(t, fen)
	if err != nil {
		return nil, err
	}
	for i, text := range moves {
		m, err := b.ParseMove(text)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		b.MakeMove(m)
	}
	return b, nil
}
