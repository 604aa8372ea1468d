package board

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StartPosFEN is the FEN string for the standard initial chess position.
const StartPosFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is the cause of every FEN parsing failure.
var ErrInvalidFEN = errors.New("invalid FEN")

var castlingSymbols = [4]struct {
	right  CastlingRights
	symbol byte
}{
	{WhiteShortCastling, 'K'},
	{WhiteLongCastling, 'Q'},
	{BlackShortCastling, 'k'},
	{BlackLongCastling, 'q'},
}

func pieceFromSymbol(ch byte) (Color, Piece, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return color, Pawn, true
	case 'N':
		return color, Knight, true
	case 'B':
		return color, Bishop, true
	case 'R':
		return color, Rook, true
	case 'Q':
		return color, Queen, true
	case 'K':
		return color, King, true
	}
	return White, NoPiece, false
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The halfmove clock and fullmove number may be omitted; they default to 0 and 1.
func ParseFEN(t *Tables, fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, errors.Wrapf(ErrInvalidFEN, "%q: expected 4 to 6 fields, got %d", fen, len(fields))
	}

	b := New(t)
	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, errors.Wrapf(err, "%q", fen)
	}

	switch fields[1] {
	case "w":
		b.activeColor = White
	case "b":
		b.activeColor = Black
		b.hash ^= t.zobrist.side
	default:
		return nil, errors.Wrapf(ErrInvalidFEN, "%q: bad active color %q", fen, fields[1])
	}

	if fields[2] != "-" {
		var rights CastlingRights
		for i := 0; i < len(fields[2]); i++ {
			found := false
			for _, c := range castlingSymbols {
				if fields[2][i] == c.symbol {
					rights |= c.right
					found = true
				}
			}
			if !found {
				return nil, errors.Wrapf(ErrInvalidFEN, "%q: bad castling rights %q", fen, fields[2])
			}
		}
		b.setCastlingRights(rights)
	}

	if fields[3] != "-" {
		sq := ParseSquare(fields[3])
		if !b.enPassantTarget(sq) {
			return nil, errors.Wrapf(ErrInvalidFEN, "%q: bad en passant square %q", fen, fields[3])
		}
		b.setEnPassant(1 << uint(sq))
	}

	if len(fields) > 4 {
		v, err := strconv.ParseUint(fields[4], 10, 16)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidFEN, "%q: bad halfmove clock %q", fen, fields[4])
		}
		b.halfmoveClock = uint16(v)
	}
	if len(fields) > 5 {
		v, err := strconv.ParseUint(fields[5], 10, 16)
		if err != nil || v == 0 {
			return nil, errors.Wrapf(ErrInvalidFEN, "%q: bad fullmove number %q", fen, fields[5])
		}
		b.fullmoveNumber = uint16(v)
	}
	return b, nil
}

// enPassantTarget reports whether sq can be the en passant square: empty, on the
// capture rank of the side to move, with the pawn that just double pushed behind it.
func (b *Board) enPassantTarget(sq int) bool {
	if sq < 0 || b.pieceTable[sq] != NoPiece {
		return false
	}
	victim := sq - 8
	if b.activeColor == White {
		if sq/8 != 5 {
			return false
		}
	} else {
		if sq/8 != 2 {
			return false
		}
		victim = sq + 8
	}
	return b.pieces[b.activeColor.Opponent()][Pawn]&(1<<uint(victim)) != 0
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errors.Wrapf(ErrInvalidFEN, "expected 8 ranks, got %d", len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			color, piece, ok := pieceFromSymbol(ch)
			if !ok {
				return errors.Wrapf(ErrInvalidFEN, "bad piece symbol %q", ch)
			}
			if file > 7 {
				return errors.Wrapf(ErrInvalidFEN, "rank %d overflows", rank+1)
			}
			b.addPiece(color, piece, rank*8+file)
			file++
		}
		if file != 8 {
			return errors.Wrapf(ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}
	for c := White; c <= Black; c++ {
		if Popcount(b.pieces[c][King]) > 1 {
			return errors.Wrapf(ErrInvalidFEN, "%s has more than one king", c)
		}
	}
	return nil
}

// ToFEN serializes the board to a six-field FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			p := b.pieceTable[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			symbol := p.Symbol()
			if b.ColorAt(sq) == White {
				symbol -= 'a' - 'A'
			}
			sb.WriteByte(symbol)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.activeColor.String())

	sb.WriteByte(' ')
	if b.castlingRights == NoCastling {
		sb.WriteByte('-')
	}
	for _, c := range castlingSymbols {
		if b.castlingRights&c.right != 0 {
			sb.WriteByte(c.symbol)
		}
	}

	sb.WriteByte(' ')
	if b.enPassant == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(LSB(b.enPassant)))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.halfmoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.fullmoveNumber)))
	return sb.String()
}
