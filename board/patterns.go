package board

// patterns holds per-square lookup bitboards computed once per Tables instance.
type patterns struct {
	file      [64]uint64
	rank      [64]uint64
	diagonals [64]uint64
	jumps     [64]uint64
	box       [64]uint64
	// pawnAttacks[c][sq] holds the squares a pawn of color c standing on sq attacks.
	pawnAttacks [2][64]uint64
}

type shift struct {
	df, dr int
}

var (
	jumpOffsets    = [8]shift{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	boxOffsets     = [8]shift{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDirections = [4]shift{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs     = [4]shift{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// offsets ORs every in-board target reached from sq by one step of the given offsets.
func offsets(sq int, steps []shift) uint64 {
	var result uint64
	file, rank := sq%8, sq/8
	for _, s := range steps {
		if onBoard(file+s.df, rank+s.dr) {
			result |= 1 << uint((rank+s.dr)*8+file+s.df)
		}
	}
	return result
}

// ray slides from sq in direction d, stopping at (and including) the first occupied square.
func ray(sq int, d shift, occupancy uint64) uint64 {
	var result uint64
	file, rank := sq%8+d.df, sq/8+d.dr
	for onBoard(file, rank) {
		bit := uint64(1) << uint(rank*8+file)
		result |= bit
		if occupancy&bit != 0 {
			break
		}
		file += d.df
		rank += d.dr
	}
	return result
}

func slide(sq int, dirs []shift, occupancy uint64) uint64 {
	var result uint64
	for _, d := range dirs {
		result |= ray(sq, d, occupancy)
	}
	return result
}

func newPatterns() *patterns {
	p := &patterns{}
	for sq := 0; sq < 64; sq++ {
		p.file[sq] = (FileA << uint(sq%8)) &^ (1 << uint(sq))
		p.rank[sq] = (Rank1 << uint(8*(sq/8))) &^ (1 << uint(sq))
		p.diagonals[sq] = slide(sq, bishopDirs[:], 0)
		p.jumps[sq] = offsets(sq, jumpOffsets[:])
		p.box[sq] = offsets(sq, boxOffsets[:])

		// Pawn captures are the diagonal half of the box on the rank ahead.
		sideways := p.box[sq] &^ (FileA << uint(sq%8))
		if rank := sq / 8; rank < 7 {
			p.pawnAttacks[White][sq] = sideways & (Rank1 << uint(8*(rank+1)))
		}
		if rank := sq / 8; rank > 0 {
			p.pawnAttacks[Black][sq] = sideways & (Rank1 << uint(8*(rank-1)))
		}
	}
	return p
}
