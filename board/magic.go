package board

import (
	"fmt"
	"math/bits"
)

var rookMagics = [64]uint64{
	0x2180002040008810, 0x1040092001411000, 0x0080200081100188, 0x010020089001000C,
	0x9200203200900408, 0x0300010008020400, 0x0200020006E80104, 0x0080064180002100,
	0x00208000C0022880, 0x8040804000822000, 0x4401002000130040, 0x80AB000C10002100,
	0x0409804801801400, 0x0042000A00440830, 0x5B00808021000200, 0x0800800440800100,
	0x0404228000400087, 0x8081848020004001, 0x8010002000280400, 0x3000210010010048,
	0x4900808054000800, 0x1002008002804400, 0x0201040003881002, 0x018002000100408C,
	0x8880024040002018, 0x1821008100204010, 0x00C0802200114200, 0x4000100080280080,
	0x4440040280080080, 0x0100040080020080, 0x0102140101000200, 0x02004102000848AC,
	0x800021401080008A, 0x0082402000401001, 0x002080D004802004, 0xC100821000800800,
	0x0010808400804800, 0x1002060080800400, 0x0000222104000810, 0x0801000881000062,
	0x4000204000808000, 0x460A0182E1020042, 0x0121016002C10030, 0x4090008018018010,
	0x0884180095010010, 0x10C4000200048080, 0x140D000200010044, 0x0200004410860015,
	0x0080024004200440, 0x0020100428C00140, 0x6004200010028080, 0x0029804800100080,
	0x4002000810200E00, 0x10010200800C0080, 0x40A4301308122400, 0x08080A8401104200,
	0xE70D001260C08001, 0x0700810010214A02, 0x380480431200200A, 0x8090A01001000805,
	0x0042001028200422, 0x000200080C100102, 0x2C80008210010804, 0x204002C081002402,
}

var bishopMagics = [64]uint64{
	0x0040040812002021, 0x6902080801104201, 0x50108C8604440000, 0xA444042080040804,
	0x0004046040000008, 0x48020211040028D0, 0x2404160804250400, 0x4008240402080200,
	0x0000302015640299, 0x0A0008080B040028, 0x012228821400E101, 0x14090405020D0222,
	0x20224D1040410402, 0x0010010508400042, 0x41000D0401202A02, 0x0080018600900444,
	0x0C10004004050410, 0x0009001006281240, 0x0020400402408200, 0x400800808200C084,
	0x1941040820080C82, 0x2A0200010085A400, 0x0000888402091000, 0x806080060E014100,
	0xC20E2210C0040C20, 0x220C100086900500, 0x1083280110008024, 0x4801080283004100,
	0x0104086124002000, 0x1040420001010110, 0x0008304445040223, 0x010090A0190C0200,
	0x0005082103482020, 0x4408901040082202, 0x6802004108901108, 0x0000042008040100,
	0x0404620020020080, 0x002202020240C800, 0x0058020080043080, 0x4001012A00810040,
	0x084108190400C010, 0x0001080910200460, 0x0106010041000804, 0x001000A018000100,
	0x004056A009018200, 0x804440908F000200, 0x04341006061D1340, 0x20220800D0814300,
	0x2004008828080062, 0x1002220510080180, 0x0008020205110004, 0xB0140100A0880800,
	0x00200160924C0082, 0x0248102001144000, 0x1240300499284040, 0x00580214004E0009,
	0x1080240102B01000, 0x0200084402280A00, 0x8806003201008810, 0x1002044002104400,
	0x5042400510160204, 0x80820421200E0082, 0x8407102081040281, 0x8222021004010040,
}

// magicEntry maps the relevant occupancy of one square to its sliding attacks.
type magicEntry struct {
	mask    uint64
	magic   uint64
	shift   uint8
	attacks []uint64
}

func (e *magicEntry) index(occupancy uint64) uint64 {
	return ((occupancy & e.mask) * e.magic) >> e.shift
}

func rookMask(p *patterns, sq int) uint64 {
	return (p.file[sq] &^ Rank1 &^ Rank8) | (p.rank[sq] &^ FileA &^ FileH)
}

func bishopMask(p *patterns, sq int) uint64 {
	return p.diagonals[sq] &^ Edge
}

// newMagicEntry fills the dense attack table of one square by walking every subset of
// the mask with the Carry-Rippler trick. A magic that maps two subsets with different
// attacks onto the same slot is unusable and aborts table construction.
func newMagicEntry(sq int, mask, magic uint64, dirs []shift) magicEntry {
	relevant := bits.OnesCount64(mask)
	e := magicEntry{
		mask:    mask,
		magic:   magic,
		shift:   uint8(64 - relevant),
		attacks: make([]uint64, 1<<uint(relevant)),
	}
	used := make([]bool, len(e.attacks))

	var subset uint64
	for {
		idx := e.index(subset)
		attacks := slide(sq, dirs, subset)
		if used[idx] && e.attacks[idx] != attacks {
			panic(fmt.Sprintf("invalid magic number %#x for square %s", magic, SquareName(sq)))
		}
		e.attacks[idx] = attacks
		used[idx] = true

		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return e
}

func newMagicTables(p *patterns) (rook, bishop [64]magicEntry) {
	for sq := 0; sq < 64; sq++ {
		rook[sq] = newMagicEntry(sq, rookMask(p, sq), rookMagics[sq], rookDirections[:])
		bishop[sq] = newMagicEntry(sq, bishopMask(p, sq), bishopMagics[sq], bishopDirs[:])
	}
	return rook, bishop
}
