package engine

import (
	"fmt"
	"io"
)

// Statistics collects node counts and counts for each pruning/cutoff mechanism.
type Statistics struct {
	Nodes  uint64
	QNodes uint64
	Leafs  uint64
	MaxPly int

	BetaCutoffs    uint64
	PerfectCutoffs uint64
	QBetaCutoffs   uint64

	TTHits   uint64
	TTMisses uint64
	TTAdded  uint64

	PawnHits uint64

	RazoringAccepted uint64
	RazoringRejected uint64
	SNMPAccepted     uint64
	SNMPRejected     uint64
	NMPAccepted      uint64
	NMPRejected      uint64
	LMPAccepted      uint64
	LMRReductions    uint64
	PVSResearches    uint64

	QScorePrunes    uint64
	QFutilityPrunes uint64
}

// TotalNodes counts main search and quiescence nodes.
func (s *Statistics) TotalNodes() uint64 { return s.Nodes + s.QNodes }

// PerfectCutoffRatio is the share of beta cutoffs produced by the first move searched.
func (s *Statistics) PerfectCutoffRatio() float64 {
	if s.BetaCutoffs == 0 {
		return 0
	}
	return float64(s.PerfectCutoffs) * 100 / float64(s.BetaCutoffs)
}

// Dump writes the statistics as protocol "info string" lines.
func (s *Statistics) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d (q-nodes %d, leafs %d, max ply %d)\n", s.Nodes, s.QNodes, s.Leafs, s.MaxPly)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d (perfect %.1f%%)\n", s.BetaCutoffs, s.PerfectCutoffRatio())
	fmt.Fprintf(w, "info string   QBeta cutoffs: %d\n", s.QBetaCutoffs)
	fmt.Fprintf(w, "info string   TT hits/misses/added: %d/%d/%d\n", s.TTHits, s.TTMisses, s.TTAdded)
	fmt.Fprintf(w, "info string   Pawn table hits: %d\n", s.PawnHits)
	fmt.Fprintf(w, "info string   Razoring: %d accepted, %d rejected\n", s.RazoringAccepted, s.RazoringRejected)
	fmt.Fprintf(w, "info string   Static null: %d accepted, %d rejected\n", s.SNMPAccepted, s.SNMPRejected)
	fmt.Fprintf(w, "info string   Null move: %d accepted, %d rejected\n", s.NMPAccepted, s.NMPRejected)
	fmt.Fprintf(w, "info string   Late move prunes: %d, reductions: %d, re-searches: %d\n", s.LMPAccepted, s.LMRReductions, s.PVSResearches)
	fmt.Fprintf(w, "info string   QScore prunes: %d, QFutility prunes: %d\n", s.QScorePrunes, s.QFutilityPrunes)
}
