package engine

// SearchParams bundles every tunable bound, margin and multiplier of the pruning
// heuristics. Depths are in plies, margins in centipawns.
type SearchParams struct {
	AspirationMinDepth int8
	AspirationDelta    int16
	AspirationMaxWidth int16

	IIRMinDepth int8

	RazoringMinDepth         int8
	RazoringMaxDepth         int8
	RazoringMarginBase       int16
	RazoringMarginMultiplier int16

	SNMPMinDepth         int8
	SNMPMaxDepth         int8
	SNMPMarginBase       int16
	SNMPMarginMultiplier int16

	NMPMinDepth     int8
	NMPMinGamePhase int
	NMPMargin       int16
	NMPDepthBase    int8
	NMPDepthDivider int8

	LMPMinDepth            int8
	LMPMaxDepth            int8
	LMPMoveIndexBase       int
	LMPMoveIndexMultiplier int
	LMPMaxScore            int16

	LMRMinDepth      int8
	LMRMaxScore      int16
	LMRMinMoveIndex  int
	LMRReductionBase int
	LMRReductionStep int
	LMRMaxReduction  int8

	LMRPVMinMoveIndex  int
	LMRPVReductionBase int
	LMRPVReductionStep int
	LMRPVMaxReduction  int8

	QScorePruningThreshold int16
	QFutilityMargin        int16
}

// DefaultSearchParams returns the parameter set used by the engine.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		AspirationMinDepth: 5,
		AspirationDelta:    25,
		AspirationMaxWidth: 400,

		IIRMinDepth: 4,

		RazoringMinDepth:         1,
		RazoringMaxDepth:         5,
		RazoringMarginBase:       260,
		RazoringMarginMultiplier: 260,

		SNMPMinDepth:         1,
		SNMPMaxDepth:         8,
		SNMPMarginBase:       135,
		SNMPMarginMultiplier: 55,

		NMPMinDepth:     2,
		NMPMinGamePhase: 3,
		NMPMargin:       60,
		NMPDepthBase:    2,
		NMPDepthDivider: 5,

		LMPMinDepth:            1,
		LMPMaxDepth:            3,
		LMPMoveIndexBase:       2,
		LMPMoveIndexMultiplier: 5,
		LMPMaxScore:            -55,

		LMRMinDepth:      2,
		LMRMaxScore:      90,
		LMRMinMoveIndex:  2,
		LMRReductionBase: 1,
		LMRReductionStep: 4,
		LMRMaxReduction:  3,

		LMRPVMinMoveIndex:  2,
		LMRPVReductionBase: 1,
		LMRPVReductionStep: 8,
		LMRPVMaxReduction:  2,

		QScorePruningThreshold: 0,
		QFutilityMargin:        100,
	}
}

func (p *SearchParams) razoringMargin(depth int8) int16 {
	return p.RazoringMarginBase + int16(depth-p.RazoringMinDepth)*p.RazoringMarginMultiplier
}

func (p *SearchParams) snmpMargin(depth int8) int16 {
	return p.SNMPMarginBase + int16(depth-p.SNMPMinDepth)*p.SNMPMarginMultiplier
}

func (p *SearchParams) nmpReduction(depth int8) int8 {
	return p.NMPDepthBase + depth/p.NMPDepthDivider
}

// lmpMoveIndex is the number of moves searched before late quiet moves are pruned.
func (p *SearchParams) lmpMoveIndex(depth int8) int {
	return p.LMPMoveIndexBase + int(depth-1)*p.LMPMoveIndexMultiplier
}

func (p *SearchParams) lmrReduction(pv bool, moveIndex int) int8 {
	if pv {
		r := p.LMRPVReductionBase + (moveIndex-p.LMRPVMinMoveIndex)/p.LMRPVReductionStep
		return Min(p.LMRPVMaxReduction, int8(r))
	}
	r := p.LMRReductionBase + (moveIndex-p.LMRMinMoveIndex)/p.LMRReductionStep
	return Min(p.LMRMaxReduction, int8(r))
}
