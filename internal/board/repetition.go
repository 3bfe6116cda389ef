package board

// recordPosition bumps the repetition count for the current position.
// Called at the end of MakeMove and when a position is first set up.
func (p *Position) recordPosition() {
	if p.repetition == nil {
		p.repetition = make(map[uint64]int)
	}
	p.repetition[p.Fingerprint()]++
}

// forgetPosition removes one occurrence of the current position,
// deleting the entry entirely at zero so counts from simulated moves
// never linger. Called by UnmakeMove before any state is restored.
func (p *Position) forgetPosition() {
	key := p.Fingerprint()
	if n := p.repetition[key]; n <= 1 {
		delete(p.repetition, key)
	} else {
		p.repetition[key] = n - 1
	}
}

// IsThreefoldRepetition reports whether the current position has
// occurred three or more times, signalling a claimable draw.
func (p *Position) IsThreefoldRepetition() bool {
	return p.repetition[p.Fingerprint()] >= 3
}
