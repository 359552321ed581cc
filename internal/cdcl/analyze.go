package cdcl

// analyze turns a falsified clause into a learned clause by walking the
// trail backwards from the conflict to the first unique implication
// point: the point closest to the conflict where every path from the
// most recent decision to the conflict passes through a single literal.
// It also folds the learned clause's LBD (glue) into the fast and slow
// exponential moving averages the restart controller watches, and
// backjumps: it unassigns every trail entry from the top down to and
// including the lowest decision whose level contributes only the first-UIP
// literal to the learned clause.
func (s *Solver) analyze(clauseBase int) (int, error) {
	s.res++
	s.nConflicts++

	for i := 0; s.db.db[clauseBase+i] != 0; i++ {
		s.bump(s.db.db[clauseBase+i])
	}

	for {
		s.assigned--
		lit := s.falseStack[s.assigned]
		if s.reason[abs(lit)] == 0 {
			break
		}

		if s.falseOf.get(lit) == mark {
			check := s.assigned
			reachedDecision := false
			for {
				check--
				if s.falseOf.get(s.falseStack[check]) == mark {
					break
				}
				if s.reason[abs(s.falseStack[check])] == 0 {
					reachedDecision = true
					break
				}
			}
			if reachedDecision {
				break
			}

			reasonClause := s.reason[abs(lit)]
			for i := 0; s.db.db[reasonClause+i] != 0; i++ {
				s.bump(s.db.db[reasonClause+i])
			}
		}

		s.unassign(lit)
	}

	size, lbd := 0, 0
	flag := 0
	p := s.assigned
	s.processed = s.assigned
	for p >= s.forced {
		lit := s.falseStack[p]
		if s.falseOf.get(lit) == mark && s.implied(lit) == 0 {
			s.buffer[size] = lit
			size++
			flag = 1
		}
		if s.reason[abs(lit)] == 0 {
			lbd += flag
			flag = 0
			if size == 1 {
				s.processed = p
			}
		}
		s.falseOf.set(lit, 1)
		p--
	}

	s.fast -= s.fast >> 5
	s.fast += lbd << 15
	s.slow -= s.slow >> 15
	s.slow += lbd << 5

	for s.assigned > s.processed {
		s.unassign(s.falseStack[s.assigned])
		s.assigned--
	}
	s.unassign(s.falseStack[s.assigned])

	s.buffer[size] = 0
	return s.addClause(s.buffer[:size], false)
}

// implied reports whether lit is redundant in the clause being built --
// that is, whether every literal it would resolve against is itself
// already implied by other MARKed literals. It memoizes its result in
// falseOf so repeated queries about the same literal are O(1).
func (s *Solver) implied(lit int) int {
	if v := s.falseOf.get(lit); v > mark {
		return v & mark
	}
	if s.reason[abs(lit)] == 0 {
		return 0
	}

	base := s.reason[abs(lit)] - 1
	for i := 1; s.db.db[base+i] != 0; i++ {
		p := s.db.db[base+i]
		if (s.falseOf.get(p)^mark) != 0 && s.implied(p) == 0 {
			s.falseOf.set(lit, implied-1)
			return 0
		}
	}
	s.falseOf.set(lit, implied)
	return 1
}
