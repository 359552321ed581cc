package cdcl

// maybeRestart implements the glucose-style restart policy: whenever the
// fast LBD average runs substantially (25%) ahead of the slow one, recent
// conflicts have been unusually hard to resolve, so the search abandons
// its current branch and starts over from the root with whatever was
// learned. A restart that leaves too many lemmas behind also triggers a
// clause database reduction.
func (s *Solver) maybeRestart() error {
	if s.fast <= (s.slow/100)*125 {
		return nil
	}

	s.res = 0
	s.fast = (s.slow / 100) * 125
	s.restart()

	if s.nLemmas > s.maxLemmas {
		return s.reduceDB(6)
	}
	return nil
}

// reduceDB discards lemmas that have k or more literals satisfied under the
// current model and keeps the rest, keeping the arena from growing without
// bound. Watches
// into the lemma region are swept out of every literal's chain first,
// then the lemma region itself is dropped and the survivors are
// re-appended to the (now truncated) arena.
func (s *Solver) reduceDB(k int) error {
	for s.nLemmas > s.maxLemmas {
		s.maxLemmas += 300
		s.nLemmas = 0
	}

	for v := -s.nVars; v <= s.nVars; v++ {
		if v == 0 {
			continue
		}
		cur := headCursor(s, v)
		for cur.get() != end {
			w := cur.get()
			if w < s.db.memFixed {
				cur = cellCursor(s, w)
			} else {
				cur.set(s.db.db[w])
			}
		}
	}

	saved := append([]int(nil), s.db.db[s.db.memFixed:]...)
	s.db.db = s.db.db[:s.db.memFixed]

	for i := 2; i < len(saved); {
		head := i
		count := 0
		for saved[i] != 0 {
			lit := saved[i]
			if boolToInt(lit > 0) == s.model[abs(lit)] {
				count++
			}
			i++
		}
		if count < k {
			if _, err := s.addClause(saved[head:i], false); err != nil {
				return err
			}
		}
		i += 3
	}
	return nil
}
