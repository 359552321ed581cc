package cdcl

// Watch lists thread through the arena itself: first[lit] holds the
// offset of a clause's watch slot, and that slot in turn holds the next
// watch offset in the chain (or end). There is no separate watch-list
// allocation; the two header slots reserved ahead of every non-unit
// clause's literals double as the linked-list cells.

// addWatch links the clause whose watch slot sits at offset mem into the
// front of lit's watch chain.
func (s *Solver) addWatch(lit, mem int) {
	s.db.db[mem] = s.first.get(lit)
	s.first.set(lit, mem)
}

// watchCursor points at a single cell that holds a watch-chain link: it
// is either a literal's chain head in the first array, or a clause's
// watch-slot cell inside the arena. Propagation and reduction both walk
// chains by repeatedly reading, and sometimes rewriting, whatever cell
// the cursor currently addresses.
type watchCursor struct {
	s      *Solver
	isHead bool
	lit    int
	idx    int
}

func headCursor(s *Solver, lit int) watchCursor {
	return watchCursor{s: s, isHead: true, lit: lit}
}

func cellCursor(s *Solver, idx int) watchCursor {
	return watchCursor{s: s, idx: idx}
}

func (c watchCursor) get() int {
	if c.isHead {
		return c.s.first.get(c.lit)
	}
	return c.s.db.db[c.idx]
}

func (c watchCursor) set(v int) {
	if c.isHead {
		c.s.first.set(c.lit, v)
		return
	}
	c.s.db.db[c.idx] = v
}
