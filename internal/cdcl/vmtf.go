package cdcl

// The decision list is a doubly-linked, move-to-front ordering over
// variables 1..nVars plus a sentinel 0 at the tail. bump moves a variable
// that took part in a conflict to the head of the list so the next
// decision search finds it first; nextUnassigned walks the list from a
// starting point towards the tail looking for a variable that is neither
// true nor false yet.

// bump marks lit as having taken part in the current conflict and moves
// its variable to the front of the decision list. A root-forced literal is
// left alone: it is neither marked nor moved.
func (s *Solver) bump(lit int) {
	if s.falseOf.get(lit) == implied {
		return
	}
	s.falseOf.set(lit, mark)

	v := abs(lit)
	if v == s.head {
		return
	}
	s.prev[s.next[v]] = s.prev[v]
	s.next[s.prev[v]] = s.next[v]
	s.next[s.head] = v
	s.prev[v] = s.head
	s.head = v
}

// nextUnassigned walks the decision list backwards from start (inclusive)
// until it finds a variable that is currently unassigned, or returns 0
// once it falls off the tail -- meaning every variable has a value and
// the formula is satisfied under the current trail.
func (s *Solver) nextUnassigned(start int) int {
	decision := start
	for s.falseOf.get(decision) != 0 || s.falseOf.get(-decision) != 0 {
		decision = s.prev[decision]
	}
	return decision
}
