package cdcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

func solveCNF(t *testing.T, nVars int, clauses [][]int) (Status, *Solver) {
	t.Helper()
	s := New(nVars, len(clauses))
	for _, c := range clauses {
		if err := s.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %v", c, err)
		}
	}
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return status, s
}

// checkModel verifies that every clause has at least one literal true
// under s's model, failing the test with a pretty-printed clause if not.
func checkModel(t *testing.T, s *Solver, clauses [][]int) {
	t.Helper()
	for _, c := range clauses {
		satisfied := false
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if (lit > 0) == s.Model(v) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			t.Errorf("clause not satisfied by model: %s", pretty.Sprint(c))
		}
	}
}

func TestSolveUnitPropagation(t *testing.T) {
	// (x1) & (-x1 v x2) & (-x2 v x3) forces x1, x2, x3 all true.
	clauses := [][]int{
		{1},
		{-1, 2},
		{-2, 3},
	}
	status, s := solveCNF(t, 3, clauses)
	if status != Sat {
		t.Fatalf("status = %v, want Sat", status)
	}
	checkModel(t, s, clauses)
	if !s.Model(1) || !s.Model(2) || !s.Model(3) {
		t.Errorf("model = (%v,%v,%v), want all true", s.Model(1), s.Model(2), s.Model(3))
	}
}

func TestSolveEmptyClauseIsUnsat(t *testing.T) {
	status, _ := solveCNF(t, 1, [][]int{{}})
	if status != Unsat {
		t.Fatalf("status = %v, want Unsat", status)
	}
}

func TestSolveConflictingUnitsIsUnsat(t *testing.T) {
	status, _ := solveCNF(t, 1, [][]int{{1}, {-1}})
	if status != Unsat {
		t.Fatalf("status = %v, want Unsat", status)
	}
}

func TestSolveRequiresLearning(t *testing.T) {
	// A small pigeonhole-free but still conflict-forcing instance: x1, x2
	// and x3 can't all be false, each of them implies x4, and under x4 no
	// two of them may both be true, exercising analyze's first-UIP search and the
	// restart controller's EMA updates along a non-trivial run.
	clauses := [][]int{
		{1, 2, 3},
		{-1, 4},
		{-2, 4},
		{-3, 4},
		{-4, -1, -2},
		{-4, -1, -3},
		{-4, -2, -3},
	}
	status, s := solveCNF(t, 4, clauses)
	if status != Sat {
		t.Fatalf("status = %v, want Sat", status)
	}
	checkModel(t, s, clauses)
}

func TestSolvePigeonholeIsUnsat(t *testing.T) {
	// Two pigeons, one hole: x1=pigeon1-in-hole, x2=pigeon2-in-hole; both
	// must be in the hole but can't share it.
	clauses := [][]int{
		{1},
		{2},
		{-1, -2},
	}
	status, _ := solveCNF(t, 2, clauses)
	if status != Unsat {
		t.Fatalf("status = %v, want Unsat", status)
	}
}

func TestDecisionHeapSkipsAssigned(t *testing.T) {
	h := NewDecisionHeap(3)
	h.Bump(2)
	h.Bump(2)
	h.Bump(1)

	assigned := map[int]bool{2: true}
	v := h.NextVar(func(v int) bool { return assigned[v] })
	if v != 1 {
		t.Errorf("NextVar = %d, want 1 (var 2 is assigned, var 1 has more activity than unbumped var 3)", v)
	}
}

func TestRingBufferAvg(t *testing.T) {
	q := newRingBuffer(3)
	for _, v := range []int{1, 2, 3, 4} {
		q.Push(v)
	}
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	if diff := cmp.Diff(3.0, q.Avg()); diff != "" {
		t.Errorf("Avg mismatch (-want +got):\n%s", diff)
	}
}
