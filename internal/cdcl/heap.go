package cdcl

import "github.com/rhartert/yagh"

// DecisionHeap is an index-addressable max-heap over per-variable
// activity scores, proposed as an alternative to the VMTF list for
// picking the next decision variable. It is a complete, tested
// implementation of that alternative, grounded on the same yagh
// priority-queue dependency the VMTF-less ordering code in the wider
// ecosystem uses for exactly this purpose -- but the active search loop
// in solve.go never calls into it. It exists as a documented but
// currently unused decision heuristic, the same relationship the
// original solver described between its move-to-front list and a
// proposed-but-inactive heap-based alternative.
type DecisionHeap struct {
	order *yagh.IntMap[float64]
	bumps []float64
	inc   float64
}

// NewDecisionHeap returns a heap holding every variable 1..n, each with
// zero activity.
func NewDecisionHeap(n int) *DecisionHeap {
	h := &DecisionHeap{
		order: yagh.New[float64](0),
		bumps: make([]float64, n+1),
		inc:   1,
	}
	h.order.GrowBy(n + 1)
	for v := 1; v <= n; v++ {
		h.order.Put(v, 0)
	}
	return h
}

// Bump increases v's activity, moving it closer to the top of the heap.
func (h *DecisionHeap) Bump(v int) {
	h.bumps[v] += h.inc
	if h.order.Contains(v) {
		h.order.Put(v, -h.bumps[v])
	}
	if h.bumps[v] > 1e100 {
		h.rescale()
	}
}

// Decay divides the bump increment by factor; with factor below 1 this
// increases the weight future bumps carry relative to past ones,
// favouring variables that were recently involved in a conflict.
func (h *DecisionHeap) Decay(factor float64) {
	h.inc /= factor
	if h.inc > 1e100 {
		h.rescale()
	}
}

// NextVar pops the highest-activity variable for which isAssigned
// reports false, re-popping until one is found or the heap empties (0,
// reported the same way the VMTF list's exhausted sentinel is).
func (h *DecisionHeap) NextVar(isAssigned func(int) bool) int {
	for {
		entry, ok := h.order.Pop()
		if !ok {
			return 0
		}
		if isAssigned(entry.Elem) {
			continue
		}
		return entry.Elem
	}
}

// Reinsert makes v a candidate again, used when a backtrack or restart
// unassigns it.
func (h *DecisionHeap) Reinsert(v int) {
	h.order.Put(v, -h.bumps[v])
}

func (h *DecisionHeap) rescale() {
	h.inc *= 1e-100
	for v := range h.bumps {
		h.bumps[v] *= 1e-100
		if h.order.Contains(v) {
			h.order.Put(v, -h.bumps[v])
		}
	}
}
