// Package report renders a solver's result the way the protocol in the
// DIMACS tooling ecosystem expects: a one-line status, an 80-column
// wrapped model block, and a trailing statistics comment line.
package report

import (
	"fmt"
	"io"

	"github.com/arenasat/microsat/internal/baseconv"
)

const maxLineLen = 80

// Model is the subset of the solver needed to render a model line.
type Model interface {
	NVars() int
	Model(v int) bool
}

// Stats is the set of solver counters printed on the closing comment
// line.
type Stats struct {
	MemUsed   int
	Conflicts int
	MaxLemmas int
}

// WriteStatus writes the "s SATISFIABLE"/"s UNSATISFIABLE" line.
func WriteStatus(w io.Writer, satisfiable bool) {
	if satisfiable {
		fmt.Fprintln(w, "s SATISFIABLE")
	} else {
		fmt.Fprintln(w, "s UNSATISFIABLE")
	}
}

// WriteModel writes the "v ..." block for m, wrapping at maxLineLen
// columns the same way the original solver's print_model does: a literal
// is only placed on the current line if its digits still fit, counting
// one space after every literal already placed; otherwise a new "v " line
// is started. A trailing "0" terminates
// the block for tools that expect a sentinel.
func WriteModel(w io.Writer, m Model) {
	lineLen := 2
	fmt.Fprint(w, "v ")
	for v := 1; v <= m.NVars(); v++ {
		lit := v
		if !m.Model(v) {
			lit = -v
		}
		digits := baseconv.FormatInt(lit, 10)

		if len(digits)+lineLen > maxLineLen {
			lineLen = len(digits) + 3
			fmt.Fprintf(w, "\nv %s ", digits)
			continue
		}

		lineLen += len(digits) + 1
		fmt.Fprint(w, digits)
		if len(digits)+lineLen+1 <= maxLineLen {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w, "\nv 0")
}

// WriteStats writes the closing comment block: an empty "c " line, a
// "c statistics of <instance>:" line and the "c mem: ... conflicts: ...
// max_lemmas: ..." line.
func WriteStats(w io.Writer, instance string, s Stats) {
	fmt.Fprintf(w, "c \nc statistics of %s:\nc mem: %d conflicts: %d max_lemmas: %d\n",
		instance, s.MemUsed, s.Conflicts, s.MaxLemmas)
}
