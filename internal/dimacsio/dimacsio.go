// Package dimacsio loads DIMACS CNF files directly into a cdcl.Solver.
package dimacsio

import (
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/arenasat/microsat/internal/cdcl"
)

// AddClauser is the clause-adding method of *cdcl.Solver as an interface.
// The builder in this package holds a concrete *cdcl.Solver and does not
// go through it.
type AddClauser interface {
	AddClause(lits []int) error
}

// Load reads the DIMACS CNF instance in filename, builds a solver sized
// for it, and feeds every clause in. The returned solver is ready to
// have Solve called on it.
func Load(filename string) (*cdcl.Solver, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: %w", err)
	}
	defer f.Close()

	s, err := ReadBuilder(f)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: reading %q: %w", filename, err)
	}
	return s, nil
}

// ReadBuilder drives dimacs.ReadBuilder over r, allocating the solver
// once the problem line is seen and forwarding every clause line to it.
func ReadBuilder(r io.Reader) (*cdcl.Solver, error) {
	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	if b.solver == nil {
		return nil, fmt.Errorf("dimacsio: missing problem line")
	}
	return b.solver, nil
}

// builder implements dimacs.Builder. No literal translation is needed:
// the library already hands Clause raw signed, 1-indexed DIMACS
// literals, which is exactly the convention cdcl.Solver.AddClause takes.
type builder struct {
	solver *cdcl.Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsio: unsupported problem type %q", problem)
	}
	b.solver = cdcl.New(nVars, nClauses)
	return nil
}

func (b *builder) Clause(lits []int) error {
	if b.solver == nil {
		return fmt.Errorf("dimacsio: clause line before problem line")
	}
	clause := make([]int, len(lits))
	copy(clause, lits)
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}
