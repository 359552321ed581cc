package main

import (
	"path/filepath"
	"testing"

	"github.com/arenasat/microsat/internal/cdcl"
	"github.com/arenasat/microsat/internal/dimacsio"
)

func TestSolveAll(t *testing.T) {
	tests := []struct {
		file string
		want cdcl.Status
	}{
		{"unit_chain.cnf", cdcl.Sat},
		{"conflicting_units.cnf", cdcl.Unsat},
		{"empty_clause.cnf", cdcl.Unsat},
		{"pigeonhole_2_1.cnf", cdcl.Unsat},
		{"needs_learning.cnf", cdcl.Sat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			s, err := dimacsio.Load(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("dimacsio.Load: %v", err)
			}

			status, err := s.Solve()
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if status != tt.want {
				t.Fatalf("status = %v, want %v", status, tt.want)
			}
		})
	}
}

