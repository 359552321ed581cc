package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arenasat/microsat/internal/cdcl"
	"github.com/arenasat/microsat/internal/dimacsio"
	"github.com/arenasat/microsat/internal/report"
)

func run(instanceFile string) error {
	s, err := dimacsio.Load(instanceFile)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	status, err := s.Solve()
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	stats := s.Stats()

	switch status {
	case cdcl.Sat:
		report.WriteStatus(os.Stdout, true)
		fmt.Fprintln(os.Stdout, "c ")
		report.WriteModel(os.Stdout, s)
	case cdcl.Unsat:
		report.WriteStatus(os.Stdout, false)
	default:
		return fmt.Errorf("solver returned an unexpected status")
	}

	report.WriteStats(os.Stdout, instanceFile, report.Stats{
		MemUsed:   stats.MemUsed,
		Conflicts: stats.Conflicts,
		MaxLemmas: stats.MaxLemmas,
	})
	return nil
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <dimacs-cnf-file>", os.Args[0])
	}
	if err := run(os.Args[1]); err != nil {
		log.Fatal(err)
	}
}
