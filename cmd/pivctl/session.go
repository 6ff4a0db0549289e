package main

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/pivkit/cmd/pivctl/logger"
	"github.com/joshuapare/pivkit/internal/config"
	"github.com/joshuapare/pivkit/vec/block"
	"github.com/joshuapare/pivkit/vec/region"
)

// session holds the configuration and the observed block source of one command run.
type session struct {
	cfg      config.Config
	alloc    block.Allocator
	budget   *block.Budget
	allocs   int
	failures int
	releases int
	bytes    int
}

// blockStats is the JSON form of the block traffic of a run.
type blockStats struct {
	Allocations int `json:"allocations"`
	Failures    int `json:"failures"`
	Releases    int `json:"releases"`
	Bytes       int `json:"bytes_allocated"`
	Peak        int `json:"peak_bytes,omitempty"`
}

func newSession() (*session, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}
	if allocFlag != "" {
		cfg.Allocator = allocFlag
	}
	if budgetFlag > 0 {
		cfg.Budget = budgetFlag
	}
	if dirFlag != "" {
		cfg.Direction = dirFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, bud := cfg.BlockSource()
	s := &session{cfg: cfg, budget: bud}
	s.alloc = &block.Observed{
		Upstream: base,
		OnAllocate: func(size int, err error) {
			if err != nil {
				s.failures++
				logger.Warn("block allocation failed", "size", size, "error", err)
				return
			}
			s.allocs++
			s.bytes += size
			logger.Debug("block allocated", "size", size, "allocator", cfg.Allocator)
		},
		OnRelease: func(size int) {
			s.releases++
			logger.Debug("block released", "size", size)
		},
	}
	printVerbose("allocator=%s growth=%d/%d direction=%s budget=%d\n",
		cfg.Allocator, cfg.Growth.Num, cfg.Growth.Den, cfg.Direction, cfg.Budget)
	return s, nil
}

// strategy returns the configured geometric strategy over the observed allocator.
func (s *session) strategy() region.Strategy {
	return s.cfg.Strategy(s.alloc)
}

func (s *session) stats() blockStats {
	st := blockStats{
		Allocations: s.allocs,
		Failures:    s.failures,
		Releases:    s.releases,
		Bytes:       s.bytes,
	}
	if s.budget != nil {
		st.Peak = s.budget.Stats().Peak
	}
	return st
}

func (s *session) printStats() {
	st := s.stats()
	printInfo("blocks: %d allocated (%d bytes), %d released, %d failed\n",
		st.Allocations, st.Bytes, st.Releases, st.Failures)
	if s.budget != nil {
		printInfo("budget: peak %d of %d bytes\n", st.Peak, s.budget.Limit())
	}
}

// parseCount parses a non-negative count argument.
func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative integer", name, s)
	}
	return n, nil
}
