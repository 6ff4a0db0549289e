// Package config loads pivctl settings from TOML.
//
// Example file:
//
//	allocator = "mmap"
//	budget    = 1048576
//	elem-size = 4
//	direction = "reverse"
//
//	[growth]
//	num = 3
//	den = 2
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/pivkit/vec/block"
	"github.com/joshuapare/pivkit/vec/region"
)

// Allocator kinds.
const (
	AllocHeap = "heap"
	AllocMmap = "mmap"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Growth is the geometric growth factor Num/Den.
type Growth struct {
	Num int `toml:"num"`
	Den int `toml:"den"`
}

// Config holds buffer settings.
type Config struct {
	Growth    Growth `toml:"growth"`
	Allocator string `toml:"allocator"` // heap | mmap
	Budget    int    `toml:"budget"`    // byte limit, 0 for none
	ElemSize  int    `toml:"elem-size"`
	Direction string `toml:"direction"` // forward | reverse
}

// Default returns the built-in settings: 3/2 growth on the Go heap, no budget,
// 4-byte elements growing in reverse.
func Default() Config {
	return Config{
		Growth:    Growth{Num: region.DefaultGrowthNum, Den: region.DefaultGrowthDen},
		Allocator: AllocHeap,
		ElemSize:  4,
		Direction: region.Reverse.String(),
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Parse reads TOML text over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Growth.Num <= 0 || c.Growth.Den <= 0 {
		return fmt.Errorf("%w: growth %d/%d must be positive", ErrInvalid, c.Growth.Num, c.Growth.Den)
	}
	if c.Growth.Num <= c.Growth.Den {
		return fmt.Errorf("%w: growth %d/%d must exceed 1", ErrInvalid, c.Growth.Num, c.Growth.Den)
	}
	switch c.Allocator {
	case AllocHeap, AllocMmap:
	default:
		return fmt.Errorf("%w: allocator %q (want %s or %s)", ErrInvalid, c.Allocator, AllocHeap, AllocMmap)
	}
	if c.Budget < 0 {
		return fmt.Errorf("%w: budget %d", ErrInvalid, c.Budget)
	}
	if c.ElemSize <= 0 {
		return fmt.Errorf("%w: elem-size %d", ErrInvalid, c.ElemSize)
	}
	if _, ok := region.ParseDirection(c.Direction); !ok {
		return fmt.Errorf("%w: direction %q", ErrInvalid, c.Direction)
	}
	return nil
}

// Dir returns the configured direction, Reverse when unparsable.
func (c Config) Dir() region.Direction {
	d, ok := region.ParseDirection(c.Direction)
	if !ok {
		return region.Reverse
	}
	return d
}

// BlockSource builds the configured allocator. When a budget is set the returned
// Budget is non-nil and already wraps the allocator.
func (c Config) BlockSource() (block.Allocator, *block.Budget) {
	var base block.Allocator = block.Heap{}
	if c.Allocator == AllocMmap {
		base = block.Mmap{}
	}
	if c.Budget > 0 {
		b := block.NewBudget(base, c.Budget)
		return b, b
	}
	return base, nil
}

// Strategy builds the geometric growth strategy over alloc.
func (c Config) Strategy(alloc block.Allocator) *region.Geometric {
	return &region.Geometric{Num: c.Growth.Num, Den: c.Growth.Den, Alloc: alloc}
}
