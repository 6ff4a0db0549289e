package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pivkit/vec/block"
	"github.com/joshuapare/pivkit/vec/region"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Growth{Num: 3, Den: 2}, cfg.Growth)
	assert.Equal(t, region.Reverse, cfg.Dir())

	alloc, bud := cfg.BlockSource()
	assert.IsType(t, block.Heap{}, alloc)
	assert.Nil(t, bud)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pivctl.toml")
	data := `
allocator = "mmap"
budget = 4096
elem-size = 8
direction = "forward"

[growth]
num = 2
den = 1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Growth:    Growth{Num: 2, Den: 1},
		Allocator: AllocMmap,
		Budget:    4096,
		ElemSize:  8,
		Direction: "forward",
	}, cfg)
	assert.Equal(t, region.Forward, cfg.Dir())

	alloc, bud := cfg.BlockSource()
	require.NotNil(t, bud)
	assert.Same(t, bud, alloc)
	assert.Equal(t, 4096, bud.Limit())

	g := cfg.Strategy(alloc)
	assert.Equal(t, 2, g.Num)
	assert.Equal(t, 1, g.Den)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse(`budget = 100`)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Budget)
	assert.Equal(t, AllocHeap, cfg.Allocator)
	assert.Equal(t, 4, cfg.ElemSize)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = Parse(`allocator = `)
	require.Error(t, err, "syntax error")

	_, err = Parse(`colour = "blue"`)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero den", func(c *Config) { c.Growth.Den = 0 }},
		{"no growth", func(c *Config) { c.Growth = Growth{Num: 1, Den: 1} }},
		{"allocator", func(c *Config) { c.Allocator = "arena" }},
		{"budget", func(c *Config) { c.Budget = -1 }},
		{"elem size", func(c *Config) { c.ElemSize = 0 }},
		{"direction", func(c *Config) { c.Direction = "up" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
