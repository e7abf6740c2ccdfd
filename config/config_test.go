package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcgen/config"
)

func TestLoadDatasetConfiguration(t *testing.T) {
	raw := `{
		"min_depth": 1,
		"max_depth": 3,
		"n_instances": 5,
		"save_open": true,
		"save_closed_minimized": true,
		"seed_const": 7,
		"seed_depth": 10,
		"prefix": "http://example.org/onto",
		"guide": {"conjuncts_low": 1, "conjuncts_high": 2}
	}`

	cfg, err := config.Load(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MinDepth)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.True(t, cfg.SaveOpen)
	assert.True(t, cfg.SaveClosedMinimized)
	assert.False(t, cfg.SaveOpenMinimized)
	require.NotNil(t, cfg.SeedConst)
	assert.Equal(t, int64(7), *cfg.SeedConst)
	assert.Nil(t, cfg.SeedInstance)
}

func TestSeedFormula(t *testing.T) {
	depthSeed := int64(10)
	instSeed := int64(1)
	constSeed := int64(7)
	cfg := config.DatasetConfiguration{SeedDepth: &depthSeed, SeedInstance: &instSeed, SeedConst: &constSeed}

	seed, ok := cfg.Seed(3, 2)
	require.True(t, ok)
	assert.Equal(t, int64(7+10*3+1*2), seed)
}

func TestSeedUnseededWhenAllAbsent(t *testing.T) {
	cfg := config.DatasetConfiguration{}
	_, ok := cfg.Seed(1, 1)
	assert.False(t, ok)
}
