package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, cfg RandomGuideConfig) *RandomGuide {
	t.Helper()
	seed := int64(1234)
	return NewRandomGuide(&seed, cfg, nil)
}

func TestNConjunctsWithinRange(t *testing.T) {
	cfg := DefaultRandomGuideConfig()
	g := seeded(t, cfg)
	for i := 0; i < 200; i++ {
		n := g.NConjuncts(3, false)
		assert.GreaterOrEqual(t, n, cfg.ConjunctsLow)
		assert.LessOrEqual(t, n, cfg.ConjunctsHigh)
	}
}

func TestNDisjunctsZeroUnderUniversal(t *testing.T) {
	g := seeded(t, DefaultRandomGuideConfig())
	for i := 0; i < 50; i++ {
		assert.Equal(t, 0, g.NDisjuncts(3, true))
	}
}

func TestNDisjunctsNeverOne(t *testing.T) {
	cfg := DefaultRandomGuideConfig()
	cfg.DisjunctsLow = 1
	cfg.DisjunctsHigh = 3
	g := seeded(t, cfg)
	for i := 0; i < 200; i++ {
		n := g.NDisjuncts(3, false)
		assert.NotEqual(t, 1, n)
	}
}

func TestExistentialRolesRespectDepthBound(t *testing.T) {
	cfg := DefaultRandomGuideConfig()
	cfg.ExistentialLow, cfg.ExistentialHigh = 2, 4
	g := seeded(t, cfg)
	for depth := 1; depth <= 5; depth++ {
		rds := g.ExistentialRoles(depth, 0, false)
		for _, rd := range rds {
			assert.Less(t, rd.Depth, depth)
			assert.GreaterOrEqual(t, rd.Role, 1)
		}
		require.NoError(t, ValidateRoleDepths(depth, rds))
	}
}

func TestExistentialForceDepthGuaranteesMaxDepthSlot(t *testing.T) {
	cfg := DefaultRandomGuideConfig()
	cfg.ExistentialLow, cfg.ExistentialHigh = 3, 3
	cfg.ExistentialDepth = "uniform"
	cfg.ExistentialForceDepth = "first"
	g := seeded(t, cfg)
	for i := 0; i < 50; i++ {
		rds := g.ExistentialRoles(4, 0, false)
		found := false
		for _, rd := range rds {
			if rd.Depth == 3 {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestUniversalRolesRespectThreshold(t *testing.T) {
	two := 2
	cfg := DefaultRandomGuideConfig()
	cfg.UniversalThresholdLow = &two
	cfg.UniversalThresholdHigh = &two
	g := seeded(t, cfg)
	rds := g.UniversalRoles(3, map[int][]int{1: {0, 1}, 2: {0}}, false)
	roles := map[int]bool{}
	for _, rd := range rds {
		roles[rd.Role] = true
	}
	assert.True(t, roles[1])
	assert.False(t, roles[2])
}

func TestValidateDisjunctCount(t *testing.T) {
	assert.NoError(t, ValidateDisjunctCount(0))
	assert.NoError(t, ValidateDisjunctCount(2))
	assert.Error(t, ValidateDisjunctCount(1))
}
