package guide

import (
	"math/rand/v2"
	"sort"
)

// RandomGuideConfig configures RandomGuide. Field names and defaults mirror
// the reference configuration's RandomGuideConfiguration.
type RandomGuideConfig struct {
	ConjunctsLow  int `json:"conjuncts_low"`
	ConjunctsHigh int `json:"conjuncts_high"`

	DisjunctsP    float64 `json:"disjuncts_p"`
	DisjunctsLow  int     `json:"disjuncts_low"`
	DisjunctsHigh int     `json:"disjuncts_high"`

	NRoles          int    `json:"n_roles"`
	ExistentialLow  int    `json:"existential_low"`
	ExistentialHigh int    `json:"existential_high"`
	// ExistentialDepth is one of "max", "uniform", "ascending", "descending".
	ExistentialDepth string `json:"existential_depth"`
	// ExistentialForceDepth is one of "", "none", "first", "last", "uniform".
	// Empty/"none" means: do nothing, per spec.md's resolution of the open
	// question around an absent force-depth setting.
	ExistentialForceDepth string `json:"existential_force_depth"`

	// UniversalThresholdLow/High bound how many existential children of a
	// role must be present before a matching universal is attached. Nil
	// means unbounded on that side.
	UniversalThresholdLow  *int `json:"universal_threshold_low"`
	UniversalThresholdHigh *int `json:"universal_threshold_high"`
	// UniversalDepth is one of "max", "uniform".
	UniversalDepth string `json:"universal_depth"`
}

// DefaultRandomGuideConfig matches the reference defaults.
func DefaultRandomGuideConfig() RandomGuideConfig {
	two := 2
	return RandomGuideConfig{
		ConjunctsLow:           1,
		ConjunctsHigh:          3,
		DisjunctsP:             1.0,
		DisjunctsLow:           2,
		DisjunctsHigh:          2,
		NRoles:                 1,
		ExistentialLow:         0,
		ExistentialHigh:        3,
		ExistentialDepth:       "max",
		ExistentialForceDepth:  "uniform",
		UniversalThresholdLow:  &two,
		UniversalThresholdHigh: &two,
		UniversalDepth:         "max",
	}
}

// RandomGuide is the reference stochastic Guide implementation. It draws
// from an injected math/rand/v2 source (seeded or not) and supports a
// separate configuration for subtrees reached under a universal
// restriction, matching the reference's split between "guide" and
// "universal_guide".
type RandomGuide struct {
	rng       *rand.Rand
	main      RandomGuideConfig
	universal RandomGuideConfig
}

// NewRandomGuide builds a RandomGuide. If seed is nil the guide is
// unseeded (nondeterministic); universalCfg nil means "use main for
// universal subtrees too".
func NewRandomGuide(seed *int64, main RandomGuideConfig, universalCfg *RandomGuideConfig) *RandomGuide {
	var src rand.Source
	if seed != nil {
		s := uint64(*seed)
		src = rand.NewPCG(s, s^0x9E3779B97F4A7C15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	uc := main
	if universalCfg != nil {
		uc = *universalCfg
	}
	return &RandomGuide{rng: rand.New(src), main: main, universal: uc}
}

func (g *RandomGuide) cfgFor(universal bool) RandomGuideConfig {
	if universal {
		return g.universal
	}
	return g.main
}

// intRange draws an integer in [lo, hi] inclusive; returns lo if hi <= lo.
func (g *RandomGuide) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *RandomGuide) NConjuncts(depth int, universal bool) int {
	cfg := g.cfgFor(universal)
	return g.intRange(cfg.ConjunctsLow, cfg.ConjunctsHigh)
}

func (g *RandomGuide) NDisjuncts(depth int, universal bool) int {
	if universal {
		// Reference RandomGuide always suppresses disjuncts under a
		// universal restriction to bound the tableau's branching.
		return 0
	}
	cfg := g.main
	if g.rng.Float64() >= cfg.DisjunctsP {
		return 0
	}
	n := g.intRange(cfg.DisjunctsLow, cfg.DisjunctsHigh)
	if n == 1 {
		n = 2
	}
	return n
}

func (g *RandomGuide) ExistentialRoles(depth, currentRoleCount int, universal bool) []RoleDepth {
	if depth <= 0 {
		return nil
	}
	cfg := g.cfgFor(universal)
	n := g.intRange(cfg.ExistentialLow, cfg.ExistentialHigh)
	if n == 0 {
		return nil
	}
	nRoles := cfg.NRoles
	if nRoles < 1 {
		nRoles = 1
	}
	depths := g.computeDepths(cfg.ExistentialDepth, depth, n)
	g.applyForceDepth(cfg.ExistentialForceDepth, depth, depths)

	result := make([]RoleDepth, n)
	for i := 0; i < n; i++ {
		result[i] = RoleDepth{Role: g.rng.IntN(nRoles) + 1, Depth: depths[i]}
	}
	return result
}

func (g *RandomGuide) UniversalRoles(depth int, existentialDepthsByRole map[int][]int, universal bool) []RoleDepth {
	if depth <= 0 {
		return nil
	}
	cfg := g.cfgFor(universal)
	roles := make([]int, 0, len(existentialDepthsByRole))
	for role := range existentialDepthsByRole {
		roles = append(roles, role)
	}
	sort.Ints(roles)

	var result []RoleDepth
	for _, role := range roles {
		n := len(existentialDepthsByRole[role])
		if cfg.UniversalThresholdLow != nil && n < *cfg.UniversalThresholdLow {
			continue
		}
		if cfg.UniversalThresholdHigh != nil && n > *cfg.UniversalThresholdHigh {
			continue
		}
		d := depth - 1
		if cfg.UniversalDepth == "uniform" {
			d = g.intRange(0, depth-1)
		}
		result = append(result, RoleDepth{Role: role, Depth: d})
	}
	return result
}

// computeDepths assigns a child depth in [0, depth-1] to each of n slots
// per the requested distribution mode.
func (g *RandomGuide) computeDepths(mode string, depth, n int) []int {
	max := depth - 1
	depths := make([]int, n)
	switch mode {
	case "uniform":
		for i := range depths {
			depths[i] = g.intRange(0, max)
		}
	case "ascending":
		for i := range depths {
			if n == 1 {
				depths[i] = max
			} else {
				depths[i] = i * max / (n - 1)
			}
		}
	case "descending":
		for i := range depths {
			if n == 1 {
				depths[i] = max
			} else {
				depths[i] = max - i*max/(n-1)
			}
		}
	default: // "max"
		for i := range depths {
			depths[i] = max
		}
	}
	return depths
}

// applyForceDepth ensures at least one slot reaches depth-1 when the
// configured force mode demands it and the drawn set otherwise wouldn't.
func (g *RandomGuide) applyForceDepth(mode string, depth int, depths []int) {
	if mode == "" || mode == "none" || len(depths) == 0 {
		return
	}
	target := depth - 1
	for _, d := range depths {
		if d == target {
			return
		}
	}
	switch mode {
	case "first":
		depths[0] = target
	case "last":
		depths[len(depths)-1] = target
	case "uniform":
		depths[g.rng.IntN(len(depths))] = target
	}
}
