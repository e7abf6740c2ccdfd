// Package config defines the JSON-ingested configuration structs consumed
// by the CLI (package cmd/alcgen) and the dataset builder (package
// dataset), per spec §6: a guide configuration (already expressed as
// guide.RandomGuideConfig) and a dataset configuration wrapping it with
// depth range, instance count, save flags, and seed components.
package config

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/nodeadmin/alcgen/guide"
)

// DatasetConfiguration is the top-level configuration for a batch
// generation run: a range of depths, a number of instances per depth, which
// of the four generated variants to persist, the seed formula's three
// (optionally absent) components, the ontology prefix, and the guide
// configuration for non-universal and universal subtrees.
type DatasetConfiguration struct {
	MinDepth   int `json:"min_depth"`
	MaxDepth   int `json:"max_depth"`
	NInstances int `json:"n_instances"`

	SaveOpen            bool `json:"save_open"`
	SaveOpenMinimized   bool `json:"save_open_minimized"`
	SaveClosed          bool `json:"save_closed"`
	SaveClosedMinimized bool `json:"save_closed_minimized"`

	// SeedDepth, SeedInstance, and SeedConst compose the per-instance seed
	// as seed_const + seed_depth*depth + seed_instance*instance. Any may be
	// absent; per spec §6, absent components are treated as 0 but only if
	// at least one of the three is present — if all three are absent the
	// run is unseeded.
	SeedDepth    *int64 `json:"seed_depth"`
	SeedInstance *int64 `json:"seed_instance"`
	SeedConst    *int64 `json:"seed_const"`

	Prefix string `json:"prefix"`

	Guide          guide.RandomGuideConfig `json:"guide"`
	UniversalGuide *guide.RandomGuideConfig `json:"universal_guide"`
}

// Seed computes the per-instance seed per spec §6's formula. ok is false
// when all three seed components are absent, meaning the caller should run
// unseeded.
func (c DatasetConfiguration) Seed(depth, instance int) (seed int64, ok bool) {
	if c.SeedDepth == nil && c.SeedInstance == nil && c.SeedConst == nil {
		return 0, false
	}
	if c.SeedConst != nil {
		seed += *c.SeedConst
	}
	if c.SeedDepth != nil {
		seed += *c.SeedDepth * int64(depth)
	}
	if c.SeedInstance != nil {
		seed += *c.SeedInstance * int64(instance)
	}
	return seed, true
}

// Load reads a DatasetConfiguration from r as JSON.
func Load(r io.Reader) (DatasetConfiguration, error) {
	var cfg DatasetConfiguration
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return DatasetConfiguration{}, errors.Wrap(err, "config: decode dataset configuration")
	}
	return cfg, nil
}
