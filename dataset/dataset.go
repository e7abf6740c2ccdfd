// Package dataset builds the persisted directory layout described in spec
// §6: <target>/<depth>/<instance>/{open,open_minimized,closed,closed_minimized}.owl,
// skipping instances whose requested variants already exist so a run can be
// resumed after an interruption.
package dataset

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nodeadmin/alcgen/closing"
	"github.com/nodeadmin/alcgen/config"
	"github.com/nodeadmin/alcgen/generator"
	"github.com/nodeadmin/alcgen/guide"
	"github.com/nodeadmin/alcgen/manchester"
	"github.com/nodeadmin/alcgen/minimize"
	"github.com/nodeadmin/alcgen/skeleton"
)

const (
	openFile            = "open.owl"
	openMinimizedFile   = "open_minimized.owl"
	closedFile          = "closed.owl"
	closedMinimizedFile = "closed_minimized.owl"
)

// Builder generates and persists one dataset per a DatasetConfiguration.
type Builder struct {
	Log *zap.Logger
}

// NewBuilder returns a Builder that logs with log, or with zap.NewNop() if
// log is nil.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{Log: log}
}

// Build writes every requested variant for every (depth, instance) pair in
// cfg's range into targetDir, skipping any .owl file that already exists so
// an interrupted run can be resumed in place.
func (b *Builder) Build(cfg config.DatasetConfiguration, targetDir string) error {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return errors.Wrap(err, "dataset: create target directory")
	}

	for depth := cfg.MinDepth; depth <= cfg.MaxDepth; depth++ {
		for instance := 0; instance < cfg.NInstances; instance++ {
			if err := b.buildInstance(cfg, targetDir, depth, instance); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) buildInstance(cfg config.DatasetConfiguration, targetDir string, depth, instance int) error {
	correlationID := uuid.New()
	log := b.Log.With(
		zap.String("correlation_id", correlationID.String()),
		zap.Int("depth", depth),
		zap.Int("instance", instance),
	)

	instanceDir := filepath.Join(targetDir, strconv.Itoa(depth), strconv.Itoa(instance))
	openFn := filepath.Join(instanceDir, openFile)
	openMinFn := filepath.Join(instanceDir, openMinimizedFile)
	closedFn := filepath.Join(instanceDir, closedFile)
	closedMinFn := filepath.Join(instanceDir, closedMinimizedFile)

	saveOpen := cfg.SaveOpen && !exists(openFn)
	saveOpenMin := cfg.SaveOpenMinimized && !exists(openMinFn)
	saveClosed := cfg.SaveClosed && !exists(closedFn)
	saveClosedMin := cfg.SaveClosedMinimized && !exists(closedMinFn)

	if !(saveOpen || saveOpenMin || saveClosed || saveClosedMin) {
		log.Debug("instance already complete, skipping")
		return nil
	}
	if err := os.MkdirAll(instanceDir, 0o755); err != nil {
		return errors.Wrap(err, "dataset: create instance directory")
	}

	seed, seeded := cfg.Seed(depth, instance)
	var seedPtr *int64
	if seeded {
		seedPtr = &seed
	}
	gd := guide.NewRandomGuide(seedPtr, cfg.Guide, cfg.UniversalGuide)

	n, err := generator.New().Generate(depth, gd, false, false)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return errors.Wrapf(err, "dataset: generate depth=%d instance=%d", depth, instance)
	}

	if saveOpen {
		if err := writeSkeleton(openFn, cfg.Prefix, n); err != nil {
			return err
		}
		log.Info("wrote open variant", zap.String("path", openFn))
	}
	if saveOpenMin {
		m := n.Clone()
		minimizeInPlace(m)
		if err := writeSkeleton(openMinFn, cfg.Prefix, m); err != nil {
			return err
		}
		log.Info("wrote open_minimized variant", zap.String("path", openMinFn))
	}
	if saveClosed || saveClosedMin {
		mapping, err := closing.Close(n.Leaves())
		if err != nil {
			log.Error("closing failed", zap.Error(err))
			return errors.Wrapf(err, "dataset: close depth=%d instance=%d", depth, instance)
		}
		n.ApplyMapping(mapping)
		if saveClosed {
			if err := writeSkeleton(closedFn, cfg.Prefix, n); err != nil {
				return err
			}
			log.Info("wrote closed variant", zap.String("path", closedFn))
		}
		if saveClosedMin {
			minimizeInPlace(n)
			if err := writeSkeleton(closedMinFn, cfg.Prefix, n); err != nil {
				return err
			}
			log.Info("wrote closed_minimized variant", zap.String("path", closedMinFn))
		}
	}
	return nil
}

func minimizeInPlace(n *skeleton.Node) {
	d := n.Cooccurrences()
	for _, c := range minimize.ComputeConstraints(n, true) {
		minimize.MergeConstraint(d, c)
	}
	n.ApplyMapping(minimize.MinimizingMapping(d))
}

func writeSkeleton(path, prefix string, n *skeleton.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: create %s", path)
	}
	defer f.Close()
	if err := manchester.Write(f, prefix, n.ToAST()); err != nil {
		return errors.Wrapf(err, "dataset: write %s", path)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
