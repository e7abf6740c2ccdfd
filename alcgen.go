// Package alcgen wires the generation, closing, and minimisation passes
// into the single entry point described in spec §4.8: build a skeleton,
// optionally close it, optionally minimise it, and fold the result down to
// a class expression.
package alcgen

import (
	"time"

	"go.uber.org/zap"

	"github.com/nodeadmin/alcgen/closing"
	"github.com/nodeadmin/alcgen/cooccur"
	"github.com/nodeadmin/alcgen/expr"
	"github.com/nodeadmin/alcgen/generator"
	"github.com/nodeadmin/alcgen/guide"
	"github.com/nodeadmin/alcgen/minimize"
	"github.com/nodeadmin/alcgen/skeleton"
)

// Stats records how long each stage of Generate took, for the CLI and
// dataset builder to log. Modeled on the teacher's classification-run
// timing report.
type Stats struct {
	GenerateElapsed time.Duration
	CloseElapsed    time.Duration
	MinimizeElapsed time.Duration
	Closed          bool
	Minimized       bool
}

// Coordinator runs the full pipeline with its own log sink.
type Coordinator struct {
	Log *zap.Logger
}

// NewCoordinator returns a Coordinator that logs with log, or with
// zap.NewNop() if log is nil.
func NewCoordinator(log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{Log: log}
}

// Generate runs the pipeline described in spec §4.8:
//  1. build a skeleton via generator.Generate;
//  2. if close, compute leaves and a closing mapping and apply it,
//     failing with closing.ErrClosingFailed if no mapping closes every leaf;
//  3. else if minimize, compute a co-occurrence DSU, merge every structural
//     non-equivalence constraint into it, and apply a non-closing negation
//     mapping, keeping the DSU for step 4;
//  4. if minimize, (re)compute co-occurrences, merge constraints, compute
//     the minimising mapping, and apply it;
//  5. fold the skeleton to an expr.Expr and return it.
func (c *Coordinator) Generate(depth int, gd guide.Guide, close, minimizeFlag bool) (*expr.Expr, Stats, error) {
	var stats Stats

	start := time.Now()
	n, err := generator.New().Generate(depth, gd, false, false)
	stats.GenerateElapsed = time.Since(start)
	if err != nil {
		c.Log.Error("generation failed", zap.Error(err), zap.Int("depth", depth))
		return nil, stats, err
	}
	c.Log.Debug("generated skeleton", zap.Int("depth", depth), zap.Duration("elapsed", stats.GenerateElapsed))

	var dsu *cooccur.DSU

	if close {
		start = time.Now()
		mapping, err := closing.Close(n.Leaves())
		stats.CloseElapsed = time.Since(start)
		if err != nil {
			c.Log.Error("closing failed", zap.Error(err), zap.Int("depth", depth))
			return nil, stats, err
		}
		n.ApplyMapping(mapping)
		stats.Closed = true
		c.Log.Debug("closed skeleton", zap.Duration("elapsed", stats.CloseElapsed))
	} else if minimizeFlag {
		start = time.Now()
		dsu = n.Cooccurrences()
		mergeConstraints(dsu, n)
		n.ApplyMapping(minimize.NonClosingMapping(dsu))
		stats.CloseElapsed = time.Since(start)
		c.Log.Debug("applied non-closing negation introduction", zap.Duration("elapsed", stats.CloseElapsed))
	}

	if minimizeFlag {
		start = time.Now()
		if dsu == nil {
			dsu = n.Cooccurrences()
			mergeConstraints(dsu, n)
		}
		n.ApplyMapping(minimize.MinimizingMapping(dsu))
		stats.MinimizeElapsed = time.Since(start)
		stats.Minimized = true
		c.Log.Debug("minimized skeleton", zap.Duration("elapsed", stats.MinimizeElapsed))
	}

	ast := n.ToAST()
	c.Log.Debug("final expression", zap.Stringer("ast", prettyExpr{ast}))
	return ast, stats, nil
}

// prettyExpr defers expr.ToPretty to zap's encoding step, via the Stringer
// field type, so the pretty-print cost is only paid when debug logging is
// actually enabled.
type prettyExpr struct{ e *expr.Expr }

func (p prettyExpr) String() string { return expr.ToPretty(p.e) }

func mergeConstraints(dsu *cooccur.DSU, n *skeleton.Node) {
	for _, constraint := range minimize.ComputeConstraints(n, true) {
		minimize.MergeConstraint(dsu, constraint)
	}
}
