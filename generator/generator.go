// Package generator implements the tree-construction algorithm (spec
// component C4): it walks a guide.Guide top-down, allocating fresh atomic
// classes and roles and growing a skeleton.Node rose tree, including the
// universal/existential link propagation performed inside skeleton.Node
// itself as children are attached.
package generator

import (
	"github.com/pkg/errors"

	"github.com/nodeadmin/alcgen/guide"
	"github.com/nodeadmin/alcgen/skeleton"
)

// ErrGuideContract is guide.ErrGuideContract, re-exported for callers of
// this package. Generate wraps it with the depth at which it observed the
// violation, so a caller can tell which recursive call produced a malformed
// RoleDepth or disjunct count without a full stack trace.
var ErrGuideContract = guide.ErrGuideContract

// Generator allocates monotonically increasing class and role identifiers
// across a single generation run. Classes and roles are never reused within
// one Generator, which is what spec §8 invariant 1 ("freshness") requires.
type Generator struct {
	classes int
	roles   int
}

// New returns a Generator with empty counters.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) newClass() int {
	g.classes++
	return g.classes
}

func (g *Generator) newRole() int {
	g.roles++
	return g.roles
}

// Generate builds one skeleton.Node tree of the given depth under gd.
// universal marks that this node is itself inside a universal restriction
// (passed down unchanged to every conjunct/disjunct decision, but reset to
// true only for children attached via AddUniversal); disjunct marks that
// this node is itself one branch of a disjunction, which suppresses a
// further round of disjunct generation beneath it (spec §4.2: disjunction
// does not recurse into itself).
func (g *Generator) Generate(depth int, gd guide.Guide, universal, disjunct bool) (*skeleton.Node, error) {
	n := skeleton.New()

	nConjuncts := gd.NConjuncts(depth, universal)
	for i := 0; i < nConjuncts; i++ {
		n.AddConjunct(g.newClass())
	}

	if depth > 0 {
		existentials := gd.ExistentialRoles(depth, g.roles, universal)
		if err := guide.ValidateRoleDepths(depth, existentials); err != nil {
			return nil, errors.Wrapf(err, "existential roles at depth %d", depth)
		}
		for _, rd := range existentials {
			for rd.Role > g.roles {
				g.newRole()
			}
			child, err := g.Generate(rd.Depth, gd, false, false)
			if err != nil {
				return nil, err
			}
			n.AddExistential(rd.Role, child)
		}

		existentialDepths := make(map[int][]int, len(n.Existential))
		for r, children := range n.Existential {
			depths := make([]int, len(children))
			for i, c := range children {
				depths[i] = c.Depth()
			}
			existentialDepths[r] = depths
		}

		universals := gd.UniversalRoles(depth, existentialDepths, universal)
		if err := guide.ValidateRoleDepths(depth, universals); err != nil {
			return nil, errors.Wrapf(err, "universal roles at depth %d", depth)
		}
		for _, rd := range universals {
			for rd.Role > g.roles {
				g.newRole()
			}
			child, err := g.Generate(rd.Depth, gd, true, false)
			if err != nil {
				return nil, err
			}
			n.AddUniversal(rd.Role, child)
		}
	}

	if !disjunct {
		nDisjuncts := gd.NDisjuncts(depth, universal)
		if err := guide.ValidateDisjunctCount(nDisjuncts); err != nil {
			return nil, errors.Wrapf(err, "disjunct count at depth %d", depth)
		}
		for i := 0; i < nDisjuncts; i++ {
			child, err := g.Generate(depth, gd, universal, true)
			if err != nil {
				return nil, err
			}
			n.AddDisjunct(child)
		}
	}

	return n, nil
}
