package guide

import "github.com/pkg/errors"

// ErrGuideContract is returned when a Guide answers with an out-of-bounds
// choice: a child depth >= the parent depth, or a disjunct count of 1.
// Fatal — the generator validates eagerly rather than discovering the
// violation deep in a recursive call.
var ErrGuideContract = errors.New("guide: contract violation")

// ValidateRoleDepths checks that every child depth returned by
// ExistentialRoles/UniversalRoles is strictly less than the parent depth.
func ValidateRoleDepths(parentDepth int, rds []RoleDepth) error {
	for _, rd := range rds {
		if rd.Role < 1 {
			return errors.Wrapf(ErrGuideContract, "role id %d is not >= 1", rd.Role)
		}
		if rd.Depth >= parentDepth {
			return errors.Wrapf(ErrGuideContract, "child depth %d not < parent depth %d", rd.Depth, parentDepth)
		}
	}
	return nil
}

// ValidateDisjunctCount checks that n is 0 or at least 2.
func ValidateDisjunctCount(n int) error {
	if n != 0 && n < 2 {
		return errors.Wrapf(ErrGuideContract, "disjunct count %d is neither 0 nor >= 2", n)
	}
	return nil
}
