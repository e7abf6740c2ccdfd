package skeleton

import (
	"sort"
	"strconv"
	"strings"
)

// Descriptor returns a cached structural fingerprint that depends only on
// conjunct cardinalities and child descriptors, not on concrete integer
// identities — the equivalence class under α-renaming (spec invariant 4).
// Once computed it never changes, even across ApplyMapping, since renaming
// never changes cardinalities or tree shape.
func (n *Node) Descriptor() string {
	if n.hasDescriptor {
		return n.descriptor
	}
	var sb strings.Builder
	sb.WriteString("c")
	sb.WriteString(strconv.Itoa(len(n.Conjuncts)))

	disjunctDescs := make([]string, len(n.Disjuncts))
	for i, d := range n.Disjuncts {
		disjunctDescs[i] = d.Descriptor()
	}
	sort.Strings(disjunctDescs)
	sb.WriteString(";d[")
	sb.WriteString(strings.Join(disjunctDescs, ","))
	sb.WriteString("]")

	writeRoleDescriptors(&sb, "e", n.Existential)
	writeRoleDescriptors(&sb, "u", n.Universal)

	n.descriptor = sb.String()
	n.hasDescriptor = true
	return n.descriptor
}

func writeRoleDescriptors(sb *strings.Builder, tag string, byRole map[int][]*Node) {
	roles := make([]int, 0, len(byRole))
	for r := range byRole {
		roles = append(roles, r)
	}
	sort.Ints(roles)
	sb.WriteString(";")
	sb.WriteString(tag)
	sb.WriteString("[")
	for i, r := range roles {
		if i > 0 {
			sb.WriteString(",")
		}
		descs := make([]string, len(byRole[r]))
		for j, c := range byRole[r] {
			descs[j] = c.Descriptor()
		}
		sort.Strings(descs)
		sb.WriteString(strconv.Itoa(r))
		sb.WriteString(":[")
		sb.WriteString(strings.Join(descs, ","))
		sb.WriteString("]")
	}
	sb.WriteString("]")
}
