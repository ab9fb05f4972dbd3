package docsis

import (
	"strconv"
	"strings"
)

// ContextPath identifies a sub-TLV's ancestry as a sequence of type tags,
// outermost first (e.g. [22, 43, 5, 2, 4]). It disambiguates dialects
// where the same sub-TLV number means different things under different
// parents (spec.md §4.4, §9's legacy-vs-QoS service-flow example).
type ContextPath []int

// Append returns a new ContextPath with typ appended. It never mutates p.
func (p ContextPath) Append(typ int) ContextPath {
	out := make(ContextPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, typ)
}

func (p ContextPath) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = strconv.Itoa(t)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
