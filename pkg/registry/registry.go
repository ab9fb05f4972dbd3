// Package registry holds the immutable TLV/sub-TLV/MTA metadata tables
// (spec.md §4.4): top-level specs per DOCSIS version, per-parent and
// per-context-path sub-TLV specs, and the PacketCable MTA table. Tables
// are built once, at package init, and never mutated afterward — callers
// may share a *Registry freely across goroutines (spec.md §5).
package registry

import "github.com/awksedgreep/bindocsis/pkg/docsis"

// Options configures how a Registry resolves lookups.
type Options struct {
	// IncludeMTA, when true, consults the PacketCable MTA table before
	// falling back to an unknown entry (spec.md §4.4).
	IncludeMTA bool
	// DocsisVersion gates visibility of versioned top-level entries
	// (spec.md §4.4's version-ordering predicate). Defaults to the
	// highest known version when empty.
	DocsisVersion docsis.Version
}

func (o Options) version() docsis.Version {
	if o.DocsisVersion == "" {
		return docsis.Version3_1
	}
	return o.DocsisVersion
}

// Registry is the immutable, shared lookup surface built from the tables
// in tables.go and mta.go.
type Registry struct {
	opts Options
}

// New returns a Registry configured with opts. Construction performs no
// I/O and allocates nothing beyond the Options copy: the underlying
// tables are package-level immutable maps built at init time.
func New(opts Options) *Registry {
	return &Registry{opts: opts}
}

// Lookup resolves a top-level TLV type against the configured DOCSIS
// version, falling back to the MTA table (if enabled) and finally to the
// Unknown entry (spec.md invariant 4: lookup is total).
func (r *Registry) Lookup(typ int) docsis.SpecEntry {
	if entry, ok := lookupVersioned(topLevelTable, typ, r.opts.version()); ok {
		entry.MetadataSource = docsis.MetadataSourceDocsis
		return entry
	}
	if r.opts.IncludeMTA {
		if entry, ok := mtaTable[typ]; ok {
			entry.MetadataSource = docsis.MetadataSourceMTA
			return entry
		}
	}
	return docsis.Unknown(typ)
}

// LookupSubtlv resolves a sub-TLV under the given context path. It tries,
// in order: an exact context-path dialect table, the per-parent-type
// table for the immediate parent, and finally a recursive top-level
// lookup of the child type itself (spec.md §4.4).
func (r *Registry) LookupSubtlv(path docsis.ContextPath, childType int) docsis.SpecEntry {
	if dialect, ok := contextPathTables[path.String()]; ok {
		if entry, ok := dialect[childType]; ok {
			entry.MetadataSource = docsis.MetadataSourceDocsis
			return entry
		}
	}

	if len(path) > 0 {
		parent := path[len(path)-1]
		if byParent, ok := subtlvTables[parent]; ok {
			if entry, ok := byParent[childType]; ok {
				entry.MetadataSource = docsis.MetadataSourceDocsis
				return entry
			}
		}
	}

	return r.Lookup(childType)
}

func lookupVersioned(table map[int]docsis.SpecEntry, typ int, version docsis.Version) (docsis.SpecEntry, bool) {
	entry, ok := table[typ]
	if !ok {
		return docsis.SpecEntry{}, false
	}
	if !docsis.Supports(version, entry.IntroducedVersion) {
		return docsis.SpecEntry{}, false
	}
	return entry, true
}
