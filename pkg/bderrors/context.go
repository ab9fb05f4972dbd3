package bderrors

import (
	"strconv"
	"strings"
)

// ParseContext carries the coordinates of a fallible operation through the
// codec and enrichment layers so that an eventual BindError can report a
// precise Location without every call site formatting it by hand.
//
// ParseContext is a value type. Each nested parse (sub-TLV discovery,
// context-path lookup) should derive a child via Push/AtLine rather than
// mutate a shared instance — the core has no shared mutable state (see
// spec.md §5).
type ParseContext struct {
	Format     string // "binary", "json", "yaml", "config", "asn1", "mta"
	SourcePath string // originating file path, if any
	ByteOffset int
	Line       int
	TypeStack  []int // enclosing TLV type path, outermost first
}

// Push returns a child context with typ appended to the enclosing TLV path.
func (c ParseContext) Push(typ int) ParseContext {
	stack := make([]int, len(c.TypeStack), len(c.TypeStack)+1)
	copy(stack, c.TypeStack)
	c.TypeStack = append(stack, typ)
	return c
}

// AtOffset returns a copy of c with ByteOffset updated.
func (c ParseContext) AtOffset(offset int) ParseContext {
	c.ByteOffset = offset
	return c
}

// AtLine returns a copy of c with Line updated.
func (c ParseContext) AtLine(line int) ParseContext {
	c.Line = line
	return c
}

// Location renders the context into the human-readable string a BindError
// attaches as Location.
func (c ParseContext) Location() string {
	var b strings.Builder
	wrote := false
	if c.SourcePath != "" {
		b.WriteString(c.SourcePath)
		wrote = true
	}
	if c.Line > 0 {
		if wrote {
			b.WriteString(":")
		}
		b.WriteString("line ")
		b.WriteString(strconv.Itoa(c.Line))
		wrote = true
	}
	if c.Format == "binary" || c.Format == "" {
		if wrote {
			b.WriteString(", ")
		}
		b.WriteString("byte offset ")
		b.WriteString(strconv.Itoa(c.ByteOffset))
		wrote = true
	}
	if len(c.TypeStack) > 0 {
		if wrote {
			b.WriteString(", ")
		}
		b.WriteString("TLV path ")
		b.WriteString(formatTypeStack(c.TypeStack))
	}
	return b.String()
}

func formatTypeStack(stack []int) string {
	parts := make([]string, len(stack))
	for i, t := range stack {
		parts[i] = strconv.Itoa(t)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Annotate attaches c's Location to err if err is itself a *BindError
// that does not already carry a Location. It returns err unchanged
// otherwise (including a *BindError wrapped inside another error), so
// call sites can unconditionally write
// `return ctx.Annotate(err)` at every fallible return.
func (c ParseContext) Annotate(err error) error {
	be, ok := err.(*BindError)
	if !ok || be.Location != "" {
		return err
	}
	return be.WithLocation(c.Location())
}
