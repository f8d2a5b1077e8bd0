package crs

import (
	"path/filepath"
	"sort"
)

// CRSFile is every directive a single .conf file contains, in file order.
type CRSFile struct {
	Path    string
	Entries []CRSEntry
}

// EntryKind discriminates the four directive shapes a CRSEntry can hold.
type EntryKind int

const (
	EntrySecMarker EntryKind = iota
	EntrySecAction
	EntrySecComponentSignature
	EntrySecRule
)

// CRSEntry is one parsed directive. Only the fields matching Kind are
// populated; this mirrors a tagged union rather than an interface so
// callers can switch on Kind without a type assertion.
type CRSEntry struct {
	Kind EntryKind

	// SecMarker / SecComponentSignature
	Label string

	// SecAction / SecRule
	Actions []Action

	// SecRule only
	Inputs []Input
	Test   Test
}

// Input is one variable reference a SecRule inspects, e.g.
// "REQUEST_HEADERS:User-Agent" or "!ARGS:id".
type Input struct {
	Type     InputType
	Selector Selector
}

// SelectorKind is the shape a Selector takes.
type SelectorKind int

const (
	SelectorNone SelectorKind = iota
	SelectorInclude
	SelectorExclude
	SelectorCount
	SelectorCountAll
)

// Selector narrows an Input to a named member (Include/Exclude), requests
// a match count instead of values (Count/CountAll), or selects the whole
// collection (None).
type Selector struct {
	Kind SelectorKind
	Name string // populated for Include, Exclude, Count
}

// Test is a SecRule's operator invocation: `[!]@operator argument`, or a
// bare regex argument which implicitly means `@rx argument`.
type Test struct {
	Invert   bool
	Operator Operator
}

// Operator is an `@name argument` pair. Arg is nil when the operator
// takes no argument text (rare, but the grammar allows a bare "@name").
type Operator struct {
	Type OperatorType
	Arg  *string
}

// Action is a `name` or `name:argument` action-list entry.
type Action struct {
	Type ActionType
	Arg  *string
}

// RuleDirFiles returns the set of .conf files in dir that the loader
// should parse: sorted lexicographically, skipping any file whose base
// name contains "EXCLUSION-RULES" (CRS convention for opt-in exclusion
// packs that are not loaded by default).
func RuleDirFiles(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if filepath.Ext(n) != ".conf" {
			continue
		}
		if containsExclusionMarker(n) {
			continue
		}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func containsExclusionMarker(name string) bool {
	const marker = "EXCLUSION-RULES"
	for i := 0; i+len(marker) <= len(name); i++ {
		if name[i:i+len(marker)] == marker {
			return true
		}
	}
	return false
}
