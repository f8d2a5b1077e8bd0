// Package operators implements the @operator callbacks a crs.Test
// invokes against an extracted value. Each operator is a pure function of
// the value bytes and the operator's argument string; the registry lets
// the orchestrator look one up by crs.OperatorType without a type switch
// at every call site.
package operators

import "github.com/shieldcli/crscore/internal/crs"

// Result is what an operator invocation reports back.
type Result struct {
	Matched  bool
	Captures []string // populated for operators that support the "capture" action
}

// Func evaluates one operator against one extracted value.
type Func func(value []byte, arg string) (Result, error)

// Registry maps OperatorType to its evaluator.
type Registry map[crs.OperatorType]Func

// Default returns the registry the orchestrator uses unless a caller
// substitutes its own: every operator with a real backing implementation
// in this codebase, keyed by crs.OperatorType, plus geoLookup and rbl
// entries that always return an *UnimplementedError.
func Default() Registry {
	return Registry{
		crs.OpContains:              contains,
		crs.OpBeginsWith:            beginsWith,
		crs.OpEndsWith:              endsWith,
		crs.OpStringEquals:          streq,
		crs.OpWithin:                within,
		crs.OpRegex:                 regex,
		crs.OpEq:                    eq,
		crs.OpGe:                    ge,
		crs.OpGt:                    gt,
		crs.OpLt:                    lt,
		crs.OpValidateByteRange:     validateByteRange,
		crs.OpValidateUtf8Encoding:  validateUTF8Encoding,
		crs.OpValidateUrlEncoding:   validateURLEncoding,
		crs.OpDetectSQLi:            detectSQLi,
		crs.OpDetectXSS:             detectXSS,
		crs.OpPatternMatch:          patternMatch,
		crs.OpPatternMatchFromFile:  patternMatchFromFile,
		crs.OpIpMatch:               ipMatch,
		crs.OpIpMatchFromFile:       ipMatchFromFile,
		crs.OpGeoLookup:             notImplemented("geoLookup requires a geolocation database this engine does not ship"),
		crs.OpRealtimeBlackhole:     notImplemented("rbl requires network access to a real-time blackhole list this engine does not perform"),
	}
}

// Lookup resolves op against reg. Callers that want every operator with a
// real implementation build reg from Default() directly, so there is
// nothing here to fall back to once reg is in hand.
func (reg Registry) Lookup(op crs.OperatorType) (Func, bool) {
	if fn, ok := reg[op]; ok {
		return fn, true
	}
	return nil, false
}

func notImplemented(reason string) Func {
	return func(_ []byte, _ string) (Result, error) {
		return Result{}, &UnimplementedError{Reason: reason}
	}
}

// UnimplementedError reports an operator this engine deliberately does
// not evaluate against live traffic, because no data source for it is
// available in this environment.
type UnimplementedError struct {
	Reason string
}

func (e *UnimplementedError) Error() string { return e.Reason }
