package orchestrate

import (
	"github.com/shieldcli/crscore/internal/crs"
	"github.com/shieldcli/crscore/internal/extract"
	"github.com/shieldcli/crscore/internal/httpmsg"
	"github.com/shieldcli/crscore/internal/operators"
)

// CompiledRule is one SecRule or SecRule chain, resolved to the form the
// engine evaluates: every link of the chain in order, plus the metadata
// (id, phase, msg, disruptive action), each taken from the first link
// that declares it.
type CompiledRule struct {
	ID         string
	Phase      int
	Msg        string
	Disruptive string // "block", "deny", "drop", "pass", or "" (none declared)
	Chain      []crs.CRSEntry
}

// hasAction reports whether any entry in the chain carries action t.
func hasAction(entries []crs.CRSEntry, t crs.ActionType) (*crs.Action, bool) {
	for _, e := range entries {
		for i := range e.Actions {
			if e.Actions[i].Type == t {
				return &e.Actions[i], true
			}
		}
	}
	return nil, false
}

// CompileRules flattens every SecRule (and SecRule chain) across files
// into evaluation-ready CompiledRules, in file and in-file order — the
// order chain-building and skipAfter targets depend on.
func CompileRules(files []*crs.CRSFile) []CompiledRule {
	var rules []CompiledRule

	for _, f := range files {
		i := 0
		for i < len(f.Entries) {
			e := f.Entries[i]
			if e.Kind != crs.EntrySecRule {
				i++
				continue
			}

			chain := []crs.CRSEntry{e}
			for {
				last := chain[len(chain)-1]
				if _, chained := hasAction([]crs.CRSEntry{last}, crs.ActionChain); !chained {
					break
				}
				i++
				if i >= len(f.Entries) || f.Entries[i].Kind != crs.EntrySecRule {
					break
				}
				chain = append(chain, f.Entries[i])
			}
			i++

			rules = append(rules, compileChain(chain))
		}
	}

	return rules
}

func compileChain(chain []crs.CRSEntry) CompiledRule {
	r := CompiledRule{Chain: chain}

	if a, ok := hasAction(chain, crs.ActionId); ok && a.Arg != nil {
		r.ID = *a.Arg
	}
	if a, ok := hasAction(chain, crs.ActionPhase); ok && a.Arg != nil {
		r.Phase = parsePhase(*a.Arg)
	} else {
		r.Phase = 2
	}
	if a, ok := hasAction(chain, crs.ActionMsg); ok && a.Arg != nil {
		r.Msg = *a.Arg
	}

	for _, disruptive := range []crs.ActionType{crs.ActionBlock, crs.ActionDeny, crs.ActionDrop, crs.ActionPass} {
		if _, ok := hasAction(chain, disruptive); ok {
			r.Disruptive = disruptive.Name()
			break
		}
	}

	return r
}

func parsePhase(s string) int {
	switch s {
	case "1", "request", "request-headers":
		return 1
	case "2", "request-body":
		return 2
	case "3", "response-headers":
		return 3
	case "4", "response-body":
		return 4
	case "5", "logging":
		return 5
	default:
		return 2
	}
}

// MatchedRule records one CompiledRule that fired during evaluation.
type MatchedRule struct {
	Rule      CompiledRule
	Operator  string
	Captures  []string
}

// Evaluation is the outcome of running every CompiledRule's applicable
// phases against one request.
type Evaluation struct {
	Matched []MatchedRule
	Blocked bool
}

// Evaluate runs rules against req in ascending phase order. A chain only
// fires when every link's test matches at least one extracted value;
// CRS's "OR across extracted values, AND across chain links" semantics.
func Evaluate(rules []CompiledRule, reg operators.Registry, req *httpmsg.Request) Evaluation {
	var eval Evaluation

	for phase := 1; phase <= 5; phase++ {
		for _, rule := range rules {
			if rule.Phase != phase {
				continue
			}
			matched, op, captures := evaluateChain(rule.Chain, reg, req)
			if !matched {
				continue
			}
			eval.Matched = append(eval.Matched, MatchedRule{Rule: rule, Operator: op, Captures: captures})
			if rule.Disruptive == "block" || rule.Disruptive == "deny" || rule.Disruptive == "drop" {
				eval.Blocked = true
			}
		}
	}

	return eval
}

func evaluateChain(chain []crs.CRSEntry, reg operators.Registry, req *httpmsg.Request) (bool, string, []string) {
	var lastOp string
	var lastCaptures []string

	for _, link := range chain {
		fn, ok := reg.Lookup(link.Test.Operator.Type)
		if !ok {
			return false, "", nil
		}

		linkMatched := false
		for _, in := range link.Inputs {
			for _, v := range extract.Extract(req, in) {
				arg := ""
				if link.Test.Operator.Arg != nil {
					arg = *link.Test.Operator.Arg
				}
				res, err := fn(v.Data(), arg)
				if err != nil {
					continue
				}
				matched := res.Matched
				if link.Test.Invert {
					matched = !matched
				}
				if matched {
					linkMatched = true
					lastOp = link.Test.Operator.Type.Name()
					lastCaptures = res.Captures
					break
				}
			}
			if linkMatched {
				break
			}
		}

		if !linkMatched {
			return false, "", nil
		}
	}

	return true, lastOp, lastCaptures
}
