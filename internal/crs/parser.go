package crs

import (
	"strings"
)

// Parse scans src (the contents of one .conf file) and returns its
// directives in file order. Parsing is best-effort: a directive that
// fails to parse is reported in errs and skipped, so the caller sees
// every other directive in the file rather than aborting on the first
// mistake.
func Parse(path, src string) (*CRSFile, []*ParseError) {
	toks := tokenize(src)
	p := &parser{path: path, tokens: toks}
	return p.parseFile()
}

type parser struct {
	path   string
	tokens []token
	pos    int
	errors []*ParseError
}

func (p *parser) errf(line int, format string) {
	p.errors = append(p.errors, &ParseError{File: p.path, Line: line, Message: format})
}

// peek returns the next significant token without consuming it, skipping
// comments. Newline tokens are returned, not skipped.
func (p *parser) peek() token {
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		if t.Type == tokComment {
			p.pos++
			continue
		}
		return t
	}
	return token{Type: tokEOF}
}

func (p *parser) next() token {
	t := p.peek()
	if t.Type != tokEOF {
		p.pos++
	}
	return t
}

// argsUntilNewline collects every ARG token up to (and consuming) the
// next NEWLINE or EOF.
func (p *parser) argsUntilNewline() []token {
	var args []token
	for {
		t := p.peek()
		if t.Type == tokEOF {
			return args
		}
		if t.Type == tokNewline {
			p.next()
			return args
		}
		if t.Type == tokArg {
			args = append(args, p.next())
			continue
		}
		// stray directive token with no preceding newline; bail out so
		// the caller can re-synchronize on it.
		return args
	}
}

func (p *parser) parseFile() (*CRSFile, []*ParseError) {
	f := &CRSFile{Path: p.path}
	for {
		t := p.peek()
		if t.Type == tokEOF {
			break
		}
		if t.Type == tokNewline {
			p.next()
			continue
		}
		// A bare word that opens a line but is not a known directive name is
		// still parsed as a directive, so it is reported once as an unknown
		// directive rather than once per token.
		if t.Type != tokDirective && !(t.Type == tokArg && t.atStart) {
			p.errf(t.Line, "unexpected token "+t.Type.String())
			p.next()
			continue
		}
		entry, ok := p.parseDirective()
		if ok {
			f.Entries = append(f.Entries, entry)
		}
	}
	return f, p.errors
}

func (p *parser) parseDirective() (CRSEntry, bool) {
	name := p.next() // directive keyword
	args := p.argsUntilNewline()

	switch name.Value {
	case "SecMarker":
		if len(args) < 1 {
			p.errf(name.Line, "SecMarker requires a label argument")
			return CRSEntry{}, false
		}
		return CRSEntry{Kind: EntrySecMarker, Label: args[0].Value}, true

	case "SecComponentSignature":
		if len(args) < 1 {
			p.errf(name.Line, "SecComponentSignature requires a signature argument")
			return CRSEntry{}, false
		}
		return CRSEntry{Kind: EntrySecComponentSignature, Label: args[0].Value}, true

	case "SecAction":
		if len(args) < 1 {
			p.errf(name.Line, "SecAction requires an action-list argument")
			return CRSEntry{}, false
		}
		actions, err := parseActionList(args[0].Value)
		if err != "" {
			p.errf(name.Line, err)
			return CRSEntry{}, false
		}
		return CRSEntry{Kind: EntrySecAction, Actions: actions}, true

	case "SecRule":
		if len(args) < 2 {
			p.errf(name.Line, "SecRule requires variables, operator, and action-list arguments")
			return CRSEntry{}, false
		}
		inputs, err := parseInputList(args[0].Value)
		if err != "" {
			p.errf(name.Line, err)
			return CRSEntry{}, false
		}
		test, err := parseTest(args[1].Value)
		if err != "" {
			p.errf(name.Line, err)
			return CRSEntry{}, false
		}
		var actions []Action
		if len(args) >= 3 {
			actions, err = parseActionList(args[2].Value)
			if err != "" {
				p.errf(name.Line, err)
				return CRSEntry{}, false
			}
		}
		return CRSEntry{Kind: EntrySecRule, Inputs: inputs, Test: test, Actions: actions}, true

	default:
		p.errf(name.Line, "unknown directive "+name.Value)
		return CRSEntry{}, false
	}
}

// parseInputList splits a SecRule's variables argument on top-level "|"
// and parses each into an Input.
func parseInputList(s string) ([]Input, string) {
	parts := splitTopLevel(s, '|')
	inputs := make([]Input, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		in, err := parseInput(part)
		if err != "" {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, ""
}

func parseInput(raw string) (Input, string) {
	var modifier byte
	rest := raw
	if len(rest) > 0 && (rest[0] == '!' || rest[0] == '&') {
		modifier = rest[0]
		rest = rest[1:]
	}

	name := rest
	var selName string
	hasSel := false
	if idx := strings.IndexByte(rest, ':'); idx >= 0 {
		name = rest[:idx]
		selName = rest[idx+1:]
		hasSel = true
	}

	typ, ok := InputTypeFromName(name)
	if !ok {
		return Input{}, errUnknownInput(raw)
	}

	var sel Selector
	switch modifier {
	case '!':
		if !hasSel {
			return Input{}, errInvalidSelector(raw)
		}
		sel = Selector{Kind: SelectorExclude, Name: selName}
	case '&':
		if hasSel {
			sel = Selector{Kind: SelectorCount, Name: selName}
		} else {
			sel = Selector{Kind: SelectorCountAll}
		}
	case 0:
		if hasSel {
			sel = Selector{Kind: SelectorInclude, Name: selName}
		} else {
			sel = Selector{Kind: SelectorNone}
		}
	default:
		return Input{}, errInvalidModifier(raw)
	}

	return Input{Type: typ, Selector: sel}, ""
}

// parseTest parses a SecRule's operator argument: "[!]@name arg" or a
// bare string, which implicitly means "@rx <string>".
func parseTest(s string) (Test, string) {
	invert := false
	rest := strings.TrimSpace(s)
	if strings.HasPrefix(rest, "!") {
		invert = true
		rest = strings.TrimSpace(rest[1:])
	}

	var opName, arg string
	hasArg := false
	if strings.HasPrefix(rest, "@") {
		rest = rest[1:]
		if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
			opName = rest[:idx]
			arg = strings.TrimSpace(rest[idx+1:])
			hasArg = true
		} else {
			opName = rest
		}
	} else {
		opName = "rx"
		arg = rest
		hasArg = true
	}

	typ, ok := OperatorTypeFromName(opName)
	if !ok {
		return Test{}, errUnknownOperator(opName)
	}

	op := Operator{Type: typ}
	if hasArg {
		op.Arg = &arg
	}
	return Test{Invert: invert, Operator: op}, ""
}

// parseActionList splits an action-list argument on top-level commas and
// parses each "name" or "name:arg" entry. A single-quoted arg has its
// quotes trimmed, matching CRS's own action syntax (e.g. tag:'attack-xss').
func parseActionList(s string) ([]Action, string) {
	parts := splitTopLevel(s, ',')
	var actions []Action
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		a, err := parseAction(part)
		if err != "" {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, ""
}

func parseAction(raw string) (Action, string) {
	name := raw
	var arg string
	hasArg := false
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		name = raw[:idx]
		arg = strings.TrimSpace(raw[idx+1:])
		arg = strings.Trim(arg, "'")
		hasArg = true
	}

	typ, ok := ActionTypeFromName(name)
	if !ok {
		return Action{}, errUnknownAction(name)
	}

	a := Action{Type: typ}
	if hasArg {
		a.Arg = &arg
	}
	return a, ""
}

// splitTopLevel splits s on sep, ignoring occurrences of sep that fall
// inside a single-quoted span — needed because action arguments like
// setvar:'tx.anomaly_score=+%{tx.critical_anomaly_score}' may themselves
// contain commas or colons once macro expansion syntax is involved.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case sep:
			if !inQuote {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
