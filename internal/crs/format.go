package crs

import "strings"

// Format renders a CRSFile back into directive syntax. Formatting is
// canonical rather than byte-preserving: every selector, operator, and
// action argument is re-quoted consistently, so Format is only expected
// to reparse to an AST equal to the input, not to reproduce the original
// bytes.
func Format(f *CRSFile) string {
	var b strings.Builder
	for _, e := range f.Entries {
		formatEntry(&b, e)
		b.WriteByte('\n')
	}
	return b.String()
}

// escapeQuoted re-escapes a raw directive value for placement inside a
// double-quoted directive string — the inverse of lexQuoted's decoding.
// Without this, a value carrying a literal backslash or double quote
// would corrupt (or silently reinterpret) the quoted span once reparsed.
func escapeQuoted(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatEntry(b *strings.Builder, e CRSEntry) {
	switch e.Kind {
	case EntrySecMarker:
		b.WriteString("SecMarker \"")
		b.WriteString(escapeQuoted(e.Label))
		b.WriteByte('"')
	case EntrySecComponentSignature:
		b.WriteString("SecComponentSignature \"")
		b.WriteString(escapeQuoted(e.Label))
		b.WriteByte('"')
	case EntrySecAction:
		b.WriteString("SecAction \"")
		b.WriteString(formatActionList(e.Actions))
		b.WriteByte('"')
	case EntrySecRule:
		b.WriteString("SecRule ")
		b.WriteByte('"')
		b.WriteString(formatInputList(e.Inputs))
		b.WriteString("\" \"")
		b.WriteString(formatTest(e.Test))
		b.WriteString("\" \"")
		b.WriteString(formatActionList(e.Actions))
		b.WriteByte('"')
	}
}

func formatInputList(inputs []Input) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = formatInput(in)
	}
	return strings.Join(parts, "|")
}

func formatInput(in Input) string {
	name := in.Type.Name()
	switch in.Selector.Kind {
	case SelectorNone:
		return name
	case SelectorInclude:
		return name + ":" + in.Selector.Name
	case SelectorExclude:
		return "!" + name + ":" + in.Selector.Name
	case SelectorCount:
		return "&" + name + ":" + in.Selector.Name
	case SelectorCountAll:
		return "&" + name
	default:
		return name
	}
}

func formatTest(t Test) string {
	var b strings.Builder
	if t.Invert {
		b.WriteByte('!')
	}
	b.WriteByte('@')
	b.WriteString(t.Operator.Type.Name())
	if t.Operator.Arg != nil {
		b.WriteByte(' ')
		b.WriteString(escapeQuoted(*t.Operator.Arg))
	}
	return b.String()
}

func formatActionList(actions []Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = formatAction(a)
	}
	return strings.Join(parts, ",")
}

func formatAction(a Action) string {
	name := a.Type.Name()
	if a.Arg == nil {
		return name
	}
	arg := escapeQuoted(*a.Arg)
	if strings.ContainsAny(arg, ",:'") || strings.Contains(arg, " ") {
		return name + ":'" + arg + "'"
	}
	return name + ":" + arg
}
