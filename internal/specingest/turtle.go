package specingest

import "strings"

// statement is one top-level "subject predicate object-list ; predicate
// object-list ; ... ." block of the restricted turtle-family subset C1
// reads. Full Turtle/SHACL grammar (blank node property lists nested
// arbitrarily deep, collections, base IRIs, prefix-relative IRIs with
// escapes) is far more than the spec artifacts this system reads ever
// use; splitTurtle only understands what they use: bare or prefixed
// names, one level of [ ... ] blank-node bracketing, and '.', ';', ','
// as the three separators.
type statement struct {
	subject string
	clauses []clause
}

type clause struct {
	predicate string
	objects   []string
}

// splitTurtle tokenizes src into top-level statements, stripping '#'
// line comments and '@prefix'/'@base' directives first.
func splitTurtle(src string) []statement {
	src = stripTurtleComments(src)
	src = strings.Join(strings.Fields(src), " ")

	var stmts []statement
	for _, raw := range splitTopLevel(src, '.') {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		stmts = append(stmts, parseStatement(raw))
	}
	return stmts
}

func stripTurtleComments(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@prefix") || strings.HasPrefix(trimmed, "@base") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// splitTopLevel splits s on sep, ignoring occurrences inside a single
// level of [ ... ] bracketing.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == sep && depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func parseStatement(body string) statement {
	fields := splitTopLevel(body, ' ')
	var parts []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return statement{}
	}

	subject := parts[0]
	rest := strings.TrimSpace(strings.TrimPrefix(body, subject))

	var clauses []clause
	for _, c := range splitTopLevel(rest, ';') {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		fields := strings.Fields(firstToken(c))
		if len(fields) == 0 {
			continue
		}
		predicate := fields[0]
		objectPart := strings.TrimSpace(strings.TrimPrefix(c, predicate))
		var objects []string
		for _, o := range splitTopLevel(objectPart, ',') {
			o = strings.TrimSpace(o)
			if o != "" {
				objects = append(objects, o)
			}
		}
		clauses = append(clauses, clause{predicate: predicate, objects: objects})
	}

	return statement{subject: subject, clauses: clauses}
}

// firstToken returns c itself; kept as a named seam so parseStatement
// reads as "take the predicate token off the front of c".
func firstToken(c string) string { return c }

// bareName strips a single leading prefix (e.g. "sysml:", ":", "xsd:")
// from a prefixed name, and strips a trailing blank-node bracket body
// from a compound object like "[ sh:path :name ]" is handled by the
// caller, not here.
func bareName(tok string) string {
	tok = strings.TrimSpace(tok)
	if idx := strings.LastIndex(tok, ":"); idx >= 0 {
		return tok[idx+1:]
	}
	return tok
}

func isTrue(tok string) bool {
	tok = strings.Trim(strings.TrimSpace(tok), `"`)
	return strings.EqualFold(tok, "true")
}
