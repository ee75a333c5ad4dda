package specingest

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sysml-go/modelcore/internal/model"
)

var (
	ruleStart  = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*<-\s*(.*)$`)
	quotedTerm = regexp.MustCompile(`"([^"]*)"`)
)

// ParseGrammar reads the externally defined PEG grammar artifact and
// extracts its lexical surface: every alternative under a rule named
// "Keyword" is a reserved word, every alternative under "Operator" is
// an operator lexeme, and every alternative under a rule named
// "EnumLiteral_<Name>" is an inline literal belonging to enumeration
// <Name> (cross-checked against the shapes/JSON enumerations by C2's
// coverage validation).
func ParseGrammar(path string) (GrammarTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return GrammarTable{}, model.Wrap(model.ECArtifactMissing, fmt.Sprintf("reading grammar artifact %s", path), err)
	}
	defer f.Close()

	table := GrammarTable{Literals: make(map[string][]string)}

	var currentRule string
	var body strings.Builder
	flush := func() {
		if currentRule == "" {
			return
		}
		terms := extractQuoted(body.String())
		switch {
		case currentRule == "Keyword":
			table.Keywords = append(table.Keywords, terms...)
		case currentRule == "Operator":
			table.Operators = append(table.Operators, terms...)
		case strings.HasPrefix(currentRule, "EnumLiteral_"):
			name := strings.TrimPrefix(currentRule, "EnumLiteral_")
			table.Literals[name] = terms
		}
		currentRule = ""
		body.Reset()
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m := ruleStart.FindStringSubmatch(line); m != nil {
			flush()
			currentRule = m[1]
			body.WriteString(m[2])
			body.WriteString(" ")
			continue
		}
		// continuation line of the current rule's alternation
		body.WriteString(line)
		body.WriteString(" ")
	}
	flush()
	if err := scanner.Err(); err != nil {
		return table, model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("scanning grammar artifact %s", path), err)
	}

	if len(table.Keywords) == 0 {
		return table, &model.BuildError{Code: model.ECArtifactMalformed, Message: fmt.Sprintf("grammar artifact %s declares no Keyword rule", path)}
	}

	return table, nil
}

func extractQuoted(s string) []string {
	matches := quotedTerm.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
