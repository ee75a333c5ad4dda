package specingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sysml-go/modelcore/internal/model"
)

// ParseMetamodel reads one metamodel artifact: a line-oriented textual
// projection of the UML class diagram (one "class Name" declaration per
// class, one "association Kind : Source -> Target" declaration per
// relationship constraint). Blank lines and '#' comments are ignored.
func ParseMetamodel(path string) (MetamodelTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return MetamodelTable{}, model.Wrap(model.ECArtifactMissing, fmt.Sprintf("reading metamodel artifact %s", path), err)
	}
	defer f.Close()

	var table MetamodelTable
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "class":
			if len(fields) != 2 {
				return table, &model.BuildError{Code: model.ECArtifactMalformed, Message: fmt.Sprintf("metamodel artifact %s:%d: malformed class declaration %q", path, lineNo, line)}
			}
			table.Classes = append(table.Classes, fields[1])

		case "association":
			rel, err := parseAssociation(fields[1:])
			if err != nil {
				return table, &model.BuildError{Code: model.ECArtifactMalformed, Message: fmt.Sprintf("metamodel artifact %s:%d: %v", path, lineNo, err)}
			}
			table.Relationships = append(table.Relationships, rel)

		default:
			return table, &model.BuildError{Code: model.ECArtifactMalformed, Message: fmt.Sprintf("metamodel artifact %s:%d: unrecognized declaration %q", path, lineNo, line)}
		}
	}
	if err := scanner.Err(); err != nil {
		return table, model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("scanning metamodel artifact %s", path), err)
	}

	if len(table.Classes) == 0 {
		return table, &model.BuildError{Code: model.ECArtifactMalformed, Message: fmt.Sprintf("metamodel artifact %s declares no classes", path)}
	}

	return table, nil
}

// parseAssociation parses the tokens following "association", i.e.
// "Kind : Source -> Target".
func parseAssociation(fields []string) (RelationshipConstraint, error) {
	joined := strings.Join(fields, " ")
	kindPart, rest, ok := strings.Cut(joined, ":")
	if !ok {
		return RelationshipConstraint{}, fmt.Errorf("malformed association %q, expected 'Kind : Source -> Target'", joined)
	}
	srcPart, targetPart, ok := strings.Cut(rest, "->")
	if !ok {
		return RelationshipConstraint{}, fmt.Errorf("malformed association %q, expected 'Kind : Source -> Target'", joined)
	}

	return RelationshipConstraint{
		Kind:   strings.TrimSpace(kindPart),
		Source: strings.TrimSpace(srcPart),
		Target: strings.TrimSpace(targetPart),
	}, nil
}
