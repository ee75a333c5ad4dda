package specingest

import (
	"fmt"
	"os"

	"github.com/sysml-go/modelcore/internal/model"
)

// ParseVocabulary reads one vocabulary turtle artifact and extracts its
// type declarations (any subject with "a owl:Class") and subclass edges
// (rdfs:subClassOf). A subject additionally asserting
// "sysml:isEnumeration true" is recorded as an enumeration class so C2
// can exclude it from the element-kind coverage check.
func ParseVocabulary(path string) (VocabularyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return VocabularyTable{}, model.Wrap(model.ECArtifactMissing, fmt.Sprintf("reading vocabulary artifact %s", path), err)
	}

	table := VocabularyTable{
		SuperOf: make(map[string][]string),
		IsEnum:  make(map[string]bool),
	}
	seen := make(map[string]bool)

	for _, stmt := range splitTurtle(string(raw)) {
		subject := bareName(stmt.subject)
		if subject == "" {
			continue
		}

		isClass := false
		for _, c := range stmt.clauses {
			switch c.predicate {
			case "a":
				for _, obj := range c.objects {
					if bareName(obj) == "Class" {
						isClass = true
					}
				}
			case "rdfs:subClassOf":
				for _, obj := range c.objects {
					table.SuperOf[subject] = append(table.SuperOf[subject], bareName(obj))
				}
			case "sysml:isEnumeration":
				if len(c.objects) == 1 && isTrue(c.objects[0]) {
					table.IsEnum[subject] = true
				}
			}
		}

		if isClass && !seen[subject] {
			seen[subject] = true
			table.Types = append(table.Types, subject)
		}
	}

	if len(table.Types) == 0 {
		return table, &model.BuildError{
			Code:    model.ECArtifactMalformed,
			Message: fmt.Sprintf("vocabulary artifact %s declares no owl:Class types", path),
		}
	}

	for subject, supers := range table.SuperOf {
		if !seen[subject] {
			return table, &model.BuildError{
				Code:    model.ECArtifactContradicts,
				Message: fmt.Sprintf("vocabulary artifact %s: %s declares rdfs:subClassOf %v but is never declared owl:Class", path, subject, supers),
			}
		}
	}

	return table, nil
}
