package specingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sysml-go/modelcore/internal/model"
)

// ParseShapesEnumerations extracts ordered enumeration value lists from
// a shapes artifact: a class asserting sysml:isEnumeration true and
// declaring its ordered members as an RDF collection under
// sysml:enumValues, e.g. "sysml:enumValues ( :public :private
// :protected )".
func ParseShapesEnumerations(path string) (EnumerationTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return EnumerationTable{}, model.Wrap(model.ECArtifactMissing, fmt.Sprintf("reading shapes artifact %s for enumerations", path), err)
	}

	table := EnumerationTable{ValuesOf: make(map[string][]string)}
	for _, stmt := range splitTurtle(string(raw)) {
		name := bareName(stmt.subject)
		if name == "" {
			continue
		}
		for _, c := range stmt.clauses {
			if c.predicate != "sysml:enumValues" || len(c.objects) != 1 {
				continue
			}
			values := parseRDFCollection(c.objects[0])
			if len(values) > 0 {
				table.ValuesOf[name] = values
			}
		}
	}
	return table, nil
}

func parseRDFCollection(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, bareName(f))
	}
	return out
}

// ParseJSONEnumerations reads the auxiliary JSON schema enumeration
// artifact: a flat object mapping enumeration name to its ordered
// member list.
func ParseJSONEnumerations(path string) (EnumerationTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return EnumerationTable{}, model.Wrap(model.ECArtifactMissing, fmt.Sprintf("reading JSON enumeration artifact %s", path), err)
	}

	var decoded map[string][]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return EnumerationTable{}, model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("parsing JSON enumeration artifact %s", path), err)
	}

	return EnumerationTable{ValuesOf: decoded}, nil
}
