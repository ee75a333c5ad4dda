package specingest

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sysml-go/modelcore/internal/model"
)

// ParseShapes reads one shapes turtle artifact and extracts, per
// sh:NodeShape, the property shapes declared for its sh:targetClass.
func ParseShapes(path string) (ShapeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ShapeTable{}, model.Wrap(model.ECArtifactMissing, fmt.Sprintf("reading shapes artifact %s", path), err)
	}

	table := ShapeTable{PropertiesOf: make(map[string][]PropertyShape)}

	for _, stmt := range splitTurtle(string(raw)) {
		var targetClass string
		var propBlocks []string
		for _, c := range stmt.clauses {
			switch c.predicate {
			case "sh:targetClass":
				if len(c.objects) == 1 {
					targetClass = bareName(c.objects[0])
				}
			case "sh:property":
				propBlocks = append(propBlocks, c.objects...)
			}
		}
		if targetClass == "" {
			continue
		}

		for _, block := range propBlocks {
			shape, err := parsePropertyShape(block)
			if err != nil {
				return table, model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("shapes artifact %s, target class %s", path, targetClass), err)
			}
			table.PropertiesOf[targetClass] = append(table.PropertiesOf[targetClass], shape)
		}
	}

	if len(table.PropertiesOf) == 0 {
		return table, &model.BuildError{
			Code:    model.ECArtifactMalformed,
			Message: fmt.Sprintf("shapes artifact %s declares no sh:NodeShape with sh:targetClass", path),
		}
	}

	return table, nil
}

// parsePropertyShape parses one blank-node "[ sh:path ...; sh:minCount
// ...; sh:maxCount ...; sh:datatype ... | sh:class ... ]" block.
func parsePropertyShape(block string) (PropertyShape, error) {
	block = strings.TrimSpace(block)
	block = strings.TrimPrefix(block, "[")
	block = strings.TrimSuffix(block, "]")

	var name, datatype, class string
	minCount, maxCount := 0, -1 // -1 means unbounded/unspecified
	haveMin, haveMax := false, false

	for _, raw := range strings.Split(block, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) < 2 {
			continue
		}
		predicate, value := fields[0], strings.Join(fields[1:], " ")
		value = strings.TrimSpace(value)
		switch predicate {
		case "sh:path":
			name = bareName(value)
		case "sh:minCount":
			n, err := strconv.Atoi(value)
			if err != nil {
				return PropertyShape{}, fmt.Errorf("sh:minCount %q: %w", value, err)
			}
			minCount, haveMin = n, true
		case "sh:maxCount":
			if strings.EqualFold(value, "*") || strings.EqualFold(value, "unbounded") {
				maxCount, haveMax = -1, true
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return PropertyShape{}, fmt.Errorf("sh:maxCount %q: %w", value, err)
			}
			maxCount, haveMax = n, true
		case "sh:datatype":
			datatype = bareName(value)
		case "sh:class":
			class = bareName(value)
		}
	}

	if name == "" {
		return PropertyShape{}, fmt.Errorf("property shape missing sh:path")
	}

	shape := PropertyShape{Name: name, Cardinality: cardinalityOf(minCount, haveMin, maxCount, haveMax)}
	switch {
	case datatype != "":
		shape.Range, shape.IsScalar = datatype, true
	case class != "":
		shape.Range, shape.IsScalar = class, false
	}
	return shape, nil
}

func cardinalityOf(minCount int, haveMin bool, maxCount int, haveMax bool) Cardinality {
	min := 0
	if haveMin {
		min = minCount
	}
	if haveMax && maxCount == 1 {
		if min >= 1 {
			return CardinalityExactlyOne
		}
		return CardinalityZeroOrOne
	}
	return CardinalityZeroOrMany
}
