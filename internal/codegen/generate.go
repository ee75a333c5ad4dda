// Package codegen implements C2: it renders the neutral tables C1
// produces into the generated Go sources internal/genmodel exposes at
// runtime (the element-kind taxonomy, value enumerations, per-kind
// property schema, and relationship constraints), and performs the
// build-fatal coverage cross-checks that must pass before emission.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/specingest"
	"github.com/sysml-go/modelcore/internal/specio"
)

// Generate renders every generated source file into outDir, failing
// the whole generation if coverage validation (see coverage.go) fails
// first — generated code is only ever emitted for a spec artifact set
// that has already passed cross-validation.
func Generate(tables *specingest.Tables, outDir string) error {
	if err := ValidateCoverage(tables); err != nil {
		return err
	}

	writer := specio.NewAtomicWriter(specio.DefaultAtomicConfig())

	files := map[string]func(*specingest.Tables) (string, error){
		"kind.go":           renderKinds,
		"enums.go":          renderEnums,
		"schema.go":         renderSchema,
		"relconstraints.go": renderRelConstraints,
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src, err := files[name](tables)
		if err != nil {
			return model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("rendering %s", name), err)
		}
		formatted, err := format.Source([]byte(src))
		if err != nil {
			return model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("formatting generated %s", name), err)
		}
		if err := writer.WriteFile(filepath.Join(outDir, name), string(formatted)); err != nil {
			return model.Wrap(model.ECArtifactMalformed, fmt.Sprintf("writing generated %s", name), err)
		}
	}
	return nil
}

const genHeader = `// Code generated by cmd/modelgen from the vocabulary, shapes, and
// metamodel artifacts under the resolved spec directory. DO NOT EDIT by
// hand; re-run ` + "`go run ./cmd/modelgen`" + ` after artifact changes.
package genmodel

`

var kindsTemplate = template.Must(template.New("kinds").Parse(genHeader + `
// AllKinds lists every declared element kind in spec iteration order.
var AllKinds = []ElementKind{
{{- range .Types }}
	ElementKind("{{ . }}"),
{{- end }}
}

// GeneratedSuperOf maps a kind name to its directly declared supertypes.
var GeneratedSuperOf = map[string][]string{
{{- range $type, $supers := .SuperOf }}
	"{{ $type }}": { {{ range $supers }}"{{ . }}", {{ end }} },
{{- end }}
}

// GeneratedEnumTypes lists type names the vocabulary marks as
// enumeration classes, excluded from the taxonomy's classifier set.
var GeneratedEnumTypes = []string{
{{- range .EnumTypes }}
	"{{ . }}",
{{- end }}
}
`))

func renderKinds(t *specingest.Tables) (string, error) {
	data := struct {
		Types     []string
		SuperOf   map[string][]string
		EnumTypes []string
	}{
		Types:   t.AllTypes(),
		SuperOf: mergedSuperOf(t),
	}
	for _, name := range data.Types {
		if t.IsEnumType(name) {
			data.EnumTypes = append(data.EnumTypes, name)
		}
	}
	return renderTemplate(kindsTemplate, data)
}

func mergedSuperOf(t *specingest.Tables) map[string][]string {
	out := make(map[string][]string)
	for k, v := range t.KernelVocabulary.SuperOf {
		out[k] = v
	}
	for k, v := range t.SystemsVocabulary.SuperOf {
		out[k] = v
	}
	return out
}

var enumsTemplate = template.Must(template.New("enums").Parse(genHeader + `
// GeneratedEnumerations maps enumeration name to its ordered member
// list, taken from the JSON enumeration artifact (whose member sets
// ValidateCoverage has already confirmed match the shapes artifact).
var GeneratedEnumerations = map[string][]string{
{{- range $name, $values := . }}
	"{{ $name }}": { {{ range $values }}"{{ . }}", {{ end }} },
{{- end }}
}
`))

func renderEnums(t *specingest.Tables) (string, error) {
	return renderTemplate(enumsTemplate, t.JSONEnums.ValuesOf)
}

var schemaTemplate = template.Must(template.New("schema").Parse(genHeader + `
// GeneratedPropertyShape mirrors specingest.PropertyShape without
// importing the build-time package from runtime generated code.
type GeneratedPropertyShape struct {
	Name        string
	Cardinality string
	Range       string
	IsScalar    bool
}

// GeneratedSchema maps a type name to its declared property shapes.
var GeneratedSchema = map[string][]GeneratedPropertyShape{
{{- range $type, $props := . }}
	"{{ $type }}": {
	{{- range $props }}
		{Name: "{{ .Name }}", Cardinality: "{{ .Cardinality }}", Range: "{{ .Range }}", IsScalar: {{ .IsScalar }}},
	{{- end }}
	},
{{- end }}
}
`))

func renderSchema(t *specingest.Tables) (string, error) {
	merged := make(map[string][]specingest.PropertyShape)
	for k, v := range t.KernelShapes.PropertiesOf {
		merged[k] = v
	}
	for k, v := range t.SystemsShapes.PropertiesOf {
		merged[k] = v
	}
	return renderTemplate(schemaTemplate, merged)
}

var relConstraintsTemplate = template.Must(template.New("relconstraints").Parse(genHeader + `
// GeneratedRelationshipConstraint mirrors
// specingest.RelationshipConstraint for the same reason GeneratedPropertyShape does.
type GeneratedRelationshipConstraint struct {
	Kind, Source, Target string
}

// GeneratedRelConstraints lists every (kind, source, target) triple the
// metamodel declares.
var GeneratedRelConstraints = []GeneratedRelationshipConstraint{
{{- range . }}
	{Kind: "{{ .Kind }}", Source: "{{ .Source }}", Target: "{{ .Target }}"},
{{- end }}
}
`))

func renderRelConstraints(t *specingest.Tables) (string, error) {
	return renderTemplate(relConstraintsTemplate, t.Metamodel.Relationships)
}

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
