// Package specingest implements C1: it reads the authoritative spec
// artifacts (vocabulary, shapes, metamodel, enumeration, grammar) and
// normalizes them into the neutral tables cmd/modelgen renders into
// internal/genmodel and cmd/validatecoverage cross-checks. Every fatal
// condition here is reported as a *model.BuildError, never a bare
// fmt.Errorf, so driver tools can match on a stable code.
package specingest

// Cardinality is a property's multiplicity as declared by a shape.
type Cardinality string

const (
	CardinalityExactlyOne Cardinality = "exactly-one"
	CardinalityZeroOrOne  Cardinality = "zero-or-one"
	CardinalityZeroOrMany Cardinality = "zero-or-many"
)

// PropertyShape describes one property of one type: its name,
// multiplicity, and range (a scalar kind name like "string"/"int" or a
// target type name for reference-valued properties).
type PropertyShape struct {
	Name        string
	Cardinality Cardinality
	Range       string
	IsScalar    bool
}

// VocabularyTable holds the type names and subclass edges read from one
// vocabulary artifact (kernel or systems).
type VocabularyTable struct {
	// Types is every type name declared, in declaration order.
	Types []string
	// SuperOf maps a type name to the direct supertypes it declares via
	// rdfs:subClassOf (or an equivalent edge in the metamodel-derived
	// overlay); a root type has no entry.
	SuperOf map[string][]string
	// IsEnum marks type names that are enumeration classes, excluded
	// from the element-kind taxonomy coverage check.
	IsEnum map[string]bool
}

// ShapeTable holds, for one vocabulary, each type's declared properties.
type ShapeTable struct {
	PropertiesOf map[string][]PropertyShape
}

// RelationshipConstraint is one (kind, source-kind, target-kind) triple
// read from the metamodel.
type RelationshipConstraint struct {
	Kind   string
	Source string
	Target string
}

// MetamodelTable holds the metamodel's class list (for the type
// coverage cross-check) and its relationship constraint pairs.
type MetamodelTable struct {
	Classes       []string
	Relationships []RelationshipConstraint
}

// EnumerationTable holds one enumeration's ordered member list, keyed
// by enumeration name. Two artifacts (a shapes-embedded enum and an
// auxiliary JSON schema) each produce one of these; C2's coverage check
// requires their member sets to match exactly.
type EnumerationTable struct {
	ValuesOf map[string][]string
}

// GrammarTable holds the lexical surface extracted from the grammar
// artifact: reserved keywords, operator lexemes, and inline enumeration
// literals that must agree with the shapes/JSON enumerations.
type GrammarTable struct {
	Keywords  []string
	Operators []string
	Literals  map[string][]string // enum name -> literal tokens, as they appear in the grammar
}

// Tables is the complete neutral output of C1, ready for C2 to
// cross-validate and render into Go source.
type Tables struct {
	KernelVocabulary  VocabularyTable
	SystemsVocabulary VocabularyTable
	KernelShapes      ShapeTable
	SystemsShapes     ShapeTable
	Metamodel         MetamodelTable
	ShapesEnums       EnumerationTable
	JSONEnums         EnumerationTable
	Grammar           GrammarTable
}

// AllTypes returns every declared type name across both vocabularies,
// in declaration order, kernel first.
func (t *Tables) AllTypes() []string {
	out := make([]string, 0, len(t.KernelVocabulary.Types)+len(t.SystemsVocabulary.Types))
	out = append(out, t.KernelVocabulary.Types...)
	out = append(out, t.SystemsVocabulary.Types...)
	return out
}

// IsEnumType reports whether name is declared an enumeration class in
// either vocabulary.
func (t *Tables) IsEnumType(name string) bool {
	return t.KernelVocabulary.IsEnum[name] || t.SystemsVocabulary.IsEnum[name]
}
