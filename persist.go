package modelcore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/specio"
	"github.com/sysml-go/modelcore/internal/value"
)

// CanonicalDocument is the on-disk shape of the canonical JSON
// persistence format (§6 "Persistence format"): elements and
// relationship-elements, each sorted by id, with the graph's
// runtime-only indexes (childrenOf, byKind, the qualified-name index)
// omitted entirely — they are recomputed on load by graph.FromElements.
type CanonicalDocument struct {
	Elements      []ElementDoc `json:"elements"`
	Relationships []ElementDoc `json:"relationships"`
}

// ElementDoc is the canonical JSON projection of a model.Element.
type ElementDoc struct {
	Id               string               `json:"id"`
	Kind             string               `json:"kind"`
	Name             string               `json:"name,omitempty"`
	OwningMembership string               `json:"owningMembership,omitempty"`
	Spans            []model.Span         `json:"spans,omitempty"`
	Properties       map[string]jsonValue `json:"properties,omitempty"`
}

// MarshalCanonicalJSON renders g's full element set as the canonical
// persistence document, elements and relationships each sorted by id
// (§6 Persistence format, §8 round-trip property). Property maps are
// plain Go maps, which encoding/json already serializes with
// lexicographically sorted keys, so two calls against an unchanged
// graph produce byte-identical output.
func MarshalCanonicalJSON(g *graph.ModelGraph) ([]byte, error) {
	var elements, relationships []ElementDoc
	for _, id := range g.Order() {
		e, ok := g.GetElement(id)
		if !ok {
			continue
		}
		doc, err := elementToDoc(e)
		if err != nil {
			return nil, err
		}
		if genmodel.IsRelationship(e.Kind) {
			relationships = append(relationships, doc)
		} else {
			elements = append(elements, doc)
		}
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i].Id < elements[j].Id })
	sort.Slice(relationships, func(i, j int) bool { return relationships[i].Id < relationships[j].Id })

	return json.MarshalIndent(CanonicalDocument{Elements: elements, Relationships: relationships}, "", "  ")
}

// WriteCanonicalJSON serializes g and writes it to path through
// internal/specio.AtomicWriter, so a concurrent reader never observes a
// half-written file (§6 Persistence format).
func WriteCanonicalJSON(g *graph.ModelGraph, path string) error {
	data, err := MarshalCanonicalJSON(g)
	if err != nil {
		return err
	}
	writer := specio.NewAtomicWriter(specio.DefaultAtomicConfig())
	return writer.WriteFile(path, string(data))
}

// RehydrateGraph parses a canonical JSON document back into an
// equivalent ModelGraph via graph.FromElements, the reconstruction half
// of the round-trip property tested in §8.
func RehydrateGraph(logger *slog.Logger, data []byte) (*graph.ModelGraph, error) {
	var doc CanonicalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	elements := make([]*model.Element, 0, len(doc.Elements)+len(doc.Relationships))
	for _, d := range doc.Elements {
		e, err := docToElement(d)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	for _, d := range doc.Relationships {
		e, err := docToElement(d)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return graph.FromElements(logger, elements)
}

func elementToDoc(e *model.Element) (ElementDoc, error) {
	doc := ElementDoc{
		Id:    e.Id.String(),
		Kind:  string(e.Kind),
		Name:  e.Name,
		Spans: e.Spans,
	}
	if !e.OwningMembership.IsNil() {
		doc.OwningMembership = e.OwningMembership.String()
	}
	if len(e.Properties) > 0 {
		doc.Properties = make(map[string]jsonValue, len(e.Properties))
		for k, v := range e.Properties {
			jv, err := toJSONValue(v)
			if err != nil {
				return ElementDoc{}, fmt.Errorf("element %s property %q: %w", doc.Id, k, err)
			}
			doc.Properties[k] = jv
		}
	}
	return doc, nil
}

func docToElement(doc ElementDoc) (*model.Element, error) {
	id, err := uuid.Parse(doc.Id)
	if err != nil {
		return nil, fmt.Errorf("element id %q: %w", doc.Id, err)
	}
	e := &model.Element{
		Id:    model.ElementId(id),
		Kind:  genmodel.ElementKind(doc.Kind),
		Name:  doc.Name,
		Spans: doc.Spans,
	}
	if doc.OwningMembership != "" {
		mid, err := uuid.Parse(doc.OwningMembership)
		if err != nil {
			return nil, fmt.Errorf("element %s owningMembership %q: %w", doc.Id, doc.OwningMembership, err)
		}
		e.OwningMembership = model.ElementId(mid)
	}
	if len(doc.Properties) > 0 {
		e.Properties = make(map[string]value.Value, len(doc.Properties))
		for k, jv := range doc.Properties {
			v, err := fromJSONValue(jv)
			if err != nil {
				return nil, fmt.Errorf("element %s property %q: %w", doc.Id, k, err)
			}
			e.Properties[k] = v
		}
	}
	return e, nil
}

// jsonValue is the canonical JSON projection of value.Value: exactly
// one payload field is set, selected by Kind.
type jsonValue struct {
	Kind   string               `json:"kind"`
	Bool   *bool                `json:"bool,omitempty"`
	Int    *int64               `json:"int,omitempty"`
	Float  *float64             `json:"float,omitempty"`
	Str    *string              `json:"string,omitempty"`
	Ref    *string              `json:"ref,omitempty"`
	List   []jsonValue          `json:"list,omitempty"`
	Map    map[string]jsonValue `json:"map,omitempty"`
}

func toJSONValue(v value.Value) (jsonValue, error) {
	switch v.Kind() {
	case value.KindNull:
		return jsonValue{Kind: "null"}, nil
	case value.KindBool:
		b, _ := v.Bool()
		return jsonValue{Kind: "bool", Bool: &b}, nil
	case value.KindInt:
		i, _ := v.Int()
		return jsonValue{Kind: "int", Int: &i}, nil
	case value.KindFloat:
		f, _ := v.Float()
		return jsonValue{Kind: "float", Float: &f}, nil
	case value.KindString:
		s, _ := v.String()
		return jsonValue{Kind: "string", Str: &s}, nil
	case value.KindEnum:
		s, _ := v.String()
		return jsonValue{Kind: "enum", Str: &s}, nil
	case value.KindRef:
		r, _ := v.Ref()
		s := r.String()
		return jsonValue{Kind: "ref", Ref: &s}, nil
	case value.KindList:
		l, _ := v.List()
		out := make([]jsonValue, len(l))
		for i, item := range l {
			jv, err := toJSONValue(item)
			if err != nil {
				return jsonValue{}, err
			}
			out[i] = jv
		}
		return jsonValue{Kind: "list", List: out}, nil
	case value.KindMap:
		m, _ := v.Map()
		out := make(map[string]jsonValue, len(m))
		for k, item := range m {
			jv, err := toJSONValue(item)
			if err != nil {
				return jsonValue{}, err
			}
			out[k] = jv
		}
		return jsonValue{Kind: "map", Map: out}, nil
	default:
		return jsonValue{}, fmt.Errorf("unknown value kind %v", v.Kind())
	}
}

func fromJSONValue(j jsonValue) (value.Value, error) {
	switch j.Kind {
	case "null":
		return value.Null, nil
	case "bool":
		if j.Bool == nil {
			return value.Null, fmt.Errorf("bool value missing payload")
		}
		return value.Bool(*j.Bool), nil
	case "int":
		if j.Int == nil {
			return value.Null, fmt.Errorf("int value missing payload")
		}
		return value.Int(*j.Int), nil
	case "float":
		if j.Float == nil {
			return value.Null, fmt.Errorf("float value missing payload")
		}
		return value.Float(*j.Float), nil
	case "string":
		if j.Str == nil {
			return value.Null, fmt.Errorf("string value missing payload")
		}
		return value.String(*j.Str), nil
	case "enum":
		if j.Str == nil {
			return value.Null, fmt.Errorf("enum value missing payload")
		}
		return value.Enum(*j.Str), nil
	case "ref":
		if j.Ref == nil {
			return value.Null, fmt.Errorf("ref value missing payload")
		}
		id, err := uuid.Parse(*j.Ref)
		if err != nil {
			return value.Null, fmt.Errorf("ref value %q: %w", *j.Ref, err)
		}
		return value.Ref(id), nil
	case "list":
		out := make([]value.Value, len(j.List))
		for i, item := range j.List {
			v, err := fromJSONValue(item)
			if err != nil {
				return value.Null, err
			}
			out[i] = v
		}
		return value.List(out...), nil
	case "map":
		out := make(map[string]value.Value, len(j.Map))
		for k, item := range j.Map {
			v, err := fromJSONValue(item)
			if err != nil {
				return value.Null, err
			}
			out[k] = v
		}
		return value.Map(out), nil
	default:
		return value.Null, fmt.Errorf("unknown value kind %q", j.Kind)
	}
}
