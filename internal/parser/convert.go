package parser

import (
	"context"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/uuid"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/value"
)

// converter turns one file's parse tree into owned elements inside a
// private per-file graph, leaving every cross-reference as an
// unresolved_<role> property for package resolver to settle. Ground
// rule throughout: a relationship element for a not-yet-resolved
// cross-reference is installed via graph.AddOwnedElement as a child of
// the element that is its source, with source set immediately (it is
// always already known) and target left unresolved; this sidesteps
// graph.AddRelationship's requirement that both endpoints already be
// resolved at insertion time.
type converter struct {
	g          *graph.ModelGraph
	path       string
	li         *model.LineIndex
	baseOffset int // byte offset of this converter's source within the original file, for recovery re-parses
}

func newConverter(g *graph.ModelGraph, path string, li *model.LineIndex, baseOffset int) *converter {
	return &converter{g: g, path: path, li: li, baseOffset: baseOffset}
}

func (c *converter) span(pos lexer.Position) model.Span {
	offset := c.baseOffset + pos.Offset
	return model.MakeSpan(c.li, c.path, offset, offset)
}

// convertFile installs every top-level member of f as a child of root
// (a Package element representing the file's implicit outermost
// namespace, per §4.4 "a file with no enclosing package declaration
// still needs a root namespace to attach its members to").
func (c *converter) convertFile(ctx context.Context, f *File, rootID model.ElementId) error {
	return c.convertMembers(ctx, f.Members, rootID, "")
}

func (c *converter) convertMembers(ctx context.Context, members []*Member, parentID model.ElementId, fallbackKindName string) error {
	var pendingDoc string
	for _, m := range members {
		switch {
		case m.Doc != nil:
			pendingDoc = docText(m.Doc.Text)
			continue
		case m.Package != nil:
			if err := c.convertPackage(ctx, m.Package, parentID, pendingDoc); err != nil {
				return err
			}
		case m.Import != nil:
			if err := c.convertImport(ctx, m.Import, parentID); err != nil {
				return err
			}
		case m.Decl != nil:
			if err := c.convertDeclaration(ctx, m.Decl, parentID, pendingDoc); err != nil {
				return err
			}
		}
		pendingDoc = ""
	}
	return nil
}

// docText strips the /** and */ delimiters and leading '*' continuation
// markers a multi-line doc comment conventionally carries.
func docText(raw string) string {
	s := strings.TrimPrefix(raw, "/**")
	s = strings.TrimSuffix(s, "*/")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (c *converter) convertPackage(ctx context.Context, p *PackageDecl, parentID model.ElementId, doc string) error {
	kind := genmodel.KindPackage
	if p.Library {
		kind = genmodel.KindLibraryPackage
	}
	e := model.NewElement(kind)
	e.Name = p.Name
	e.AddSpan(c.span(p.Pos))
	if doc != "" {
		e.Set("documentation", value.String(doc))
	}

	id, err := c.g.AddOwnedElement(ctx, e, parentID, "public")
	if err != nil {
		return err
	}
	return c.convertMembers(ctx, p.Members, id, "")
}

func (c *converter) convertImport(ctx context.Context, im *ImportDecl, parentID model.ElementId) error {
	e := model.NewElement(genmodel.KindImport)
	e.AddSpan(c.span(im.Pos))
	if im.Visibility != "" {
		e.Set("visibility", value.Enum(im.Visibility))
	}
	e.Set("isRecursive", value.Bool(im.Recursive))
	path := joinQualifiedRef(im.Path)
	if !im.All && !im.Recursive {
		// Membership import: the last path segment names the member,
		// the namespace to search is the remaining prefix.
		segments := im.Path.Parts
		if len(segments) > 1 {
			e.Set("memberName", value.String(segments[len(segments)-1]))
			path = strings.Join(segments[:len(segments)-1], "::")
		}
	}
	e.Set(model.UnresolvedRoleName("importedNamespace"), value.String(path))

	_, err := c.g.AddOwnedElement(ctx, e, parentID, "private")
	return err
}

// convertDeclaration converts one Declaration into an owned element,
// its nested members, and any relationship elements its clauses imply.
// A statement with no category keyword of its own takes the parent
// element's kind (PartUsage when the parent is not in the graph).
func (c *converter) convertDeclaration(ctx context.Context, d *Declaration, parentID model.ElementId, doc string) error {
	parent, ok := c.g.GetElement(parentID)
	fallback := genmodel.KindPartUsage
	if ok {
		fallback = parent.Kind
	}
	kind := kindForDeclaration(d.Category, d.IsDef, fallback)

	e := model.NewElement(kind)
	e.Name = d.Name
	e.AddSpan(c.span(d.Pos))
	if doc != "" {
		e.Set("documentation", value.String(doc))
	}

	for _, flag := range d.Flags {
		e.Set(flag, value.Bool(true))
	}
	if d.Direction != "" {
		e.Set("direction", value.Enum(d.Direction))
	}
	if d.Multiplicity != nil {
		applyMultiplicity(e, d.Multiplicity)
	}

	visibility := d.Visibility
	if visibility == "" {
		visibility = "public"
	}

	id, err := c.g.AddOwnedElement(ctx, e, parentID, visibility)
	if err != nil {
		return err
	}

	if d.Typing != nil {
		if err := c.addSpecializationEdge(ctx, genmodel.KindFeatureTyping, "type", id, d.Typing.Target, d.Typing.Pos); err != nil {
			return err
		}
	}
	if d.Specialize != nil {
		relKind, role := genmodel.KindSubsetting, "subsettedFeature"
		if genmodel.IsDefinition(kind) {
			relKind, role = genmodel.KindSubclassification, "generalType"
		}
		for _, target := range d.Specialize.Targets {
			if err := c.addSpecializationEdge(ctx, relKind, role, id, target, d.Specialize.Pos); err != nil {
				return err
			}
		}
	}
	if d.Redefine != nil {
		if err := c.addSpecializationEdge(ctx, genmodel.KindRedefinition, "redefinedFeature", id, d.Redefine.Target, d.Redefine.Pos); err != nil {
			return err
		}
	}
	if d.RefSubset != nil {
		if err := c.addSpecializationEdge(ctx, genmodel.KindReferenceSubsetting, "referencedFeature", id, d.RefSubset.Target, d.RefSubset.Pos); err != nil {
			return err
		}
	}
	if d.Value != nil {
		c.applyValueClause(e, d.Value)
	}

	return c.convertMembers(ctx, d.Members, id, "")
}

// addSpecializationEdge creates one Specialization-family relationship
// element owned as a child of srcID, with source bound immediately and
// the target left as an unresolved_<role> qualified-name string.
func (c *converter) addSpecializationEdge(ctx context.Context, kind genmodel.ElementKind, role string, srcID model.ElementId, targetRef QualifiedRef, pos lexer.Position) error {
	rel := model.NewElement(kind)
	rel.AddSpan(c.span(pos))
	rel.Set(graph.PropSource, value.Ref(uuid.UUID(srcID)))
	rel.Set(model.UnresolvedRoleName(role), value.String(joinQualifiedRef(targetRef)))

	_, err := c.g.AddOwnedElement(ctx, rel, srcID, "private")
	return err
}

// applyMultiplicity records bound text directly (no arithmetic is
// performed on "*"; it is stored and interpreted downstream of
// resolution, consistent with how every other reference-shaped
// property here defers interpretation).
func applyMultiplicity(e *model.Element, m *Multiplicity) {
	e.Set("multiplicityLower", value.String(m.Lower))
	upper := m.Upper
	if upper == "" {
		upper = m.Lower
	}
	e.Set("multiplicityUpper", value.String(upper))
}

// applyValueClause records a literal value directly as a typed
// property, or an identifier/feature-chain reference as an
// unresolved_valueExpression role — never by substring matching on the
// raw token, since the grammar already distinguishes the two cases
// structurally (§4.4 literal vs identifier distinction).
func (c *converter) applyValueClause(e *model.Element, vc *ValueClause) {
	e.Set("isDefault", value.Bool(vc.Default))
	expr := vc.Expr
	switch {
	case expr.IntLit != "":
		if n, err := strconv.ParseInt(expr.IntLit, 10, 64); err == nil {
			e.Set("value", value.Int(n))
		}
	case expr.FloatLit != "":
		if f, err := strconv.ParseFloat(expr.FloatLit, 64); err == nil {
			e.Set("value", value.Float(f))
		}
	case expr.BoolLit != "":
		e.Set("value", value.Bool(expr.BoolLit == "true"))
	case expr.StrLit != "":
		unquoted, err := strconv.Unquote(expr.StrLit)
		if err != nil {
			unquoted = strings.Trim(expr.StrLit, `"`)
		}
		e.Set("value", value.String(unquoted))
	case expr.Ref != nil:
		e.Set(model.UnresolvedRoleName("valueExpression"), value.String(joinQualifiedRef(*expr.Ref)))
	}
}

func joinQualifiedRef(q QualifiedRef) string {
	return strings.Join(q.Parts, "::")
}
