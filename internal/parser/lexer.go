// Package parser implements C4: a participle/v2 struct-tag grammar over
// the SysML textual surface, and an AST-to-graph converter that turns a
// parse tree into model elements owned through OwningMembership, with
// every symbolic cross-reference left as an unresolved_<role> string
// property for the resolver (package resolver) to settle later.
//
// Grounded on the retrieval pack's one participle/v2 user: a schema
// parser for a comparably shaped declarative definition language. The
// single combined Keyword lexer rule plus per-struct-tag literal
// disambiguation (grammar literals match token VALUE, not token KIND)
// is lifted directly from that file's pattern.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// keywords is every reserved word the grammar matches as a literal
// (category names, structural keywords, flags, direction, visibility,
// boolean literals). Listed once so the lexer's word-boundary
// alternation and the grammar's literal tags never drift apart.
var keywords = []string{
	// namespace / import
	"library", "package", "import",
	// definition/usage category keywords
	"part", "attribute", "port", "item", "connection", "interface", "flow",
	"allocation", "action", "state", "calc", "constraint", "requirement",
	"concern", "case", "analysis", "verification", "usecase", "view",
	"viewpoint", "rendering", "metadata", "enum",
	// declaration structure
	"def", "default",
	// flags
	"abstract", "variation", "readonly", "derived", "end", "ref",
	// feature direction
	"in", "out", "inout",
	// visibility modifiers
	"public", "private", "protected",
	// boolean literals
	"true", "false",
}

// sysmlLexer tokenizes SysML textual-notation source. Rules are tried
// in order at each position; multi-character operators that share a
// prefix with a shorter operator are listed before it so the longer
// one wins (participle's simple lexer is first-match, not
// longest-match).
var sysmlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "DocComment", Pattern: `/\*\*(?:[^*]|\*[^/])*\*+/`},
	{Name: "Comment", Pattern: `/\*(?:[^*]|\*[^/])*\*+/|//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Keyword", Pattern: keywordPattern()},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "ImportRecursive", Pattern: `::\*\*`},
	{Name: "RefSubsetOp", Pattern: `::>`},
	{Name: "ImportAll", Pattern: `::\*`},
	{Name: "ColonColon", Pattern: `::`},
	{Name: "RedefineOp", Pattern: `:>>`},
	{Name: "SpecializeOp", Pattern: `:>`},
	{Name: "WalrusOp", Pattern: `:=`},
	{Name: "Colon", Pattern: `:`},
	{Name: "DotDot", Pattern: `\.\.`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Punct", Pattern: `[{}\[\]\(\),;=]`},
})

// keywordPattern builds the \b-bounded alternation regex for every
// reserved word. Word boundaries on both ends make the alternation
// order irrelevant: "in" can never partially match inside "inout"
// since no boundary exists between 'n' and 'o'.
func keywordPattern() string {
	pattern := `\b(`
	for i, kw := range keywords {
		if i > 0 {
			pattern += "|"
		}
		pattern += kw
	}
	pattern += `)\b`
	return pattern
}
