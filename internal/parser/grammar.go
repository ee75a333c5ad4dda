package parser

import "github.com/alecthomas/participle/v2/lexer"

// File is the top-level grammar rule: a sequence of members at the
// root namespace.
type File struct {
	Pos     lexer.Position
	Members []*Member `parser:"@@*"`
}

// Member is one top-level-or-nested construct. Doc comments are
// matched explicitly rather than elided (the generic Comment lexer
// rule IS elided) so a documentation comment survives into the parse
// tree and can be attached to the declaration that follows it.
type Member struct {
	Pos     lexer.Position
	Doc     *DocCommentNode `parser:"(  @@"`
	Package *PackageDecl    `parser:" | @@"`
	Import  *ImportDecl     `parser:" | @@"`
	Decl    *Declaration    `parser:" | @@ )"`
}

// DocCommentNode captures one /** ... */ documentation comment token.
type DocCommentNode struct {
	Pos  lexer.Position
	Text string `parser:"@DocComment"`
}

// PackageDecl parses: ["library"] "package" Name "{" Member* "}"
type PackageDecl struct {
	Pos     lexer.Position
	Library bool      `parser:"@'library'?"`
	Kw      string    `parser:"'package'"`
	Name    string    `parser:"@Ident"`
	Members []*Member `parser:"'{' @@* '}'"`
}

// ImportDecl parses: [visibility] "import" QualifiedRef ["::*" | "::**"] ";"
// A plain QualifiedRef with no wildcard suffix is a membership import
// of that one name; "::*" imports the namespace's public members;
// "::**" additionally imports every nested namespace's public members.
type ImportDecl struct {
	Pos        lexer.Position
	Visibility string       `parser:"@('public'|'private'|'protected')?"`
	Kw         string       `parser:"'import'"`
	Path       QualifiedRef `parser:"@@"`
	All        bool         `parser:"( @ImportAll"`
	Recursive  bool         `parser:"| @ImportRecursive )?"`
	Semi       string       `parser:"';'"`
}

// Declaration parses one definition or usage. Category and IsDef are
// both optional: a bare redefinition statement inside a usage's body
// (e.g. ":>> component = x;") omits the category keyword entirely,
// inheriting the kind of its enclosing usage (§ nested feature
// redefinition shorthand).
type Declaration struct {
	Pos          lexer.Position
	Visibility   string            `parser:"@('public'|'private'|'protected')?"`
	Flags        []string          `parser:"@('abstract'|'variation'|'readonly'|'derived'|'end'|'ref')*"`
	Category     string            `parser:"@('part'|'attribute'|'port'|'item'|'connection'|'interface'|'flow'|'allocation'|'action'|'state'|'calc'|'constraint'|'requirement'|'concern'|'case'|'analysis'|'verification'|'usecase'|'view'|'viewpoint'|'rendering'|'metadata'|'enum')?"`
	IsDef        bool              `parser:"@'def'?"`
	Name         string            `parser:"@Ident?"`
	Multiplicity *Multiplicity     `parser:"@@?"`
	Direction    string            `parser:"@('in'|'out'|'inout')?"`
	Typing       *TypingClause     `parser:"@@?"`
	Specialize   *SpecializeClause `parser:"@@?"`
	Redefine     *RedefineClause   `parser:"@@?"`
	RefSubset    *RefSubsetClause  `parser:"@@?"`
	Value        *ValueClause      `parser:"@@?"`
	Members      []*Member         `parser:"( '{' @@* '}' | ';' )"`
}

// Multiplicity parses "[" (Int|"*") (".." (Int|"*"))? "]".
type Multiplicity struct {
	Pos   lexer.Position
	Lower string `parser:"'[' @(Int|Star)"`
	Upper string `parser:"('..' @(Int|Star))?"`
	Close string `parser:"']'"`
}

// TypingClause parses ":" QualifiedRef (the usage-typing operator).
type TypingClause struct {
	Pos    lexer.Position
	Target QualifiedRef `parser:"Colon @@"`
}

// SpecializeClause parses ":>" QualifiedRef ("," QualifiedRef)*. On a
// definition this is a Subclassification edge; on a usage it is a
// Subsetting edge — the AST converter decides which from context,
// since both forms share the ":>" token (§4.4 specialization/subsetting).
type SpecializeClause struct {
	Pos     lexer.Position
	Targets []QualifiedRef `parser:"SpecializeOp @@ (',' @@)*"`
}

// RedefineClause parses ":>>" QualifiedRef.
type RedefineClause struct {
	Pos    lexer.Position
	Target QualifiedRef `parser:"RedefineOp @@"`
}

// RefSubsetClause parses "::>" QualifiedRef.
type RefSubsetClause struct {
	Pos    lexer.Position
	Target QualifiedRef `parser:"RefSubsetOp @@"`
}

// ValueClause parses ["default"] ("=" | ":=") Expr.
type ValueClause struct {
	Pos     lexer.Position
	Default bool   `parser:"@'default'?"`
	Op      string `parser:"@('='|WalrusOp)"`
	Expr    Expr   `parser:"@@"`
}

// Expr is a value expression's right-hand side: exactly one alternative
// matches. A literal (Int/Float/Bool/Str) is a value, never a symbolic
// reference; a Ref is a (possibly qualified) feature-chain reference
// and becomes an unresolved_<role> property instead (§4.4 "literal vs
// identifier distinction... never by substring matching").
type Expr struct {
	Pos      lexer.Position
	IntLit   string        `parser:"(  @Int"`
	FloatLit string        `parser:" | @Float"`
	BoolLit  string        `parser:" | @('true'|'false')"`
	StrLit   string        `parser:" | @String"`
	Ref      *QualifiedRef `parser:" | @@ )"`
}

// QualifiedRef is a "::" or "."-joined path of identifiers. Both
// separators are accepted and normalized to "::" when the converter
// builds the unresolved reference text, since the resolver's qualified
// name splitting only understands "::".
type QualifiedRef struct {
	Pos   lexer.Position
	Parts []string `parser:"@Ident (( ColonColon | Dot ) @Ident)*"`
}
