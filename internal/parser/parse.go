package parser

import (
	"context"
	"log/slog"

	"github.com/alecthomas/participle/v2"

	"github.com/sysml-go/modelcore/internal/genmodel"
	"github.com/sysml-go/modelcore/internal/graph"
	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/trace"
)

// sysmlParser is the participle grammar entry point, built once at
// package init since participle.Build is expensive relative to a
// single parse (it walks and compiles the struct-tag grammar).
var sysmlParser = participle.MustBuild[File](
	participle.Lexer(sysmlLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(4),
)

// ParseFile parses one file's source text into elements owned under a
// fresh root Package element in a private per-file graph (§4.4 Parser
// + AST Converter; §5 per-file private graph). A grammar error does not
// abort the whole file: it is reported as an ECGrammarError diagnostic
// on the returned graph and parsing resumes from the next top-level
// boundary, so one malformed statement does not hide every sibling
// declaration's diagnostics (§4.4 "parser attempts local recovery").
func ParseFile(ctx context.Context, logger *slog.Logger, path string, source []byte) *graph.ModelGraph {
	op := trace.Begin(ctx, logger, "parser.parse_file", slog.String("path", path))
	g := graph.New(logger)

	root := model.NewElement(genmodel.KindPackage)
	root.Name = ""
	rootID, err := g.AddElement(ctx, root)
	if err != nil {
		op.End(err)
		return g
	}

	li := model.BuildLineIndex(source)
	remaining := source
	baseOffset := 0
	for len(remaining) > 0 {
		file, perr := sysmlParser.ParseBytes(path, remaining)
		conv := newConverter(g, path, li, baseOffset)
		if perr == nil {
			_ = conv.convertFile(ctx, file, rootID)
			break
		}

		failOffset := 0
		if pe, ok := perr.(participle.Error); ok {
			failOffset = pe.Position().Offset
		}
		g.AddDiagnostic(grammarDiagnostic(conv, perr))

		skip, ok := recoveryPoint(remaining, failOffset)
		if !ok {
			break
		}
		remaining = remaining[skip:]
		baseOffset += skip
	}

	op.End(nil)
	return g
}

// grammarDiagnostic builds an ECGrammarError diagnostic anchored at the
// byte offset participle reported, adjusted by conv.baseOffset since
// recovery re-parses a suffix of the original source.
func grammarDiagnostic(conv *converter, perr error) model.Diagnostic {
	offset := conv.baseOffset
	if pe, ok := perr.(participle.Error); ok {
		offset = conv.baseOffset + pe.Position().Offset
	}
	return model.Diagnostic{
		Severity: model.SeverityError,
		Code:     model.ECGrammarError,
		Message:  perr.Error(),
		Primary:  model.MakeSpan(conv.li, conv.path, offset, offset),
	}
}

// recoveryPoint finds the next statement terminator (';' or '}') at or
// after failOffset and returns the byte count to drop from remaining
// so the retry resumes just past it. This does not attempt to track
// brace nesting: a failure nested several blocks deep leaves the retry
// re-entering the grammar at top level, which can itself immediately
// hit the block's own closing '}' as a second, spurious error — that
// second error recovers the same way and the loop converges once the
// unparsed suffix runs out of structure to misinterpret. ok is false
// once no terminator remains and parsing should simply stop.
func recoveryPoint(remaining []byte, failOffset int) (skip int, ok bool) {
	if failOffset < 0 || failOffset > len(remaining) {
		failOffset = 0
	}
	for i := failOffset; i < len(remaining); i++ {
		if remaining[i] == ';' || remaining[i] == '}' {
			return i + 1, true
		}
	}
	return 0, false
}
