// Package specartifact resolves the on-disk location of the authoritative
// spec artifacts C1 reads (vocabulary, shapes, metamodel, enumeration,
// grammar) and matches candidate directories against the expected
// artifact layout.
package specartifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sysml-go/modelcore/internal/config"
)

// Kind names the artifact roles C1 consumes.
type Kind string

const (
	Vocabulary  Kind = "vocabulary"
	Shapes      Kind = "shapes"
	Metamodel   Kind = "metamodel"
	Enumeration Kind = "enumeration"
	Grammar     Kind = "grammar"
)

// expectedGlob is the glob pattern (relative to a candidate spec
// directory) that identifies each artifact kind.
var expectedGlob = map[Kind]string{
	Vocabulary:  "vocabulary/*.ttl",
	Shapes:      "shapes/*.ttl",
	Metamodel:   "metamodel/*.uml",
	Enumeration: "enumeration/*.json",
	Grammar:     "grammar/*.peg",
}

// Location is a resolved artifact directory together with the matched
// files for each kind present.
type Location struct {
	Dir   string
	Files map[Kind][]string
}

// Resolve finds the spec artifact directory following §6's precedence:
// explicit cfg.SpecDir / environment variable, then an in-repo
// references directory, then a sibling directory of the workspace root.
// It returns a build-fatal error naming every attempted path when none
// qualifies.
func Resolve(cfg *config.Config, workspaceRoot string) (*Location, error) {
	candidates := candidateDirs(cfg, workspaceRoot)

	var attempted []string
	for _, dir := range candidates {
		attempted = append(attempted, dir)
		loc, ok := probe(dir)
		if ok {
			return loc, nil
		}
	}

	return nil, fmt.Errorf("spec artifact directory not found; attempted: %v", attempted)
}

func candidateDirs(cfg *config.Config, workspaceRoot string) []string {
	var dirs []string
	if cfg != nil && cfg.SpecDir != "" {
		dirs = append(dirs, cfg.SpecDir)
	}
	dirs = append(dirs,
		filepath.Join(workspaceRoot, "references", "spec"),
		filepath.Join(workspaceRoot, "..", "sysml-spec"),
	)
	return dirs
}

// probe reports whether dir contains at least one file matching every
// artifact kind's glob, and if so returns the matched files.
func probe(dir string) (*Location, bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, false
	}

	files := make(map[Kind][]string, len(expectedGlob))
	for kind, pattern := range expectedGlob {
		matches, err := doublestar.Glob(os.DirFS(dir), pattern)
		if err != nil || len(matches) == 0 {
			return nil, false
		}
		abs := make([]string, len(matches))
		for i, m := range matches {
			abs[i] = filepath.Join(dir, m)
		}
		files[kind] = abs
	}

	return &Location{Dir: dir, Files: files}, true
}

// MatchesLibraryLayout reports whether dir looks like a standard library
// root: it must contain a library.kernel subdirectory (loaded first) and
// may contain library.systems and further domain library directories.
func MatchesLibraryLayout(dir string) bool {
	matches, err := doublestar.Glob(os.DirFS(dir), "library.kernel/**/*.sysml")
	return err == nil && len(matches) > 0
}

// LibraryPackageDirs returns the ordered list of library package
// directories under root: library.kernel first, then library.systems,
// then any other library.* directories in lexical order.
func LibraryPackageDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading library root %s: %w", root, err)
	}

	var kernel, systems string
	var rest []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		switch e.Name() {
		case "library.kernel":
			kernel = filepath.Join(root, e.Name())
		case "library.systems":
			systems = filepath.Join(root, e.Name())
		default:
			if matchedLibraryDir(e.Name()) {
				rest = append(rest, filepath.Join(root, e.Name()))
			}
		}
	}

	var ordered []string
	if kernel != "" {
		ordered = append(ordered, kernel)
	}
	if systems != "" {
		ordered = append(ordered, systems)
	}
	ordered = append(ordered, rest...)
	return ordered, nil
}

func matchedLibraryDir(name string) bool {
	ok, _ := doublestar.Match("library.*", name)
	return ok
}
