package specingest

import (
	"fmt"
	"strings"

	"github.com/sysml-go/modelcore/internal/model"
	"github.com/sysml-go/modelcore/internal/specartifact"
)

// Ingest reads every artifact named in loc and normalizes them into
// Tables. A vocabulary artifact's file list is expected to contain
// exactly two files (kernel, systems), distinguished by filename
// substring; any other count or naming is a fatal artifact-contradicts
// error, since C2's coverage check requires a known kernel/systems
// split to merge correctly.
func Ingest(loc *specartifact.Location) (*Tables, error) {
	vocabFiles := loc.Files[specartifact.Vocabulary]
	kernelVocabPath, systemsVocabPath, err := splitKernelSystems(vocabFiles, "vocabulary")
	if err != nil {
		return nil, err
	}

	shapeFiles := loc.Files[specartifact.Shapes]
	kernelShapesPath, systemsShapesPath, err := splitKernelSystems(shapeFiles, "shapes")
	if err != nil {
		return nil, err
	}

	metamodelFiles := loc.Files[specartifact.Metamodel]
	if len(metamodelFiles) != 1 {
		return nil, &model.BuildError{Code: model.ECArtifactContradicts, Message: fmt.Sprintf("expected exactly one metamodel artifact, found %d", len(metamodelFiles))}
	}

	jsonEnumFiles := loc.Files[specartifact.Enumeration]
	if len(jsonEnumFiles) != 1 {
		return nil, &model.BuildError{Code: model.ECArtifactContradicts, Message: fmt.Sprintf("expected exactly one JSON enumeration artifact, found %d", len(jsonEnumFiles))}
	}

	grammarFiles := loc.Files[specartifact.Grammar]
	if len(grammarFiles) != 1 {
		return nil, &model.BuildError{Code: model.ECArtifactContradicts, Message: fmt.Sprintf("expected exactly one grammar artifact, found %d", len(grammarFiles))}
	}

	var t Tables
	if t.KernelVocabulary, err = ParseVocabulary(kernelVocabPath); err != nil {
		return nil, err
	}
	if t.SystemsVocabulary, err = ParseVocabulary(systemsVocabPath); err != nil {
		return nil, err
	}
	if t.KernelShapes, err = ParseShapes(kernelShapesPath); err != nil {
		return nil, err
	}
	if t.SystemsShapes, err = ParseShapes(systemsShapesPath); err != nil {
		return nil, err
	}
	if t.Metamodel, err = ParseMetamodel(metamodelFiles[0]); err != nil {
		return nil, err
	}

	kernelEnums, err := ParseShapesEnumerations(kernelShapesPath)
	if err != nil {
		return nil, err
	}
	systemsEnums, err := ParseShapesEnumerations(systemsShapesPath)
	if err != nil {
		return nil, err
	}
	t.ShapesEnums = mergeEnumerations(kernelEnums, systemsEnums)

	if t.JSONEnums, err = ParseJSONEnumerations(jsonEnumFiles[0]); err != nil {
		return nil, err
	}
	if t.Grammar, err = ParseGrammar(grammarFiles[0]); err != nil {
		return nil, err
	}

	return &t, nil
}

// splitKernelSystems picks the kernel and systems artifact out of a
// two-file glob match by filename substring.
func splitKernelSystems(files []string, kind string) (kernel, systems string, err error) {
	if len(files) != 2 {
		return "", "", &model.BuildError{Code: model.ECArtifactContradicts, Message: fmt.Sprintf("expected exactly two %s artifacts (kernel, systems), found %d", kind, len(files))}
	}
	for _, f := range files {
		switch {
		case strings.Contains(strings.ToLower(f), "kernel"):
			kernel = f
		case strings.Contains(strings.ToLower(f), "systems"):
			systems = f
		}
	}
	if kernel == "" || systems == "" {
		return "", "", &model.BuildError{Code: model.ECArtifactContradicts, Message: fmt.Sprintf("could not distinguish kernel/systems %s artifacts among %v", kind, files)}
	}
	return kernel, systems, nil
}

func mergeEnumerations(a, b EnumerationTable) EnumerationTable {
	out := EnumerationTable{ValuesOf: make(map[string][]string, len(a.ValuesOf)+len(b.ValuesOf))}
	for k, v := range a.ValuesOf {
		out.ValuesOf[k] = v
	}
	for k, v := range b.ValuesOf {
		out.ValuesOf[k] = v
	}
	return out
}
