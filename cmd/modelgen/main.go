// Command modelgen is C2's entry point: it resolves the spec artifact
// directory, ingests it into the neutral tables C1 defines, and
// renders the generated sources internal/genmodel exposes at runtime.
// It is run by hand as a build tool, never from a runtime code path.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sysml-go/modelcore/internal/codegen"
	"github.com/sysml-go/modelcore/internal/config"
	"github.com/sysml-go/modelcore/internal/specartifact"
	"github.com/sysml-go/modelcore/internal/specingest"
)

func main() {
	specDir := flag.String("spec-dir", "", "override for the spec artifact directory (defaults to internal/specartifact's search order)")
	out := flag.String("out", "", "output directory for generated sources (defaults to internal/genmodel)")
	flag.Parse()

	cfg := config.LoadConfig()
	if *specDir != "" {
		cfg.SpecDir = *specDir
	}
	if *out != "" {
		cfg.GeneratedOutDir = *out
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not determine working directory: %v\n", err)
		os.Exit(1)
	}

	loc, err := specartifact.Resolve(cfg, wd)
	if err != nil {
		fmt.Printf("❌ could not resolve spec artifact directory: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🔍 resolved spec artifacts under: %s\n", loc.Dir)

	tables, err := specingest.Ingest(loc)
	if err != nil {
		fmt.Printf("❌ spec ingest failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ ingested %d types, %d relationship kinds\n", len(tables.AllTypes()), len(tables.Metamodel.Relationships))

	if err := codegen.Generate(tables, cfg.GeneratedOutDir); err != nil {
		fmt.Printf("💥 generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ wrote generated sources to %s\n", cfg.GeneratedOutDir)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  - review the generated files under", cfg.GeneratedOutDir)
	fmt.Println("  - run go test ./... to confirm the runtime packages still agree with the new tables")
}
