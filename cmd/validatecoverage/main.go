// Command validatecoverage runs C2's build-fatal coverage cross-checks
// against the resolved spec artifact directory and reports pass/fail
// for each before exiting. It is run by hand as a build tool, never
// from a runtime code path.
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

type checkResult struct {
	name   string
	passed bool
	detail string
}

func main() {
	specDir := flag.String("spec-dir", "", "override for the spec artifact directory (defaults to internal/specartifact's search order)")
	flag.Parse()

	fmt.Println("SysML Spec Coverage Validation")
	fmt.Println("==============================")
	fmt.Println()

	cfg := config.LoadConfig()
	if *specDir != "" {
		cfg.SpecDir = *specDir
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
	fmt.Printf("Resolved spec artifacts under: %s\n\n", loc.Dir)

	tables, err := specingest.Ingest(loc)
	if err != nil {
		fmt.Printf("❌ spec ingest failed: %v\n", err)
		os.Exit(1)
	}

	results := []checkResult{
		runCheck("Type coverage", func() error { return codegen.ValidateTypeCoverage(tables) }),
		runCheck("Enumeration coverage", func() error { return codegen.ValidateEnumCoverage(tables) }),
		runCheck("Relationship constraint coverage", func() error { return codegen.ValidateRelationshipConstraints(tables) }),
	}

	printResults(results)

	for _, r := range results {
		if !r.passed {
			fmt.Println("💥 coverage validation FAILED")
			os.Exit(1)
		}
	}
	fmt.Println("✅ all coverage checks passed")
}

func runCheck(name string, fn func() error) checkResult {
	if err := fn(); err != nil {
		return checkResult{name: name, passed: false, detail: err.Error()}
	}
	return checkResult{name: name, passed: true}
}

func printResults(results []checkResult) {
	for i, r := range results {
		status := "✅ PASSED"
		if !r.passed {
			status = "❌ FAILED"
		}
		fmt.Printf("%d. %s: %s\n", i+1, r.name, status)
		if r.detail != "" {
			fmt.Printf("   %s\n", r.detail)
		}
	}
	fmt.Println()
}
