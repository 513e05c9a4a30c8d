package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	charsPath := flag.String("chars", "", "Path to the characteristic catalog YAML")
	servicesPath := flag.String("services", "", "Path to the service catalog YAML")
	outDir := flag.String("out-dir", "", "Output directory for generated Go files")
	pkgName := flag.String("package", "registry", "Package name for generated files")
	flag.Parse()

	if *charsPath == "" || *servicesPath == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: hap-typegen -chars <path> -services <path> -out-dir <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*charsPath, *servicesPath, *outDir, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(charsPath, servicesPath, outDir, pkgName string) error {
	chars, err := LoadCharacteristics(charsPath)
	if err != nil {
		return fmt.Errorf("loading characteristic catalog: %w", err)
	}
	services, err := LoadServices(servicesPath)
	if err != nil {
		return fmt.Errorf("loading service catalog: %w", err)
	}
	if err := ValidateServiceRefs(services, chars); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	charCode, err := GenerateCharacteristics(chars, pkgName, charsPath)
	if err != nil {
		return err
	}
	outPath := filepath.Join(outDir, "characteristics_gen.go")
	if err := writeFormatted(outPath, charCode); err != nil {
		return fmt.Errorf("writing characteristics_gen.go: %w", err)
	}
	fmt.Printf("  generated %s\n", outPath)

	svcCode, err := GenerateServices(services, pkgName, servicesPath)
	if err != nil {
		return err
	}
	outPath = filepath.Join(outDir, "services_gen.go")
	if err := writeFormatted(outPath, svcCode); err != nil {
		return fmt.Errorf("writing services_gen.go: %w", err)
	}
	fmt.Printf("  generated %s\n", outPath)

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
