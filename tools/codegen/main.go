package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"text/template"

	"github.com/spf13/pflag"
)

const (
	headerURLTemplate = "https://raw.githubusercontent.com/openvinotoolkit/openvino/%s/src/bindings/c/include/openvino/c/%s"
)

// headerFiles are the C API headers covering the symbols the bindings use.
var headerFiles = []string{
	"ov_common.h",
	"ov_core.h",
	"ov_model.h",
	"ov_compiled_model.h",
	"ov_tensor.h",
	"ov_shape.h",
}

// Declarations look like "OPENVINO_C_API(ov_status_e) ov_core_create(ov_core_t** core);",
// with the return type macro often on its own line.
var declPattern = regexp.MustCompile(`OPENVINO_C_API\([^)]*\)\s*(ov_[a-z0-9_]+)\s*\(`)

//go:embed templates/symbols.go.tmpl
var symbolsTemplate string

type GeneratorConfig struct {
	Version     string
	PackageName string
	Symbols     []string
}

func main() {
	version := pflag.String("version", "2024.6.0", "OpenVINO release tag (e.g., 2024.6.0)")
	outDir := pflag.String("out", "", "Output directory (e.g., openvino/internal/api/v2)")
	pkg := pflag.String("package", "", "Package name (default: base name of -out)")
	pflag.Parse()

	if *outDir == "" {
		log.Fatal("Output directory is required (--out flag)")
	}
	if *pkg == "" {
		*pkg = filepath.Base(*outDir)
	}

	var symbols []string
	for _, header := range headerFiles {
		headerURL := fmt.Sprintf(headerURLTemplate, *version, header)
		log.Printf("Downloading header from %s", headerURL)

		names, err := fetchHeader(headerURL)
		if err != nil {
			log.Fatalf("Failed to process %s: %v", header, err)
		}
		symbols = append(symbols, names...)
	}
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)

	log.Printf("Found %d OPENVINO_C_API functions", len(symbols))

	config := GeneratorConfig{
		Version:     *version,
		PackageName: *pkg,
		Symbols:     symbols,
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if err := executeTemplate(filepath.Join(*outDir, "symbols_gen.go"), symbolsTemplate, config); err != nil {
		log.Fatalf("Failed to generate symbols_gen.go: %v", err)
	}

	log.Println("Generated symbols_gen.go")
	log.Println("Note: funcs.go must be updated manually for new typed function wrappers")
}

func fetchHeader(url string) ([]string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download header: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download header: HTTP %d", resp.StatusCode)
	}
	return parseHeader(resp.Body)
}

// parseHeader returns the function names declared with OPENVINO_C_API in r,
// in declaration order.
func parseHeader(r io.Reader) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src = stripComments(src)

	var names []string
	for _, match := range declPattern.FindAllSubmatch(src, -1) {
		names = append(names, string(match[1]))
	}
	return names, nil
}

var commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)

// stripComments drops C comments, which in the OpenVINO headers contain
// usage snippets that would otherwise match declPattern.
func stripComments(src []byte) []byte {
	return commentPattern.ReplaceAll(src, nil)
}

func executeTemplate(path, tmplStr string, config GeneratorConfig) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, config); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// If formatting fails, write unformatted code for debugging
		log.Printf("Warning: failed to format code: %v", err)
		formatted = buf.Bytes()
	}

	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
