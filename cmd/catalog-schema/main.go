// Command catalog-schema writes a JSON schema for each catalog file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/invopop/jsonschema"

	"spoon-defense/internal/defs"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	schemas := defs.Schemas()
	files := make([]string, 0, len(schemas))
	for file := range schemas {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		outPath := filepath.Join(outDir, schemaName(file))
		if err := writeSchema(outPath, schemas[file]); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(outPath)
	}
}

// schemaName turns enemies.json into enemies.schema.json.
func schemaName(file string) string {
	ext := filepath.Ext(file)
	return file[:len(file)-len(ext)] + ".schema" + ext
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
