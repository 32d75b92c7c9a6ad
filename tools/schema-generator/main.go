// Command schema-generator regenerates the embedded JSON schema from the
// configuration types. Run via go:generate in the config package after
// changing any tagged struct field.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/hookcfg/config"
)

func main() {
	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	// go:generate runs from the config package directory
	outputDir := "../schema"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputPath := filepath.Join(outputDir, "hookcfg.embedded.schema.json")
	if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", outputPath)
}
