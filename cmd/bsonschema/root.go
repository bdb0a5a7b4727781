package main

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:   "bsonschema",
	Short: "Validate and coerce extended JSON documents against shorthand schemas",
	Long: `bsonschema works with shorthand schemas: JSON-Schema-like structures that
may name a MongoDB extended type (ObjectId, Date, Long, ...) directly
instead of spelling out its wire shape.  Schemas may be JSON or YAML.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadSchema reads a shorthand schema from a JSON or YAML file, chosen by
// extension.
func loadSchema(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema any
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &schema); err != nil {
			return nil, fmt.Errorf("parsing schema %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &schema); err != nil {
			return nil, fmt.Errorf("parsing schema %s: %w", path, err)
		}
	}
	return schema, nil
}

// loadDocument reads a JSON document file.
func loadDocument(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return doc, nil
}

func marshalIndent(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
