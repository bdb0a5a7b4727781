package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg-go/bsonschema"
)

var validateSchemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate <document>",
	Short: "Check a document against a shorthand schema",
	Long:  `Validates an extended JSON document file against a shorthand schema and reports the first diagnostic on failure.  Exits non-zero when the document is invalid.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := runValidate(validateSchemaPath, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "validate failed: %v\n", err)
			os.Exit(1)
		}
		if !res.Valid {
			fmt.Printf("invalid: %s\n", res.Error)
			os.Exit(1)
		}
		fmt.Println("valid")
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Path to the shorthand schema (JSON or YAML)")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(schemaPath, docPath string) (bsonschema.Result, error) {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return bsonschema.Result{}, err
	}
	doc, err := loadDocument(docPath)
	if err != nil {
		return bsonschema.Result{}, err
	}
	return bsonschema.Validate(doc, schema)
}
