package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg-go/bsonschema"
)

var coerceSchemaPath string

var coerceCmd = &cobra.Command{
	Use:   "coerce <document>",
	Short: "Type-correct a document's string leaves using a shorthand schema",
	Long:  `Converts plain string leaves (as produced by form input or query parameters) into the types the schema declares and prints the document's extended JSON wire form.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := runCoerce(coerceSchemaPath, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "coerce failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	coerceCmd.Flags().StringVarP(&coerceSchemaPath, "schema", "s", "", "Path to the shorthand schema (JSON or YAML)")
	_ = coerceCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(coerceCmd)
}

func runCoerce(schemaPath, docPath string) (string, error) {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return "", err
	}
	doc, err := loadDocument(docPath)
	if err != nil {
		return "", err
	}
	coerced, err := bsonschema.Coerce(doc, schema)
	if err != nil {
		return "", err
	}
	return marshalIndent(bsonschema.Encode(coerced))
}
