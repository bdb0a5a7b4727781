package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg-go/bsonschema"
)

var expandCmd = &cobra.Command{
	Use:   "expand <schema>",
	Short: "Print the concrete JSON Schema for a shorthand schema",
	Long:  `Expands every extended-type reference in a shorthand schema into its wire-shape fragment and prints the resulting standard JSON Schema.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := runExpand(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "expand failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(schemaPath string) (string, error) {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return "", err
	}
	return marshalIndent(bsonschema.ToJSONSchema(schema))
}
