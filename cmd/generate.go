package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cobcheck/cobcheck/internal/config"
	"github.com/cobcheck/cobcheck/internal/generator"
	"github.com/cobcheck/cobcheck/internal/generator/fields"
)

// generate: translate .cut -> .cbl
var GenerateCmd = &cobra.Command{
	Use:   "generate <suite.cut>",
	Short: "Translate a test suite into COBOL test code",
	Args:  cobra.ExactArgs(1),
	RunE:  generateRun,
}

func init() {
	GenerateCmd.Flags().String("fields", "", "TOML or YAML listing of field data types in the program under test")
	GenerateCmd.Flags().String("prefix", "", "override the generated-identifier prefix")
}

func generateRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
		cfg.Prefix = prefix
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}

	var store *fields.Store
	if fieldsPath, _ := cmd.Flags().GetString("fields"); fieldsPath != "" {
		store, err = fields.LoadFile(fieldsPath)
		if err != nil {
			return err
		}
	}

	fmt.Printf("↪ generating test code for %q → %q ...\n", src, cfg.OutDir+"/")

	result, err := generator.Run(src, generator.Options{Config: cfg, Fields: store})
	if err != nil {
		return err
	}

	fmt.Printf("✔︎ wrote %d test case(s) to %s\n", result.CaseCount, result.OutFile)
	return nil
}
