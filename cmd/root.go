package cmd

import (
	"github.com/spf13/cobra"
)

var (
	outDir     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "cobcheck",
	Short: "cobcheck CLI — unit test generator for COBOL programs",
	Long: `cobcheck translates a test suite written in the check specification
dialect into COBOL source statements for a generated test program.

Commands:
  init      Scaffold a starter test suite
  generate  Translate a (.cut) test suite into (.cbl) COBOL test code
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory for generated test code")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a cobcheck.toml or .yaml config file")

	rootCmd.AddCommand(InitCmd, GenerateCmd)
}
