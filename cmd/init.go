package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cobcheck/cobcheck/internal/generator"
)

const starterSuite = `* Starter test suite. Lines beginning with * are comments.
TESTSUITE "My first test suite"

TESTCASE "It initializes the greeting"
MOVE "HELLO" TO WS-GREETING
EXPECT WS-GREETING TO BE "HELLO"
`

// init: scaffold a starter test suite
var InitCmd = &cobra.Command{
	Use:   "init [suite-name]",
	Short: "Scaffold a starter test suite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0] + generator.SuiteExtension
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("%s already exists", name)
		}
		if err := os.WriteFile(name, []byte(starterSuite), 0o644); err != nil {
			return err
		}
		fmt.Printf("↪ scaffolded test suite %q\n", name)
		return nil
	},
}
