package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brooklang/brook/internal/ast"
	"github.com/brooklang/brook/internal/parser"
	"github.com/brooklang/brook/internal/scanner"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Scan and parse a brook source file",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", args[0], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("unable to load configuration: %w", err)
		}

		tokens := scanner.Scan(string(src))
		program, err := parser.New(parser.Reverse(tokens)).Parse()
		if err != nil {
			diagnostic := err.Error()
			if cfg.Color {
				diagnostic = errorStyle.Render(diagnostic)
			}
			fmt.Fprintln(os.Stderr, diagnostic)
			os.Exit(65)
		}
		for _, stmt := range program.Statements {
			fmt.Println(ast.Sprint(stmt.Expr))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
