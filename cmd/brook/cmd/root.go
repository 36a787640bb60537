package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brooklang/brook/internal/config"
	"github.com/brooklang/brook/internal/repl"
)

var cfgFile string

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

var rootCmd = &cobra.Command{
	Use:   "brook",
	Short: "brook - a small scripting language front end",
	Long: `brook scans and parses the brook scripting language into a
type-checked syntax tree. Running brook without a subcommand starts the
interactive session.`,
	SilenceUsage: true,
	Args:         usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startREPL()
	},
}

// usageError marks a command line mistake so the caller can exit with the
// usage status from sysexits.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// IsUsage reports whether err came from a command line mistake: a bad flag, a
// bad argument count, or an unknown subcommand.
func IsUsage(err error) bool {
	var uerr *usageError
	return errors.As(err, &uerr)
}

// usageArgs wraps a positional argument validator so its failures classify as
// usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (TOML or YAML)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func startREPL() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	return repl.New(cfg, Version, os.Stdin, os.Stdout).Run()
}
