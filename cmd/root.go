// =============================================================================
// Order Print Pipeline - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (orderprint)
//   ├── processCmd (orderprint process)
//   ├── validateCmd (orderprint validate)
//   └── versionCmd (orderprint version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Building the structured logger shared by subcommands
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "orderprint",
	Short: "Order print pipeline - turn order sheets into printable label and invoice pages",

	Long: `Order print pipeline ingests tabular order data (spreadsheet files or
pasted text), validates each record against the order schema, and lays the
validated records out onto fixed-capacity printable pages.

Key Features:
  - Spreadsheet (.xlsx/.xls/.csv) and pasted tab-separated ingestion
  - Per-field validation with a complete, ordered error report
  - Product mini-grammar parsing (CODE|Variant*Qty) with vendor price books
  - Deterministic pagination for 6- and 8-up label sheets and invoice runs
  - JSON page manifests for the rendering front ends

Example Usage:
  orderprint process --input orders.xlsx --medium labels --label-size 8
  orderprint process --paste --medium invoices --style seetar < orders.tsv
  orderprint validate --input orders.xlsx`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// LOGGING
// =============================================================================

// buildLogger constructs the shared zap logger. --verbose forces debug-level
// development output; otherwise the configured level applies.
func buildLogger(configLevel string) *zap.Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(configLevel); err == nil {
		level = parsed
	}

	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		logger, err := cfg.Build()
		if err == nil {
			return logger
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
