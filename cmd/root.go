package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"extframe/internal/formatting"
	"extframe/internal/greeter"
	"extframe/pkg/logging"
	"extframe/pkg/spi"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, unknown interface, etc).
	ExitCodeError = 1
)

// rootCmd is the entry point when extframe is invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "extframe",
	Short: "Inspect and drive a pluggable extension loader from the command line",
	Long: `extframe exposes the extension loader's discovery, dependency
injection, adaptive dispatch, and activation mechanisms for operational
use: list what's registered, resolve one extension, run the Activate
Selector, or invoke the adaptive proxy for a method against a synthesized
URL.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := logging.LevelInfo
		if debug {
			logLevel = logging.LevelDebug
		}
		logging.InitForCLI(logLevel, os.Stderr)
	},
}

// outputFormat backs the persistent --output flag shared by every subcommand.
var outputFormat string

// debug backs the persistent --debug flag; it raises the logging level from
// LevelInfo to LevelDebug, matching the CLI-mode bootstrap convention.
var debug bool

// SetVersion sets the version for the root command, injected at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// registry is the process-wide Registry every subcommand resolves its
// ExtensionPoint from. Production code has exactly one domain wired in
// today (Greeter); new domains register themselves here the same way.
var registry = spi.NewRegistry()

// greeterExtensionPoint is populated by registerDomains at startup.
var greeterExtensionPoint *spi.ExtensionPoint[greeter.Greeter]

func registerDomains() error {
	ep, err := greeter.Register(registry)
	if err != nil {
		return err
	}
	greeterExtensionPoint = ep
	return nil
}

// resolveExtensionPoint maps a CLI-supplied interface name to the
// ExtensionPoint that backs it. Extending the CLI to a new domain means
// adding a case here and a line in registerDomains.
func resolveExtensionPoint(interfaceName string) (*spi.ExtensionPoint[greeter.Greeter], error) {
	switch interfaceName {
	case "greeter", "Greeter":
		return greeterExtensionPoint, nil
	default:
		return nil, &unknownInterfaceError{name: interfaceName}
	}
}

type unknownInterfaceError struct {
	name string
}

func (e *unknownInterfaceError) Error() string {
	return "unknown interface \"" + e.name + "\" (known: greeter)"
}

func formatterFor() formatting.Formatter {
	opts := formatting.Options{Format: formatting.OutputFormat(outputFormat)}
	return formatting.NewFactory().CreateFormatter(opts)
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "extframe version %s\n" .Version}}`)

	if err := registerDomains(); err != nil {
		os.Exit(ExitCodeError)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "console", "output format: console, json, yaml, or table")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newActivateCmd())
	rootCmd.AddCommand(newAdaptiveCmd())
	rootCmd.AddCommand(newWarmupCmd())
}
