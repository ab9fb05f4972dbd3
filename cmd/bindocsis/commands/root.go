// Package commands implements bindocsis's cobra CLI: a thin shell over
// pkg/tlvcodec, pkg/enrich, and pkg/surface. It owns no decoding logic of
// its own — every subcommand wires the core packages together and leaves
// I/O and configuration to this layer, per the project's usual split
// between a pure core and an ambient command-line front end.
package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/awksedgreep/bindocsis/internal/config"
	"github.com/awksedgreep/bindocsis/internal/obslog"
	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

// Version, Commit, and Date are set by main from build-time ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "bindocsis",
	Short: "Parse, inspect, and generate DOCSIS/PacketCable TLV configuration files",
	Long: `bindocsis reads and writes the binary TLV configuration format used by
cable modems and PacketCable MTAs, and converts between that binary form
and a human-editable YAML or JSON document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/bindocsis/config.yaml)")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command, printing any error to stderr and logging
// it with structured fields before exiting.
func Execute() {
	start := time.Now()
	cmd, err := rootCmd.ExecuteC()
	obslog.Info("command finished", obslog.KeyOperation, cmd.Name(), obslog.KeyDurationMs, time.Since(start).Milliseconds())

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var be *bderrors.BindError
		if errors.As(err, &be) {
			obslog.Error("command failed", obslog.KeyOperation, cmd.Name(),
				obslog.KeyErrorKind, string(be.Kind), obslog.KeyErrorCode, string(be.Type()), obslog.KeyError, err.Error())
		} else {
			obslog.Error("command failed", obslog.KeyOperation, cmd.Name(), obslog.KeyError, err.Error())
		}
		os.Exit(1)
	}
}

// GetConfigFile returns the --config flag value, empty when unset.
func GetConfigFile() string {
	return configFile
}

// loadConfig loads configuration from GetConfigFile and initializes the
// package logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}
	if err := obslog.Init(obslog.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	obslog.Debug("configuration loaded", obslog.KeyDocsisVer, cfg.DocsisVersion)
	return cfg, nil
}

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate shell completion script",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bindocsis version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "bindocsis %s (commit %s, built %s)\n", Version, Commit, Date)
		return nil
	},
}
