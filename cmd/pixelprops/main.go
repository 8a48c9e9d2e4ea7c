package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/pixelprops/go/pixelprops/internal/config"
	"github.com/provide-io/pixelprops/go/pixelprops/pkg/logging"
)

const version = "0.1.0"

type globalOptions struct {
	configPath string
	logLevel   string
	noColor    bool
}

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "pixelprops",
		Short:         "Decide which device identity an app should see",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to device config (defaults to $PIXELPROPS_CONFIG or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(
		newResolveCmd(opts),
		newApplyCmd(opts),
		newClassifyCmd(opts),
		newProfilesCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd)
		},
	}
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "pixelprops %s\n", version)
	fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", getBuildTimestamp())
}

// loadConfig loads the configured device and builds a logger for it. The
// level comes from --log-level, then the config file, then the
// environment.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (config.File, hclog.Logger, error) {
	var (
		cfg config.File
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		if hclog.LevelFromString(o.logLevel) == hclog.NoLevel {
			return cfg, nil, fmt.Errorf("--log-level: %w: %q", config.ErrUnknownLogLevel, o.logLevel)
		}
		level = o.logLevel
	}
	return cfg, logging.NewLogger("pixelprops", level, cmd.ErrOrStderr()), nil
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("pixelprops %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
