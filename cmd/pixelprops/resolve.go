package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provide-io/pixelprops/go/pixelprops/internal/build"
	"github.com/provide-io/pixelprops/go/pixelprops/internal/device"
	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

type requestOptions struct {
	packageName string
	processName string
	codename    string
	buildTime   int64
	spoofMusic  bool
	output      string
}

func (r *requestOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.packageName, "package", "p", "", "Package name of the calling app (required)")
	cmd.Flags().StringVar(&r.processName, "process", "", "Process name (defaults to the package name)")
	cmd.Flags().StringVarP(&r.codename, "device", "d", "", "Real device codename (overrides config)")
	cmd.Flags().Int64Var(&r.buildTime, "build-time", 0, "Real build time in milliseconds (overrides config)")
	cmd.Flags().BoolVar(&r.spoofMusic, "spoof-music", false, "Enable the music app spoofing toggle (overrides config)")
	cmd.Flags().StringVarP(&r.output, "output", "o", "text", "Output format (text, json, yaml)")

	if err := cmd.MarkFlagRequired("package"); err != nil {
		panic(err)
	}
}

// request combines the configured device with flag overrides.
func (r *requestOptions) request(cmd *cobra.Command, id device.Identity) props.Request {
	req := device.NewRequest(id, device.App{Name: r.packageName, Process: r.processName})
	if cmd.Flags().Changed("device") {
		req.DeviceCodename = r.codename
	}
	if cmd.Flags().Changed("build-time") {
		req.BuildTime = r.buildTime
	}
	if cmd.Flags().Changed("spoof-music") {
		req.MusicSpoofEnabled = r.spoofMusic
	}
	return req
}

func newResolveCmd(global *globalOptions) *cobra.Command {
	opts := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the overrides an app would receive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := global.loadConfig(cmd)
			if err != nil {
				return err
			}

			req := opts.request(cmd, cfg.Identity())
			resolver := props.NewResolverWithLogger(props.DefaultTables(), logger)
			decision := resolver.Decide(req)

			return newPrinter(cmd.OutOrStdout(), global.noColor).decision(opts.output, decision)
		},
	}
	opts.bind(cmd)
	return cmd
}

func newApplyCmd(global *globalOptions) *cobra.Command {
	opts := &requestOptions{}
	var locks []string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the overrides to the device's identity fields and show the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := global.loadConfig(cmd)
			if err != nil {
				return err
			}

			locked := make([]props.Key, 0, len(locks))
			for _, name := range locks {
				k, err := props.ParseKey(name)
				if err != nil {
					return fmt.Errorf("--lock: %w", err)
				}
				locked = append(locked, k)
			}

			id := cfg.Identity()
			fields := build.NewFields(id.Fields())
			fields.Lock(locked...)
			before := fields.Snapshot()

			req := opts.request(cmd, id)
			overrides := props.NewResolverWithLogger(props.DefaultTables(), logger).Resolve(req)

			// Failures are reported, not fatal: the app still runs with
			// whatever was applied.
			applied, applyErr := props.Apply(fields, overrides, logger)

			return newPrinter(cmd.OutOrStdout(), global.noColor).applied(opts.output, applyResult{
				Package:   req.PackageName,
				Requested: len(overrides),
				Applied:   applied,
				Before:    before,
				After:     fields.Snapshot(),
				Err:       applyErr,
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringSliceVar(&locks, "lock", nil, "Mark identity fields as not writable (e.g. FINGERPRINT)")
	return cmd
}

func newClassifyCmd(global *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classify PACKAGE...",
		Short: "Print the class each package falls into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := props.DefaultTables()
			rows := make([]classification, 0, len(args))
			for _, pkg := range args {
				rows = append(rows, classification{
					Package:  pkg,
					Class:    tables.Classify(pkg),
					Eligible: tables.Eligible(pkg),
				})
			}
			return newPrinter(cmd.OutOrStdout(), global.noColor).classifications(output, rows)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")
	return cmd
}

func newProfilesCmd(global *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the canonical identity profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newPrinter(cmd.OutOrStdout(), global.noColor).profiles(output, props.Profiles())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")
	return cmd
}
