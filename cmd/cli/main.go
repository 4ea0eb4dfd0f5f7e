package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiveden/sysfetch/internal/config"
	"github.com/hiveden/sysfetch/internal/hw"
	"github.com/hiveden/sysfetch/internal/logging"
	"github.com/hiveden/sysfetch/internal/render"
	"gopkg.in/yaml.v2"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfg       *config.Config
	logger    logr.Logger
	collector *hw.Collector
)

func main() {
	v := viper.New()
	config.SetDefaults(v)

	var configFile string
	rootCmd := &cobra.Command{
		Use:           "sysfetch",
		Short:         "Show a snapshot of the host hardware",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			collector = hw.NewCollector(append(cfg.CollectorOptions(), hw.WithLogger(logger))...)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml)")
	flags.Duration("timeout", hw.DefaultTimeout, "Timeout for each hardware source, 0 to disable")
	flags.Bool("parallel", true, "Query hardware sources concurrently")
	flags.String("cpufreq-path", hw.DefaultCPUFreqPath, "cpufreq file, {cpu} is replaced by the cpu index")
	flags.Bool("gpu", true, "Report the GPU")
	flags.Int("gpu-index", 0, "Index of the GPU to report")
	flags.IntP("verbosity", "v", 0, "Log verbosity")
	bindFlags(v, flags, map[string]string{
		"timeout":      "timeout",
		"parallel":     "parallel",
		"cpufreq_path": "cpufreq-path",
		"gpu.enabled":  "gpu",
		"gpu.index":    "gpu-index",
		"log.level":    "verbosity",
	})

	rootCmd.AddCommand(buildSnapshotCommand())
	rootCmd.AddCommand(buildInventoryCommand())
	rootCmd.AddCommand(buildWatchCommand(v))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildSnapshotCommand() *cobra.Command {
	var output, filePath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture one hardware snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := collector.Snapshot(cmd.Context())

			if filePath != "" {
				if output == "text" {
					output = hw.FormatYAML
				}
				if err := hw.WriteSnapshot(filePath, output, snap); err != nil {
					return fmt.Errorf("failed to export snapshot: %w", err)
				}
				fmt.Printf("Snapshot written to %s\n", filePath)
				return nil
			}

			return printSnapshot(cmd, snap, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVar(&filePath, "file", "", "File path to export the snapshot to")

	return cmd
}

func buildInventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Show the detailed hardware inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := hw.GetHardwareInfo()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(info)
			if err != nil {
				return fmt.Errorf("failed to marshal inventory: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func buildWatchCommand(v *viper.Viper) *cobra.Command {
	var output string
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Capture a fresh snapshot on an interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ticker := time.NewTicker(cfg.Interval)
			defer ticker.Stop()

			for n := 1; ; n++ {
				if err := printSnapshot(cmd, collector.Snapshot(ctx), output); err != nil {
					return err
				}
				if count > 0 && n >= count {
					return nil
				}

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
		},
	}

	cmd.Flags().Duration("interval", config.DefaultInterval, "Time between snapshots")
	v.BindPFlag("interval", cmd.Flags().Lookup("interval"))
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many snapshots (0 runs until interrupted)")

	return cmd
}

func printSnapshot(cmd *cobra.Command, snap *hw.Snapshot, output string) error {
	if output == "text" {
		return render.Text(cmd.OutOrStdout(), render.Rows(snap))
	}

	data, err := hw.Marshal(snap, output)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// bindFlags binds each config key to the flag of the given name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		v.BindPFlag(key, flags.Lookup(name))
	}
}
