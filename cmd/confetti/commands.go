package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/gonewx/confetti/pkg/confetti"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/logging"
	"github.com/gonewx/confetti/pkg/preview"
	"github.com/gonewx/confetti/pkg/registry"
	"github.com/gonewx/confetti/pkg/utils"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "confetti",
		Short:         "Generate confetti explosion stylesheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a preset YAML file (default: builtin presets)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, off)")

	rootCmd.AddCommand(newGenerateCmd(opts), newPresetsCmd(opts), newServeCmd(opts))
	return rootCmd
}

func (o *rootOptions) logger(out io.Writer) (hclog.Logger, error) {
	logger, err := logging.NewLogger(o.logLevel, out)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return logger, nil
}

// resolvePreset 加载预设并把非致命问题写入日志
func (o *rootOptions) resolvePreset(name string, logger hclog.Logger) (config.Preset, error) {
	preset, err := config.Resolve(o.configPath, name)
	if err != nil {
		return config.Preset{}, err
	}
	for _, w := range preset.Warnings() {
		logger.Warn(w, "preset", name)
	}
	return preset, nil
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		presetName string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the stylesheet of one confetti instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			preset, err := opts.resolvePreset(presetName, logger)
			if err != nil {
				return err
			}
			particles, err := preset.Particles()
			if err != nil {
				return err
			}

			rng := utils.DefaultRandom()
			if cmd.Flags().Changed("seed") {
				rng = utils.NewSeededRandom(seed)
			}

			reg := registry.New()
			inst := confetti.NewInstance(
				confetti.WithRegistry(reg),
				confetti.WithRandom(rng),
				confetti.WithLogger(logger),
			)
			defer inst.Dispose()

			if err := inst.OnConfigChanged(particles, preset.EffectConfig()); err != nil {
				return err
			}
			css, _ := reg.Get(inst.StyleID())
			_, err = io.WriteString(cmd.OutOrStdout(), css)
			return err
		},
	}
	cmd.Flags().StringVarP(&presetName, "preset", "p", config.DefaultPresetName, "Preset name")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output")
	return cmd
}

func newPresetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file := config.BuiltinPresets()
			if opts.configPath != "" {
				var err error
				if file, err = config.LoadPresetFile(opts.configPath); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, name := range file.Names() {
				preset, err := file.Get(name)
				if err != nil {
					fmt.Fprintf(out, "%-10s invalid: %v\n", name, err)
					continue
				}
				fmt.Fprintf(out, "%-10s particles=%d duration=%vms size=%vpx force=%v height=%s width=%vpx colors=%d\n",
					name, preset.ParticleCount, preset.Duration, preset.ParticleSize, preset.Force,
					preset.Height.CSS(), preset.Width, len(preset.Colors))
			}
			return nil
		},
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		presetName   string
		addr         string
		maxInstances int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a preview page that renders the generated stylesheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			preset, err := opts.resolvePreset(presetName, logger)
			if err != nil {
				return err
			}

			srv := preview.NewServer(preset, registry.Default(), nil, logger, preview.WithMaxInstances(maxInstances))
			defer srv.Close()

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("preview server listening", "addr", addr, "preset", presetName)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("preview server: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVarP(&presetName, "preset", "p", config.DefaultPresetName, "Preset name")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().IntVar(&maxInstances, "max-instances", preview.DefaultMaxInstances, "Stylesheets kept before the oldest is removed")
	return cmd
}
