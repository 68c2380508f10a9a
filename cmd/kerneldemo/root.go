package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/internal/config"
	"github.com/gogpu/convolve/render"
	"github.com/gogpu/convolve/sample"
)

// app holds state shared by the subcommands once the root has run.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "kerneldemo",
		Short:         "Apply image kernels to small pixel grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newConvolveCmd(a),
		newTraceCmd(a),
		newColorCmd(),
		newPresetsCmd(a),
		newSamplesCmd(),
	)
	return root
}

// setup loads the configuration and installs the logger. The log level
// flag wins over the file.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level := a.cfg.LogLevel
	if a.logLevel != "" {
		l, err := config.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		level = l
	}

	convolve.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// userMessage turns err into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, render.ErrUnknownLabel):
		return "label must be none, gray or hex"
	case errors.Is(err, config.ErrUnknownLevel):
		return "log level must be debug, info, warn or error"
	case errors.Is(err, errUnknownKernel), errors.Is(err, sample.ErrUnknown):
		return err.Error()
	}
	return convolve.UserMessage(err)
}
